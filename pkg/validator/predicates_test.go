package validator_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asserttypes/pkg/validator"
)

func TestNumericOptions(t *testing.T) {
	t.Parallel()

	v := validator.New()

	tests := []struct {
		name  string
		desc  string
		value any
		opts  validator.Options
		ok    bool
	}{
		{name: "within bounds", desc: "num", value: 5, opts: validator.Options{"ge": 1, "le": 10}, ok: true},
		{name: "above le", desc: "num", value: 11, opts: validator.Options{"ge": 1, "le": 10}},
		{name: "gt is strict", desc: "int", value: 1, opts: validator.Options{"gt": 1}},
		{name: "lt is strict", desc: "real", value: 1.0, opts: validator.Options{"lt": 1}},
		{name: "eq", desc: "num", value: int64(3), opts: validator.Options{"eq": 3.0}, ok: true},
		{name: "ne rejects equal", desc: "num", value: 3, opts: validator.Options{"ne": 3}},
		{name: "ne accepts greater", desc: "num", value: 7, opts: validator.Options{"ne": 3}, ok: true},
		{name: "ne accepts smaller", desc: "num", value: 1, opts: validator.Options{"ne": 3}, ok: true},
		{name: "nil bound is ignored", desc: "num", value: 1, opts: validator.Options{"ge": nil}, ok: true},
		{name: "index of", desc: "int", value: 2, opts: validator.Options{"indexOf": []int{1, 2, 3}}, ok: true},
		{name: "index out of range", desc: "int", value: 3, opts: validator.Options{"indexOf": []int{1, 2, 3}}},
		{name: "index for length", desc: "nonNegInt", value: 4, opts: validator.Options{"indexForLength": 5}, ok: true},
		{name: "index for length too big", desc: "nonNegInt", value: 5, opts: validator.Options{"indexForLength": 5}},
		{name: "signed type with bound", desc: "posInt", value: 20, opts: validator.Options{"le": 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := v.Validate(tt.desc, tt.value, tt.opts)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("malformed bound", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("num", 1, validator.Options{"ge": "1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidOption)
		assert.Contains(t, err.Error(), "received invalid options")
	})

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("num", 1, validator.Options{"between": 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidOption)
	})

	t.Run("NaN is not a number", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("num", math.NaN())
		assert.Error(t, err)
		_, err = v.Validate("nan|num", math.NaN())
		assert.NoError(t, err)
	})

	t.Run("bound message", func(t *testing.T) {
		t.Parallel()
		_, err := v.Func("num")(11, validator.Options{"le": 10})
		require.Error(t, err)
		assert.Equal(t, "[asserttypes] - num() - expected a Number <= 10, got: 11", err.Error())
	})
}

func TestSizedOptions(t *testing.T) {
	t.Parallel()

	v := validator.New()

	_, err := v.Validate("str", "héllo", validator.Options{"ofLength": 5})
	assert.NoError(t, err, "length counts runes")

	_, err = v.Validate("str", "ab", validator.Options{"maxLength": 1})
	assert.Error(t, err)

	_, err = v.Validate("sized", map[string]int{"a": 1}, validator.Options{"minLength": 1})
	assert.NoError(t, err)

	_, err = v.Validate("str", "ab", validator.Options{"minLength": -1})
	assert.ErrorIs(t, err, validator.ErrInvalidOption)

	_, err = v.Validate("str", "ab", "minLength")
	assert.ErrorIs(t, err, validator.ErrInvalidOption)

	_, err = v.Validate("nonEmptyStr", "", validator.Options{"maxLength": 3})
	assert.Error(t, err)
}

func TestPattern(t *testing.T) {
	t.Parallel()

	v := validator.New()

	t.Run("string pattern", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("pattern", "abc-123", `^[a-z]+-\d+$`)
		assert.NoError(t, err)
		_, err = v.Validate("pattern", "ABC-123", `^[a-z]+-\d+$`)
		assert.Error(t, err)
	})

	t.Run("flags", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("pattern", "ABC", "^abc$", "i")
		assert.NoError(t, err)
		_, err = v.Validate("pattern", "x\nabc", "^abc$", "gm")
		assert.NoError(t, err)
		_, err = v.Validate("pattern", "abc", "^abc$", "x")
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
	})

	t.Run("compiled pattern", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("pattern", "aaa", regexp.MustCompile(`^a+$`))
		assert.NoError(t, err)
		_, err = v.Validate("pattern", "aab", regexp.MustCompile(`^a+$`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/^a+$/")
	})

	t.Run("bad pattern", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("pattern", "abc", "(")
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
		_, err = v.Validate("pattern", "abc", 5)
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
	})

	t.Run("non-string value", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("pattern", 5, "5")
		assert.Error(t, err)
	})
}

func TestOneOfType(t *testing.T) {
	t.Parallel()

	v := validator.New()

	t.Run("members with their own arguments", func(t *testing.T) {
		t.Parallel()
		members := []any{validator.Seq{"str", validator.Options{"minLength": 3}}, "int"}
		_, err := v.Validate("oneOfType", "abcd", members)
		assert.NoError(t, err)
		_, err = v.Validate("oneOfType", 4, members)
		assert.NoError(t, err)

		_, err = v.Validate("oneOfType", "ab", members)
		require.Error(t, err)
		f := validator.ExtractFailure(err)
		require.NotNil(t, f)
		assert.Equal(t, validator.KindNoMatch, f.Kind)
	})

	t.Run("shared arguments", func(t *testing.T) {
		t.Parallel()
		shared := []any{validator.Options{"maxLength": 2}}
		_, err := v.Validate("oneOfType", "ab", []any{"str", "arr"}, shared)
		assert.NoError(t, err)
		_, err = v.Validate("oneOfType", "abc", []any{"str", "arr"}, shared)
		assert.Error(t, err)
	})

	t.Run("invalid member", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("oneOfType", "a", []any{"str", "nope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
		assert.Contains(t, err.Error(), "received invalid typeName at index #1")
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		_, err := v.Validate("oneOfType", "a", []any{})
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
		_, err = v.Validate("oneOfType", "a", 5)
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
	})
}

func TestChoices(t *testing.T) {
	t.Parallel()

	v := validator.New()

	_, err := v.Validate("oneOf", int64(2), []any{1, 2, 3})
	assert.NoError(t, err, "numbers compare across kinds")

	_, err = v.Validate("oneOf", "c", "a|b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected one of [ "a" "b" ], got: "c"`)

	_, err = v.Validate("oneOf", "a", 5)
	assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)

	_, err = v.Validate("subsetOf", []string{"a", "c"}, []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value at index #1 (= "c") was not among the allowed values`)

	_, err = v.Validate("inOwnKeys", "id", account{ID: 1})
	assert.NoError(t, err)

	_, err = v.Validate("inOwnKeys", "id", member{})
	assert.Error(t, err)

	_, err = v.Validate("inKeys", "id", member{})
	assert.NoError(t, err)

	_, err = v.Validate("subsetOfOwnKeys", []string{"name", "id"}, member{})
	assert.Error(t, err)

	_, err = v.Validate("subsetOfKeys", []string{"name", "id"}, member{})
	assert.NoError(t, err)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	v := validator.New()
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	_, err := v.Validate("uuid", id)
	assert.NoError(t, err)
	_, err = v.Validate("uuid", id.String())
	assert.NoError(t, err)
	_, err = v.Validate("uuid", "{"+id.String()+"}")
	assert.Error(t, err)
	_, err = v.Validate("uuid", "urn:uuid:"+id.String())
	assert.Error(t, err)

	_, err = v.Validate("uuid", uuid.Nil, validator.Options{"nonNil": true})
	assert.Error(t, err)
	_, err = v.Validate("uuid", uuid.Nil)
	assert.NoError(t, err)
	_, err = v.Validate("uuid", id, validator.Options{"nonNil": "yes"})
	assert.ErrorIs(t, err, validator.ErrInvalidOption)
}
