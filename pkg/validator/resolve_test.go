package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asserttypes/pkg/validator"
)

type typeName string

func TestDescriptorOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want validator.Descriptor
		ok   bool
	}{
		{name: "name", in: "str", want: validator.Name("str"), ok: true},
		{name: "union", in: "posInt|str", want: validator.Union{"posInt", "str"}, ok: true},
		{name: "named string type", in: typeName("int"), want: validator.Name("int"), ok: true},
		{name: "sequence", in: []any{"str", 1}, want: validator.Seq{"str", 1}, ok: true},
		{name: "typed slice", in: []string{"arrOf", "int"}, want: validator.Seq{"arrOf", "int"}, ok: true},
		{name: "mapping", in: map[string]any{"a": "int"}, want: validator.Shape{"a": "int"}, ok: true},
		{name: "typed mapping", in: map[string]string{"a": "int"}, want: validator.Shape{"a": "int"}, ok: true},
		{name: "explicit shape", in: validator.Shape{"a": "int"}, want: validator.Shape{"a": "int"}, ok: true},
		{name: "number", in: 5, ok: false},
		{name: "nil", in: nil, ok: false},
		{name: "bytes", in: []byte("str"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := validator.DescriptorOf(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("name", func(t *testing.T) {
		t.Parallel()
		ref, f := validator.Resolve("str")
		require.Nil(t, f)
		assert.Equal(t, []string{"str"}, ref.Names)
		assert.Len(t, ref.Predicates, 1)
		assert.Empty(t, ref.Args)
	})

	t.Run("union keeps order", func(t *testing.T) {
		t.Parallel()
		ref, f := validator.Resolve("posInt|str|nul")
		require.Nil(t, f)
		assert.Equal(t, []string{"posInt", "str", "nul"}, ref.Names)
		assert.Len(t, ref.Predicates, 3)
	})

	t.Run("sequence arguments precede extra arguments", func(t *testing.T) {
		t.Parallel()
		opts := validator.Options{"minLength": 3}
		ref, f := validator.Resolve(validator.Seq{"str", opts}, "extra")
		require.Nil(t, f)
		assert.Equal(t, []any{opts, "extra"}, ref.Args)
	})

	t.Run("nested sequences", func(t *testing.T) {
		t.Parallel()
		ref, f := validator.Resolve(validator.Seq{validator.Seq{"arrOf", "int"}, "opts"})
		require.Nil(t, f)
		assert.Equal(t, []string{"arrOf"}, ref.Names)
		assert.Equal(t, []any{"int", "opts"}, ref.Args)
	})

	t.Run("shape resolves to the shape predicate", func(t *testing.T) {
		t.Parallel()
		spec := validator.Shape{"a": "int"}
		ref, f := validator.Resolve(spec)
		require.Nil(t, f)
		assert.Equal(t, []string{"shape"}, ref.Names)
		assert.Equal(t, []any{spec}, ref.Args)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, f := validator.Resolve("nope")
		require.NotNil(t, f)
		assert.Equal(t, validator.KindInvalidDescriptor, f.Kind)
		assert.Equal(t, "invalid typeName 'nope'", f.String())
	})

	t.Run("unknown union member", func(t *testing.T) {
		t.Parallel()
		_, f := validator.Resolve("str|nope")
		require.NotNil(t, f)
		assert.Equal(t, "invalid type 'nope' referenced in 'str|nope'", f.String())
	})

	t.Run("function", func(t *testing.T) {
		t.Parallel()
		_, f := validator.Resolve(func(any) bool { return true })
		require.NotNil(t, f)
		assert.Equal(t, validator.KindInvalidDescriptor, f.Kind)
		assert.Contains(t, f.Expected, "received a function where either a type name or a types object was expected")
	})

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()
		_, f := validator.Resolve(validator.Seq{})
		require.NotNil(t, f)
		assert.Equal(t, "expected a type name, got:", f.Expected)
	})

	t.Run("not a descriptor", func(t *testing.T) {
		t.Parallel()
		_, f := validator.Resolve(42)
		require.NotNil(t, f)
		assert.Equal(t, "expected a type name, got: 42", f.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		desc := validator.Seq{"str", validator.Options{"minLength": 2}}
		first, f := validator.Resolve(desc)
		require.Nil(t, f)
		second, f := validator.Resolve(desc)
		require.Nil(t, f)

		assert.Equal(t, first.Names, second.Names)
		assert.Equal(t, first.Args, second.Args)

		first.Args[0] = validator.Options{"minLength": 10}
		assert.Nil(t, validator.Check("abc", second))
		assert.NotNil(t, validator.Check("abc", first))

		third, _ := validator.Resolve(desc)
		assert.Nil(t, validator.Check("abc", third))
		assert.NotNil(t, validator.Check("a", third))
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("single predicate failure is returned as is", func(t *testing.T) {
		t.Parallel()
		ref, _ := validator.Resolve("posInt")
		f := validator.Check(-1, ref)
		require.NotNil(t, f)
		assert.Equal(t, validator.KindMismatch, f.Kind)
		assert.Equal(t, "expected a positive integer, got: -1", f.String())
	})

	t.Run("union tries every member", func(t *testing.T) {
		t.Parallel()
		ref, _ := validator.Resolve("posInt|str")
		assert.Nil(t, validator.Check(5, ref))
		assert.Nil(t, validator.Check("a", ref))

		f := validator.Check(-1, ref)
		require.NotNil(t, f)
		assert.Equal(t, validator.KindNoMatch, f.Kind)
		assert.Equal(t, `value did not match against any of 2 types ("posInt|str"): -1`, f.String())

		assert.NotNil(t, validator.Check(map[string]any{}, ref))
	})

	t.Run("empty ref panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { validator.Check(1, validator.Ref{}) })
	})

	t.Run("check descriptor", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.CheckDescriptor("str", "abc", validator.Options{"maxLength": 3}))
		assert.NotNil(t, validator.CheckDescriptor("str", "abcd", validator.Options{"maxLength": 3}))
		assert.NotNil(t, validator.CheckDescriptor("nope", "abc"))
	})
}
