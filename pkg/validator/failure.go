package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Kind classifies a Failure.
type Kind uint8

const (
	// KindMismatch: the value failed a leaf check.
	KindMismatch Kind = iota
	// KindInvalidDescriptor: a descriptor did not resolve to any predicate.
	KindInvalidDescriptor
	// KindInvalidOption: an options argument failed its own schema.
	KindInvalidOption
	// KindMissingKey: a required shape key is absent from the value.
	KindMissingKey
	// KindUnexpectedKey: the value carries a key the shape does not allow.
	KindUnexpectedKey
	// KindField: a shape key's value failed; Cause holds the reason.
	KindField
	// KindElement: a collection member failed; Cause holds the reason.
	KindElement
	// KindNoMatch: none of the alternatives of a union matched.
	KindNoMatch
)

var kindNames = [...]string{
	KindMismatch:          "mismatch",
	KindInvalidDescriptor: "invalid_descriptor",
	KindInvalidOption:     "invalid_option",
	KindMissingKey:        "missing_key",
	KindUnexpectedKey:     "unexpected_key",
	KindField:             "field",
	KindElement:           "element",
	KindNoMatch:           "no_match",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Failure describes why a value did not conform. Failures nest through Cause
// when produced by shape, collection and option checks.
type Failure struct {
	Kind      Kind
	Path      []string
	Expected  string
	Actual    any
	HasActual bool
	Cause     *Failure
}

func mismatch(expected string, actual any) *Failure {
	return &Failure{Kind: KindMismatch, Expected: expected, Actual: actual, HasActual: true}
}

func mismatchf(format string, args ...any) *Failure {
	return &Failure{Kind: KindMismatch, Expected: fmt.Sprintf(format, args...)}
}

func invalidDescriptor(expected string, actual any, hasActual bool) *Failure {
	return &Failure{Kind: KindInvalidDescriptor, Expected: expected, Actual: actual, HasActual: hasActual}
}

func invalidOption(expected string) *Failure {
	return &Failure{Kind: KindInvalidOption, Expected: expected}
}

// invalidOptions wraps the failure of an options argument against its schema.
func invalidOptions(cause *Failure) *Failure {
	return &Failure{Kind: KindInvalidOption, Expected: "received invalid options", Cause: cause}
}

func (f *Failure) wrap(kind Kind, expected string, actual any, hasActual bool) *Failure {
	return &Failure{Kind: kind, Expected: expected, Actual: actual, HasActual: hasActual, Cause: f}
}

// prefixed returns a copy whose path, and the paths of the contiguous chain of
// path-bearing causes below it, start with key.
func (f *Failure) prefixed(key string) *Failure {
	if f == nil || len(f.Path) == 0 {
		return f
	}
	out := *f
	out.Path = append([]string{key}, f.Path...)
	out.Cause = f.Cause.prefixed(key)
	return &out
}

// Root returns the innermost cause.
func (f *Failure) Root() *Failure {
	for f != nil && f.Cause != nil {
		f = f.Cause
	}
	return f
}

// Has reports whether f or any of its causes is of the given kind.
func (f *Failure) Has(kind Kind) bool {
	for ; f != nil; f = f.Cause {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// Tokens renders the failure as an ordered word list: descriptive strings
// interleaved with the offending values themselves.
func (f *Failure) Tokens() []any {
	if f == nil {
		return nil
	}
	tokens := []any{f.Expected}
	if len(f.Path) > 0 {
		tokens = append(tokens, PathString(f.Path))
	}
	if f.HasActual {
		tokens = append(tokens, f.Actual)
	}
	if f.Cause != nil {
		if len(f.Path) > 0 {
			tokens = append(tokens, "-")
			tokens = append(tokens, f.Cause.Tokens()...)
		} else {
			tokens = append(tokens, "(")
			tokens = append(tokens, f.Cause.Tokens()...)
			tokens = append(tokens, ")")
		}
	}
	return tokens
}

func (f *Failure) String() string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	f.render(&b)
	return b.String()
}

func (f *Failure) render(b *strings.Builder) {
	b.WriteString(f.Expected)
	if len(f.Path) > 0 {
		b.WriteByte(' ')
		b.WriteString(PathString(f.Path))
	}
	if f.HasActual {
		b.WriteByte(' ')
		b.WriteString(RenderValue(f.Actual))
	}
	if f.Cause == nil {
		return
	}
	if len(f.Path) > 0 {
		b.WriteString(" - ")
		f.Cause.render(b)
		return
	}
	b.WriteString(" (")
	f.Cause.render(b)
	b.WriteByte(')')
}

// PathString renders a key chain as "a"."b"."c".
func PathString(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = `"` + p + `"`
	}
	return strings.Join(parts, ".")
}

var valuePrinter = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                4,
}

// RenderValue formats an offending value for a diagnostic.
func RenderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case *regexp.Regexp:
		if x == nil {
			return "(*regexp.Regexp)(nil)"
		}
		return "/" + x.String() + "/"
	case reflect.Type:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return rv.Type().String()
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		return valuePrinter.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v", v)
}
