package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var sizedOptionsShape = Shape{
	"minLength": "nonNegInt|nul",
	"maxLength": "nonNegInt|nul",
	"ofLength":  "nonNegInt|nul",
}

// checkSized checks the length of value against the optional minLength,
// maxLength and ofLength bounds.
func checkSized(value any, args ...any) *Failure {
	opts := arg(args, 0)
	if opts == nil {
		opts = Options{}
	}
	if !isObject(opts) {
		return invalidOptions(mismatch("expected an Object, got:", opts))
	}

	size, ok := lengthOf(value)
	if !ok {
		return mismatch("expected a value with a length, got:", value)
	}

	if f := checkShape(opts, sizedOptionsShape, ModeShapeIn); f != nil {
		return invalidOptions(f)
	}
	k, _ := keyedOf(opts)

	if exact, ok := toFloat(k.get("ofLength")); ok && float64(size) != exact {
		return mismatch(fmt.Sprintf("expected length == %v, got %d:", exact, size), value)
	}
	if lo, ok := toFloat(k.get("minLength")); ok && float64(size) < lo {
		return mismatch(fmt.Sprintf("expected length >= %v, got %d:", lo, size), value)
	}
	if hi, ok := toFloat(k.get("maxLength")); ok && float64(size) > hi {
		return mismatch(fmt.Sprintf("expected length <= %v, got %d:", hi, size), value)
	}
	return nil
}

func checkNonEmpty(value any, _ ...any) *Failure {
	size, ok := lengthOf(value)
	if !ok || size == 0 {
		return mismatch(fmt.Sprintf("expected length > 0, got length = %d from value =", size), value)
	}
	return nil
}

func checkStr(value any, args ...any) *Failure {
	if !isString(value) {
		return mismatch("expected a string, got:", value)
	}
	return checkSized(value, args...)
}

func checkNonEmptyStr(value any, args ...any) *Failure {
	if f := checkStr(value, args...); f != nil {
		return f
	}
	return checkNonEmpty(value)
}

// checkPattern matches a string against a pattern given as a string or a
// compiled *regexp.Regexp. Flags i, m and s map to Go inline flags; g, y and
// u have no meaning for a single match and are ignored.
func checkPattern(value any, args ...any) *Failure {
	if f := checkStr(value); f != nil {
		return f
	}

	var rgx *regexp.Regexp
	switch p := arg(args, 0).(type) {
	case *regexp.Regexp:
		if p == nil {
			return invalidDescriptor("expected pattern to be either a string or a *regexp.Regexp, got:", p, true)
		}
		rgx = p
	case string:
		flags, _ := arg(args, 1).(string)
		compiled, err := compilePattern(p, flags)
		if err != nil {
			return invalidDescriptor("invalid pattern "+RenderValue(p)+": "+err.Error(), nil, false)
		}
		rgx = compiled
	default:
		return invalidDescriptor("expected pattern to be either a string or a *regexp.Regexp, got:", p, true)
	}

	if !rgx.MatchString(stringOf(value)) {
		return mismatch("expected string to match "+RenderValue(rgx)+", got:", value)
	}
	return nil
}

func compilePattern(pattern, flags string) (*regexp.Regexp, error) {
	var inline strings.Builder
	for _, fl := range flags {
		switch fl {
		case 'i', 'm', 's':
			if !strings.ContainsRune(inline.String(), fl) {
				inline.WriteRune(fl)
			}
		case 'g', 'y', 'u':
		default:
			return nil, fmt.Errorf("unsupported flag %q", fl)
		}
	}
	if inline.Len() > 0 {
		pattern = "(?" + inline.String() + ")" + pattern
	}
	return regexp.Compile(pattern)
}
