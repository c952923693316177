package validator

import "fmt"

var numOptionsShape = Shape{
	"ge":             "num|nul",
	"gt":             "num|nul",
	"le":             "num|nul",
	"lt":             "num|nul",
	"eq":             "num|nul",
	"ne":             "num|nul",
	"indexOf":        "arrLike",
	"indexForLength": "nonNegInt",
}

// checkNum accepts any number except NaN. Options:
//
//	ge, gt, le, lt, eq, ne  bounds; nil disables a bound
//	indexOf                 value must be a valid index into this array-like
//	indexForLength          value must be a valid index for this length
func checkNum(value any, args ...any) *Failure {
	if !isNum(value) {
		return mismatch("expected a Number, got:", value)
	}
	opts := arg(args, 0)
	if opts == nil {
		return nil
	}
	if f := checkShape(opts, numOptionsShape, ModeShapeIn); f != nil {
		return invalidOptions(f)
	}

	k, _ := keyedOf(opts)
	n, _ := toFloat(value)

	if arr := k.get("indexOf"); arr != nil {
		size, _ := lengthOf(arr)
		if !isInt(value) || n < 0 || n >= float64(size) {
			return mismatch(fmt.Sprintf("expected a valid index for an array of %d elements, got:", size), value)
		}
	}
	if size, ok := toFloat(k.get("indexForLength")); ok {
		if !isInt(value) || n < 0 || n >= size {
			return mismatch(fmt.Sprintf("expected a valid index for an array of %v elements, got:", size), value)
		}
	}

	bounds := []struct {
		key string
		op  string
		ok  func(v, bound float64) bool
	}{
		{"ge", ">=", func(v, b float64) bool { return v >= b }},
		{"gt", ">", func(v, b float64) bool { return v > b }},
		{"le", "<=", func(v, b float64) bool { return v <= b }},
		{"lt", "<", func(v, b float64) bool { return v < b }},
		{"ne", "!=", func(v, b float64) bool { return v != b }},
		{"eq", "==", func(v, b float64) bool { return v == b }},
	}
	for _, b := range bounds {
		bound, ok := toFloat(k.get(b.key))
		if !ok {
			continue
		}
		if !b.ok(n, bound) {
			return mismatch(fmt.Sprintf("expected a Number %s %v, got:", b.op, bound), value)
		}
	}
	return nil
}

func checkReal(value any, args ...any) *Failure {
	if f := checkNum(value, args...); f != nil {
		return f
	}
	if !isReal(value) {
		return mismatch("expected a real number, got:", value)
	}
	return nil
}

func checkInt(value any, args ...any) *Failure {
	if f := checkNum(value, args...); f != nil {
		return f
	}
	if !isInt(value) {
		return mismatch("expected an integer, got:", value)
	}
	return nil
}

// signed derives a sign-restricted predicate from base.
func signed(base Predicate, desc string, ok func(float64) bool) Predicate {
	return func(value any, args ...any) *Failure {
		if f := base(value, args...); f != nil {
			return f
		}
		if n, _ := toFloat(value); !ok(n) {
			return mismatch("expected a "+desc+", got:", value)
		}
		return nil
	}
}

func positive(n float64) bool    { return n > 0 }
func negative(n float64) bool    { return n < 0 }
func nonNegative(n float64) bool { return n >= 0 }
func nonPositive(n float64) bool { return n <= 0 }

func checkNaN(value any, _ ...any) *Failure {
	if !isNaN(value) {
		return mismatch("expected NaN, got:", value)
	}
	return nil
}

func checkAnyNumber(value any, _ ...any) *Failure {
	if !isNumber(value) {
		return mismatch("expected a Number (including NaN), got:", value)
	}
	return nil
}
