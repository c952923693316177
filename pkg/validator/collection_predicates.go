package validator

import "fmt"

// checkArr accepts slices and arrays, or any array-like value when the
// options carry arrayLike: true. The remaining options are length bounds.
func checkArr(value any, args ...any) *Failure {
	opts := arg(args, 0)
	if opts != nil && !isObject(opts) {
		return invalidOptions(mismatch("expected an Object, got:", opts))
	}

	var sizeOpts map[string]any
	arrayLike := false
	if k, ok := keyedOf(opts); ok {
		sizeOpts = k.toMap()
		arrayLike, _ = sizeOpts["arrayLike"].(bool)
		delete(sizeOpts, "arrayLike")
	}

	if arrayLike {
		if !isArrayLike(value) {
			return mismatch("expected an Array-like object, got:", value)
		}
	} else if !isArray(value) {
		return mismatch("expected an array, got:", value)
	}

	if opts != nil {
		return checkSized(value, sizeOpts)
	}
	return nil
}

func checkArrOf(value any, args ...any) *Failure {
	return CheckCollectionOf("array", "arr", value, arg(args, 0), arg(args, 1))
}

func checkNonEmptyArr(value any, args ...any) *Failure {
	if f := checkArr(value, args...); f != nil {
		return f
	}
	return checkNonEmpty(value)
}

func checkNonEmptyArrOf(value any, args ...any) *Failure {
	if f := checkArrOf(value, args...); f != nil {
		return f
	}
	return checkNonEmpty(value)
}

// arrayLikeOf turns an array predicate into its array-like counterpart. The
// options argument sits at optsAt and may not set arrayLike itself.
func arrayLikeOf(base Predicate, optsAt int) Predicate {
	return func(value any, args ...any) *Failure {
		opts := Options{"arrayLike": true}
		if raw := arg(args, optsAt); raw != nil {
			k, ok := keyedOf(raw)
			if !ok {
				return invalidOptions(mismatch("expected an Object, got:", raw))
			}
			if k.has("arrayLike", true) {
				return invalidOption("arrayLike type-functions cannot specify the 'arrayLike' option")
			}
			for key, v := range k.toMap() {
				opts[key] = v
			}
		}

		full := make([]any, optsAt+1)
		copy(full, args)
		full[optsAt] = opts
		return base(value, full...)
	}
}

func checkInArrayIndexes(value any, args ...any) *Failure {
	arr := arg(args, 0)
	if f := arrayLikeOf(checkArr, 0)(arr); f != nil {
		return f
	}
	if f := signed(checkInt, "non-negative integer", nonNegative)(value); f != nil {
		return f
	}
	size, _ := lengthOf(arr)
	if n, _ := toFloat(value); n >= float64(size) {
		return mismatch(fmt.Sprintf("expected an index for an array of %d elements, got:", size), value)
	}
	return nil
}

func checkObjectOf(value any, args ...any) *Failure {
	return CheckCollectionOf("object", "object", value, arg(args, 0), arg(args, 1))
}

func checkPlainObjectOf(value any, args ...any) *Failure {
	return CheckCollectionOf("plainObject", "plainObject", value, arg(args, 0), arg(args, 1))
}
