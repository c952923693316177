package validator

import (
	"reflect"
)

func checkBool(value any, _ ...any) *Failure {
	if !isBool(value) {
		return mismatch("expected a Boolean, got:", value)
	}
	return nil
}

func checkObject(value any, _ ...any) *Failure {
	if !isObject(value) {
		return mismatch("expected an Object, got:", value)
	}
	return nil
}

func checkPlainObject(value any, _ ...any) *Failure {
	if !isPlainObject(value) {
		return mismatch("expected a plain object, got:", value)
	}
	return nil
}

func checkRegex(value any, _ ...any) *Failure {
	if !isRegexp(value) {
		return mismatch("expected a *regexp.Regexp, got:", value)
	}
	return nil
}

func checkDate(value any, _ ...any) *Failure {
	if !isValidDate(value) {
		return mismatch("expected a (valid) time.Time, got:", value)
	}
	return nil
}

func checkFunc(value any, _ ...any) *Failure {
	if !isFunc(value) {
		return mismatch("expected a Function, got:", value)
	}
	return nil
}

// checkInstanceOf accepts values whose dynamic type is assignable to the
// reflect.Type argument, so interface types match their implementations.
func checkInstanceOf(value any, args ...any) *Failure {
	t, ok := arg(args, 0).(reflect.Type)
	if !ok || t == nil {
		return invalidDescriptor("expected a reflect.Type, got:", arg(args, 0), true)
	}
	if value == nil || !reflect.TypeOf(value).AssignableTo(t) {
		return mismatch("expected instance of "+t.String()+", got:", value)
	}
	return nil
}

func checkAny(_ any, _ ...any) *Failure {
	return nil
}

func checkNul(value any, _ ...any) *Failure {
	if value != nil {
		return mismatch("expected nil, got:", value)
	}
	return nil
}

func checkNullish(value any, _ ...any) *Failure {
	if !isNullish(value) {
		return mismatch("expected nil (or a nil pointer, map, slice, func or chan), got:", value)
	}
	return nil
}

func checkTypeName(value any, _ ...any) *Failure {
	if !isString(value) || !Has(stringOf(value)) {
		return mismatch("invalid typeName:", value)
	}
	return nil
}

func checkTypeNameRef(value any, args ...any) *Failure {
	_, f := Resolve(value, argList(arg(args, 0))...)
	return f
}

// arg returns args[i], or nil when it was not supplied.
func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
