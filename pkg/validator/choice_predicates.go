package validator

import (
	"fmt"
	"strings"
)

// checkOneOf accepts a value equal to one of the allowed values, given as a
// slice or a "|"-separated string. Numbers compare by value across kinds.
func checkOneOf(value any, args ...any) *Failure {
	allowed, f := choices(arg(args, 0))
	if f != nil {
		return f
	}
	for _, a := range allowed {
		if sameValue(value, a) {
			return nil
		}
	}
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = RenderValue(a)
	}
	return mismatch("expected one of [ "+strings.Join(parts, " ")+" ], got:", value)
}

func choices(v any) ([]any, *Failure) {
	if isString(v) {
		parts := strings.Split(stringOf(v), "|")
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = p
		}
		return out, nil
	}
	if isArray(v) {
		out, _ := elementsOf(v)
		return out, nil
	}
	return nil, invalidDescriptor("expected an array, got:", v, true)
}

// checkOneOfType accepts a value matching any of the given descriptors. The
// list may be a "|"-separated string or a slice whose members may be Seqs
// carrying their own arguments; the optional third argument lists arguments
// appended for every member.
func checkOneOfType(value any, args ...any) *Failure {
	raw := arg(args, 0)
	if !isString(raw) && !isArray(raw) {
		return invalidDescriptor(`expected an array (or string separated by "|" characters) of type names, got:`, raw, true)
	}
	members, _ := choices(raw)
	if len(members) == 0 {
		return invalidDescriptor("oneOfType(value, array) called with no type names", nil, false)
	}
	shared := argList(arg(args, 1))

	refs := make([]Ref, 0, len(members))
	for i, m := range members {
		ref, f := Resolve(m, shared...)
		if f != nil {
			return f.wrap(KindInvalidDescriptor, fmt.Sprintf("received invalid typeName at index #%d", i), nil, false)
		}
		refs = append(refs, ref)
	}

	for _, ref := range refs {
		if Check(value, ref) == nil {
			return nil
		}
	}
	return &Failure{
		Kind:      KindNoMatch,
		Expected:  "the given value did not match any of the given types " + RenderValue(raw) + ":",
		Actual:    value,
		HasActual: true,
	}
}

// checkSubsetOf accepts an array-like whose members all appear in allowed.
func checkSubsetOf(value any, args ...any) *Failure {
	values, ok := elementsOf(value)
	if !ok {
		return mismatch("expected an array of values, got:", value)
	}
	allowed, ok := elementsOf(arg(args, 0))
	if !ok {
		return invalidDescriptor("expected an array of allowed values, got:", arg(args, 0), true)
	}
	for i, v := range values {
		found := false
		for _, a := range allowed {
			if sameValue(v, a) {
				found = true
				break
			}
		}
		if !found {
			return mismatch(fmt.Sprintf("value at index #%d (= %s) was not among the allowed values:",
				i, RenderValue(v)), arg(args, 0))
		}
	}
	return nil
}

func subsetOfKeys(own bool) Predicate {
	desc := "keys"
	if own {
		desc = "(non-inherited) keys"
	}
	return func(value any, args ...any) *Failure {
		values, ok := elementsOf(value)
		if !ok {
			return mismatch("expected an array of values, got:", value)
		}
		obj := arg(args, 0)
		k, ok := keyedOf(obj)
		if !ok {
			return invalidDescriptor("expected an object of allowed keys, got:", obj, true)
		}
		for i, v := range values {
			if !isString(v) || !k.has(stringOf(v), !own) {
				return mismatch(fmt.Sprintf("value at index #%d (= %s) was not found in the object's %s:",
					i, RenderValue(v), desc), obj)
			}
		}
		return nil
	}
}

func inKeys(own bool) Predicate {
	desc := "a key"
	if own {
		desc = "a (non-inherited) key"
	}
	return func(value any, args ...any) *Failure {
		obj := arg(args, 0)
		if !isObject(obj) {
			return mismatch("expected an Object, got:", obj)
		}
		if f := checkStr(value); f != nil {
			return f
		}
		k, ok := keyedOf(obj)
		if !ok || !k.has(stringOf(value), !own) {
			return mismatch("expected "+desc+" from "+RenderValue(obj)+", got:", value)
		}
		return nil
	}
}
