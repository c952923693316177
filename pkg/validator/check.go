package validator

import (
	"fmt"
	"strings"
)

// Check runs ref against value. The first predicate that accepts the value
// wins. With a single predicate its failure is returned as is; a union that
// fails entirely reports every attempted name.
func Check(value any, ref Ref) *Failure {
	if len(ref.Predicates) == 0 {
		panic("validator: Check called with an empty Ref")
	}

	var last *Failure
	for _, pred := range ref.Predicates {
		f := pred(value, ref.Args...)
		if f == nil {
			return nil
		}
		last = f
	}

	if len(ref.Predicates) == 1 {
		return last
	}

	return &Failure{
		Kind: KindNoMatch,
		Expected: fmt.Sprintf("value did not match against any of %d types (%q):",
			len(ref.Predicates), strings.Join(ref.Names, "|")),
		Actual:    value,
		HasActual: true,
	}
}

// CheckDescriptor resolves descriptor and checks value against it in one step.
func CheckDescriptor(descriptor, value any, args ...any) *Failure {
	ref, f := Resolve(descriptor, args...)
	if f != nil {
		return f
	}
	return Check(value, ref)
}
