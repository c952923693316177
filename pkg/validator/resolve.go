package validator

import (
	"reflect"
	"slices"
)

// Ref is the executable form of a descriptor: one or more predicates tried in
// order (OR semantics) with the same bound arguments.
type Ref struct {
	Names      []string
	Predicates []Predicate
	Args       []any
}

// Resolve turns a descriptor into a Ref. extraArgs are appended after any
// arguments the descriptor itself carries; arguments of nested Seqs
// accumulate outermost-last.
func Resolve(descriptor any, extraArgs ...any) (Ref, *Failure) {
	if isFunc(descriptor) {
		return Ref{}, invalidDescriptor(
			"received a function where either a type name or a types object was expected:",
			descriptor, true)
	}

	d, ok := DescriptorOf(descriptor)
	if !ok {
		return Ref{}, invalidDescriptor("expected a type name, got:", descriptor, true)
	}

	switch d := d.(type) {
	case Shape:
		return Resolve(Seq{"shape", d}, extraArgs...)
	case Name:
		pred, ok := Lookup(string(d))
		if !ok {
			return Ref{}, invalidDescriptor("invalid typeName '"+string(d)+"'", nil, false)
		}
		return Ref{
			Names:      []string{string(d)},
			Predicates: []Predicate{pred},
			Args:       slices.Clone(extraArgs),
		}, nil
	case Union:
		ref := Ref{
			Names:      make([]string, 0, len(d)),
			Predicates: make([]Predicate, 0, len(d)),
			Args:       slices.Clone(extraArgs),
		}
		for _, n := range d {
			pred, ok := Lookup(string(n))
			if !ok {
				return Ref{}, invalidDescriptor(
					"invalid type '"+string(n)+"' referenced in '"+d.String()+"'", nil, false)
			}
			ref.Names = append(ref.Names, string(n))
			ref.Predicates = append(ref.Predicates, pred)
		}
		return ref, nil
	case *Type:
		return Ref{
			Names:      []string{d.name},
			Predicates: []Predicate{d.pred},
			Args:       d.boundArgs(extraArgs),
		}, nil
	case Seq:
		if len(d) == 0 {
			return Ref{}, invalidDescriptor("expected a type name, got:", nil, true)
		}
		args := make([]any, 0, len(d)-1+len(extraArgs))
		args = append(args, d[1:]...)
		args = append(args, extraArgs...)
		return Resolve(d[0], args...)
	}

	// Descriptor is closed; reaching here means a new form was added above
	// without a resolution rule.
	panic("validator: unhandled descriptor form " + reflect.TypeOf(d).String())
}
