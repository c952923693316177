package validator

import "slices"

// Predicate checks value against the predicate's bound arguments and returns
// nil when it conforms.
type Predicate func(value any, args ...any) *Failure

// Type is a named predicate with partially applied leading arguments. It is
// immutable and never registered; the resolver recognises it by its Go type.
type Type struct {
	name    string
	pred    Predicate
	partial []any
}

// Name returns the type's name as used in diagnostics.
func (t *Type) Name() string {
	return t.name
}

// PartialArgs returns a copy of the arguments bound at creation.
func (t *Type) PartialArgs() []any {
	return slices.Clone(t.partial)
}

// Check runs the predicate with the partial arguments followed by args.
func (t *Type) Check(value any, args ...any) *Failure {
	return t.pred(value, t.boundArgs(args)...)
}

func (t *Type) boundArgs(extra []any) []any {
	out := make([]any, 0, len(t.partial)+len(extra))
	out = append(out, t.partial...)
	return append(out, extra...)
}

// TypeOf wraps a registered predicate as a Type without partial arguments.
func TypeOf(name string) (*Type, bool) {
	pred, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return &Type{name: name, pred: pred}, true
}

// Derive creates a new named type that calls base with partialArgs placed
// before any call-time arguments. base is a registered name or another *Type,
// in which case its own partial arguments come first.
//
//	atLeast3, err := validator.Derive("atLeast3", "str", validator.Options{"minLength": 3})
func Derive(name string, base any, partialArgs ...any) (*Type, error) {
	t, f := derive(name, base, partialArgs)
	if f != nil {
		args := append([]any{name, base}, partialArgs...)
		return nil, newError("derive", args, f, defaultLineWidth)
	}
	return t, nil
}

func derive(name string, base any, partialArgs []any) (*Type, *Failure) {
	switch b := base.(type) {
	case *Type:
		if b == nil {
			return nil, invalidDescriptor("expected a base type name, got:", base, true)
		}
		return &Type{name: name, pred: b.pred, partial: b.boundArgs(partialArgs)}, nil
	case string:
		pred, ok := Lookup(b)
		if !ok {
			return nil, invalidDescriptor("invalid typeName '"+b+"'", nil, false)
		}
		return &Type{name: name, pred: pred, partial: slices.Clone(partialArgs)}, nil
	case Name:
		return derive(name, string(b), partialArgs)
	}
	return nil, invalidDescriptor("expected a base type name, got:", base, true)
}
