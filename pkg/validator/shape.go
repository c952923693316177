package validator

import (
	"slices"
)

// ShapeOptions controls how CheckShape treats missing and extraneous keys.
type ShapeOptions struct {
	// Subset tolerates shape keys that are absent from the value.
	Subset bool
	// Extra tolerates value keys that the shape does not mention.
	Extra bool
	// IncludeInherited makes keys promoted from embedded structs count.
	IncludeInherited bool
	// KeyArgs holds extra arguments for the descriptor at a given key.
	KeyArgs map[string][]any
}

// The four shape modes.
var (
	ModeShape      = ShapeOptions{Subset: false, Extra: true}
	ModeShapeExact = ShapeOptions{Subset: false, Extra: false}
	ModeShapeIn    = ShapeOptions{Subset: true, Extra: false}
	ModeShapeLike  = ShapeOptions{Subset: true, Extra: true}
)

var shapeOptionKeys = []string{"subset", "extra", "includeInherited", "keyArgs"}

// ParseShapeOptions reads an options mapping with the keys subset, extra,
// includeInherited and keyArgs on top of defaults. Any other key fails.
func ParseShapeOptions(raw any, defaults ShapeOptions) (ShapeOptions, *Failure) {
	return parseShapeOptions(raw, defaults, "")
}

// parseShapeOptions rejects subset and extra when fixedBy names the shape
// entry point that fixes them.
func parseShapeOptions(raw any, defaults ShapeOptions, fixedBy string) (ShapeOptions, *Failure) {
	opts := defaults
	if raw == nil {
		return opts, nil
	}
	k, ok := keyedOf(raw)
	if !ok {
		return opts, invalidOptions(mismatch("expected shape options to be an object, got:", raw))
	}

	for _, key := range k.keys(true) {
		if !slices.Contains(shapeOptionKeys, key) {
			return opts, invalidOption("Invalid shapeObject option: '" + key + "'")
		}
		if fixedBy != "" && (key == "subset" || key == "extra") {
			return opts, invalidOption(fixedBy + " type-functions cannot specify the '" + key + "' option")
		}
	}

	if f := checkShape(raw, Shape{
		"subset":           "bool|nul",
		"extra":            "bool|nul",
		"includeInherited": "bool|nul",
		"keyArgs":          "any",
	}, ModeShapeIn); f != nil {
		return opts, invalidOptions(f)
	}
	if keyArgs := k.get("keyArgs"); keyArgs != nil {
		if f := CheckDescriptor("plainObjectOf", keyArgs, "arrLike"); f != nil {
			return opts, invalidOptions(f)
		}
	}

	if v, ok := k.get("subset").(bool); ok {
		opts.Subset = v
	}
	if v, ok := k.get("extra").(bool); ok {
		opts.Extra = v
	}
	if v, ok := k.get("includeInherited").(bool); ok {
		opts.IncludeInherited = v
	}
	if ka, ok := keyedOf(k.get("keyArgs")); ok {
		opts.KeyArgs = make(map[string][]any)
		for _, key := range ka.keys(false) {
			opts.KeyArgs[key], _ = elementsOf(ka.get(key))
		}
	}
	return opts, nil
}

// CheckShape validates the keys of value against spec, a mapping from key to
// descriptor. Shape keys are visited in sorted order and the first failing key
// is reported. Failures of nested shapes carry the full key path.
func CheckShape(value, spec any, opts ShapeOptions) *Failure {
	return checkShape(value, spec, opts)
}

func checkShape(value, spec any, opts ShapeOptions) *Failure {
	v, ok := keyedOf(value)
	if !ok {
		return mismatch("expected an object, got:", value)
	}
	s, ok := keyedOf(spec)
	if !ok {
		return mismatch("expected shapeObject to be an object, got:", spec)
	}

	specKeys := s.keys(false)
	for _, key := range specKeys {
		keyPath := []string{key}

		if !v.has(key, opts.IncludeInherited) {
			if opts.Subset {
				continue
			}
			return &Failure{Kind: KindMissingKey, Expected: "missing required value at", Path: keyPath}
		}

		ref, f := Resolve(s.get(key), opts.KeyArgs[key]...)
		if f != nil {
			return &Failure{
				Kind:     KindInvalidDescriptor,
				Expected: "invalid typeName at",
				Path:     keyPath,
				Cause:    f,
			}
		}

		if f := Check(v.get(key), ref); f != nil {
			return &Failure{
				Kind:     KindField,
				Expected: "did not validate at",
				Path:     keyPath,
				Cause:    f.prefixed(key),
			}
		}
	}

	if !opts.Extra {
		for _, key := range v.keys(opts.IncludeInherited) {
			if !slices.Contains(specKeys, key) {
				return &Failure{
					Kind:     KindUnexpectedKey,
					Expected: "received unexpected key:",
					Path:     []string{key},
				}
			}
		}
	}

	return nil
}

// shapePredicate builds a registered shape entry point with a fixed mode.
// The optional third argument may set includeInherited and keyArgs.
func shapePredicate(name string, mode ShapeOptions) Predicate {
	return func(value any, args ...any) *Failure {
		opts, f := parseShapeOptions(arg(args, 1), mode, name)
		if f != nil {
			return f
		}
		return checkShape(value, arg(args, 0), opts)
	}
}
