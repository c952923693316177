// Package validator checks runtime values against type descriptors and
// explains, in a single readable message, why a value does not conform.
//
// A descriptor is data. It takes one of five forms:
//
//   - a registered name: "posInt", "nonEmptyStr", "shapeExact"
//   - a union of registered names: "posInt|str" (any member may match)
//   - a *Type produced by Derive: a predicate with leading arguments bound
//   - a Seq: the first element is a descriptor, the rest are extra arguments
//     for it, e.g. Seq{"str", Options{"minLength": 3}}
//   - a Shape (or any string-keyed map): key → descriptor, checked with "shape"
//
// # Architecture
//
// The registry (registry.go) maps about fifty names to pure predicates and is
// fixed at package initialisation. Resolve normalises any descriptor into a Ref,
// an ordered list of predicates plus the arguments to call them with. Check
// runs a Ref with OR semantics. The shape and collection predicates
// (shape.go, collection.go) call back into Resolve and Check for each key or
// element, so nesting descriptors nests checks.
//
// Failures are structured (Failure: kind, key path, expected text, offending
// value and nested cause) and only rendered at the edge by Format, which
// prefixes Marker and word-wraps the message.
//
// # Usage
//
//	v := validator.New()
//
//	if _, err := v.Validate("posInt|str", id); err != nil {
//	    return err
//	}
//
//	point := validator.Shape{"x": "int", "y": "int"}
//	_, err := v.Validate("arrOf", points, point)
//
//	atLeast3, _ := validator.Derive("atLeast3", "str", validator.Options{"minLength": 3})
//	_, err = v.Func(atLeast3)("abc")
//
// # Configuration
//
// Config is read once, through LoadConfig or built by hand, and passed to New.
// Bypass (or APP_ENV=production) makes every check an identity pass-through;
// DebugOnError runs a trap hook on each failure without changing the outcome.
//
// # Error Handling
//
// Every failure is returned as *Error. Its message starts with Marker, and it
// matches ErrValidationFailed with errors.Is; ErrInvalidDescriptor and
// ErrInvalidOption additionally match when the cause was a bad descriptor or
// options argument. ExtractFailure returns the structured reason. Checks stop at
// the first failure; there is no aggregation.
package validator
