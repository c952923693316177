package validator

import (
	"strconv"
)

// CheckCollectionOf validates collection with the registered container
// predicate and then every member against elem. kind names the container in
// messages ("array", "object", "plainObject"). The element descriptor is
// resolved once and shared; the first failing member is reported.
func CheckCollectionOf(kind, container string, collection, elem, containerOpts any) *Failure {
	pred, ok := Lookup(container)
	if !ok {
		panic("validator: unknown container predicate " + container)
	}

	var f *Failure
	if containerOpts == nil {
		f = pred(collection)
	} else {
		f = pred(collection, containerOpts)
	}
	if f != nil {
		return f.wrap(KindMismatch, "invalid "+kind+" value:", collection, true)
	}

	ref, f := Resolve(elem)
	if f != nil {
		return f.wrap(KindInvalidDescriptor, "received invalid type name", nil, false)
	}

	for _, e := range entriesOf(collection) {
		f := Check(e.value, ref)
		if f == nil {
			continue
		}
		var where string
		if i, ok := e.key.(int); ok {
			where = "index #" + strconv.Itoa(i)
		} else {
			where = `key "` + keyString(e.key) + `"`
		}
		return &Failure{
			Kind:     KindElement,
			Expected: kind + " value at " + where + " is invalid",
			Cause:    f.prefixed(keyString(e.key)),
		}
	}

	return nil
}
