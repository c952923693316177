package validator

import (
	"reflect"
	"strings"
)

// Descriptor is the closed set of forms a type description can take:
// Name, Union, *Type, Seq and Shape. Raw values are classified with
// DescriptorOf before anything is resolved.
type Descriptor interface {
	descriptor()
}

// Name refers to a registered predicate.
type Name string

// Union is an OR-combination of registered names, written "a|b|c".
type Union []Name

// Seq is a descriptor followed by extra positional arguments for it:
// Seq{"str", Options{"minLength": 3}}.
type Seq []any

// Shape maps keys to descriptors. A Shape used as a descriptor is checked
// with the "shape" predicate.
type Shape map[string]any

// Options is the conventional form of an options argument.
type Options map[string]any

func (Name) descriptor()  {}
func (Union) descriptor() {}
func (Seq) descriptor()   {}
func (Shape) descriptor() {}
func (*Type) descriptor() {}

func (u Union) String() string {
	parts := make([]string, len(u))
	for i, n := range u {
		parts[i] = string(n)
	}
	return strings.Join(parts, "|")
}

// DescriptorOf classifies a raw descriptor literal. Strings become a Name or
// a Union, slices a Seq and string-keyed maps a Shape. The second result is
// false when v fits none of the forms.
func DescriptorOf(v any) (Descriptor, bool) {
	switch d := v.(type) {
	case Descriptor:
		if t, ok := d.(*Type); ok && t == nil {
			return nil, false
		}
		return d, true
	case string:
		if strings.Contains(d, "|") {
			segments := strings.Split(d, "|")
			u := make(Union, len(segments))
			for i, s := range segments {
				u[i] = Name(s)
			}
			return u, true
		}
		return Name(d), true
	case []any:
		return Seq(d), true
	case map[string]any:
		return Shape(d), true
	}
	if v == nil {
		return nil, false
	}
	t := reflect.TypeOf(v)
	switch {
	case t.Kind() == reflect.String:
		return DescriptorOf(reflect.ValueOf(v).String())
	case t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8:
		elems, _ := elementsOf(v)
		return Seq(elems), true
	case t.Kind() == reflect.Map && t.Key().Kind() == reflect.String:
		k, _ := keyedOf(v)
		return Shape(k.toMap()), true
	}
	return nil, false
}
