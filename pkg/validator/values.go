package validator

import (
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ArrayLike is implemented by containers that expose a length and positional
// access without being a Go slice or array.
type ArrayLike interface {
	Len() int
	At(i int) any
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toFloat converts any numeric kind to float64.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isNaN(v any) bool {
	f, ok := toFloat(v)
	return ok && math.IsNaN(f)
}

// isNum reports whether v is a number other than NaN.
func isNum(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f)
}

func isReal(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isInt(v any) bool {
	if !isReal(v) {
		return false
	}
	f, _ := toFloat(v)
	return f == math.Trunc(f)
}

func isBool(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

func isString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}

// isObject mirrors the loose notion of "object": anything with identity or
// structure, as opposed to scalars.
func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Func, reflect.Chan:
		return true
	case reflect.Pointer, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return false
}

func isPlainObject(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

func isArray(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isArrayLike(v any) bool {
	if _, ok := v.(ArrayLike); ok {
		return true
	}
	return isArray(v) || isString(v)
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func isNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isValidDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	}
	return false
}

func isRegexp(v any) bool {
	r, ok := v.(*regexp.Regexp)
	return ok && r != nil
}

// lengthOf returns the length of strings (in runes), slices, arrays, maps and
// ArrayLike values.
func lengthOf(v any) (int, bool) {
	if al, ok := v.(ArrayLike); ok {
		return al.Len(), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

// elementsOf lists the positional elements of an array-like value.
func elementsOf(v any) ([]any, bool) {
	if al, ok := v.(ArrayLike); ok {
		out := make([]any, al.Len())
		for i := range out {
			out[i] = al.At(i)
		}
		return out, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		runes := []rune(rv.String())
		out := make([]any, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out, true
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// argList turns a trailing-args parameter into a list: slices spread, nil is
// empty, anything else is a single argument.
func argList(v any) []any {
	if v == nil {
		return nil
	}
	if isArray(v) {
		out, _ := elementsOf(v)
		return out
	}
	return []any{v}
}

func sameValue(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return false
		}
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

type field struct {
	name      string
	index     []int
	inherited bool
}

// keyed gives uniform key access to string-keyed maps and structs.
// Struct fields promoted from embedded structs count as inherited keys.
type keyed struct {
	rv     reflect.Value
	fields []field
}

func keyedOf(v any) (keyed, bool) {
	if v == nil {
		return keyed{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return keyed{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return keyed{}, false
		}
		return keyed{rv: rv}, true
	case reflect.Struct:
		return keyed{rv: rv, fields: structFields(rv.Type())}, true
	}
	return keyed{}, false
}

func structFields(t reflect.Type) []field {
	var out []field
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		out = append(out, field{name: name, index: f.Index, inherited: len(f.Index) > 1})
	}
	return out
}

func (k keyed) isMap() bool {
	return k.rv.Kind() == reflect.Map
}

// keys lists own keys, plus inherited ones when requested. Map keys are sorted
// so that iteration is stable.
func (k keyed) keys(inherited bool) []string {
	if k.isMap() {
		out := make([]string, 0, k.rv.Len())
		iter := k.rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Key().String())
		}
		slices.Sort(out)
		return out
	}
	out := make([]string, 0, len(k.fields))
	for _, f := range k.fields {
		if f.inherited && !inherited {
			continue
		}
		if _, ok := k.fieldValue(f); !ok {
			continue
		}
		out = append(out, f.name)
	}
	return out
}

func (k keyed) has(key string, inherited bool) bool {
	if k.isMap() {
		return k.rv.MapIndex(reflect.ValueOf(key).Convert(k.rv.Type().Key())).IsValid()
	}
	for _, f := range k.fields {
		if f.name != key || (f.inherited && !inherited) {
			continue
		}
		_, ok := k.fieldValue(f)
		return ok
	}
	return false
}

func (k keyed) get(key string) any {
	if k.isMap() {
		mv := k.rv.MapIndex(reflect.ValueOf(key).Convert(k.rv.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	}
	for _, f := range k.fields {
		if f.name == key {
			fv, _ := k.fieldValue(f)
			return fv
		}
	}
	return nil
}

// fieldValue reads a struct field; a nil embedded pointer makes its promoted
// fields unreachable.
func (k keyed) fieldValue(f field) (any, bool) {
	fv, err := k.rv.FieldByIndexErr(f.index)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}

// toMap copies the reachable keys of a keyed value into a fresh map.
func (k keyed) toMap() map[string]any {
	keys := k.keys(true)
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		out[key] = k.get(key)
	}
	return out
}

type entry struct {
	key   any
	value any
}

// entriesOf lists a collection's members: positions for array-likes, keys in
// sorted order for maps and in declaration order for structs.
func entriesOf(v any) []entry {
	if elems, ok := elementsOf(v); ok {
		out := make([]entry, len(elems))
		for i, e := range elems {
			out[i] = entry{key: i, value: e}
		}
		return out
	}
	k, ok := keyedOf(v)
	if !ok {
		return nil
	}
	keys := k.keys(false)
	out := make([]entry, len(keys))
	for i, key := range keys {
		out[i] = entry{key: key, value: k.get(key)}
	}
	return out
}

func keyString(key any) string {
	if i, ok := key.(int); ok {
		return strconv.Itoa(i)
	}
	return stringOf(key)
}
