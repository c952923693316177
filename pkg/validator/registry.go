package validator

import (
	"maps"
	"slices"
)

// registry is populated once in init and never modified afterwards. It is not
// a variable initializer because the shape and collection predicates reach
// back into the registry through Resolve.
var registry map[string]Predicate

func init() {
	registry = map[string]Predicate{
		// numbers
		"num":        checkNum,
		"real":       checkReal,
		"posReal":    signed(checkReal, "positive real number", positive),
		"negReal":    signed(checkReal, "negative real number", negative),
		"nonNegReal": signed(checkReal, "non-negative real number", nonNegative),
		"nonPosReal": signed(checkReal, "non-positive real number", nonPositive),
		"int":        checkInt,
		"posInt":     signed(checkInt, "positive integer", positive),
		"negInt":     signed(checkInt, "negative integer", negative),
		"nonNegInt":  signed(checkInt, "non-negative integer", nonNegative),
		"nonPosInt":  signed(checkInt, "non-positive integer", nonPositive),
		"nan":        checkNaN,
		"anyNumber":  checkAnyNumber,

		// strings and lengths
		"sized":       checkSized,
		"nonEmpty":    checkNonEmpty,
		"str":         checkStr,
		"nonEmptyStr": checkNonEmptyStr,
		"pattern":     checkPattern,

		// arrays
		"arr":               checkArr,
		"arrOf":             checkArrOf,
		"nonEmptyArr":       checkNonEmptyArr,
		"nonEmptyArrOf":     checkNonEmptyArrOf,
		"arrLike":           arrayLikeOf(checkArr, 0),
		"arrLikeOf":         arrayLikeOf(checkArrOf, 1),
		"nonEmptyArrLike":   arrayLikeOf(checkNonEmptyArr, 0),
		"nonEmptyArrLikeOf": arrayLikeOf(checkNonEmptyArrOf, 1),
		"inArrayIndexes":    checkInArrayIndexes,

		// objects
		"object":        checkObject,
		"objectOf":      checkObjectOf,
		"plainObject":   checkPlainObject,
		"plainObjectOf": checkPlainObjectOf,
		"shape":         shapePredicate("shape", ModeShape),
		"shapeExact":    shapePredicate("shapeExact", ModeShapeExact),
		"shapeIn":       shapePredicate("shapeIn", ModeShapeIn),
		"shapeLike":     shapePredicate("shapeLike", ModeShapeLike),

		// combinators
		"oneOf":           checkOneOf,
		"oneOfType":       checkOneOfType,
		"subsetOf":        checkSubsetOf,
		"subsetOfKeys":    subsetOfKeys(false),
		"subsetOfOwnKeys": subsetOfKeys(true),
		"inKeys":          inKeys(false),
		"inOwnKeys":       inKeys(true),

		// leaves
		"bool":       checkBool,
		"regex":      checkRegex,
		"date":       checkDate,
		"func":       checkFunc,
		"instanceOf": checkInstanceOf,
		"any":        checkAny,
		"nul":        checkNul,
		"nullish":    checkNullish,
		"uuid":       checkUUID,

		// descriptors themselves
		"_typeName":    checkTypeName,
		"_typeNameRef": checkTypeNameRef,
	}
}

// Lookup returns the registered predicate for name.
func Lookup(name string) (Predicate, bool) {
	pred, ok := registry[name]
	return pred, ok
}

// Has reports whether name is registered.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names lists every registered name in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
