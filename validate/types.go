package validate

import (
	"reflect"
)

// IsSequence reports whether value is an ordered, finite container: a slice
// or an array. Strings and maps are not sequences, nor is any scalar. If
// ElementTypes is given, every element must additionally satisfy it.
//
// IsSequence is total: it returns false for any malformed input and never
// panics.
func IsSequence(value any, opts ...Option) bool {
	s := applyOptions(opts)
	elems, ok := sequenceElements(value)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !s.elementTypes.matches(reflect.TypeOf(e)) {
			return false
		}
	}
	return true
}

// CheckSequence validates that value is a sequence, returning value unchanged
// on success so it can be used as an inline guard. Shape failures return a
// *NotASequenceError, element type failures an *UnexpectedTypeError, and an
// empty sequence under AllowEmpty(false) an *EmptySequenceError.
func CheckSequence(value any, opts ...Option) (any, error) {
	s := applyOptions(opts)

	elems, ok := sequenceElements(value)
	if !ok {
		return nil, &NotASequenceError{Name: s.name, Actual: reflect.TypeOf(value)}
	}
	if !s.allowEmpty && len(elems) == 0 {
		return nil, &EmptySequenceError{Name: s.name}
	}
	for _, e := range elems {
		if !s.elementTypes.matches(reflect.TypeOf(e)) {
			return nil, &UnexpectedTypeError{
				Name:     s.name,
				Expected: s.elementTypes,
				Actual:   reflect.TypeOf(e),
			}
		}
	}
	return value, nil
}

// CheckType validates that value satisfies the expected type set, returning
// value unchanged on success. On failure it returns an *UnexpectedTypeError
// identifying the expected and observed types; Named supplies the argument
// name for the message.
func CheckType(value any, expected TypeSet, opts ...Option) (any, error) {
	s := applyOptions(opts)
	if expected.matches(reflect.TypeOf(value)) {
		return value, nil
	}
	return nil, &UnexpectedTypeError{
		Name:     s.name,
		Expected: expected,
		Actual:   reflect.TypeOf(value),
	}
}

// sequenceElements extracts the elements of value if it has sequence shape.
// The second return is false for non-sequences, including nil, strings and
// maps.
func sequenceElements(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems[i] = rv.Index(i).Interface()
		}
		return elems, true
	default:
		return nil, false
	}
}
