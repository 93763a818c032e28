package validate

import "reflect"

// TypeSet is a set of acceptable types or capabilities. Interface types match
// any value implementing them, concrete types match by assignability.
type TypeSet []reflect.Type

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf it also works
// for interface types, so both concrete types and capabilities can populate
// a TypeSet:
//
//	TypeOf[string]()
//	TypeOf[io.Reader]()
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// matches reports whether a value's dynamic type vt satisfies at least one
// member of the set. An empty set matches everything.
func (ts TypeSet) matches(vt reflect.Type) bool {
	if len(ts) == 0 {
		return true
	}
	if vt == nil {
		return false
	}
	for _, t := range ts {
		if t == nil {
			continue
		}
		if t.Kind() == reflect.Interface {
			if vt.Implements(t) {
				return true
			}
		} else if vt.AssignableTo(t) {
			return true
		}
	}
	return false
}

// settings collects the optional knobs shared by the validation functions.
type settings struct {
	name         string
	allowEmpty   bool
	elementTypes TypeSet
	objectTypes  TypeSet
	names        []string
	namesGiven   bool
}

// Option adjusts the behavior of a validation function.
type Option func(*settings)

// Named attaches a caller-side name to the validated value, used in error
// messages to identify the offending argument.
func Named(name string) Option {
	return func(s *settings) { s.name = name }
}

// AllowEmpty controls whether an empty sequence is acceptable. Empty
// sequences are allowed unless AllowEmpty(false) is given.
func AllowEmpty(allowed bool) Option {
	return func(s *settings) { s.allowEmpty = allowed }
}

// ElementTypes requires every element of a validated sequence to satisfy the
// given type set.
func ElementTypes(types ...reflect.Type) Option {
	return func(s *settings) { s.elementTypes = types }
}

// ObjectTypes requires every object in a sequence of named objects to satisfy
// the given type set.
func ObjectTypes(types ...reflect.Type) Option {
	return func(s *settings) { s.objectTypes = types }
}

// Names supplies a parallel name sequence for a bare sequence of objects,
// switching the named-object functions to their parallel calling convention.
// It must have the same length as the validated sequence.
func Names(names ...string) Option {
	return func(s *settings) {
		s.names = names
		s.namesGiven = true
	}
}

func applyOptions(opts []Option) *settings {
	s := &settings{allowEmpty: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
