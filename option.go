package predictably

import (
	"reflect"
)

// Option describes a single recognized global configuration option: its name,
// built-in default and the constraints a value must satisfy. Options are
// defined at build time and never mutated.
type Option struct {
	// Name is the option's key in Settings.
	Name string

	// Default is the built-in value, also used as the fallback by
	// ValidOrDefault. The default must itself satisfy the constraints below.
	Default any

	// Types lists acceptable dynamic types for the option's value.
	// An empty list accepts any type.
	Types []reflect.Type

	// Values enumerates the allowed values. An empty list accepts any value
	// of an acceptable type.
	Values []any
}

// IsValid reports whether v satisfies the option's type and allowed-value
// constraints. It never panics, including for nil v.
func (o Option) IsValid(v any) bool {
	if len(o.Types) > 0 {
		vt := reflect.TypeOf(v)
		ok := false
		for _, t := range o.Types {
			if typeMatches(vt, t) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(o.Values) > 0 {
		for _, allowed := range o.Values {
			if v == allowed {
				return true
			}
		}
		return false
	}

	return true
}

// Validate returns nil if v is a valid value for the option, otherwise an
// *InvalidOptionValueError describing the constraint that failed.
func (o Option) Validate(v any) error {
	if o.IsValid(v) {
		return nil
	}
	return &InvalidOptionValueError{
		Option:  o.Name,
		Value:   v,
		Types:   o.Types,
		Allowed: o.Values,
	}
}

// ValidOrDefault returns v if it is valid for the option, otherwise fallback.
// A nil fallback selects the option's built-in default.
func (o Option) ValidOrDefault(v, fallback any) any {
	if o.IsValid(v) {
		return v
	}
	if fallback == nil {
		return o.Default
	}
	return fallback
}

// typeMatches reports whether a value's dynamic type vt satisfies the expected
// type t. Interface types are matched by implementation, concrete types by
// assignability.
func typeMatches(vt, t reflect.Type) bool {
	if vt == nil || t == nil {
		return false
	}
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt.AssignableTo(t)
}
