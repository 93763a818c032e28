package validate

import (
	"reflect"
	"sort"
)

// NamedObject is the canonical (name, object) pair produced by
// CheckSequenceNamedObjects.
type NamedObject struct {
	Name   string
	Object any
}

// pairShape describes the accepted paired input in error messages.
const pairShape = "a sequence of (name, object) pairs"

// namedForm is the tagged variant the two calling conventions normalize
// into before validation: pairedForm for inputs that carry their own names,
// parallelForm for a bare object sequence with a separate name sequence.
type namedForm interface {
	pairs() ([]NamedObject, error)
}

// pairedForm holds input already shaped as (name, object) pairs.
type pairedForm struct {
	name  string
	items []NamedObject
}

func (f pairedForm) pairs() ([]NamedObject, error) {
	return f.items, nil
}

// parallelForm holds a bare object sequence with an externally supplied name
// sequence of (required) equal length.
type parallelForm struct {
	name    string
	names   []string
	objects []any
}

func (f parallelForm) pairs() ([]NamedObject, error) {
	if len(f.names) != len(f.objects) {
		return nil, &LengthMismatchError{
			Name:     f.name,
			ValueLen: len(f.objects),
			NamesLen: len(f.names),
		}
	}
	items := make([]NamedObject, len(f.objects))
	for i, obj := range f.objects {
		items[i] = NamedObject{Name: f.names[i], Object: obj}
	}
	return items, nil
}

// IsSequenceNamedObjects reports whether value is a sequence of (name,
// object) pairs with unique string names, or, when Names is supplied, a bare
// object sequence matching the name sequence. A map[string]any is accepted
// as the paired form. ObjectTypes constrains the object values when given.
//
// IsSequenceNamedObjects is total: any shape violation yields false.
func IsSequenceNamedObjects(value any, opts ...Option) bool {
	_, err := CheckSequenceNamedObjects(value, opts...)
	return err == nil
}

// CheckSequenceNamedObjects normalizes either calling convention into a
// canonical ordered slice of NamedObject pairs.
//
// It fails with a *NotASequenceError when the base shape check fails, a
// *LengthMismatchError when Names is supplied with a different length than
// value, a *DuplicateNameError listing the offending names when names are
// not unique, and an *UnexpectedTypeError when an object violates
// ObjectTypes. An empty input fails with an *EmptySequenceError only under
// AllowEmpty(false).
func CheckSequenceNamedObjects(value any, opts ...Option) ([]NamedObject, error) {
	s := applyOptions(opts)

	form, err := normalize(value, s)
	if err != nil {
		return nil, err
	}
	items, err := form.pairs()
	if err != nil {
		return nil, err
	}

	if !s.allowEmpty && len(items) == 0 {
		return nil, &EmptySequenceError{Name: s.name}
	}

	for _, item := range items {
		if !s.objectTypes.matches(reflect.TypeOf(item.Object)) {
			return nil, &UnexpectedTypeError{
				Name:     item.Name,
				Expected: s.objectTypes,
				Actual:   reflect.TypeOf(item.Object),
			}
		}
	}

	if dups := duplicateNames(items); len(dups) > 0 {
		return nil, &DuplicateNameError{Name: s.name, Names: dups}
	}

	return items, nil
}

// normalize selects and builds the tagged variant for the input.
func normalize(value any, s *settings) (namedForm, error) {
	if s.namesGiven {
		objects, ok := sequenceElements(value)
		if !ok {
			return nil, &NotASequenceError{Name: s.name, Actual: reflect.TypeOf(value)}
		}
		return parallelForm{name: s.name, names: s.names, objects: objects}, nil
	}

	switch v := value.(type) {
	case []NamedObject:
		items := append([]NamedObject(nil), v...)
		return pairedForm{name: s.name, items: items}, nil

	case map[string]any:
		// Mapping form. Go maps are unordered, so names are sorted to keep
		// the canonical pair order deterministic.
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		items := make([]NamedObject, len(names))
		for i, name := range names {
			items[i] = NamedObject{Name: name, Object: v[name]}
		}
		return pairedForm{name: s.name, items: items}, nil
	}

	elems, ok := sequenceElements(value)
	if !ok {
		return nil, &NotASequenceError{Name: s.name, Actual: reflect.TypeOf(value)}
	}

	items := make([]NamedObject, len(elems))
	for i, elem := range elems {
		pair, ok := asPair(elem)
		if !ok {
			return nil, &NotASequenceError{
				Name:     s.name,
				Expected: pairShape,
				Actual:   reflect.TypeOf(value),
			}
		}
		items[i] = pair
	}
	return pairedForm{name: s.name, items: items}, nil
}

// asPair converts a single sequence element into a NamedObject if it has
// pair shape: a NamedObject value or pointer, or a two-element tuple-like
// value whose first element is a string.
func asPair(elem any) (NamedObject, bool) {
	switch p := elem.(type) {
	case NamedObject:
		return p, true
	case *NamedObject:
		if p == nil {
			return NamedObject{}, false
		}
		return *p, true
	case [2]any:
		name, ok := p[0].(string)
		if !ok {
			return NamedObject{}, false
		}
		return NamedObject{Name: name, Object: p[1]}, true
	case []any:
		if len(p) != 2 {
			return NamedObject{}, false
		}
		name, ok := p[0].(string)
		if !ok {
			return NamedObject{}, false
		}
		return NamedObject{Name: name, Object: p[1]}, true
	default:
		return NamedObject{}, false
	}
}

// duplicateNames returns each name appearing more than once, listed once in
// first-occurrence order.
func duplicateNames(items []NamedObject) []string {
	seen := make(map[string]int, len(items))
	for _, item := range items {
		seen[item.Name]++
	}
	var dups []string
	reported := make(map[string]bool)
	for _, item := range items {
		if seen[item.Name] > 1 && !reported[item.Name] {
			dups = append(dups, item.Name)
			reported[item.Name] = true
		}
	}
	return dups
}
