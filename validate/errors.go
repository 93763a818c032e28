package validate

import (
	"fmt"
	"reflect"

	"github.com/predict-ably/predictably-go/internal/iterutil"
)

// subject renders the name a caller gave the validated value, falling back to
// a generic label.
func subject(name string) string {
	if name == "" {
		return "input"
	}
	return fmt.Sprintf("`%s`", name)
}

// NotASequenceError is returned when a value does not have the required
// sequence shape. Expected optionally narrows the description (e.g. to a
// sequence of (name, object) pairs).
type NotASequenceError struct {
	Name     string
	Expected string
	Actual   reflect.Type
}

func (e *NotASequenceError) Error() string {
	expected := e.Expected
	if expected == "" {
		expected = "a sequence (slice or array)"
	}
	return fmt.Sprintf("%s must be %s, but found %s",
		subject(e.Name), expected, iterutil.TypeName(e.Actual))
}

// EmptySequenceError is returned by the Check* guards when a sequence is
// empty and AllowEmpty(false) was requested.
type EmptySequenceError struct {
	Name string
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf("%s must be a non-empty sequence, but found an empty one", subject(e.Name))
}

// DuplicateNameError is returned when the names in a sequence of named
// objects are not unique. Names holds each offending name once.
type DuplicateNameError struct {
	Name  string
	Names []string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("names in %s must be unique, but found duplicate names: %s",
		subject(e.Name), iterutil.FormatSeqToStr(iterutil.ToAnySlice(e.Names), "and"))
}

// LengthMismatchError is returned when a parallel name sequence does not have
// the same length as the object sequence it names.
type LengthMismatchError struct {
	Name     string
	ValueLen int
	NamesLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s has %d elements, but %d names were supplied",
		subject(e.Name), e.ValueLen, e.NamesLen)
}

// UnexpectedTypeError is returned when a value does not satisfy the expected
// type or capability set.
type UnexpectedTypeError struct {
	Name     string
	Expected TypeSet
	Actual   reflect.Type
}

func (e *UnexpectedTypeError) Error() string {
	expected := iterutil.FormatSeqToStr(iterutil.ToAnySlice(iterutil.TypeNames(e.Expected)), "or")
	return fmt.Sprintf("%s should be of type %s, but found %s",
		subject(e.Name), expected, iterutil.TypeName(e.Actual))
}
