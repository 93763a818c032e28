// Package validate provides standard validation of inputs to predictably
// functions and methods: sequence shape checks, type checks and checks of
// sequences of named objects.
//
// The package exposes two families of functions:
//
//   - is_* style predicates (IsSequence, IsSequenceNamedObjects) are total:
//     they always return a boolean and never panic, converting any shape
//     mismatch into false. They are safe in branching and filtering without
//     error handling.
//
//   - Check* style guards (CheckSequence, CheckSequenceNamedObjects,
//     CheckType) return their input (normalized where applicable) on success
//     and a descriptive typed error on failure.
//
// The guards let call sites validate and use a value in one expression:
//
//	steps, err := validate.CheckSequenceNamedObjects(input, validate.Named("steps"))
//	if err != nil {
//		return err
//	}
//
// Expected types are expressed as a TypeSet; the generic TypeOf helper covers
// both concrete types and interface capabilities:
//
//	validate.CheckType(v, validate.TypeSet{validate.TypeOf[string]()})
//	validate.IsSequence(xs, validate.ElementTypes(validate.TypeOf[io.Reader]()))
package validate
