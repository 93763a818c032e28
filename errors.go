package predictably

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/predict-ably/predictably-go/internal/iterutil"
)

// UnrecognizedOptionError is returned when a configuration option name is not
// part of the store's registry. The full set of recognized names is carried so
// callers can surface it.
type UnrecognizedOptionError struct {
	Option string
	Known  []string
}

func (e *UnrecognizedOptionError) Error() string {
	known := append([]string(nil), e.Known...)
	sort.Strings(known)
	return fmt.Sprintf("unrecognized configuration option %q, recognized options are %s",
		e.Option, iterutil.FormatSeqToStr(iterutil.ToAnySlice(known), "and"))
}

// InvalidOptionValueError is returned when a value fails an option's type or
// allowed-value constraints.
type InvalidOptionValueError struct {
	Option  string
	Value   any
	Types   []reflect.Type
	Allowed []any
}

func (e *InvalidOptionValueError) Error() string {
	msg := fmt.Sprintf("invalid value %v (type %T) for configuration option %q", e.Value, e.Value, e.Option)
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(", allowed values are %s", iterutil.FormatSeqToStr(e.Allowed, "and"))
	} else if len(e.Types) > 0 {
		msg += fmt.Sprintf(", expected type %s",
			iterutil.FormatSeqToStr(iterutil.ToAnySlice(iterutil.TypeNames(e.Types)), "or"))
	}
	return msg
}
