// Package iterutil provides small helpers for rendering sequences and types
// in error messages.
package iterutil

import (
	"fmt"
	"reflect"
	"strings"
)

// FormatSeqToStr renders the elements of seq as a comma separated list, joining
// the final element with lastSep (e.g. "and" or "or").
//
//	FormatSeqToStr([]any{"a", "b", "c"}, "and") == `"a", "b" and "c"`
//
// Strings are quoted, everything else is rendered with %v. An empty sequence
// yields an empty string and a single element is rendered without separators.
func FormatSeqToStr(seq []any, lastSep string) string {
	if len(seq) == 0 {
		return ""
	}

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = formatElement(v)
	}

	if len(parts) == 1 {
		return parts[0]
	}
	if lastSep == "" {
		return strings.Join(parts, ", ")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " " + lastSep + " " + parts[len(parts)-1]
}

func formatElement(v any) string {
	switch e := v.(type) {
	case string:
		return fmt.Sprintf("%q", e)
	case reflect.Type:
		return TypeName(e)
	default:
		return fmt.Sprintf("%v", e)
	}
}

// TypeName returns a printable name for t without package path clutter for
// types in main-like packages. A nil type renders as "nil".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

// TypeNames maps TypeName over ts.
func TypeNames(ts []reflect.Type) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = TypeName(t)
	}
	return names
}

// ToAnySlice converts a string slice to []any for use with FormatSeqToStr.
func ToAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
