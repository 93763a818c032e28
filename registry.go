package predictably

import (
	"fmt"
	"reflect"
	"sort"
)

// Built-in global configuration options.
//
//   - dataframe_backend: the dataframe backend used internally. One of
//     "polars", "pandas", "fugue" or "input" ("input" keeps the type of the
//     data passed in). Default "polars".
//   - math_backend: the backend used for mathematical processing. One of
//     "predictably", "numba" or "numpy". Default "predictably".
//   - print_changed_only: if true, rendering an object only shows parameters
//     set to non-default values. Default true.
//   - display: how objects are rendered in rich frontends, "text" or
//     "diagram". Default "text".
const (
	OptionDataframeBackend = "dataframe_backend"
	OptionMathBackend      = "math_backend"
	OptionPrintChangedOnly = "print_changed_only"
	OptionDisplay          = "display"
)

var (
	stringType = reflect.TypeOf("")
	boolType   = reflect.TypeOf(false)
)

// Registry is an immutable set of recognized configuration options. A Store
// validates every mutation against its registry, so the registry is the
// single authority on which option names exist and which values they accept.
type Registry struct {
	options map[string]Option
}

// NewRegistry builds a registry from the given options. Options must have
// non-empty unique names and defaults that satisfy their own constraints.
func NewRegistry(options ...Option) (*Registry, error) {
	r := &Registry{options: make(map[string]Option, len(options))}
	for _, opt := range options {
		if opt.Name == "" {
			return nil, fmt.Errorf("configuration option name cannot be empty")
		}
		if _, exists := r.options[opt.Name]; exists {
			return nil, fmt.Errorf("configuration option %q registered twice", opt.Name)
		}
		if err := opt.Validate(opt.Default); err != nil {
			return nil, fmt.Errorf("default for configuration option %q is invalid: %w", opt.Name, err)
		}
		r.options[opt.Name] = opt
	}
	return r, nil
}

// Lookup returns the option registered under name.
func (r *Registry) Lookup(name string) (Option, bool) {
	opt, ok := r.options[name]
	return opt, ok
}

// Names returns the sorted names of all registered options.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.options))
	for name := range r.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns a fresh Settings populated with every option's default.
func (r *Registry) Defaults() Settings {
	defaults := make(Settings, len(r.options))
	for name, opt := range r.options {
		defaults[name] = opt.Default
	}
	return defaults
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(
		Option{
			Name:    OptionDataframeBackend,
			Default: "polars",
			Types:   []reflect.Type{stringType},
			Values:  []any{"polars", "pandas", "fugue", "input"},
		},
		Option{
			Name:    OptionMathBackend,
			Default: "predictably",
			Types:   []reflect.Type{stringType},
			Values:  []any{"predictably", "numba", "numpy"},
		},
		Option{
			Name:    OptionPrintChangedOnly,
			Default: true,
			Types:   []reflect.Type{boolType},
			Values:  []any{true, false},
		},
		Option{
			Name:    OptionDisplay,
			Default: "text",
			Types:   []reflect.Type{stringType},
			Values:  []any{"text", "diagram"},
		},
	)
	if err != nil {
		panic(err) // built-in registry is static, this cannot happen
	}
	return r
}()

// DefaultRegistry returns the built-in option registry shared by the
// package-level configuration functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
