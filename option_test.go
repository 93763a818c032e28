package predictably

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayOption() Option {
	return Option{
		Name:    "some_option",
		Default: "text",
		Types:   []reflect.Type{stringType},
		Values:  []any{"text", "diagram"},
	}
}

func TestOptionIsValid(t *testing.T) {
	opt := displayOption()

	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"AllowedValue", "text", true},
		{"OtherAllowedValue", "diagram", true},
		{"WrongString", "wrong_string", false},
		{"WrongType", 7, false},
		{"Nil", nil, false},
		{"EmptyValue", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, opt.IsValid(tt.value))
		})
	}
}

func TestOptionIsValidUnconstrained(t *testing.T) {
	// No type or value constraints: everything goes.
	opt := Option{Name: "free", Default: nil}
	assert.True(t, opt.IsValid("anything"))
	assert.True(t, opt.IsValid(42))

	// Type constraint only: any value of the type.
	typed := Option{Name: "typed", Default: "x", Types: []reflect.Type{stringType}}
	assert.True(t, typed.IsValid("another"))
	assert.False(t, typed.IsValid(42))
}

func TestOptionValidate(t *testing.T) {
	opt := displayOption()

	require.NoError(t, opt.Validate("diagram"))

	err := opt.Validate(7)
	require.Error(t, err)
	var invalid *InvalidOptionValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "some_option", invalid.Option)
	assert.Equal(t, 7, invalid.Value)
	assert.Contains(t, err.Error(), `"text"`)
	assert.Contains(t, err.Error(), `"diagram"`)
}

func TestOptionValidOrDefault(t *testing.T) {
	opt := displayOption()

	// Valid value passes through.
	assert.Equal(t, "diagram", opt.ValidOrDefault("diagram", "text"))

	// Invalid value falls back to the supplied fallback.
	assert.Equal(t, "text", opt.ValidOrDefault(7, "text"))

	// Nil fallback selects the option default.
	assert.Equal(t, "text", opt.ValidOrDefault(7, nil))
}

func TestNewRegistry(t *testing.T) {
	t.Run("RejectsEmptyName", func(t *testing.T) {
		_, err := NewRegistry(Option{Name: "", Default: 1})
		assert.Error(t, err)
	})

	t.Run("RejectsDuplicateName", func(t *testing.T) {
		_, err := NewRegistry(
			Option{Name: "dup", Default: 1},
			Option{Name: "dup", Default: 2},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registered twice")
	})

	t.Run("RejectsInvalidDefault", func(t *testing.T) {
		_, err := NewRegistry(Option{
			Name:    "broken",
			Default: "nope",
			Values:  []any{"yes"},
		})
		assert.Error(t, err)
	})

	t.Run("DefaultsAndNames", func(t *testing.T) {
		r, err := NewRegistry(
			Option{Name: "b", Default: 2},
			Option{Name: "a", Default: 1},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, r.Names())
		assert.Equal(t, Settings{"a": 1, "b": 2}, r.Defaults())
	})
}

func TestDefaultRegistryContents(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{
		OptionDataframeBackend,
		OptionDisplay,
		OptionMathBackend,
		OptionPrintChangedOnly,
	}, r.Names())

	backend, ok := r.Lookup(OptionDataframeBackend)
	require.True(t, ok)
	assert.Equal(t, []any{"polars", "pandas", "fugue", "input"}, backend.Values)
}
