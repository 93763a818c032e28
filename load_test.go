package predictably

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config.toml", `
display = "diagram"
print_changed_only = false
`)
		require.NoError(t, store.LoadFile(path))
		assert.Equal(t, "diagram", store.Config()[OptionDisplay])
		assert.Equal(t, false, store.Config()[OptionPrintChangedOnly])
	})

	t.Run("YAML", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config.yaml", "math_backend: numpy\n")
		require.NoError(t, store.LoadFile(path))
		assert.Equal(t, "numpy", store.Config()[OptionMathBackend])
	})

	t.Run("JSON", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config.json", `{"dataframe_backend": "pandas"}`)
		require.NoError(t, store.LoadFile(path))
		assert.Equal(t, "pandas", store.Config()[OptionDataframeBackend])
	})

	t.Run("ContentDetectionWithoutExtension", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config", `{"display": "diagram"}`)
		require.NoError(t, store.LoadFile(path))
		assert.Equal(t, "diagram", store.Config()[OptionDisplay])
	})

	t.Run("MissingFile", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		err := store.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("UnknownOptionRejectsWholeFile", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config.toml", `
display = "diagram"
mystery = 1
`)
		err := store.LoadFile(path)
		require.Error(t, err)
		var unrecognized *UnrecognizedOptionError
		require.ErrorAs(t, err, &unrecognized)

		// Atomic: the valid key must not have been applied either.
		assert.Equal(t, "text", store.Config()[OptionDisplay])
	})

	t.Run("InvalidValueRejectsWholeFile", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config.toml", `
display = "diagram"
math_backend = "abacus"
`)
		err := store.LoadFile(path)
		require.Error(t, err)
		assert.Equal(t, "text", store.Config()[OptionDisplay])
	})

	t.Run("MalformedFile", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		path := writeTempConfig(t, "config.toml", "display = ")
		assert.Error(t, store.LoadFile(path))
	})
}

func TestSaveFileRoundtrip(t *testing.T) {
	store := NewStore(DefaultRegistry())
	require.NoError(t, store.Set(Settings{
		OptionDisplay:          "diagram",
		OptionPrintChangedOnly: false,
	}))

	path := filepath.Join(t.TempDir(), "saved.toml")
	require.NoError(t, store.SaveFile(path))

	restored := NewStore(DefaultRegistry())
	require.NoError(t, restored.LoadFile(path))
	assert.Equal(t, store.Config(), restored.Config())
}

func TestLoadEnv(t *testing.T) {
	t.Run("AppliesDiscoveredVariables", func(t *testing.T) {
		t.Setenv("PREDICTABLY_DISPLAY", "diagram")
		t.Setenv("PREDICTABLY_PRINT_CHANGED_ONLY", "false")

		store := NewStore(DefaultRegistry())
		require.NoError(t, store.LoadEnv(""))
		assert.Equal(t, "diagram", store.Config()[OptionDisplay])
		assert.Equal(t, false, store.Config()[OptionPrintChangedOnly])
	})

	t.Run("CustomPrefix", func(t *testing.T) {
		t.Setenv("MYAPP_MATH_BACKEND", "numba")

		store := NewStore(DefaultRegistry())
		require.NoError(t, store.LoadEnv("MYAPP_"))
		assert.Equal(t, "numba", store.Config()[OptionMathBackend])
	})

	t.Run("QuotedValue", func(t *testing.T) {
		t.Setenv("PREDICTABLY_DATAFRAME_BACKEND", `"fugue"`)

		store := NewStore(DefaultRegistry())
		require.NoError(t, store.LoadEnv(""))
		assert.Equal(t, "fugue", store.Config()[OptionDataframeBackend])
	})

	t.Run("NumericBool", func(t *testing.T) {
		t.Setenv("PREDICTABLY_PRINT_CHANGED_ONLY", "0")

		store := NewStore(DefaultRegistry())
		require.NoError(t, store.LoadEnv(""))
		assert.Equal(t, false, store.Config()[OptionPrintChangedOnly])
	})

	t.Run("InvalidValueRejectsBatch", func(t *testing.T) {
		t.Setenv("PREDICTABLY_DISPLAY", "diagram")
		t.Setenv("PREDICTABLY_MATH_BACKEND", "abacus")

		store := NewStore(DefaultRegistry())
		require.Error(t, store.LoadEnv(""))
		assert.Equal(t, "text", store.Config()[OptionDisplay])
	})

	t.Run("NoVariablesIsNoop", func(t *testing.T) {
		store := NewStore(DefaultRegistry())
		require.NoError(t, store.LoadEnv("UNUSED_PREFIX_"))
		assert.Equal(t, store.Defaults(), store.Config())
	})
}
