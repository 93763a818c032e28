package predictably

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by LoadFile when the overrides file does not
// exist. Callers that treat the file as optional should test for it with
// errors.Is.
var ErrConfigNotFound = errors.New("configuration file not found")

// EnvPrefix is the prefix used by LoadEnv when none is supplied.
const EnvPrefix = "PREDICTABLY_"

// LoadFile reads option overrides from a TOML, JSON or YAML file and applies
// them to the store. The format is detected from the file extension, falling
// back to content detection. The file must contain a flat table of option
// name to value pairs.
//
// Overrides are applied through Set, so an unknown option name or invalid
// value rejects the entire file and leaves the store untouched.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return fmt.Errorf("unable to determine config format for file '%s'", path)
		}
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	}

	overrides := make(Settings, len(raw))
	for name, value := range raw {
		overrides[name] = value
	}
	return s.Set(overrides)
}

// SaveFile writes the current effective settings to a TOML file atomically,
// using a temporary file in the target directory followed by a rename.
func (s *Store) SaveFile(path string) error {
	settings := s.Config()

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(settings); err != nil {
		return fmt.Errorf("failed to marshal settings to TOML: %w", err)
	}

	return atomicWriteFile(path, buf.Bytes())
}

// LoadEnv discovers environment variables for every registered option and
// applies the values found. Option names map to variables by uppercasing and
// prefixing, e.g. "dataframe_backend" with prefix "PREDICTABLY_" reads
// PREDICTABLY_DATAFRAME_BACKEND. An empty prefix selects EnvPrefix.
//
// All discovered values are applied in a single Set, so one invalid variable
// rejects the whole batch.
func (s *Store) LoadEnv(prefix string) error {
	if prefix == "" {
		prefix = EnvPrefix
	}

	overrides := make(Settings)
	for _, name := range s.registry.Names() {
		envVar := prefix + strings.ToUpper(name)
		if value, exists := os.LookupEnv(envVar); exists {
			overrides[name] = parseValue(value)
		}
	}

	if len(overrides) == 0 {
		return nil
	}
	return s.Set(overrides)
}

// parseValue turns an environment variable string into one of the value
// types options actually carry, string or bool. A quoted value is unwrapped
// and always stays a string, anything strconv accepts as a boolean ("true",
// "1", "0", ...) becomes one, the rest passes through unchanged.
func parseValue(s string) any {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// atomicWriteFile writes data to a temporary file in the target directory,
// then renames it over path so readers never observe a partial file.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, writeErr := tmp.Write(data)
	if writeErr == nil {
		writeErr = tmp.Sync()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write temporary file '%s': %w", tmp.Name(), writeErr)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace '%s': %w", path, err)
	}
	return nil
}

// detectFileFormat maps a file extension to a format name, empty when the
// extension is not recognized.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// detectFormatFromContent identifies the format by parsing. JSON goes before
// YAML because YAML accepts all valid JSON, and TOML goes last.
func detectFormatFromContent(data []byte) string {
	var v any
	if json.Unmarshal(data, &v) == nil {
		return "json"
	}
	if yaml.Unmarshal(data, &v) == nil {
		return "yaml"
	}
	if toml.Unmarshal(data, &v) == nil {
		return "toml"
	}
	return ""
}
