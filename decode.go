package predictably

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Unmarshal decodes a snapshot of the current effective settings into the
// target struct. Fields map to option names through the "config" struct tag,
// falling back to field names. Weak typing is enabled, so a bool option
// decodes into a string field and vice versa where a sensible conversion
// exists.
func (s *Store) Unmarshal(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be non-nil pointer, got %T", target)
	}

	settings := s.Config()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(map[string]any(settings)); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}

	return nil
}
