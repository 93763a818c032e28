package predictably

import (
	"sync"
)

// Settings maps option names to their current values.
type Settings map[string]any

// Clone returns a shallow copy of s. Option values are scalars, so a shallow
// copy is a full snapshot.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Store holds process-wide effective configuration settings and validates
// every mutation against its option registry. All operations are safe for
// concurrent use; mutations are atomic, a Set either commits every supplied
// option or none of them.
type Store struct {
	registry *Registry
	mutex    sync.RWMutex // protects settings
	settings Settings
}

// NewStore creates a store whose effective settings start at the registry
// defaults.
func NewStore(registry *Registry) *Store {
	return &Store{
		registry: registry,
		settings: registry.Defaults(),
	}
}

// Registry returns the store's option registry.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Defaults returns the built-in default settings. The result is a copy and
// never reflects later mutations.
func (s *Store) Defaults() Settings {
	return s.registry.Defaults()
}

// Config returns a snapshot of the current effective settings. The result is
// a copy; mutating it does not affect the store.
func (s *Store) Config() Settings {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.settings.Clone()
}

// Get returns the current value of a single option.
func (s *Store) Get(name string) (any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	v, ok := s.settings[name]
	return v, ok
}

// Set validates and applies the supplied options. Unknown option names return
// an *UnrecognizedOptionError and invalid values an *InvalidOptionValueError.
// Validation runs over all supplied options before anything is written, so a
// failed Set leaves the effective settings untouched and concurrent readers
// never observe a partial update.
func (s *Store) Set(options Settings) error {
	for name, value := range options {
		opt, ok := s.registry.Lookup(name)
		if !ok {
			return &UnrecognizedOptionError{Option: name, Known: s.registry.Names()}
		}
		if err := opt.Validate(value); err != nil {
			return err
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for name, value := range options {
		s.settings[name] = value
	}
	return nil
}

// Reset restores the effective settings to the registry defaults.
func (s *Store) Reset() {
	defaults := s.registry.Defaults()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.settings = defaults
}

// Context runs fn with the supplied options applied, then restores the full
// settings snapshot taken at entry. Restoration happens on every exit path,
// including an error returned by fn or a panic inside it, so nested Context
// calls compose: each exit restores exactly the snapshot its entry captured.
//
// Validation of options follows Set semantics; if they do not validate, fn is
// never run and the settings are untouched.
//
// The restore replaces the full settings snapshot, so any mutation made
// while the context is active, whether by fn itself or by another
// goroutine calling Set, is overwritten when the context exits.
func (s *Store) Context(options Settings, fn func() error) error {
	snapshot := s.Config()
	if err := s.Set(options); err != nil {
		return err
	}
	defer s.restore(snapshot)
	return fn()
}

// restore replaces the effective settings wholesale with a previously taken
// snapshot, bypassing validation. Snapshots only ever contain values that
// already passed validation.
func (s *Store) restore(snapshot Settings) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.settings = snapshot.Clone()
}

// defaultStore backs the package-level configuration functions.
var defaultStore = NewStore(DefaultRegistry())

// Default returns the process-wide store used by the package-level
// configuration functions.
func Default() *Store {
	return defaultStore
}

// GetDefaultConfig returns the built-in default configuration.
func GetDefaultConfig() Settings {
	return defaultStore.Defaults()
}

// GetConfig returns a snapshot of the current global configuration.
func GetConfig() Settings {
	return defaultStore.Config()
}

// SetConfig updates the global configuration. See Store.Set for the
// validation and atomicity contract.
func SetConfig(options Settings) error {
	return defaultStore.Set(options)
}

// ResetConfig restores the global configuration to its defaults.
func ResetConfig() {
	defaultStore.Reset()
}

// ConfigContext runs fn with the supplied options applied to the global
// configuration and guarantees the prior settings are restored afterwards.
// See Store.Context.
func ConfigContext(options Settings, fn func() error) error {
	return defaultStore.Context(options, fn)
}
