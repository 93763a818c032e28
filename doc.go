// Package predictably provides the global configuration layer for the
// predictably object interface: a process-wide, thread-safe store of
// recognized options with scoped override support.
//
// Features:
//   - Fixed, documented registry of recognized options with per-option
//     type and value constraints
//   - Thread-safe operations using sync.RWMutex
//   - Atomic all-or-nothing updates via SetConfig
//   - Scoped overrides via ConfigContext with guaranteed restoration
//   - Optional option overrides from TOML/JSON/YAML files and from
//     environment variables
//
// Quick Start:
//
//	cfg := predictably.GetConfig()
//	fmt.Println(cfg["display"]) // "text"
//
//	if err := predictably.SetConfig(predictably.Settings{"display": "diagram"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	err := predictably.ConfigContext(predictably.Settings{"math_backend": "numpy"}, func() error {
//	    // code here sees math_backend == "numpy"
//	    return nil
//	})
//	// prior settings restored here regardless of the error
//
// Recognized options, their defaults and allowed values are defined by
// DefaultRegistry; see the Option constants for the registry contents.
// Libraries embedding their own store can build one with NewRegistry and
// NewStore.
//
// Thread Safety:
// All operations are safe for concurrent use. Mutations serialize behind a
// write lock; reads return copies, so callers never share the underlying map.
package predictably
