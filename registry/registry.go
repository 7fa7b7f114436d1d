// Package registry accumulates the test-bearing classes of a run and the
// run-level configuration that applies to them.
package registry

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/suitekit/suitekit/types"
)

// Registry manages the set of registered test classes. Classes are executed
// in registration order. Registration performs no validation; a class that
// cannot be constructed or discovered fails lazily at run time.
type Registry struct {
	config  Config
	classes []types.Class
	mu      sync.RWMutex
}

// Config contains registry configuration
type Config struct {
	Log zerolog.Logger

	// DefaultTimeout applies to tests without an explicit TimeoutSpec.
	// Zero means unbounded.
	DefaultTimeout time.Duration
}

// NewRegistry creates a new registry instance
func NewRegistry(cfg Config) *Registry {
	return &Registry{config: cfg}
}

// Register adds a single test class to the run.
func (r *Registry) Register(class types.Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = append(r.classes, class)
	r.config.Log.Debug().Str("class", class.Name).Msg("registered test class")
}

// RegisterAll adds multiple test classes to the run, preserving order.
func (r *Registry) RegisterAll(classes ...types.Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = append(r.classes, classes...)
	r.config.Log.Debug().Int("count", len(classes)).Msg("registered test classes")
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []types.Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Class, len(r.classes))
	copy(out, r.classes)
	return out
}

// DefaultTimeout returns the configured default test timeout.
func (r *Registry) DefaultTimeout() time.Duration {
	return r.config.DefaultTimeout
}
