package pix

import (
	"fmt"
	"sort"
	"sync"
)

// TargetFactory creates a target for a surface of the given dimensions
// and bit depth.
type TargetFactory func(width, height, bpp int) (Target, error)

// registry holds registered target factories.
var (
	registryMu sync.RWMutex
	targets    = make(map[string]TargetFactory)
)

// DefaultTarget is the registry name New resolves when no WithTarget
// option is given.
const DefaultTarget = "buffer"

func init() {
	RegisterTarget(DefaultTarget, func(w, h, bpp int) (Target, error) {
		return NewBuffer(w, h, bpp)
	})
}

// RegisterTarget registers a target factory with the given name.
// This is typically called from init() functions in driver packages.
// If a target with the same name is already registered, it is replaced.
func RegisterTarget(name string, factory TargetFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	targets[name] = factory
}

// UnregisterTarget removes a target from the registry.
// This is useful for testing.
func UnregisterTarget(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(targets, name)
}

// TargetNames returns a sorted list of registered target names.
func TargetNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TargetRegistered checks if a target with the given name is registered.
func TargetRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := targets[name]
	return ok
}

// newTarget instantiates a registered target by name.
func newTarget(name string, width, height, bpp int) (Target, error) {
	registryMu.RLock()
	factory, ok := targets[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return factory(width, height, bpp)
}
