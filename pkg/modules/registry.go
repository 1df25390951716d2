package modules

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a shop-module instance. Factories take no arguments; all
// wiring happens inside the implementation's package at startup.
type Factory func() ShopModule

type registration struct {
	factory      Factory
	capabilities []Capability
}

// Registry maps implementation IDs to factories and declared capabilities.
// Each implementation package registers itself at startup; the resolver and
// the generated module list only ever refer to implementations through their
// IDs.
type Registry struct {
	mu            sync.RWMutex
	registrations map[string]*registration
}

// NewRegistry creates an empty implementation registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: make(map[string]*registration),
	}
}

// defaultRegistry is the process-wide registry implementations register into.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide implementation registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds an implementation factory under an ID, with the capabilities
// the implementation declares. Capabilities are stored sorted so every
// enumeration of them is deterministic.
func (r *Registry) Register(id string, factory Factory, capabilities ...Capability) error {
	if id == "" {
		return fmt.Errorf("cannot register implementation with empty ID")
	}
	if factory == nil {
		return fmt.Errorf("cannot register nil factory for %s", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrations[id]; exists {
		return fmt.Errorf("implementation already registered: %s", id)
	}

	caps := make([]Capability, len(capabilities))
	copy(caps, capabilities)
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })

	r.registrations[id] = &registration{
		factory:      factory,
		capabilities: caps,
	}
	return nil
}

// Has checks if an implementation ID is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.registrations[id]
	return exists
}

// New instantiates the implementation registered under id.
func (r *Registry) New(id string) (ShopModule, error) {
	r.mu.RLock()
	reg, exists := r.registrations[id]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMissingImplementation, id)
	}

	return reg.factory(), nil
}

// Capabilities returns the capability tags declared for an implementation.
func (r *Registry) Capabilities(id string) []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, exists := r.registrations[id]
	if !exists {
		return nil
	}

	caps := make([]Capability, len(reg.capabilities))
	copy(caps, reg.capabilities)
	return caps
}

// HasCapability checks a capability tag by set membership.
func (r *Registry) HasCapability(id string, capability Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, exists := r.registrations[id]
	if !exists {
		return false
	}

	for _, c := range reg.capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// DependenciesOf implements DependencySource. Implementations without the
// dependency capability report no dependencies, which is not an error.
func (r *Registry) DependenciesOf(id string) []string {
	if !r.HasCapability(id, CapabilityDependencies) {
		return nil
	}

	instance, err := r.New(id)
	if err != nil {
		return nil
	}

	aware, ok := instance.(DependencyAware)
	if !ok {
		return nil
	}
	return aware.Dependencies()
}

// Count returns the number of registered implementations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.registrations)
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registrations = make(map[string]*registration)
}
