package modulelist

import (
	"sync"

	"github.com/keywan-ghadami-oxid/OxidKernel/pkg/modules"
)

// ShopModuleList is the loaded artifact: module instances in resolved load
// order plus a runtime-settable exclusion set. Excluded names are hidden from
// enumeration but stay in storage, so disabling is reversible.
type ShopModuleList struct {
	mu        sync.RWMutex
	entries   []Entry
	instances map[string]modules.ShopModule
	excluded  map[string]bool
}

// Load reads the artifact at path and instantiates every entry through the
// registry. A missing factory for any entry fails the load.
func Load(path string, registry *modules.Registry) (*ShopModuleList, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	return New(doc.Modules, registry)
}

// New builds a list directly from entries, instantiating each through the
// registry.
func New(entries []Entry, registry *modules.Registry) (*ShopModuleList, error) {
	instances := make(map[string]modules.ShopModule, len(entries))
	for _, entry := range entries {
		if !registry.Has(entry.Implementation) {
			return nil, modules.NewMissingImplementationError(entry.Name, entry.Implementation)
		}

		instance, err := registry.New(entry.Implementation)
		if err != nil {
			return nil, err
		}
		instances[entry.Name] = instance
	}

	return &ShopModuleList{
		entries:   entries,
		instances: instances,
		excluded:  make(map[string]bool),
	}, nil
}

// Names returns the logical names in load order, exclusions skipped.
func (l *ShopModuleList) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.entries))
	for _, entry := range l.entries {
		if l.excluded[entry.Name] {
			continue
		}
		names = append(names, entry.Name)
	}
	return names
}

// Modules returns the module instances in load order, exclusions skipped.
func (l *ShopModuleList) Modules() []modules.ShopModule {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]modules.ShopModule, 0, len(l.entries))
	for _, entry := range l.entries {
		if l.excluded[entry.Name] {
			continue
		}
		result = append(result, l.instances[entry.Name])
	}
	return result
}

// Get returns a module by logical name regardless of exclusion state.
func (l *ShopModuleList) Get(name string) (modules.ShopModule, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	instance, ok := l.instances[name]
	return instance, ok
}

// ByCapability returns the modules carrying a capability tag, in load order,
// or in reverse load order when reverse is set. Exclusions are skipped.
func (l *ShopModuleList) ByCapability(capability modules.Capability, reverse bool) []modules.ShopModule {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]modules.ShopModule, 0, len(l.entries))
	for _, entry := range l.entries {
		if l.excluded[entry.Name] {
			continue
		}
		if !hasCapability(entry.Capabilities, capability) {
			continue
		}
		result = append(result, l.instances[entry.Name])
	}

	if reverse {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result
}

// SetExcluded replaces the exclusion set. Passing nil or an empty list
// restores full enumeration with the original order intact.
func (l *ShopModuleList) SetExcluded(names []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.excluded = make(map[string]bool, len(names))
	for _, name := range names {
		l.excluded[name] = true
	}
}

// Excluded returns the currently excluded names in load order.
func (l *ShopModuleList) Excluded() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.excluded))
	for _, entry := range l.entries {
		if l.excluded[entry.Name] {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Len returns the number of stored modules, excluded ones included.
func (l *ShopModuleList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

func hasCapability(capabilities []modules.Capability, capability modules.Capability) bool {
	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}
	return false
}
