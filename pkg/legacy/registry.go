package legacy

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores source descriptions by name. Lookups are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Source),
	}
}

// Register adds a source by its Name. Duplicate names return an error.
func (r *Registry) Register(src Source) error {
	if src.Name == "" {
		return fmt.Errorf("legacy: source name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[src.Name]; exists {
		return fmt.Errorf("legacy: source %q already registered", src.Name)
	}
	src.CSSFiles = append([]string(nil), src.CSSFiles...)
	r.sources[src.Name] = src
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(src Source) {
	if err := r.Register(src); err != nil {
		panic(err)
	}
}

// Get retrieves a source by name.
func (r *Registry) Get(name string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.sources[name]
	return src, ok
}

// List returns a sorted list of source names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a source is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sources[name]
	return ok
}
