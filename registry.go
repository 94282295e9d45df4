package toolcall

import (
	"slices"
	"sync"
)

// Constructor builds a Parser for a family.
type Constructor func(opts ...Option) Parser

// Registry maps family names to parser constructors.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]Constructor),
	}
}

// Register adds a constructor under family.
// Returns an error if the family is already registered.
func (r *Registry) Register(family string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.families[family]; exists {
		return &ErrFamilyAlreadyRegistered{Family: family}
	}
	r.families[family] = ctor
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(family string, ctor Constructor) {
	if err := r.Register(family, ctor); err != nil {
		panic(err)
	}
}

// New constructs the parser registered under family.
func (r *Registry) New(family string, opts ...Option) (Parser, error) {
	r.mu.RLock()
	ctor, ok := r.families[family]
	r.mu.RUnlock()

	if !ok {
		return nil, &ErrUnknownFamily{Family: family}
	}
	return ctor(opts...), nil
}

// Has reports whether family is registered.
func (r *Registry) Has(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.families[family]
	return ok
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered families.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.families)
}
