package model

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds models by name for description loading.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

// NewRegistry creates a registry pre-populated with models.
// It panics if two models share a name.
func NewRegistry(models ...Model) *Registry {
	r := &Registry{models: make(map[string]Model)}
	for _, m := range models {
		r.MustRegister(m)
	}

	return r
}

// Register adds a model. Names must be unique.
func (r *Registry) Register(m Model) error {
	name := m.Name()
	if name == "" {
		return ErrUnnamedModel
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.models == nil {
		r.models = make(map[string]Model)
	}

	if _, exists := r.models[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModel, name)
	}

	r.models[name] = m

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(m Model) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// Get returns a model by name.
func (r *Registry) Get(name string) (Model, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[name]

	return m, ok
}

// Has returns true if a model with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all model names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
