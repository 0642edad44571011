package config

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Registry holds the parsed config spec of every module.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]*ParsedSpec
}

func NewRegistry() *Registry {
	return &Registry{specs: map[string]*ParsedSpec{}}
}

// Register parses spec and adds it to the registry.
// Module names must be unique.
func (r *Registry) Register(spec Spec) error {
	if spec.Module == "" {
		return fmt.Errorf("spec.Module is required")
	}
	parsed, err := parseSpec(spec)
	if err != nil {
		return fmt.Errorf("parsing config spec for %s: %w", spec.Module, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.specs[spec.Module]; exists {
		return fmt.Errorf("module %q already registered", spec.Module)
	}
	r.specs[spec.Module] = parsed
	return nil
}

// MustRegister is Register for specs declared at startup.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(module string) (*ParsedSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[module]
	return spec, ok
}

// List returns all registered specs sorted by Order then Title.
func (r *Registry) List() []*ParsedSpec {
	r.mu.RLock()
	specs := make([]*ParsedSpec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}
	r.mu.RUnlock()

	slices.SortFunc(specs, func(a, b *ParsedSpec) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Title, b.Title))
	})
	return specs
}
