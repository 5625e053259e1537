package scene

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh instance of a scene.
type Factory func(env Env) Scene

// Info describes a registered scene.
type Info struct {
	Name    string
	Summary string
}

// Registry maps scene names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	summaries map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		summaries: make(map[string]string),
	}
}

// Register adds a scene factory.
// Panics if a scene with the same name is already registered.
func (r *Registry) Register(name, summary string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("scene: %q already registered", name))
	}
	r.factories[name] = f
	r.summaries[name] = summary
}

// List returns all registered scenes, sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.factories))
	for name := range r.factories {
		result = append(result, Info{Name: name, Summary: r.summaries[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates a scene by name.
func (r *Registry) Create(name string, env Env) (Scene, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scene: %q: %w", name, ErrNotFound)
	}
	return f(env), nil
}

// Exists checks if a scene with the given name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}

var defaultRegistry = NewRegistry()

// Register adds a scene factory to the default registry.
// Scenes call it from their package init().
func Register(name, summary string, f Factory) {
	defaultRegistry.Register(name, summary, f)
}

// List returns the scenes of the default registry.
func List() []Info {
	return defaultRegistry.List()
}

// Exists checks the default registry.
func Exists(name string) bool {
	return defaultRegistry.Exists(name)
}

// Default returns the registry scenes register into from init().
func Default() *Registry {
	return defaultRegistry
}
