package llm

import "sort"

// Registry holds the generators constructed at startup. Lookups by unknown
// name fall back to the null generator, so a settings document naming a
// provider that failed to initialize degrades to the not-configured error
// instead of a nil dereference.
type Registry struct {
	generators map[string]TextGenerator
	fallback   TextGenerator
}

func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]TextGenerator),
		fallback:   NewNullGenerator(),
	}
}

func (r *Registry) Register(g TextGenerator) {
	r.generators[g.Name()] = g
}

// Get returns the generator registered under name, or the null fallback.
func (r *Registry) Get(name string) TextGenerator {
	if g, ok := r.generators[name]; ok {
		return g
	}
	return r.fallback
}

// Providers lists registered provider names in stable order.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
