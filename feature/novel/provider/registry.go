package provider

import "fmt"

// Registry maps provider identifiers to their adapters. It also carries the
// per-provider stability classification through the adapters themselves.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a registry from the given adapters.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Get returns the adapter for a provider id.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	return p, nil
}

// Names lists the registered provider ids.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
