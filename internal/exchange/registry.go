package exchange

import (
	"log/slog"
	"sync"
)

// Option is one (id, label) pair offered to exchange selection UIs.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Registry maps exchange identifiers to their adapters. The built-in set is
// closed for modification; new exchanges are added through Register without
// changing any caller.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	order    []string
}

// NewRegistry returns a registry pre-populated with the built-in adapters.
func NewRegistry(logger *slog.Logger) *Registry {
	registry := &Registry{adapters: make(map[string]Adapter)}
	registry.Register(NewBackpackAdapter(logger))
	registry.Register(NewPacificaAdapter(logger))
	return registry
}

// Register adds an adapter, replacing any previous adapter with the same ID
// while keeping its original position in the option list.
func (r *Registry) Register(adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[adapter.ID()]; !exists {
		r.order = append(r.order, adapter.ID())
	}
	r.adapters[adapter.ID()] = adapter
}

// Get returns the adapter for an exchange identifier.
func (r *Registry) Get(id string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[id]
	return adapter, ok
}

// Options enumerates the registered exchanges in registration order.
func (r *Registry) Options() []Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	options := make([]Option, 0, len(r.order))
	for _, id := range r.order {
		options = append(options, Option{ID: id, Label: r.adapters[id].Label()})
	}
	return options
}
