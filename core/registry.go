package core

import (
	"sort"
	"sync"
)

// Registry maps agent identifiers to capabilities. Registration happens
// during start-up, before the service begins handling requests; steady
// state access is read-only, so the RWMutex exists only to keep late or
// test-time registration safe alongside concurrent invocations.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]Capability
}

// NewRegistry constructs a registry pre-populated with the given
// capabilities.
func NewRegistry(caps ...Capability) *Registry {
	r := &Registry{caps: make(map[string]Capability, len(caps))}
	for _, c := range caps {
		r.Register(c)
	}
	return r
}

// Register associates a capability with its identifier. Re-registering an
// identifier overwrites the previous association; last write wins.
func (r *Registry) Register(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps[c.ID()] = c
}

// Resolve returns the capability registered under id, or an
// *UnknownAgentError when the identifier was never registered.
func (r *Registry) Resolve(id string) (Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[id]
	if !ok {
		return nil, &UnknownAgentError{ID: id}
	}
	return c, nil
}

// Names returns the registered identifiers in sorted order. The listing is
// read-only and has no side effects.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.caps))
	for id := range r.caps {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// List returns identifier/description pairs for every registered
// capability, sorted by identifier. Used by discovery endpoints.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.caps))
	for _, c := range r.caps {
		infos = append(infos, Info{ID: c.ID(), Description: c.Description()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
