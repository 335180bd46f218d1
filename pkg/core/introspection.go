package core

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Notes       int    `json:"notes"`
	Tags        int    `json:"tags"`
	Subscribers int    `json:"subscribers"`
	EventBuffer int    `json:"event_buffer"`
	StoreType   string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	notes := len(r.notes)
	tags := len(r.tags)
	r.mu.RUnlock()

	r.subMu.Lock()
	subs := len(r.subs)
	r.subMu.Unlock()

	storeType := "store"
	if comp, ok := r.noteSlot.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	return RepositoryState{
		Notes:       notes,
		Tags:        tags,
		Subscribers: subs,
		EventBuffer: r.eventBuffer,
		StoreType:   storeType,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
