// Package memory implements core.Store in process memory. It backs tests
// and any embedding that wants a repository with no durable state, with
// no ambient wiring required.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/lembra/lembra/pkg/core"
)

// Store keeps slot values in a map. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// Initialize is a no-op; the map is always ready.
func (s *Store) Initialize(ctx context.Context) error { return nil }

// Load returns the stored value for key, if any.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Save replaces the entire value for key.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.slots[key] = stored
	return nil
}

// Len returns the number of occupied slots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Slots int `json:"slots"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{Slots: s.Len()}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
