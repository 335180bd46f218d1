package fs

import (
	"github.com/aretw0/introspection"

	"github.com/lembra/lembra/pkg/core"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Dir           string `json:"dir"`
	Ext           string `json:"ext"`
	MustExist     bool   `json:"must_exist"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Dir:           s.config.Dir,
		Ext:           s.config.Ext,
		MustExist:     s.config.MustExist,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
var _ core.WatchableStore = (*Store)(nil)
