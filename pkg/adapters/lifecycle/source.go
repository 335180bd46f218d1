// Package lifecycle bridges lembra event channels to the generic
// lifecycle event pipeline, so embedders can supervise a repository or
// store watcher like any other event source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/lembra/lembra/pkg/core"
)

type eventSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits lembra events.
// It bridges the typed event channel (from Repository.Subscribe or
// Store.Watch) to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &eventSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *eventSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *eventSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and panic-safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
