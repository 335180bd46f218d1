package lembra

import (
	"log/slog"

	"github.com/lembra/lembra/internal/platform"
	"github.com/lembra/lembra/pkg/core"
)

// --- Types ---

// Tag is a public alias for the domain tag.
type Tag = core.Tag

// RawNote is a public alias for the persisted note form.
type RawNote = core.RawNote

// Note is a public alias for the resolved note view.
type Note = core.Note

// Repository is a public alias for the note/tag repository.
type Repository = core.Repository

// Store is a public alias for the key-value store port.
type Store = core.Store

// Codec is a public alias for the slot codec port.
type Codec = core.Codec

// Filter is a public alias for the resolved-view filter.
type Filter = core.Filter

// Event is a public alias for change events.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring lembra.
type Option = platform.Option

// WithLogger sets the logger for the repository and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore injects a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithCodec injects a custom slot codec.
func WithCodec(c core.Codec) Option {
	return platform.WithCodec(c)
}

// WithFormat selects a built-in codec by name ("json" or "yaml").
func WithFormat(name string) Option {
	return platform.WithFormat(name)
}

// WithMustExist requires the state directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// WithEventBuffer sets the capacity of subscriber event channels.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for watch-loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open wires a repository to a store rooted at dir and hydrates it.
func Open(dir string, opts ...Option) (*core.Repository, error) {
	return platform.Open(dir, opts...)
}

// NewStore builds the store for dir without opening a repository on it.
func NewStore(dir string, opts ...Option) (core.Store, error) {
	return platform.NewStore(dir, opts...)
}

// --- Utils ---

// WordCount counts whitespace-separated words, as shown in note listings.
func WordCount(s string) int {
	return core.WordCount(s)
}

// IsCorrupt reports whether err wraps a core.CorruptError.
func IsCorrupt(err error) bool {
	return core.IsCorrupt(err)
}
