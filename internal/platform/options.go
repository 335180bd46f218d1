package platform

import (
	"log/slog"

	"github.com/lembra/lembra/pkg/core"
)

// options holds the internal configuration assembled by Open.
type options struct {
	store        core.Store
	codec        core.Codec
	format       string
	logger       *slog.Logger
	newID        func() string
	eventBuffer  int
	mustExist    bool
	errorHandler func(error)
}

// Option defines a functional option for configuring lembra.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		format: "json",
	}
}

// WithLogger sets the logger for the repository and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom storage adapter (e.g. memory, a mock).
// If provided, the default filesystem adapter is skipped and the
// directory argument is ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCodec injects a custom slot codec.
func WithCodec(c core.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithFormat selects a built-in codec by name ("json" or "yaml").
// Ignored when WithCodec is used.
func WithFormat(name string) Option {
	return func(o *options) {
		o.format = name
	}
}

// WithMustExist requires the state directory to already exist instead of
// creating it on first use.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithIDGenerator replaces the identifier generator. Useful for
// deterministic IDs in tests.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithEventBuffer sets the capacity of subscriber event channels.
// Zero means the default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring
// inside the store watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
