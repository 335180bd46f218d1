package core

import "context"

// Store defines the contract for a durable, synchronous key-value slot.
// Every write replaces the whole value for its key; there are no partial
// updates and no transactions. The model assumes a single logical writer;
// concurrent writers from other processes are not coordinated and
// last-write-wins at the storage layer.
//
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, memory, anything else).
type Store interface {
	// Load reads the raw value for key. The boolean reports presence;
	// an absent key is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save replaces the entire value for key, synchronously.
	Save(ctx context.Context, key string, data []byte) error

	// Initialize ensures the underlying storage is ready
	// (e.g. create the state directory).
	Initialize(ctx context.Context) error
}

// WatchableStore is implemented by stores that can observe external
// modifications to their backing storage. Watching only observes; it does
// not coordinate concurrent writers.
type WatchableStore interface {
	Store

	// Watch emits an event whenever a slot matching pattern changes on
	// the backing storage. The channel closes when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Codec encodes and decodes slot values as text. Implementations must be
// round-trip lossless for strings and preserve array order.
type Codec interface {
	// Ext is the file extension associated with the format (e.g. ".json").
	Ext() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// Slot binds one typed value to a Store key. It is the typed face of the
// store adapter: Load deserializes the whole value, Save replaces it.
type Slot[T any] struct {
	store     Store
	codec     Codec
	key       string
	defaultFn func() T
}

// NewSlot creates a slot for key on store. The default supplier is
// evaluated only when the key is absent, so constructing an expensive
// default costs nothing once a value exists.
func NewSlot[T any](store Store, codec Codec, key string, defaultFn func() T) (*Slot[T], error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	if defaultFn == nil {
		defaultFn = func() T { var zero T; return zero }
	}
	return &Slot[T]{store: store, codec: codec, key: key, defaultFn: defaultFn}, nil
}

// Key returns the slot's storage key.
func (s *Slot[T]) Key() string { return s.key }

// Load reads and decodes the slot value. An absent key yields the default.
// A present value that cannot be decoded yields a *CorruptError: the
// default is never substituted over unreadable data.
func (s *Slot[T]) Load(ctx context.Context) (T, error) {
	var zero T

	data, ok, err := s.store.Load(ctx, s.key)
	if err != nil {
		return zero, err
	}
	if !ok {
		return s.defaultFn(), nil
	}

	var v T
	if err := s.codec.Decode(data, &v); err != nil {
		return zero, &CorruptError{Key: s.key, Err: err}
	}
	return v, nil
}

// Save encodes v and replaces the entire stored value.
func (s *Slot[T]) Save(ctx context.Context, v T) error {
	data, err := s.codec.Encode(v)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, s.key, data)
}
