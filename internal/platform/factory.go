package platform

import (
	"context"
	"fmt"

	"github.com/lembra/lembra/pkg/adapters/fs"
	"github.com/lembra/lembra/pkg/codec"
	"github.com/lembra/lembra/pkg/core"
)

// Open wires a repository to a store rooted at dir and hydrates it.
// A corrupted slot surfaces immediately as *core.CorruptError; opening
// never silently replaces unreadable state with defaults.
func Open(dir string, opts ...Option) (*core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c, err := resolveCodec(o)
	if err != nil {
		return nil, err
	}

	store := o.store
	if store == nil {
		store, err = newFSStore(dir, c, o)
		if err != nil {
			return nil, err
		}
	}

	repo, err := core.NewRepository(core.Config{
		Store:       store,
		Codec:       c,
		NewID:       o.newID,
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	})
	if err != nil {
		return nil, err
	}

	if err := repo.Load(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewStore builds the store for dir without opening a repository on it.
// Useful for watching the backing storage directly.
func NewStore(dir string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, nil
	}

	c, err := resolveCodec(o)
	if err != nil {
		return nil, err
	}
	return newFSStore(dir, c, o)
}

func resolveCodec(o *options) (core.Codec, error) {
	if o.codec != nil {
		return o.codec, nil
	}
	return codec.ByName(o.format)
}

func newFSStore(dir string, c core.Codec, o *options) (core.Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("state directory cannot be empty")
	}
	return fs.NewStore(fs.Config{
		Dir:          dir,
		Ext:          c.Ext(),
		MustExist:    o.mustExist,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	}), nil
}
