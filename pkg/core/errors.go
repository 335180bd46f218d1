package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrEmptyKey is returned when a slot is configured without a key.
	ErrEmptyKey = errors.New("slot key cannot be empty")

	// ErrNilStore is returned when a repository is wired without a store.
	ErrNilStore = errors.New("store cannot be nil")
)

// CorruptError reports that a stored value could not be decoded back into
// its expected shape. It is fatal for that slot's load: callers must not
// paper over it with a default, since that would silently discard data.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt state in slot %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports whether err wraps a CorruptError.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}
