// Package fs implements core.Store on top of a plain directory: one file
// per slot, written atomically. It is the durable persistence boundary of
// lembra.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists each slot key as a single file under Dir. Every Save
// replaces the whole file; there are no partial updates and no locking
// across processes. Concurrent writers from other processes are not
// coordinated: last write wins, an accepted limitation of the model.
type Store struct {
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem store.
type Config struct {
	// Dir is the state directory holding the slot files.
	Dir string

	// Ext is the file extension for slot files, including the dot.
	// Defaults to ".json". It should match the codec in use so the
	// files open correctly in editors.
	Ext string

	// MustExist makes Initialize fail when Dir is missing instead of
	// creating it.
	MustExist bool

	Logger *slog.Logger

	// ErrorHandler receives errors occurring inside the watch loop,
	// which are otherwise only logged.
	ErrorHandler func(error)
}

// NewStore creates a filesystem store rooted at config.Dir. It does no
// I/O until Initialize or the first operation.
func NewStore(config Config) *Store {
	if config.Ext == "" {
		config.Ext = ".json"
	}
	return &Store{config: config}
}

// Dir returns the state directory.
func (s *Store) Dir() string { return s.config.Dir }

// Initialize ensures the state directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.config.Dir)
	switch {
	case os.IsNotExist(err):
		if s.config.MustExist {
			return fmt.Errorf("state directory does not exist: %s", s.config.Dir)
		}
		if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to stat state directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("state path is not a directory: %s", s.config.Dir)
	}
	return nil
}

// Load reads the raw value for key. An absent file is not an error; the
// boolean reports presence.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	path, err := s.slotPath(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

// Save replaces the entire value for key, synchronously and atomically
// (temp file + rename, so a crash mid-write never leaves a torn file).
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("slot written", "key", key, "bytes", len(data))
	}
	return nil
}

// slotPath maps a slot key to its file. Keys are flat identifiers; path
// separators would escape the state directory and are rejected outright.
func (s *Store) slotPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("slot key cannot be empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid slot key: %q", key)
	}
	return filepath.Join(s.config.Dir, key+s.config.Ext), nil
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
