package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/lembra/lembra/pkg/core"
)

// debounceWindow suppresses the duplicate bursts editors and atomic
// renames produce for a single logical change.
const debounceWindow = 50 * time.Millisecond

// Watch emits an event whenever a slot file matching pattern changes on
// disk. It observes writes from any process (including this one); it does
// not coordinate them. The returned channel closes when ctx is cancelled.
//
// The pattern is a doublestar glob matched against slot keys, e.g. "*"
// or "NOTES".
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(s.config.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.config.Dir, err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer s.setWatcherActive(false)

		lastSeen := make(map[string]time.Time)

		for {
			select {
			case <-ctx.Done():
				return nil

			case fe, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				key, match := s.matchKey(fe.Name, pattern)
				if !match {
					continue
				}

				eType := mapEventType(fe)
				if eType == "" {
					continue
				}

				// Debounce per key
				now := time.Now()
				if last, ok := lastSeen[key]; ok && now.Sub(last) < debounceWindow {
					continue
				}
				lastSeen[key] = now

				e := core.Event{Type: eType, ID: key, Timestamp: now.Unix()}
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if s.config.Logger != nil {
					s.config.Logger.Error("fsnotify error", "error", werr)
				}
				if s.config.ErrorHandler != nil {
					s.config.ErrorHandler(werr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(fmt.Errorf("watch loop panic: %w", err))
		} else if s.config.Logger != nil {
			s.config.Logger.Error("watch loop panic", "error", err)
		}
	}))

	return events, nil
}

// matchKey maps a filesystem path back to a slot key and applies the
// watch pattern. Temp files from atomic writes never surface as events.
func (s *Store) matchKey(path, pattern string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, TempFilePrefix) {
		return "", false
	}

	key := strings.TrimSuffix(base, s.config.Ext)
	if key == base {
		// Not a slot file for the configured codec.
		return "", false
	}

	match, err := doublestar.Match(pattern, key)
	if err != nil || !match {
		return "", false
	}
	return key, true
}

func mapEventType(e fsnotify.Event) core.EventType {
	switch {
	case e.Has(fsnotify.Create):
		return core.EventCreate
	case e.Has(fsnotify.Write):
		return core.EventModify
	case e.Has(fsnotify.Remove), e.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}
