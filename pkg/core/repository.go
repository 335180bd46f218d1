package core

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Storage slot keys. Each collection occupies one whole-value slot.
const (
	NotesKey = "NOTES"
	TagsKey  = "TAGS"
)

// DefaultEventBuffer is the subscriber channel capacity used when the
// configuration leaves it zero.
const DefaultEventBuffer = 100

// Config wires a Repository to its collaborators.
type Config struct {
	// Store is the durable key-value backend. Required.
	Store Store

	// Codec encodes the collections for storage. Required.
	Codec Codec

	// NewID generates a fresh collision-free opaque identifier.
	// Defaults to uuid.NewString.
	NewID func() string

	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger

	// EventBuffer is the capacity of subscriber channels.
	// Zero means DefaultEventBuffer.
	EventBuffer int
}

// Repository owns the note and tag collections and every mutation on
// them. It keeps both collections in memory, mirrors every change to its
// store, and derives the resolved view on demand.
//
// All operations run synchronously to completion. The mutex is plain
// hygiene for callers that share a Repository between goroutines; the
// modeled workload is a single logical writer.
type Repository struct {
	mu    sync.RWMutex
	notes []RawNote
	tags  []Tag

	noteSlot *Slot[[]RawNote]
	tagSlot  *Slot[[]Tag]

	newID  func() string
	logger *slog.Logger

	subMu       sync.Mutex
	subs        map[chan Event]struct{}
	eventBuffer int
}

// NewRepository creates a Repository. It does no I/O; call Load before
// using the collections.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	noteSlot, err := NewSlot(cfg.Store, cfg.Codec, NotesKey, func() []RawNote { return nil })
	if err != nil {
		return nil, err
	}
	tagSlot, err := NewSlot(cfg.Store, cfg.Codec, TagsKey, func() []Tag { return nil })
	if err != nil {
		return nil, err
	}

	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}

	return &Repository{
		noteSlot:    noteSlot,
		tagSlot:     tagSlot,
		newID:       newID,
		logger:      cfg.Logger,
		subs:        make(map[chan Event]struct{}),
		eventBuffer: buffer,
	}, nil
}

// Load initializes the store and hydrates both collections. A slot whose
// stored value cannot be decoded surfaces a *CorruptError; the default is
// never substituted, since that would silently discard user data.
func (r *Repository) Load(ctx context.Context) error {
	if err := r.noteSlot.store.Initialize(ctx); err != nil {
		return err
	}

	notes, err := r.noteSlot.Load(ctx)
	if err != nil {
		return err
	}
	tags, err := r.tagSlot.Load(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.notes = notes
	r.tags = tags
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("collections loaded", "notes", len(notes), "tags", len(tags))
	}
	return nil
}

// Notes returns a copy of the raw note collection, in insertion order.
func (r *Repository) Notes() []RawNote {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.notes)
}

// Tags returns a copy of the tag collection, in insertion order.
func (r *Repository) Tags() []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tags)
}

// ResolvedNotes derives the resolved view from the current collections.
// It recomputes on every call, so the result can never be stale.
func (r *Repository) ResolvedNotes() []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Resolve(r.notes, r.tags)
}

// GetNoteByID looks up a note in the resolved view. A missing ID is a
// normal outcome reported through the boolean, never an error.
func (r *Repository) GetNoteByID(id string) (Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range Resolve(r.notes, r.tags) {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// CreateNote appends a new note with a fresh ID and persists the note
// collection. tagRefs carries the tags attached at creation time; only
// their IDs are recorded, in order, deduplicated. Tags are NOT registered
// here: a caller attaching a newly created tag must AddTag it first.
func (r *Repository) CreateNote(ctx context.Context, title, text string, tagRefs []Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note := RawNote{
		ID:    r.newID(),
		Title: title,
		Text:  text,
		Tags:  tagIDs(tagRefs),
	}

	next := append(slices.Clone(r.notes), note)
	if err := r.noteSlot.Save(ctx, next); err != nil {
		return err
	}
	r.notes = next

	r.emit(Event{Type: EventCreate, ID: note.ID, Timestamp: time.Now().Unix()})
	return nil
}

// UpdateNote replaces title, text, and tags of the note with the given
// ID, in place, and persists. An absent ID is a silent no-op: updating a
// note that no longer exists is a benign race, not a fault. Other notes
// keep their positions.
func (r *Repository) UpdateNote(ctx context.Context, id, title, text string, tagRefs []Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.notes, func(n RawNote) bool { return n.ID == id })
	if idx < 0 {
		return nil
	}

	next := slices.Clone(r.notes)
	next[idx] = RawNote{ID: id, Title: title, Text: text, Tags: tagIDs(tagRefs)}
	if err := r.noteSlot.Save(ctx, next); err != nil {
		return err
	}
	r.notes = next

	r.emit(Event{Type: EventModify, ID: id, Timestamp: time.Now().Unix()})
	return nil
}

// DeleteNote removes the note with the given ID, if present, and
// persists. The tag collection is untouched: tags are not reference
// counted and never garbage collected.
func (r *Repository) DeleteNote(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.notes, func(n RawNote) bool { return n.ID == id })
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(r.notes), idx, idx+1)
	if err := r.noteSlot.Save(ctx, next); err != nil {
		return err
	}
	r.notes = next

	r.emit(Event{Type: EventDelete, ID: id, Timestamp: time.Now().Unix()})
	return nil
}

// AddTag appends a tag unconditionally and persists. No uniqueness check
// on Label or ID: callers supply freshly generated IDs. If one doesn't,
// resolution gives the earlier registration precedence (see Resolve).
func (r *Repository) AddTag(ctx context.Context, tag Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(slices.Clone(r.tags), tag)
	if err := r.tagSlot.Save(ctx, next); err != nil {
		return err
	}
	r.tags = next

	r.emit(Event{Type: EventCreate, ID: tag.ID, Timestamp: time.Now().Unix()})
	return nil
}

// DeleteTag removes the tag with the given ID, if present, and persists.
// Notes referencing it keep the now-dangling ID; the resolved view simply
// stops showing the tag. Deletion is soft from the note's perspective.
func (r *Repository) DeleteTag(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.tags, func(t Tag) bool { return t.ID == id })
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(r.tags), idx, idx+1)
	if err := r.tagSlot.Save(ctx, next); err != nil {
		return err
	}
	r.tags = next

	r.emit(Event{Type: EventDelete, ID: id, Timestamp: time.Now().Unix()})
	return nil
}

// NewID exposes the repository's identifier generator, so callers
// building Tag values (AddTag takes a complete Tag) mint IDs the same way
// notes do.
func (r *Repository) NewID() string {
	return r.newID()
}

// Subscribe registers an event channel that receives one event per
// successful mutation. The channel closes when ctx is cancelled. Slow
// subscribers drop events once their buffer fills; mutations never block
// on observers.
func (r *Repository) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, r.eventBuffer)

	r.subMu.Lock()
	r.subs[ch] = struct{}{}
	r.subMu.Unlock()

	go func() {
		<-ctx.Done()
		r.subMu.Lock()
		delete(r.subs, ch)
		r.subMu.Unlock()
		close(ch)
	}()

	return ch
}

func (r *Repository) emit(e Event) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	for ch := range r.subs {
		select {
		case ch <- e:
		default:
			if r.logger != nil {
				r.logger.Debug("event dropped, subscriber buffer full", "event", e.String())
			}
		}
	}
}

// tagIDs extracts IDs from tag references, preserving attachment order
// and dropping duplicates (first occurrence wins). Tag attachment is
// driven by set-like selection, so duplicates never survive a write.
func tagIDs(tagRefs []Tag) []string {
	ids := make([]string, 0, len(tagRefs))
	seen := make(map[string]bool, len(tagRefs))
	for _, t := range tagRefs {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		ids = append(ids, t.ID)
	}
	return ids
}
