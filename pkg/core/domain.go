// Package core holds the domain model of lembra: notes, tags, and the
// repository that owns them. It is agnostic to how collections are
// persisted (filesystem, memory, anything implementing Store).
package core

// Tag is a user-defined category attachable to zero or more notes.
// Tags are never mutated after creation; they are added and removed whole.
type Tag struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// RawNote is the persisted form of a note. Tags holds tag IDs in the
// order they were attached. The list may contain IDs of tags that no
// longer exist; resolution drops those silently.
type RawNote struct {
	ID    string   `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Text  string   `json:"text" yaml:"text"`
	Tags  []string `json:"tags" yaml:"tags"`
}

// Note is the resolved, read-only view of a RawNote: tag IDs replaced by
// the Tag values currently present in the tag collection. It is derived
// on demand and never persisted.
type Note struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
	Tags  []Tag  `json:"tags" yaml:"tags"`
}

// TagIDs returns the IDs of the resolved tags, in order.
func (n Note) TagIDs() []string {
	ids := make([]string, len(n.Tags))
	for i, t := range n.Tags {
		ids[i] = t.ID
	}
	return ids
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note, a tag, or a storage slot.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
