package core

// Resolve derives the read-only note view from the two backing
// collections: one Note per RawNote, in the notes' order, with each tag
// ID looked up in tags. IDs without a matching tag are dropped silently;
// a dangling reference is a normal condition, not an error.
//
// Resolve is pure. It must be re-applied whenever either collection
// changes so that no caller ever observes a stale view.
func Resolve(notes []RawNote, tags []Tag) []Note {
	byID := make(map[string]Tag, len(tags))
	for _, t := range tags {
		// First registration wins on duplicate IDs. AddTag does not
		// guard against duplicates, so precedence has to be pinned
		// somewhere; resolution pins it here.
		if _, ok := byID[t.ID]; !ok {
			byID[t.ID] = t
		}
	}

	resolved := make([]Note, len(notes))
	for i, n := range notes {
		note := Note{
			ID:    n.ID,
			Title: n.Title,
			Text:  n.Text,
			Tags:  make([]Tag, 0, len(n.Tags)),
		}
		for _, id := range n.Tags {
			if t, ok := byID[id]; ok {
				note.Tags = append(note.Tags, t)
			}
		}
		resolved[i] = note
	}
	return resolved
}
