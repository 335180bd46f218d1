package core

import "strings"

// Filter selects notes from the resolved view. The zero value matches
// every note.
type Filter struct {
	// Title is matched as a case-insensitive substring of the note
	// title. Empty matches everything.
	Title string

	// TagIDs lists required tag IDs. A note matches only if every
	// listed ID is present among its resolved tags ("all of", not
	// "any of"). Empty matches everything.
	TagIDs []string
}

// Match reports whether the resolved note passes the filter.
func (f Filter) Match(n Note) bool {
	if f.Title != "" && !strings.Contains(strings.ToLower(n.Title), strings.ToLower(f.Title)) {
		return false
	}

	for _, required := range f.TagIDs {
		found := false
		for _, t := range n.Tags {
			if t.ID == required {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the notes that pass the filter, preserving order.
// It never mutates its input.
func (f Filter) Apply(notes []Note) []Note {
	var out []Note
	for _, n := range notes {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out
}
