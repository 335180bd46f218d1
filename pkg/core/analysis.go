package core

import "strings"

// WordCount counts whitespace-separated words in s. Used by views to
// annotate note listings; blank or whitespace-only text counts zero.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
