// Package session tracks the current practice word and predicts the next key.
package session

import (
	"github.com/verte-zerg/kanatype/internal/kana"
	"github.com/verte-zerg/kanatype/internal/layout"
)

// BackspaceLabel is marked when the input must be corrected by deleting.
const BackspaceLabel = layout.BackspaceLabel

// ComputeMarkedLabel returns the label of the next key to press for reading
// given the text typed so far. complete is true when typed equals reading, in
// which case label is empty and the caller should advance to a new word.
func ComputeMarkedLabel(reading, typed string) (label string, complete bool) {
	if typed == reading {
		return "", true
	}
	want := []rune(reading)
	got := []rune(typed)

	label = BackspaceLabel
	if len(got) < len(want) && hasPrefix(want, got) {
		next := want[len(got)]
		if base, ok := kana.BaseOf(next); ok {
			next = base
		}
		label = string(next)
	}

	// Only the last keystroke differs: it may be the base half of a voiced kana.
	n := len(got)
	if n > 0 && n <= len(want) && hasPrefix(want, got[:n-1]) {
		if mark, ok := kana.MarkFor(got[n-1], want[n-1]); ok {
			label = mark
		}
	}
	return label, false
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
