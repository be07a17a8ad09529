package session

import (
	"sort"

	"github.com/verte-zerg/kanatype/internal/kana"
	"github.com/verte-zerg/kanatype/internal/model"
)

// MissingLabels returns the key labels needed to type the readings that do
// not exist in labels, sorted and deduplicated. Voiced kana need their base
// kana and the matching diacritic mark.
func MissingLabels(entries []model.WordEntry, labels map[string]struct{}) []string {
	missing := map[string]struct{}{}
	need := func(label string) {
		if _, ok := labels[label]; !ok {
			missing[label] = struct{}{}
		}
	}
	for _, e := range entries {
		for _, r := range e.Reading {
			base, ok := kana.BaseOf(r)
			if !ok {
				need(string(r))
				continue
			}
			need(string(base))
			if mark, ok := kana.MarkFor(base, r); ok {
				need(mark)
			}
		}
	}
	out := make([]string, 0, len(missing))
	for label := range missing {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
