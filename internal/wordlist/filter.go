package wordlist

import (
	"unicode"

	"github.com/verte-zerg/kanatype/internal/model"
)

// IsKanaReading reports whether reading only uses characters a kana keyboard
// can produce.
func IsKanaReading(reading string) bool {
	if reading == "" {
		return false
	}
	for _, r := range reading {
		if !isKanaRune(r) {
			return false
		}
	}
	return true
}

func isKanaRune(r rune) bool {
	switch r {
	case 'ー', '、', '。', '・', '「', '」':
		return true
	}
	return unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r)
}

// NonKana returns the entries whose reading cannot be typed on a kana layout.
func NonKana(entries []model.WordEntry) []model.WordEntry {
	var out []model.WordEntry
	for _, e := range entries {
		if !IsKanaReading(e.Reading) {
			out = append(out, e)
		}
	}
	return out
}
