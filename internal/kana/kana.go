// Package kana holds the diacritic override tables used to split voiced kana
// into a base keystroke followed by a dakuten or handakuten keystroke.
package kana

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Spacing diacritic marks as printed on kana keyboards.
const (
	Dakuten    = "゛"
	Handakuten = "゜"
)

// Combining forms produced by canonical decomposition.
const (
	combiningDakuten    = '\u3099'
	combiningHandakuten = '\u309a'
)

// voiced kana -> unvoiced base kana.
var voicedBase = map[rune]rune{
	'が': 'か', 'ぎ': 'き', 'ぐ': 'く', 'げ': 'け', 'ご': 'こ',
	'ざ': 'さ', 'じ': 'し', 'ず': 'す', 'ぜ': 'せ', 'ぞ': 'そ',
	'だ': 'た', 'ぢ': 'ち', 'づ': 'つ', 'で': 'て', 'ど': 'と',
	'ば': 'は', 'び': 'ひ', 'ぶ': 'ふ', 'べ': 'へ', 'ぼ': 'ほ',
	'ぱ': 'は', 'ぴ': 'ひ', 'ぷ': 'ふ', 'ぺ': 'へ', 'ぽ': 'ほ',
	'ゔ': 'う',
}

type transition struct {
	typed    rune
	expected rune
}

// (typed base, expected voiced) -> mark keystroke.
var diacriticMarks = map[transition]string{
	{'か', 'が'}: Dakuten, {'き', 'ぎ'}: Dakuten, {'く', 'ぐ'}: Dakuten, {'け', 'げ'}: Dakuten, {'こ', 'ご'}: Dakuten,
	{'さ', 'ざ'}: Dakuten, {'し', 'じ'}: Dakuten, {'す', 'ず'}: Dakuten, {'せ', 'ぜ'}: Dakuten, {'そ', 'ぞ'}: Dakuten,
	{'た', 'だ'}: Dakuten, {'ち', 'ぢ'}: Dakuten, {'つ', 'づ'}: Dakuten, {'て', 'で'}: Dakuten, {'と', 'ど'}: Dakuten,
	{'は', 'ば'}: Dakuten, {'ひ', 'び'}: Dakuten, {'ふ', 'ぶ'}: Dakuten, {'へ', 'べ'}: Dakuten, {'ほ', 'ぼ'}: Dakuten,
	{'は', 'ぱ'}: Handakuten, {'ひ', 'ぴ'}: Handakuten, {'ふ', 'ぷ'}: Handakuten, {'へ', 'ぺ'}: Handakuten, {'ほ', 'ぽ'}: Handakuten,
	{'う', 'ゔ'}: Dakuten,
}

// BaseOf returns the unvoiced base of a voiced or semi-voiced kana.
func BaseOf(r rune) (rune, bool) {
	base, ok := voicedBase[r]
	return base, ok
}

// MarkFor returns the diacritic keystroke that turns typed into expected.
func MarkFor(typed, expected rune) (string, bool) {
	mark, ok := diacriticMarks[transition{typed: typed, expected: expected}]
	return mark, ok
}

// (base, spacing mark) -> voiced kana, derived from diacriticMarks.
var composed = func() map[transition]rune {
	out := make(map[transition]rune, len(diacriticMarks))
	for tr, mark := range diacriticMarks {
		out[transition{typed: tr.typed, expected: []rune(mark)[0]}] = tr.expected
	}
	return out
}()

// Normalize composes s to NFC and folds a base kana followed by a spacing
// dakuten or handakuten into the voiced kana, so keystroke sequences typed
// without an IME compare equal to the reading.
func Normalize(s string) string {
	runes := []rune(norm.NFC.String(s))
	out := runes[:0]
	for _, r := range runes {
		if n := len(out); n > 0 {
			if v, ok := composed[transition{typed: out[n-1], expected: r}]; ok {
				out[n-1] = v
				continue
			}
		}
		out = append(out, r)
	}
	return string(out)
}

// IsVoiced reports whether r decomposes into a base and a combining
// dakuten or handakuten.
func IsVoiced(r rune) bool {
	d := []rune(norm.NFD.String(string(r)))
	if len(d) < 2 {
		return false
	}
	last := d[len(d)-1]
	return last == combiningDakuten || last == combiningHandakuten
}

// MissingVoiced returns the voiced kana used in readings that have no entry
// in the base table, sorted and deduplicated.
func MissingVoiced(readings []string) []rune {
	seen := map[rune]struct{}{}
	for _, reading := range readings {
		for _, r := range Normalize(reading) {
			if _, ok := voicedBase[r]; ok {
				continue
			}
			if IsVoiced(r) {
				seen[r] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
