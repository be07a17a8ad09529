package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestBaseTableMatchesDecomposition(t *testing.T) {
	for voiced, base := range voicedBase {
		d := []rune(norm.NFD.String(string(voiced)))
		require.Len(t, d, 2, "decomposition of %q", voiced)
		assert.Equal(t, base, d[0], "base of %q", voiced)
	}
}

func TestMarkTableMatchesDecomposition(t *testing.T) {
	for tr, mark := range diacriticMarks {
		d := []rune(norm.NFD.String(string(tr.expected)))
		require.Len(t, d, 2)
		assert.Equal(t, tr.typed, d[0])
		switch d[1] {
		case combiningDakuten:
			assert.Equal(t, Dakuten, mark)
		case combiningHandakuten:
			assert.Equal(t, Handakuten, mark)
		default:
			t.Fatalf("unexpected combining mark %U", d[1])
		}
	}
}

func TestEveryVoicedKanaHasMark(t *testing.T) {
	for voiced, base := range voicedBase {
		_, ok := MarkFor(base, voiced)
		assert.True(t, ok, "no mark for %q", voiced)
	}
	assert.Len(t, diacriticMarks, len(voicedBase))
}

func TestLookupsMissAreNotErrors(t *testing.T) {
	_, ok := BaseOf('か')
	assert.False(t, ok)
	_, ok = MarkFor('か', 'き')
	assert.False(t, ok)

	base, ok := BaseOf('ぷ')
	require.True(t, ok)
	assert.Equal(t, 'ふ', base)
	mark, ok := MarkFor('ふ', 'ぷ')
	require.True(t, ok)
	assert.Equal(t, Handakuten, mark)
}

func TestMissingVoiced(t *testing.T) {
	// ガ is katakana and has no entry in the hiragana tables.
	missing := MissingVoiced([]string{"がっこう", "ガッコウ", "ばす", "か\u3099"})
	assert.Equal(t, []rune{'ガ'}, missing)
	assert.Empty(t, MissingVoiced([]string{"さくら"}))
}

func TestNormalizeComposes(t *testing.T) {
	assert.Equal(t, "が", Normalize("か\u3099"))
	assert.Equal(t, "がっこう", Normalize("か゛っこう"))
	assert.Equal(t, "さんぽ", Normalize("さんほ゜"))
	assert.Equal(t, "さ゜", Normalize("さ゜"))
	assert.Equal(t, "゛", Normalize("゛"))
	assert.True(t, IsVoiced('ぽ'))
	assert.False(t, IsVoiced('ほ'))
}
