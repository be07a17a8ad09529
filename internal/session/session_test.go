package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kanatype/internal/kana"
	"github.com/verte-zerg/kanatype/internal/model"
	"github.com/verte-zerg/kanatype/internal/wordlist"
)

type sequencePicker struct {
	next []int
}

func (p *sequencePicker) Pick(n int) int {
	if len(p.next) == 0 {
		return 0
	}
	i := p.next[0]
	p.next = p.next[1:]
	return i
}

func TestComputeMarkedLabelExamples(t *testing.T) {
	cases := []struct {
		name    string
		reading string
		typed   string
		want    string
	}{
		{name: "empty input marks base of voiced first kana", reading: "がっこう", typed: "", want: "か"},
		{name: "base typed asks for dakuten", reading: "がっこう", typed: "か", want: "゛"},
		{name: "small tsu is marked directly", reading: "がっこう", typed: "が", want: "っ"},
		{name: "plain next kana", reading: "がっこう", typed: "がっ", want: "こ"},
		{name: "wrong first key", reading: "がっこう", typed: "x", want: BackspaceLabel},
		{name: "handakuten", reading: "さんぽ", typed: "さんほ", want: "゜"},
		{name: "semi voiced base", reading: "さんぽ", typed: "さん", want: "ほ"},
		{name: "wrong earlier kana", reading: "さくら", typed: "すく", want: BackspaceLabel},
		{name: "longer than reading", reading: "さくら", typed: "さくらx", want: BackspaceLabel},
		{name: "far longer than reading", reading: "か", typed: "かxy", want: BackspaceLabel},
		{name: "unvoiced mismatch", reading: "さくら", typed: "さき", want: BackspaceLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, complete := ComputeMarkedLabel(tc.reading, tc.typed)
			assert.False(t, complete)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeMarkedLabelComplete(t *testing.T) {
	for _, s := range []string{"がっこう", "学校", "ぱん"} {
		label, complete := ComputeMarkedLabel(s, s)
		assert.True(t, complete)
		assert.Empty(t, label)
	}
}

func TestCorrectPathNeverMarksBackspace(t *testing.T) {
	for _, reading := range []string{"がっこう", "ぴかぴか", "じどうしゃ", "ゔぁいおりん", "りんご"} {
		runes := []rune(reading)
		for i := 0; i < len(runes); i++ {
			label, complete := ComputeMarkedLabel(reading, string(runes[:i]))
			require.False(t, complete)
			assert.NotEqual(t, BackspaceLabel, label, "reading %q prefix %d", reading, i)
		}
	}
}

func TestDiacriticRoundTrip(t *testing.T) {
	reading := "がっこう"
	first, _ := ComputeMarkedLabel(reading, "")
	require.Equal(t, "か", first)
	second, _ := ComputeMarkedLabel(reading, first)
	assert.Equal(t, "゛", second)
}

func TestNewRejectsEmptyWordList(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyWordList)
}

func TestSessionAdvancesOnReading(t *testing.T) {
	entries := []model.WordEntry{
		{Word: "学校", Reading: "がっこう"},
		{Word: "林檎", Reading: "りんご"},
	}
	s, err := New(entries, &sequencePicker{next: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, "か", s.State().Mark)

	st := s.Dispatch(TextChanged{Text: "か"})
	assert.Equal(t, "゛", st.Mark)
	assert.Equal(t, "か", st.Typed)

	st = s.Dispatch(TextChanged{Text: "がっこう"})
	assert.Equal(t, entries[1], st.Entry)
	assert.Empty(t, st.Typed)
	assert.Equal(t, "り", st.Mark)
	assert.Equal(t, 1, s.Completed())
}

func TestSessionAcceptsWordItself(t *testing.T) {
	entries := []model.WordEntry{{Word: "ねこ", Reading: "ねこ"}, {Word: "犬", Reading: "いぬ"}}
	s, err := New(entries, &sequencePicker{next: []int{1, 0}})
	require.NoError(t, err)

	st := s.Dispatch(TextChanged{Text: "犬"})
	assert.Equal(t, entries[0], st.Entry)
	assert.Equal(t, 1, s.Completed())
}

func TestSessionEscapeSkips(t *testing.T) {
	entries := []model.WordEntry{{Word: "犬", Reading: "いぬ"}, {Word: "猫", Reading: "ねこ"}}
	s, err := New(entries, &sequencePicker{next: []int{0, 1}})
	require.NoError(t, err)
	s.Dispatch(TextChanged{Text: "x"})
	assert.Equal(t, BackspaceLabel, s.State().Mark)

	st := s.Dispatch(EscapePressed{})
	assert.Equal(t, entries[1], st.Entry)
	assert.Empty(t, st.Typed)
	assert.Equal(t, "ね", st.Mark)
	assert.Equal(t, 1, s.Skipped())
	assert.Equal(t, 0, s.Completed())
}

func TestSessionIgnoresOutOfRangePicks(t *testing.T) {
	entries := []model.WordEntry{{Word: "犬", Reading: "いぬ"}, {Word: "猫", Reading: "ねこ"}}
	s, err := New(entries, &sequencePicker{next: []int{7}})
	require.NoError(t, err)
	assert.Equal(t, entries[0], s.State().Entry)
}

func TestSessionCompletesDecomposedReading(t *testing.T) {
	entries, err := wordlist.Parse(strings.NewReader("[[\"学校◴か\u3099っこう\", 1]]"))
	require.NoError(t, err)
	s, err := New(entries, &sequencePicker{})
	require.NoError(t, err)
	assert.Equal(t, "か", s.State().Mark)

	st := s.Dispatch(TextChanged{Text: kana.Normalize("か")})
	assert.Equal(t, "゛", st.Mark)
	st = s.Dispatch(TextChanged{Text: kana.Normalize("か゛")})
	assert.Equal(t, "が", st.Typed)
	assert.Equal(t, "っ", st.Mark)

	s.Dispatch(TextChanged{Text: kana.Normalize("か゛っこう")})
	assert.Equal(t, 1, s.Completed())
}

func TestSessionEmptyWordNeverCompletesOnClear(t *testing.T) {
	s, err := New([]model.WordEntry{{Word: "", Reading: "ねこ"}}, &sequencePicker{})
	require.NoError(t, err)
	s.Dispatch(TextChanged{Text: "x"})
	st := s.Dispatch(TextChanged{Text: ""})
	assert.Equal(t, 0, s.Completed())
	assert.Equal(t, "ね", st.Mark)
}
