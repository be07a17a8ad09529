package session

import (
	"github.com/verte-zerg/kanatype/internal/model"
	"github.com/verte-zerg/kanatype/internal/wordlist"
)

// ErrEmptyWordList is returned when a session has no words to practice.
var ErrEmptyWordList = wordlist.ErrEmptyWordList

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) int
}

// Event is an input event dispatched into a Session.
type Event interface {
	isEvent()
}

// TextChanged carries the full current contents of the input field,
// including uncommitted composition text.
type TextChanged struct {
	Text string
}

// EscapePressed skips the current word.
type EscapePressed struct{}

func (TextChanged) isEvent()   {}
func (EscapePressed) isEvent() {}

// State is the per-word session state. It is replaced as a whole when the
// session advances to another word.
type State struct {
	Entry model.WordEntry
	Typed string
	Mark  string
}

// Session owns the word list and the active State.
type Session struct {
	entries []model.WordEntry
	picker  Picker
	state   State

	completed int
	skipped   int
}

// New starts a session on a randomly picked word.
func New(entries []model.WordEntry, picker Picker) (*Session, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyWordList
	}
	s := &Session{
		entries: append([]model.WordEntry(nil), entries...),
		picker:  picker,
	}
	s.next()
	return s, nil
}

// State returns the active state.
func (s *Session) State() State {
	return s.state
}

// Completed returns the number of words finished in this session.
func (s *Session) Completed() int {
	return s.completed
}

// Skipped returns the number of words skipped with Escape.
func (s *Session) Skipped() int {
	return s.skipped
}

// Dispatch applies an event and returns the resulting state.
func (s *Session) Dispatch(ev Event) State {
	switch ev := ev.(type) {
	case TextChanged:
		s.textChanged(ev.Text)
	case EscapePressed:
		s.skipped++
		s.next()
	}
	return s.state
}

func (s *Session) textChanged(text string) {
	entry := s.state.Entry
	if entry.Word != "" && text == entry.Word {
		s.completed++
		s.next()
		return
	}
	label, complete := ComputeMarkedLabel(entry.Reading, text)
	if complete {
		s.completed++
		s.next()
		return
	}
	s.state = State{Entry: entry, Typed: text, Mark: label}
}

func (s *Session) next() {
	entry := s.entries[s.pick()]
	label, _ := ComputeMarkedLabel(entry.Reading, "")
	s.state = State{Entry: entry, Mark: label}
}

func (s *Session) pick() int {
	n := len(s.entries)
	if s.picker == nil || n == 1 {
		return 0
	}
	i := s.picker.Pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}
