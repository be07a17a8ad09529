// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	Layout       string
	WordListPath string
	Source       string
	UILang       string
	Theme        ThemeConfig
}

// ThemeConfig holds the keyboard colors as lipgloss color strings.
type ThemeConfig struct {
	Background    string
	Base          string
	KeyFill       string
	HighlightFill string
	Text          string
}

// WordEntry is a target word and its kana reading.
type WordEntry struct {
	Word    string
	Reading string
}

// WordRecord is a word bank row including its inclusion status.
type WordRecord struct {
	Word    string
	Reading string
	Status  int
}
