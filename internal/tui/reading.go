package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle    = currentStyle.Underline(true)
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// buildStyledReading styles each reading rune against the typed text: typed
// runes are correct or incorrect, the next rune carries the cursor and the
// rest are pending.
func buildStyledReading(reading, typed []rune) []string {
	out := make([]string, 0, len(reading))
	for i, target := range reading {
		style := pendingStyle
		switch {
		case i < len(typed) && typed[i] == target:
			style = correctStyle
		case i < len(typed):
			style = incorrectStyle
		case i == len(typed):
			style = cursorStyle
		}
		out = append(out, style.Render(string(target)))
	}
	return out
}

func renderReading(reading, typed string) string {
	return strings.Join(buildStyledReading([]rune(reading), []rune(typed)), "")
}
