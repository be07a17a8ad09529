// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/kanatype/internal/i18n"
	"github.com/verte-zerg/kanatype/internal/kana"
	"github.com/verte-zerg/kanatype/internal/keyboard"
	"github.com/verte-zerg/kanatype/internal/layout"
	"github.com/verte-zerg/kanatype/internal/session"
)

// Lines above the keyboard: reading, word, blank, input, blank.
const headerLines = 5

// Model implements the Bubble Tea typing UI.
type Model struct {
	session  *session.Session
	layout   *layout.Layout
	renderer keyboard.Renderer
	loc      *i18n.Localizer

	input textinput.Model
	state session.State

	width  int
	height int
}

// NewModel constructs a typing TUI model.
func NewModel(sess *session.Session, l *layout.Layout, renderer keyboard.Renderer, loc *i18n.Localizer) *Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = loc.T("placeholder")
	input.Focus()
	return &Model{
		session:  sess,
		layout:   l,
		renderer: renderer,
		loc:      loc,
		input:    input,
		state:    sess.State(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width / 2
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.state = m.session.Dispatch(session.EscapePressed{})
			m.input.SetValue("")
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.handleText(value)
	}
	return m, cmd
}

func (m *Model) handleText(raw string) {
	m.state = m.session.Dispatch(session.TextChanged{Text: kana.Normalize(raw)})
	// The session either advanced, which clears the field, or folded a
	// diacritic keystroke into the previous kana.
	if m.state.Typed != raw {
		m.input.SetValue(m.state.Typed)
		m.input.CursorEnd()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	header := []string{
		renderReading(m.state.Entry.Reading, m.state.Typed),
		wordStyle.Render(m.state.Entry.Word),
		"",
		m.input.View(),
		"",
	}
	if m.width == 0 || m.height == 0 {
		return strings.Join(header, "\n")
	}

	lines := make([]string, 0, m.height)
	for _, line := range header {
		lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
	}
	kbRows := m.height - headerLines - 1
	if kbRows > 0 {
		lines = append(lines, RenderKeyboard(m.renderer, m.layout, m.state.Mark, m.width, kbRows))
	}
	lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter()))
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{
		m.loc.TData("completed", map[string]any{"Count": m.session.Completed()}),
		m.loc.TData("skipped", map[string]any{"Count": m.session.Skipped()}),
		m.loc.T("hint"),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
