package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/kanatype/internal/keyboard"
	"github.com/verte-zerg/kanatype/internal/layout"
)

func findCell(c *canvas, text string) (cell, bool) {
	for _, row := range c.cells {
		for _, cl := range row {
			if cl.text == text {
				return cl, true
			}
		}
	}
	return cell{}, false
}

func TestRasterizeHighlightsMarkedKey(t *testing.T) {
	reg, err := layout.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	l, err := reg.Get(layout.ANSI)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	theme := keyboard.DefaultTheme()
	frame := keyboard.NewRenderer(theme).Render(l, "か", keyboardRegion(75, 13))
	c := rasterize(frame, 75, 13)

	marked, ok := findCell(c, "か")
	if !ok {
		t.Fatalf("expected か label on canvas")
	}
	if marked.bg != theme.HighlightFill || marked.fg != theme.Text {
		t.Fatalf("expected highlighted cell, got %+v", marked)
	}
	plain, ok := findCell(c, "た")
	if !ok {
		t.Fatalf("expected た label on canvas")
	}
	if plain.bg != theme.KeyFill {
		t.Fatalf("expected neutral key fill, got %+v", plain)
	}

	out := c.String()
	if lines := strings.Split(out, "\n"); len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d", len(lines))
	}
}

func TestCenterTextWideRunes(t *testing.T) {
	c := newCanvas(6, 1)
	c.centerText(0, 0, 6, 1, "かな", "#FFFFFF")
	if c.cells[0][1].text != "か" || !c.cells[0][2].cont || c.cells[0][3].text != "な" {
		t.Fatalf("unexpected cells: %+v", c.cells[0])
	}
	if got := c.String(); got != " かな " {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestCenterTextTruncates(t *testing.T) {
	c := newCanvas(4, 1)
	c.centerText(0, 0, 4, 1, "Backspace", "")
	if got := c.String(); got != "Back" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestFillSplitsWideRune(t *testing.T) {
	c := newCanvas(4, 1)
	c.centerText(0, 0, 4, 1, "か", "")
	c.fill(2, 0, 4, 1, "")
	if got := c.String(); got != "    " {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestRasterizeDegenerateFrame(t *testing.T) {
	c := rasterize(keyboard.Frame{}, 3, 2)
	if got := c.String(); got != "   \n   " {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestBuildStyledReading(t *testing.T) {
	runes := buildStyledReading([]rune("ねこ"), []rune("x"))
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0] != incorrectStyle.Render("ね") {
		t.Fatalf("expected incorrect style for first rune")
	}
	if runes[1] != cursorStyle.Render("こ") {
		t.Fatalf("expected cursor style for second rune")
	}
	done := buildStyledReading([]rune("ね"), []rune("ね"))
	if done[0] != correctStyle.Render("ね") {
		t.Fatalf("expected correct style")
	}
}

func TestKeyboardRows(t *testing.T) {
	reg, err := layout.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	l, err := reg.Get(layout.ANSI)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := KeyboardRows(l, 90); got != 15 {
		t.Fatalf("expected 15 rows, got %d", got)
	}
	if got := KeyboardRows(l, 0); got != 0 {
		t.Fatalf("expected 0 rows, got %d", got)
	}
	out := RenderKeyboard(keyboard.NewRenderer(keyboard.DefaultTheme()), l, "っ", 90, 15)
	if !strings.Contains(out, "Shift") || !strings.Contains(out, "つ") {
		t.Fatalf("expected shift and つ labels in output")
	}
}
