package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/kanatype/internal/keyboard"
	"github.com/verte-zerg/kanatype/internal/layout"
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2.0

type cell struct {
	text string
	fg   string
	bg   string
	cont bool
}

// canvas is a grid of terminal cells that draw commands are rasterized onto.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x].text = " "
		}
		c.cells[y] = row
	}
	return c
}

// keyboardRegion returns the renderer region covering cols x rows cells.
func keyboardRegion(cols, rows int) keyboard.Rect {
	return keyboard.Rect{W: float64(cols), H: float64(rows) * cellAspect}
}

// RenderKeyboard renders l with mark highlighted into cols x rows cells.
func RenderKeyboard(renderer keyboard.Renderer, l *layout.Layout, mark string, cols, rows int) string {
	frame := renderer.Render(l, mark, keyboardRegion(cols, rows))
	return rasterize(frame, cols, rows).String()
}

// KeyboardRows returns the rows needed to draw l at cols columns without letterboxing.
func KeyboardRows(l *layout.Layout, cols int) int {
	if cols <= 0 || l.Width() <= 0 {
		return 0
	}
	unit := float64(cols) / l.Width()
	return int(math.Ceil(unit * float64(l.Height()) / cellAspect))
}

// rasterize draws the frame commands onto a cols x rows canvas.
func rasterize(frame keyboard.Frame, cols, rows int) *canvas {
	c := newCanvas(cols, rows)
	for _, cmd := range frame.Commands {
		x0, y0, x1, y1 := cellBounds(cmd.Rect)
		switch cmd.Kind {
		case keyboard.FillRect, keyboard.RoundRect:
			c.fill(x0, y0, x1, y1, cmd.Color)
		case keyboard.Text:
			c.centerText(x0, y0, x1, y1, cmd.Text, cmd.Color)
		}
	}
	return c
}

func cellBounds(r keyboard.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X))
	x1 = int(math.Round(r.X + r.W))
	y0 = int(math.Round(r.Y / cellAspect))
	y1 = int(math.Round((r.Y + r.H) / cellAspect))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *canvas) fill(x0, y0, x1, y1 int, bg string) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !c.inside(x, y) {
				continue
			}
			// Splitting a wide rune leaves a lone lead cell.
			if c.cells[y][x].cont && x > 0 {
				c.cells[y][x-1].text = " "
			}
			c.cells[y][x] = cell{text: " ", bg: bg}
		}
	}
}

func (c *canvas) centerText(x0, y0, x1, y1 int, text, fg string) {
	avail := x1 - x0
	if avail <= 0 || text == "" {
		return
	}
	if runewidth.StringWidth(text) > avail {
		text = runewidth.Truncate(text, avail, "")
	}
	width := runewidth.StringWidth(text)
	x := x0 + (avail-width)/2
	y := y0 + (y1-y0-1)/2
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if !c.inside(x, y) || !c.inside(x+w-1, y) {
			return
		}
		bg := c.cells[y][x].bg
		c.cells[y][x] = cell{text: string(r), fg: fg, bg: bg}
		for i := 1; i < w; i++ {
			c.cells[y][x+i] = cell{fg: fg, bg: bg, cont: true}
		}
		x += w
	}
}

// String renders the canvas, grouping runs of cells that share colors.
func (c *canvas) String() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var line strings.Builder
		var run strings.Builder
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle()
			if fg != "" {
				style = style.Foreground(lipgloss.Color(fg))
			}
			if bg != "" {
				style = style.Background(lipgloss.Color(bg))
			}
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.fg != fg || cl.bg != bg {
				flush()
				fg, bg = cl.fg, cl.bg
			}
			run.WriteString(cl.text)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
