// Package keyboard turns a layout and a marked label into resolution
// independent draw commands.
package keyboard

import (
	"math"

	"github.com/verte-zerg/kanatype/internal/layout"
)

// DefaultFont is the font family requested for key labels.
const DefaultFont = "Noto Sans CJK JP"

// Rect is an axis aligned rectangle in surface units.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Theme holds the colors used by the renderer.
type Theme struct {
	Background    string
	Base          string
	KeyFill       string
	HighlightFill string
	Text          string
}

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() Theme {
	return Theme{
		Background:    "#1E1E1E",
		Base:          "#262626",
		KeyFill:       "#3A3A3A",
		HighlightFill: "#C89A3A",
		Text:          "#F0F0F0",
	}
}

// CommandKind identifies a draw primitive.
type CommandKind int

const (
	FillRect CommandKind = iota
	RoundRect
	Text
)

// Command is a single draw operation. Text commands are centered in Rect.
type Command struct {
	Kind      CommandKind
	Rect      Rect
	Radius    float64
	Color     string
	Text      string
	PixelSize int
	Font      string
}

// KeyView is the resolved geometry and highlight state of one key.
type KeyView struct {
	Row    int
	Index  int
	Key    layout.Key
	Rect   Rect
	Radius float64
	Marked bool
}

// Frame is the result of rendering a layout into a region.
type Frame struct {
	Region      Rect
	Box         Rect
	Unit        float64
	ShiftActive bool
	Keys        []KeyView
	Commands    []Command
}

// MarkedKeys returns the keys drawn with the highlight fill.
func (f Frame) MarkedKeys() []KeyView {
	var out []KeyView
	for _, kv := range f.Keys {
		if kv.Marked {
			out = append(out, kv)
		}
	}
	return out
}

// Renderer draws layouts with an explicit theme.
type Renderer struct {
	Theme Theme
	Font  string
}

// NewRenderer returns a renderer using theme and the default font.
func NewRenderer(theme Theme) Renderer {
	return Renderer{Theme: theme, Font: DefaultFont}
}

// Fit returns the largest rectangle with the layout's aspect ratio centered in
// region. ok is false when region has no area.
func Fit(l *layout.Layout, region Rect) (box Rect, ok bool) {
	if region.Empty() || l.Height() == 0 {
		return Rect{}, false
	}
	ratio := l.Width() / float64(l.Height())
	dx, dy := 0.0, 0.0
	dw, dh := region.W, region.H
	if region.W/region.H > ratio {
		dw = math.Round(dh * ratio)
		dx = math.Round((region.W - dw) / 2)
	} else {
		dh = math.Round(dw / ratio)
		dy = math.Round((region.H - dh) / 2)
	}
	if dw <= 0 || dh <= 0 {
		return Rect{}, false
	}
	return Rect{X: region.X + dx, Y: region.Y + dy, W: dw, H: dh}, true
}

// ShiftActive reports whether mark is only reachable through a shifted label.
func ShiftActive(l *layout.Layout, mark string) bool {
	if mark == "" {
		return false
	}
	for y := 0; y < l.Height(); y++ {
		for _, pk := range l.KeysInRow(y) {
			if pk.Shift == mark {
				return true
			}
		}
	}
	return false
}

// Render lays out every key of l inside region and marks the keys matching
// mark. A degenerate region yields an empty frame.
func (r Renderer) Render(l *layout.Layout, mark string, region Rect) Frame {
	frame := Frame{Region: region}
	box, ok := Fit(l, region)
	if !ok {
		return frame
	}
	kw := box.W / l.Width()
	inset := kw / 16
	radius := kw / 8
	pixelSize := int(math.Round(kw / 4))

	frame.Box = box
	frame.Unit = kw
	frame.ShiftActive = ShiftActive(l, mark)
	frame.Commands = append(frame.Commands,
		Command{Kind: FillRect, Rect: region, Color: r.Theme.Background},
		Command{Kind: FillRect, Rect: box, Color: r.Theme.Base},
	)

	for y := 0; y < l.Height(); y++ {
		for i, pk := range l.KeysInRow(y) {
			rect := Rect{
				X: box.X + pk.X*kw + inset,
				Y: box.Y + float64(y)*kw + inset,
				W: kw*pk.Width - kw/8,
				H: kw - kw/8,
			}
			marked := pk.Has(mark) || (frame.ShiftActive && pk.Alt == layout.ShiftLabel)
			fill := r.Theme.KeyFill
			if marked {
				fill = r.Theme.HighlightFill
			}
			frame.Keys = append(frame.Keys, KeyView{
				Row:    y,
				Index:  i,
				Key:    pk.Key,
				Rect:   rect,
				Radius: radius,
				Marked: marked,
			})
			frame.Commands = append(frame.Commands, Command{Kind: RoundRect, Rect: rect, Radius: radius, Color: fill})
			if label := pk.Label(); label != "" {
				frame.Commands = append(frame.Commands, Command{
					Kind:      Text,
					Rect:      rect,
					Color:     r.Theme.Text,
					Text:      label,
					PixelSize: pixelSize,
					Font:      r.Font,
				})
			}
		}
	}
	return frame
}
