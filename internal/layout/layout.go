// Package layout describes physical keyboard layouts as grids of labeled keys.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// Function labels carried in Key.Alt.
const (
	ShiftLabel     = "Shift"
	BackspaceLabel = "Backspace"
)

const widthEpsilon = 1e-9

// ErrInvalidLayout is matched by every InvalidLayoutError.
var ErrInvalidLayout = errors.New("invalid layout")

// InvalidLayoutError reports why a layout was rejected at load time.
type InvalidLayoutError struct {
	ID     string
	Row    int
	Key    int
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	switch {
	case e.Key >= 0:
		return fmt.Sprintf("invalid layout %q: row %d key %d: %s", e.ID, e.Row, e.Key, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("invalid layout %q: row %d: %s", e.ID, e.Row, e.Reason)
	default:
		return fmt.Sprintf("invalid layout %q: %s", e.ID, e.Reason)
	}
}

// Is makes errors.Is(err, ErrInvalidLayout) succeed.
func (e *InvalidLayoutError) Is(target error) bool {
	return target == ErrInvalidLayout
}

// Key is a single physical key. Empty labels are absent.
type Key struct {
	Main  string
	Shift string
	Alt   string
	Width float64
}

// Label returns the glyph displayed on the key: Main, or Alt when Main is absent.
func (k Key) Label() string {
	if k.Main != "" {
		return k.Main
	}
	return k.Alt
}

// SubLabel returns the secondary legend, which is Alt when Main is present.
func (k Key) SubLabel() string {
	if k.Main != "" {
		return k.Alt
	}
	return ""
}

// Has reports whether any of the key's labels equals label.
func (k Key) Has(label string) bool {
	if label == "" {
		return false
	}
	return k.Main == label || k.Shift == label || k.Alt == label
}

// Row is an ordered sequence of keys.
type Row []Key

// PlacedKey is a key with its cumulative x offset in key units.
type PlacedKey struct {
	Key
	X float64
}

// Layout is a validated rectangular grid of rows. It is immutable after Load.
type Layout struct {
	id    string
	rows  []Row
	width float64
}

// Load validates rows and builds a Layout.
func Load(id string, rows []Row) (*Layout, error) {
	if len(rows) == 0 {
		return nil, &InvalidLayoutError{ID: id, Row: -1, Key: -1, Reason: "no rows"}
	}
	copied := make([]Row, len(rows))
	var width float64
	for y, row := range rows {
		if len(row) == 0 {
			return nil, &InvalidLayoutError{ID: id, Row: y, Key: -1, Reason: "row is empty"}
		}
		total := 0.0
		for x, k := range row {
			if !(k.Width > 0) || math.IsInf(k.Width, 0) {
				return nil, &InvalidLayoutError{ID: id, Row: y, Key: x, Reason: fmt.Sprintf("width %v must be positive", k.Width)}
			}
			total += k.Width
		}
		if y == 0 {
			width = total
		} else if math.Abs(total-width) > widthEpsilon {
			return nil, &InvalidLayoutError{ID: id, Row: y, Key: -1, Reason: fmt.Sprintf("total width %v differs from row 0 width %v", total, width)}
		}
		copied[y] = append(Row(nil), row...)
	}
	return &Layout{id: id, rows: copied, width: width}, nil
}

// ID returns the registry identifier of the layout.
func (l *Layout) ID() string {
	return l.id
}

// Width returns the grid width in key units, the sum of row 0.
func (l *Layout) Width() float64 {
	return l.width
}

// Height returns the number of rows.
func (l *Layout) Height() int {
	return len(l.rows)
}

// KeysInRow returns the keys of row y with their x offsets, or nil when y is out of range.
func (l *Layout) KeysInRow(y int) []PlacedKey {
	if y < 0 || y >= len(l.rows) {
		return nil
	}
	out := make([]PlacedKey, 0, len(l.rows[y]))
	x := 0.0
	for _, k := range l.rows[y] {
		out = append(out, PlacedKey{Key: k, X: x})
		x += k.Width
	}
	return out
}

// Labels returns the set of all non-empty labels on the layout.
func (l *Layout) Labels() map[string]struct{} {
	labels := map[string]struct{}{}
	for _, row := range l.rows {
		for _, k := range row {
			for _, s := range []string{k.Main, k.Shift, k.Alt} {
				if s != "" {
					labels[s] = struct{}{}
				}
			}
		}
	}
	return labels
}
