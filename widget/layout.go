// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Layout describes a virtual keyboard: uniform key size, the gap
// between neighbouring keys, and the key labels row by row. A Layout
// is a plain value fixed at construction; widgets never share or
// mutate one.
type Layout struct {
	Name    string  `toml:"name"`
	KeySize float32 `toml:"key_size"`
	Gap     float32 `toml:"gap"`
	Rows    []Row   `toml:"row"`
}

// Row is one keyboard row.
type Row struct {
	Keys []string `toml:"keys"`
}

// DefaultLayout returns a compact three row layout with a space bar.
func DefaultLayout() Layout {
	return Layout{
		Name:    "compact",
		KeySize: 32,
		Gap:     4,
		Rows: []Row{
			{Keys: []string{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"}},
			{Keys: []string{"a", "s", "d", "f", "g", "h", "j", "k", "l"}},
			{Keys: []string{"z", "x", "c", "v", "b", "n", "m"}},
			{Keys: []string{"space"}},
		},
	}
}

// LoadLayout reads a layout from a TOML file.
func LoadLayout(path string) (Layout, error) {
	var l Layout
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return Layout{}, fmt.Errorf("widget: keyboard layout %q: %w", path, err)
	}
	return l, nil
}

// validate reports whether the layout can produce a keyboard.
func (l Layout) validate() error {
	if l.KeySize <= 0 || l.Gap < 0 || len(l.Rows) == 0 {
		return fmt.Errorf("widget: keyboard layout: %w", ErrInvalidLayout)
	}
	for _, r := range l.Rows {
		if len(r.Keys) == 0 {
			return fmt.Errorf("widget: keyboard layout: %w", ErrInvalidLayout)
		}
	}
	return nil
}

// clone deep-copies the layout so the widget's copy is immune to
// later mutation by the caller.
func (l Layout) clone() Layout {
	rows := make([]Row, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = Row{Keys: append([]string(nil), r.Keys...)}
	}
	l.Rows = rows
	return l
}

// size returns the keyboard dimensions, title bar included.
func (l Layout) size() (w, h float32) {
	longest := 0
	for _, r := range l.Rows {
		if len(r.Keys) > longest {
			longest = len(r.Keys)
		}
	}
	w = l.Gap + float32(longest)*(l.KeySize+l.Gap)
	h = handleHeight + l.Gap + float32(len(l.Rows))*(l.KeySize+l.Gap)
	return w, h
}
