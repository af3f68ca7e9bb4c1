// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"image/color"

	"golang.org/x/image/colornames"

	"sceneui.org/f32"
	"sceneui.org/gesture"
	"sceneui.org/io/router"
	"sceneui.org/scene"
)

// ErrInvalidLayout is reported for keyboard layouts with no rows,
// empty rows or a non-positive key size.
var ErrInvalidLayout = errors.New("layout must have a positive key size and non-empty rows")

// handleHeight is the height of the title bar strip the keyboard is
// dragged by.
const handleHeight float32 = 15

// Keyboard is a draggable virtual keyboard. Key activations bubble a
// KeyEvent to the root surface; the title bar is a drag handle moving
// the whole widget.
type Keyboard struct {
	layout Layout
	drag   *DragGroup
	handle *gesture.Drag
	clicks []*gesture.Click
}

// NewKeyboard builds a keyboard from layout at the initial translation
// at, inserting it into parent. The layout is copied; later mutation
// by the caller has no effect.
func NewKeyboard(r *router.Router, s *scene.Surface, parent *scene.Group, at f32.Point, layout Layout) (*Keyboard, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	kb := &Keyboard{layout: layout.clone()}
	w, h := kb.layout.size()

	bar := scene.NewGroup(f32.Pt(0, 0))
	bar.Insert(&scene.Rect{
		Size: f32.Pt(w, handleHeight),
		Fill: color.NRGBA(colornames.Slategray),
	})
	body := scene.NewGroup(f32.Pt(0, 0))
	body.Insert(&scene.Rect{
		Size: f32.Pt(w, h),
		Fill: color.NRGBA(colornames.Lightsteelblue),
	})

	kb.drag = NewDragGroup(s, parent, at, body, bar)

	handle, err := gesture.NewDrag(r, kb.drag.Group(), f32.Pt(0, 0), f32.Pt(w, handleHeight))
	if err != nil {
		return nil, err
	}
	kb.handle = handle

	sz := kb.layout.KeySize
	gap := kb.layout.Gap
	for i, row := range kb.layout.Rows {
		y := handleHeight + gap + float32(i)*(sz+gap)
		for j, label := range row.Keys {
			x := gap + float32(j)*(sz+gap)
			key := scene.NewGroup(f32.Pt(x, y))
			key.Insert(&scene.Rect{
				Size: f32.Pt(sz, sz),
				Fill: color.NRGBA(colornames.White),
			})
			kb.drag.Group().Insert(key)
			label := label
			click, err := gesture.NewClick(r, key, f32.Pt(0, 0), f32.Pt(sz, sz), func(f32.Point) error {
				return key.Emit(scene.KeyEvent{Tag: kb.drag.Tag, Label: label})
			})
			if err != nil {
				return nil, err
			}
			kb.clicks = append(kb.clicks, click)
		}
	}
	return kb, nil
}

// Handle returns the keyboard's drag handle, the receiver for cancel
// directives.
func (k *Keyboard) Handle() *gesture.Drag {
	return k.handle
}

// Group returns the draggable group the keyboard lives in.
func (k *Keyboard) Group() *DragGroup {
	return k.drag
}

// Layout returns a copy of the keyboard's layout.
func (k *Keyboard) Layout() Layout {
	return k.layout.clone()
}

// Detach unregisters the keyboard's recognizers, releasing any held
// capture.
func (k *Keyboard) Detach() {
	k.handle.Detach()
	for _, c := range k.clicks {
		c.Detach()
	}
}
