// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements pointer gesture recognizers.

Recognizers consume raw pointer samples from a router and convert them
into semantic events bubbled through the scene group they are attached
to. A Drag captures the pointer for the duration of a press so no
sibling recognizer observes the intervening samples.
*/
package gesture

import (
	"errors"

	"sceneui.org/f32"
	"sceneui.org/io/pointer"
	"sceneui.org/io/router"
	"sceneui.org/scene"
)

// ErrInvalidConfiguration is reported for recognizers constructed
// with a non-positive hit region.
var ErrInvalidConfiguration = errors.New("gesture: hit region must have positive width and height")

// dragChannels is the channel set a pressed Drag captures: button
// transitions and position updates.
const dragChannels = pointer.ChannelButton | pointer.ChannelPosition

// Drag converts press, move and release samples over a rectangular
// hit region into BeginMove, Move and EndMove events emitted through
// the owning group.
type Drag struct {
	at    f32.Point
	size  f32.Point
	owner *scene.Group
	r     *router.Router

	state DragState
}

// DragState is the recognizer state.
type DragState uint8

const (
	// StateIdle is the default drag state.
	StateIdle DragState = iota
	// StatePressed is reported from an in-region press until the
	// matching release.
	StatePressed
)

// Click converts a press-then-release pair inside a rectangular hit
// region into a single activation. Clicks do not capture the pointer.
type Click struct {
	at    f32.Point
	size  f32.Point
	owner *scene.Group
	r     *router.Router
	fn    func(pos f32.Point) error

	pressed bool
}

// NewDrag returns a drag recognizer over the region of the given size
// positioned at the local offset at within owner, and registers it
// with the router. Non-positive dimensions fail with
// ErrInvalidConfiguration.
func NewDrag(r *router.Router, owner *scene.Group, at, size f32.Point) (*Drag, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrInvalidConfiguration
	}
	d := &Drag{at: at, size: size, owner: owner, r: r}
	r.Listen(d, d.pointer)
	return d, nil
}

// State reports the drag state.
func (d *Drag) State() DragState {
	return d.state
}

// Cancel emits a Cancel event through the owning group, asking any
// dragging ancestor to abandon the session. It is addressed to the
// recognizer directly rather than driven by pointer input, and it
// deliberately leaves the Pressed state and the capture in place; a
// captured handle stays captured until a genuine release arrives.
func (d *Drag) Cancel() error {
	return d.owner.Emit(scene.DragEvent{Kind: scene.Cancel})
}

// Detach unregisters the recognizer, releasing its capture if held.
func (d *Drag) Detach() {
	d.r.Release(d, dragChannels)
	d.r.Unlisten(d)
	d.state = StateIdle
}

func (d *Drag) pointer(e pointer.Event) error {
	switch e.Kind {
	case pointer.Press:
		if d.state != StateIdle || !d.hit(e.Position) {
			return nil
		}
		if err := d.r.Capture(d, dragChannels); err != nil {
			// Another recognizer owns the pointer; stay idle.
			return nil
		}
		d.state = StatePressed
		return d.owner.Emit(scene.DragEvent{Kind: scene.BeginMove, Position: e.Position})
	case pointer.Move:
		if d.state != StatePressed {
			return nil
		}
		// Every sample is forwarded as received; bounds checking
		// is the dragging group's concern.
		return d.owner.Emit(scene.DragEvent{Kind: scene.Move, Position: e.Position})
	case pointer.Release:
		if d.state != StatePressed {
			return nil
		}
		d.r.Release(d, dragChannels)
		d.state = StateIdle
		return d.owner.Emit(scene.DragEvent{Kind: scene.EndMove, Position: e.Position})
	}
	return nil
}

// hit reports whether the surface-space position p lands in the
// region, which follows the owning group as it moves.
func (d *Drag) hit(p f32.Point) bool {
	min := d.owner.AbsOffset().Add(d.at)
	return p.In(f32.Rectangle{Min: min, Max: min.Add(d.size)})
}

// NewClick returns a click recognizer over the region of the given
// size at the local offset at within owner. fn runs on every
// completed click with the position local to the region.
func NewClick(r *router.Router, owner *scene.Group, at, size f32.Point, fn func(pos f32.Point) error) (*Click, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrInvalidConfiguration
	}
	c := &Click{at: at, size: size, owner: owner, r: r, fn: fn}
	r.Listen(c, c.pointer)
	return c, nil
}

// Pressed reports whether a press is in progress.
func (c *Click) Pressed() bool {
	return c.pressed
}

// Detach unregisters the recognizer.
func (c *Click) Detach() {
	c.r.Unlisten(c)
	c.pressed = false
}

func (c *Click) pointer(e pointer.Event) error {
	switch e.Kind {
	case pointer.Press:
		if !c.pressed && c.hit(e.Position) {
			c.pressed = true
		}
	case pointer.Release:
		wasPressed := c.pressed
		c.pressed = false
		if wasPressed && c.hit(e.Position) {
			min := c.owner.AbsOffset().Add(c.at)
			return c.fn(e.Position.Sub(min))
		}
	}
	return nil
}

func (c *Click) hit(p f32.Point) bool {
	min := c.owner.AbsOffset().Add(c.at)
	return p.In(f32.Rectangle{Min: min, Max: min.Add(c.size)})
}

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid DragState")
	}
}
