// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements reusable interactive building blocks on top
of the scene and gesture packages: a draggable group container and a
virtual keyboard.
*/
package widget

import (
	"sceneui.org/f32"
	"sceneui.org/io/event"
	"sceneui.org/scene"
)

// DragGroup is a positioned container whose translation follows drag
// events bubbled from descendant drag handles. The translation is
// only ever written here, in response to in-bounds moves of an open
// session or a session-abandoning cancel.
type DragGroup struct {
	// Tag identifies the group on the events it re-emits. It
	// defaults to the group itself.
	Tag event.Tag

	group   *scene.Group
	surface *scene.Surface
	bounds  f32.Point

	dragging bool
	// offset is the pointer-to-translation delta fixed when the
	// session opened; origin is the translation to restore on
	// cancel. origin starts at the initial translation so a cancel
	// with no session ever opened leaves the group in place.
	offset f32.Point
	origin f32.Point
}

// NewDragGroup wraps children in a group translated by at, inserts it
// into parent and installs the drag interception rules. The surface's
// bounds are recorded for move acceptance.
func NewDragGroup(s *scene.Surface, parent *scene.Group, at f32.Point, children ...scene.Item) *DragGroup {
	g := &DragGroup{
		group:   scene.NewGroup(at),
		surface: s,
		bounds:  s.Bounds(),
		origin:  at,
	}
	g.Tag = g
	g.group.Insert(children...)
	parent.Insert(g.group)
	g.group.Handle(
		scene.Rule{When: g.when(scene.BeginMove, false), Do: g.beginMove},
		scene.Rule{When: g.when(scene.Move, true), Do: g.move},
		scene.Rule{When: g.when(scene.EndMove, true), Do: g.endMove},
		scene.Rule{When: g.whenCancel, Do: g.cancel},
	)
	return g
}

// Group returns the underlying scene group, for attaching handles and
// further children.
func (g *DragGroup) Group() *scene.Group {
	return g.group
}

// Translation returns the group's current translation.
func (g *DragGroup) Translation() f32.Point {
	return g.group.Offset()
}

// Dragging reports whether a drag session is open.
func (g *DragGroup) Dragging() bool {
	return g.dragging
}

// when matches drag events of the given kind that were produced by a
// descendant handle, guarded on the session state.
func (g *DragGroup) when(kind scene.DragKind, dragging bool) func(event.Event) bool {
	return func(e event.Event) bool {
		ev, ok := e.(scene.DragEvent)
		return ok && ev.Kind == kind && ev.Tag == nil && g.dragging == dragging
	}
}

// whenCancel matches cancels in any state: a cancel with no open
// session still restores the origin, idempotently.
func (g *DragGroup) whenCancel(e event.Event) bool {
	ev, ok := e.(scene.DragEvent)
	return ok && ev.Kind == scene.Cancel && ev.Tag == nil
}

func (g *DragGroup) beginMove(e event.Event) (event.Event, scene.Disposition, error) {
	ev := e.(scene.DragEvent)
	t := g.group.Offset()
	g.offset = ev.Position.Sub(t)
	g.origin = t
	g.dragging = true
	// The forwarded event reports the group's own position, not the
	// raw pointer coordinate.
	return scene.DragEvent{Kind: scene.BeginMove, Tag: g.Tag, Position: t}, scene.Continue, nil
}

func (g *DragGroup) move(e event.Event) (event.Event, scene.Disposition, error) {
	ev := e.(scene.DragEvent)
	p := ev.Position
	if !(0 < p.X && p.X < g.bounds.X && 0 < p.Y && p.Y < g.bounds.Y) {
		// Out of the viewport, boundary included: absorbed, no
		// movement, session stays open.
		return nil, scene.Stop, nil
	}
	pos := p.Sub(g.offset)
	g.group.SetOffset(pos)
	if err := g.surface.Commit(); err != nil {
		return nil, scene.Stop, err
	}
	return scene.DragEvent{Kind: scene.Move, Tag: g.Tag, Position: pos}, scene.Continue, nil
}

func (g *DragGroup) endMove(e event.Event) (event.Event, scene.Disposition, error) {
	ev := e.(scene.DragEvent)
	// The outgoing position is derived from the sample like a move,
	// but is not written back; the translation keeps whatever the
	// last accepted move set.
	pos := ev.Position.Sub(g.offset)
	g.dragging = false
	return scene.DragEvent{Kind: scene.EndMove, Tag: g.Tag, Position: pos}, scene.Continue, nil
}

func (g *DragGroup) cancel(event.Event) (event.Event, scene.Disposition, error) {
	g.group.SetOffset(g.origin)
	g.dragging = false
	if err := g.surface.Commit(); err != nil {
		return nil, scene.Stop, err
	}
	// Cancellation is local; it is never forwarded.
	return nil, scene.Stop, nil
}
