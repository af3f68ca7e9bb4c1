// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"sceneui.org/f32"
	"sceneui.org/io/event"
)

// DragEvent is the semantic event produced by drag handles and
// rewritten by draggable groups on its way to the root.
type DragEvent struct {
	Kind DragKind
	// Tag identifies the re-emitting component. It is nil on events
	// freshly produced by a handle and set by the first group that
	// rewrites the event.
	Tag event.Tag
	// Position is the raw pointer coordinate on handle events, and
	// the group translation on rewritten events. It is unused for
	// Cancel.
	Position f32.Point
}

// KeyEvent reports an activated key of a virtual keyboard widget.
type KeyEvent struct {
	Tag   event.Tag
	Label string
}

// DragKind of a DragEvent.
type DragKind uint8

const (
	// BeginMove opens a drag session.
	BeginMove DragKind = iota
	// Move repositions within an open session.
	Move
	// EndMove closes a session, leaving the translation in place.
	EndMove
	// Cancel abandons a session, restoring the translation recorded
	// when it was opened.
	Cancel
)

func (k DragKind) String() string {
	switch k {
	case BeginMove:
		return "BeginMove"
	case Move:
		return "Move"
	case EndMove:
		return "EndMove"
	case Cancel:
		return "Cancel"
	default:
		panic("unknown DragKind")
	}
}

func (DragEvent) ImplementsEvent() {}

func (KeyEvent) ImplementsEvent() {}
