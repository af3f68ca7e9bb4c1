// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements raw pointer samples as delivered by an
// input dispatcher. A sample is either a button transition carrying
// the pressed button set and key modifiers, or a bare position update.
package pointer

import (
	"strings"

	"gioui.org/io/key"
	giopointer "gioui.org/io/pointer"

	"sceneui.org/f32"
)

// Event is a single pointer sample in surface coordinates.
type Event struct {
	Kind Kind
	// Buttons are the set of pressed buttons for button samples.
	Buttons Buttons
	// Position is the pointer coordinate in surface space.
	Position f32.Point
	// Modifiers is the set of active key modifiers when the
	// button changed state.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint8

// Buttons is a set of pointer buttons.
type Buttons uint8

// Channels is a set of named input channels. A capture restricted to a
// channel set diverts only samples delivered on those channels.
type Channels uint8

const (
	// Press of a pointer button.
	Press Kind = 1 << iota
	// Release of a pointer button.
	Release
	// Move of the pointer position.
	Move
)

const (
	// ButtonPrimary is the primary button, usually the left button
	// for a right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right
	// button for a right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

const (
	// ChannelButton carries button press and release samples.
	ChannelButton Channels = 1 << iota
	// ChannelPosition carries position samples.
	ChannelPosition
)

// Channel reports the input channel the event is delivered on.
func (e Event) Channel() Channels {
	if e.Kind == Move {
		return ChannelPosition
	}
	return ChannelButton
}

// FromGio converts a Gio pointer event into a sample. The second
// return value is false for event kinds with no sample equivalent,
// such as scrolls and enter/leave transitions.
func FromGio(e giopointer.Event) (Event, bool) {
	var kind Kind
	switch e.Kind {
	case giopointer.Press:
		kind = Press
	case giopointer.Release:
		kind = Release
	case giopointer.Move, giopointer.Drag:
		kind = Move
	default:
		return Event{}, false
	}
	return Event{
		Kind:      kind,
		Buttons:   Buttons(e.Buttons),
		Position:  f32.Point(e.Position),
		Modifiers: e.Modifiers,
	}, true
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		panic("unknown Kind")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (c Channels) String() string {
	var strs []string
	if c&ChannelButton != 0 {
		strs = append(strs, "ChannelButton")
	}
	if c&ChannelPosition != 0 {
		strs = append(strs, "ChannelPosition")
	}
	return strings.Join(strs, "|")
}

func (Event) ImplementsEvent() {}
