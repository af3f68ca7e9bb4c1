// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types shared by all event handlers.
package event

// Tag is the stable identifier for an event handler or an event's
// originating component. For a handler h, the tag is typically &h.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
