// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router implements the input dispatcher and its pointer capture
broker. Pointer samples queued on a Router are delivered synchronously
and in order, either to every listening handler, or exclusively to the
single handler holding a capture of the sample's channel.

At most one handler holds a capture at any instant. A handler that
captures is obligated to release on every path that ends its interest
in further samples; an unreleased capture starves every other listener
of pointer input.
*/
package router

import (
	"errors"

	"golang.org/x/exp/slices"

	"sceneui.org/io/event"
	"sceneui.org/io/pointer"
)

var (
	// ErrCaptureHeld is reported when a capture is requested while
	// another handler holds one.
	ErrCaptureHeld = errors.New("router: pointer capture held by another handler")
	// ErrNotListening is reported when a capture is requested by a
	// tag with no registered handler.
	ErrNotListening = errors.New("router: capture requested by unregistered tag")
)

// Handler receives pointer samples. A non-nil error aborts the
// handler's own processing only; delivery to other listeners
// continues.
type Handler func(pointer.Event) error

type listener struct {
	tag event.Tag
	fn  Handler
}

// Router delivers pointer samples to listeners and arbitrates
// exclusive capture of input channels.
//
// Routers are not safe for concurrent use; all input is expected to
// arrive from a single dispatch goroutine.
type Router struct {
	listeners []listener

	// holder is the current capture holder, nil when no capture
	// is in effect.
	holder   event.Tag
	captured pointer.Channels
}

// Listen registers fn to receive samples for tag, replacing any
// previous registration for the same tag.
func (r *Router) Listen(tag event.Tag, fn Handler) {
	for i, l := range r.listeners {
		if l.tag == tag {
			r.listeners[i].fn = fn
			return
		}
	}
	r.listeners = append(r.listeners, listener{tag: tag, fn: fn})
}

// Unlisten removes the registration for tag. If tag holds a capture
// the capture is released, so a torn down component cannot starve the
// remaining listeners.
func (r *Router) Unlisten(tag event.Tag) {
	if r.holder == tag {
		r.holder = nil
		r.captured = 0
	}
	r.listeners = slices.DeleteFunc(r.listeners, func(l listener) bool {
		return l.tag == tag
	})
}

// Capture grants tag exclusive delivery of samples on the given
// channels. Capturing is idempotent for the current holder; the
// channel set is extended. Capturing while another tag holds fails
// with ErrCaptureHeld and leaves the existing capture untouched.
func (r *Router) Capture(tag event.Tag, ch pointer.Channels) error {
	if !slices.ContainsFunc(r.listeners, func(l listener) bool { return l.tag == tag }) {
		return ErrNotListening
	}
	if r.holder != nil && r.holder != tag {
		return ErrCaptureHeld
	}
	r.holder = tag
	r.captured |= ch
	return nil
}

// Release gives up tag's exclusive delivery on the given channels.
// Releasing a capture not held by tag is a no-op.
func (r *Router) Release(tag event.Tag, ch pointer.Channels) {
	if r.holder != tag {
		return
	}
	r.captured &^= ch
	if r.captured == 0 {
		r.holder = nil
	}
}

// Holder reports the tag holding a capture, or nil.
func (r *Router) Holder() event.Tag {
	return r.holder
}

// Queue delivers events in order. Each event runs to completion in
// every receiving handler before the next is delivered. Handler
// errors are collected and joined; they never stop delivery to
// sibling listeners.
func (r *Router) Queue(events ...pointer.Event) error {
	var errs []error
	for _, e := range events {
		if r.holder != nil && r.captured&e.Channel() != 0 {
			if fn := r.handlerFor(r.holder); fn != nil {
				if err := fn(e); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		// Snapshot the listener list: a handler may register,
		// unregister or capture during delivery.
		for _, l := range slices.Clone(r.listeners) {
			if err := l.fn(e); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (r *Router) handlerFor(tag event.Tag) Handler {
	for _, l := range r.listeners {
		if l.tag == tag {
			return l.fn
		}
	}
	return nil
}
