// SPDX-License-Identifier: Unlicense OR MIT

package scene

import "sceneui.org/io/event"

// Disposition is a handler's verdict on a bubbling event.
type Disposition uint8

const (
	// Continue forwards the event, possibly rewritten, to the
	// next ancestor.
	Continue Disposition = iota
	// Stop absorbs the event; no ancestor sees it.
	Stop
)

// HandlerFunc processes one bubbling event. On Continue the returned
// event replaces the incoming one for the rest of the chain. A non-nil
// error aborts the bubble and surfaces to the emitter's caller.
type HandlerFunc func(event.Event) (event.Event, Disposition, error)

// Rule pairs an event predicate with its handler. A group's rules are
// evaluated in order and the first rule whose When reports true wins.
// An event matching no rule passes through unchanged.
type Rule struct {
	When func(event.Event) bool
	Do   HandlerFunc
}

func (d Disposition) String() string {
	switch d {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	default:
		panic("unknown Disposition")
	}
}

// dispatch runs e through the group's rules, first match wins.
func (g *Group) dispatch(e event.Event) (event.Event, Disposition, error) {
	for _, r := range g.rules {
		if r.When(e) {
			return r.Do(e)
		}
	}
	return e, Continue, nil
}

// Emit bubbles e from g toward the root surface. Each group on the
// path, beginning with g itself, may rewrite or absorb the event; an
// event reaching the root still un-absorbed is handed to the surface's
// consumer. Handler errors abort the bubble immediately.
func (g *Group) Emit(e event.Event) error {
	for n := g; n != nil; n = n.parent {
		var (
			disp Disposition
			err  error
		)
		e, disp, err = n.dispatch(e)
		if err != nil {
			return err
		}
		if disp == Stop {
			return nil
		}
		if n.parent == nil && n.sink != nil {
			n.sink(e)
		}
	}
	return nil
}
