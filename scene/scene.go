// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene implements a small retained visual tree and the event
bubbling chain that connects its groups.

The tree is built from two items: Rect, a sized and filled leaf, and
Group, a translated container. A Surface owns the root group, the
render host the tree is committed to, and the consumer callback that
receives events bubbled all the way to the root.
*/
package scene

import (
	"image/color"

	"sceneui.org/f32"
	"sceneui.org/io/event"
)

// Item is a node of the visual tree, either a *Rect or a *Group.
type Item interface {
	item()
}

// Rect is a filled rectangle of the given size, positioned at the
// origin of its containing group.
type Rect struct {
	Size f32.Point
	Fill color.NRGBA
}

// Group is a container translating its children by an offset relative
// to its parent. Groups are also the stations of the bubbling chain:
// events emitted by a descendant pass through every ancestor group's
// rules on their way to the root.
type Group struct {
	parent   *Group
	offset   f32.Point
	children []Item
	rules    []Rule

	// sink receives events that bubble past the root un-absorbed.
	// It is only set on a Surface's root group.
	sink func(event.Event)
}

// NewGroup returns a group translated by offset.
func NewGroup(offset f32.Point) *Group {
	return &Group{offset: offset}
}

// Insert appends items to the group's children. Inserting a group
// re-parents it.
func (g *Group) Insert(items ...Item) {
	for _, it := range items {
		if c, ok := it.(*Group); ok {
			c.parent = g
		}
		g.children = append(g.children, it)
	}
}

// Handle appends interception rules. Rules run in registration order;
// the first match wins.
func (g *Group) Handle(rules ...Rule) {
	g.rules = append(g.rules, rules...)
}

// Offset returns the group's translation.
func (g *Group) Offset() f32.Point {
	return g.offset
}

// SetOffset sets the group's translation. The caller is responsible
// for committing the surface afterwards.
func (g *Group) SetOffset(p f32.Point) {
	g.offset = p
}

// AbsOffset returns the group's translation in surface space, the sum
// of its own offset and every ancestor's.
func (g *Group) AbsOffset() f32.Point {
	p := g.offset
	for n := g.parent; n != nil; n = n.parent {
		p = p.Add(n.offset)
	}
	return p
}

// Children returns the group's child items. The returned slice is the
// group's own; callers must not modify it.
func (g *Group) Children() []Item {
	return g.children
}

func (*Rect) item()  {}
func (*Group) item() {}

// Surface is the root of a visual tree on a render host. Events that
// bubble to the root without being absorbed are passed, fire and
// forget, to OnEvent.
type Surface struct {
	host   Host
	bounds f32.Point
	root   Group

	// OnEvent receives root-level events. It may be nil.
	OnEvent func(event.Event)
}

// NewSurface returns a surface on host, recording the host's current
// bounds for later queries.
func NewSurface(host Host) *Surface {
	s := &Surface{host: host, bounds: host.Bounds()}
	s.root.sink = func(e event.Event) {
		if s.OnEvent != nil {
			s.OnEvent(e)
		}
	}
	return s
}

// Root returns the surface's root group.
func (s *Surface) Root() *Group {
	return &s.root
}

// Bounds reports the surface dimensions recorded at construction.
func (s *Surface) Bounds() f32.Point {
	return s.bounds
}

// Commit pushes the current tree to the render host. A rejected
// commit is fatal to the caller and reported as a *CommitError.
func (s *Surface) Commit() error {
	if err := s.host.Commit(&s.root); err != nil {
		return &CommitError{Err: err}
	}
	return nil
}
