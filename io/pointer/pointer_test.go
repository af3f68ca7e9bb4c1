// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"

	giof32 "gioui.org/f32"
	giopointer "gioui.org/io/pointer"

	"sceneui.org/f32"
)

func TestChannel(t *testing.T) {
	cases := []struct {
		kind Kind
		want Channels
	}{
		{Press, ChannelButton},
		{Release, ChannelButton},
		{Move, ChannelPosition},
	}
	for _, c := range cases {
		if got := (Event{Kind: c.kind}).Channel(); got != c.want {
			t.Errorf("%s: channel = %s, want %s", c.kind, got, c.want)
		}
	}
}

func TestFromGio(t *testing.T) {
	e, ok := FromGio(giopointer.Event{
		Kind:     giopointer.Press,
		Buttons:  giopointer.ButtonPrimary,
		Position: giof32.Point{X: 3, Y: 4},
	})
	if !ok {
		t.Fatal("Press not converted")
	}
	if e.Kind != Press || e.Buttons != ButtonPrimary || e.Position != f32.Pt(3, 4) {
		t.Errorf("converted event = %+v", e)
	}

	// Drags fold into Move; scrolls have no sample equivalent.
	if e, ok := FromGio(giopointer.Event{Kind: giopointer.Drag}); !ok || e.Kind != Move {
		t.Errorf("Drag converted to %v, %t", e.Kind, ok)
	}
	if _, ok := FromGio(giopointer.Event{Kind: giopointer.Scroll}); ok {
		t.Error("Scroll unexpectedly converted")
	}
}

func TestStrings(t *testing.T) {
	if got := (ButtonPrimary | ButtonTertiary).String(); got != "ButtonPrimary|ButtonTertiary" {
		t.Errorf("Buttons.String = %q", got)
	}
	if got := (ChannelButton | ChannelPosition).String(); got != "ChannelButton|ChannelPosition" {
		t.Errorf("Channels.String = %q", got)
	}
	if got := Move.String(); got != "Move" {
		t.Errorf("Kind.String = %q", got)
	}
}
