// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"errors"
	"testing"

	"sceneui.org/f32"
	"sceneui.org/io/pointer"
)

func TestBroadcastWithoutCapture(t *testing.T) {
	var r Router
	h1, h2 := new(int), new(int)
	var got1, got2 []pointer.Event
	r.Listen(h1, func(e pointer.Event) error { got1 = append(got1, e); return nil })
	r.Listen(h2, func(e pointer.Event) error { got2 = append(got2, e); return nil })

	if err := r.Queue(
		pointer.Event{Kind: pointer.Press, Position: f32.Pt(1, 2)},
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(3, 4)},
	); err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(got1) != 2 || len(got2) != 2 {
		t.Errorf("got %d and %d events, want 2 and 2", len(got1), len(got2))
	}
}

func TestCaptureExclusive(t *testing.T) {
	var r Router
	h1, h2 := new(int), new(int)
	var got1, got2 int
	r.Listen(h1, func(pointer.Event) error { got1++; return nil })
	r.Listen(h2, func(pointer.Event) error { got2++; return nil })

	if err := r.Capture(h1, pointer.ChannelButton|pointer.ChannelPosition); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if err := r.Capture(h2, pointer.ChannelButton); !errors.Is(err, ErrCaptureHeld) {
		t.Errorf("second capture: got %v, want ErrCaptureHeld", err)
	}
	// Recapture by the holder is idempotent.
	if err := r.Capture(h1, pointer.ChannelButton); err != nil {
		t.Errorf("recapture by holder: %v", err)
	}
	if r.Holder() != h1 {
		t.Errorf("Holder = %v, want h1", r.Holder())
	}

	if err := r.Queue(
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(1, 1)},
		pointer.Event{Kind: pointer.Release},
	); err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if got1 != 2 || got2 != 0 {
		t.Errorf("holder saw %d events, sibling %d; want 2 and 0", got1, got2)
	}
}

func TestReleaseRestoresBroadcast(t *testing.T) {
	var r Router
	h1, h2 := new(int), new(int)
	var got2 int
	r.Listen(h1, func(pointer.Event) error { return nil })
	r.Listen(h2, func(pointer.Event) error { got2++; return nil })

	if err := r.Capture(h1, pointer.ChannelButton|pointer.ChannelPosition); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	// A release by a non-holder is a no-op.
	r.Release(h2, pointer.ChannelButton|pointer.ChannelPosition)
	if r.Holder() != h1 {
		t.Fatalf("non-holder release cleared the capture")
	}
	// Releasing one channel keeps the capture on the other.
	r.Release(h1, pointer.ChannelButton)
	if r.Holder() != h1 {
		t.Fatalf("partial release cleared the capture")
	}
	r.Release(h1, pointer.ChannelPosition)
	if r.Holder() != nil {
		t.Fatalf("Holder = %v after full release, want nil", r.Holder())
	}

	if err := r.Queue(pointer.Event{Kind: pointer.Move}); err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if got2 != 1 {
		t.Errorf("sibling saw %d events after release, want 1", got2)
	}
}

func TestCaptureByUnregisteredTag(t *testing.T) {
	var r Router
	if err := r.Capture(new(int), pointer.ChannelButton); !errors.Is(err, ErrNotListening) {
		t.Errorf("got %v, want ErrNotListening", err)
	}
}

func TestUnlistenReleasesCapture(t *testing.T) {
	var r Router
	h1, h2 := new(int), new(int)
	var got2 int
	r.Listen(h1, func(pointer.Event) error { return nil })
	r.Listen(h2, func(pointer.Event) error { got2++; return nil })

	if err := r.Capture(h1, pointer.ChannelPosition); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	r.Unlisten(h1)
	if r.Holder() != nil {
		t.Fatalf("Holder = %v after Unlisten, want nil", r.Holder())
	}
	if err := r.Queue(pointer.Event{Kind: pointer.Move}); err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if got2 != 1 {
		t.Errorf("sibling saw %d events, want 1", got2)
	}
}

func TestHandlerErrorsDoNotStopSiblings(t *testing.T) {
	var r Router
	h1, h2 := new(int), new(int)
	boom := errors.New("boom")
	var got2 int
	r.Listen(h1, func(pointer.Event) error { return boom })
	r.Listen(h2, func(pointer.Event) error { got2++; return nil })

	err := r.Queue(pointer.Event{Kind: pointer.Press})
	if !errors.Is(err, boom) {
		t.Errorf("Queue error = %v, want wrapped boom", err)
	}
	if got2 != 1 {
		t.Errorf("sibling saw %d events, want 1", got2)
	}
}

func TestChannelGating(t *testing.T) {
	var r Router
	h1, h2 := new(int), new(int)
	var got1, got2 []pointer.Kind
	r.Listen(h1, func(e pointer.Event) error { got1 = append(got1, e.Kind); return nil })
	r.Listen(h2, func(e pointer.Event) error { got2 = append(got2, e.Kind); return nil })

	// Capture positions only; button samples still broadcast.
	if err := r.Capture(h1, pointer.ChannelPosition); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if err := r.Queue(
		pointer.Event{Kind: pointer.Move},
		pointer.Event{Kind: pointer.Press},
	); err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(got1) != 2 {
		t.Errorf("holder saw %d events, want 2", len(got1))
	}
	if len(got2) != 1 || got2[0] != pointer.Press {
		t.Errorf("sibling saw %v, want [Press]", got2)
	}
}
