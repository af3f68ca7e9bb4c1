// SPDX-License-Identifier: Unlicense OR MIT

// Command scenedemo drives the drag interaction stack against a
// logging render host: it builds a draggable virtual keyboard,
// replays a scripted pointer trace and prints every event that
// bubbles to the root.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"sceneui.org/f32"
	"sceneui.org/io/event"
	"sceneui.org/io/pointer"
	"sceneui.org/io/router"
	"sceneui.org/scene"
	"sceneui.org/widget"
)

var (
	width      float32
	height     float32
	layoutPath string
)

// logHost prints committed trees instead of rendering them.
type logHost struct {
	bounds  f32.Point
	commits int
}

func (h *logHost) Commit(root *scene.Group) error {
	h.commits++
	log.Printf("commit %d: %d root items", h.commits, len(root.Children()))
	return nil
}

func (h *logHost) Bounds() f32.Point {
	return h.bounds
}

func main() {
	root := &cobra.Command{
		Use:   "scenedemo",
		Short: "Replay a pointer trace through a draggable virtual keyboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.Flags().Float32Var(&width, "width", 400, "surface width")
	root.Flags().Float32Var(&height, "height", 400, "surface height")
	root.Flags().StringVar(&layoutPath, "layout", "", "keyboard layout TOML file")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	layout := widget.DefaultLayout()
	if layoutPath != "" {
		var err error
		if layout, err = widget.LoadLayout(layoutPath); err != nil {
			return err
		}
	}

	host := &logHost{bounds: f32.Pt(width, height)}
	surf := scene.NewSurface(host)
	surf.OnEvent = func(e event.Event) {
		switch e := e.(type) {
		case scene.DragEvent:
			log.Printf("root: %s %v", e.Kind, e.Position)
		case scene.KeyEvent:
			log.Printf("root: key %q", e.Label)
		default:
			log.Printf("root: %#v", e)
		}
	}

	var r router.Router
	kb, err := widget.NewKeyboard(&r, surf, surf.Root(), f32.Pt(50, 50), layout)
	if err != nil {
		return err
	}
	defer kb.Detach()
	if err := surf.Commit(); err != nil {
		return err
	}

	// Drag the keyboard by its title bar, then tap the first key.
	trace := []pointer.Event{
		{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(60, 55)},
		{Kind: pointer.Move, Position: f32.Pt(90, 70)},
		{Kind: pointer.Move, Position: f32.Pt(120, 80)},
		{Kind: pointer.Release, Position: f32.Pt(120, 80)},
		{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(130, 100)},
		{Kind: pointer.Release, Position: f32.Pt(130, 100)},
	}
	if err := r.Queue(trace...); err != nil {
		return err
	}
	log.Printf("keyboard translation: %v", kb.Group().Translation())
	return nil
}
