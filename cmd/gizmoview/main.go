// Command gizmoview opens a window with a box to move, rotate and scale.
//
// Left drag uses the gizmo, right drag orbits and the wheel zooms. G, R and
// S pick the operation and pressing it again toggles local/world. U selects
// the universal gizmo, B toggles bounds, N toggles snapping, O toggles the
// orthographic camera and X resets the box.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/canvas/drawlist"
	"github.com/gekko3d/gizmo/canvas/fontface"
	"github.com/gekko3d/gizmo/internal/scene"
	"github.com/gekko3d/gizmo/platform"
)

var background = color.NRGBA{R: 38, G: 38, B: 44, A: 255}

func main() {
	configFile := flag.String("config", "", "Path to gizmo config JSON")
	width := flag.Int("w", 1280, "Window width")
	height := flag.Int("h", 720, "Window height")
	fontFile := flag.String("font", "", "TrueType/OpenType font for labels (default: Go Regular)")
	debug := flag.Bool("debug", false, "Log drag events")
	flag.Parse()

	logger := gizmo.NewDefaultLogger("gizmoview", *debug)

	cfg := gizmo.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = gizmo.LoadConfig(*configFile); err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	face, err := fontface.Default(fontface.DefaultSize)
	if *fontFile != "" {
		face, err = fontface.Load(*fontFile, fontface.DefaultSize)
	}
	if err != nil {
		log.Fatalf("Error loading font: %v", err)
	}

	win, err := platform.NewWindow(*width, *height, "gizmoview")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer win.Close()

	list := drawlist.New(drawlist.NewAtlas(face))
	renderer, err := platform.NewRenderer(list.Atlas())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer renderer.Release()

	poller := platform.NewPoller(win)
	ctx := gizmo.NewContext(cfg, gizmo.WithLogger(logger))
	v := newViewer()
	title := ""

	for !win.ShouldClose() {
		in := poller.Poll()
		if in.JustPressed[gizmo.KeyEscape] {
			win.SetShouldClose(true)
		}
		in = v.handleInput(in, poller.SecondaryDown, poller.MouseDeltaX, poller.MouseDeltaY, ctx.IsUsingAny())
		v.applyToggles(ctx)
		if t := v.title(); t != title {
			title = t
			win.SetTitle(t)
		}

		w, h := win.Size()
		fbW, fbH := win.FramebufferSize()
		if w == 0 || h == 0 {
			win.SwapBuffers()
			continue
		}

		view := v.cam.View()
		proj := v.cam.Projection(float32(w) / float32(h))
		sv := scene.NewView(view, proj, float32(w), float32(h))

		list.Reset()
		sv.DrawGrid(list, 5, 0.5)
		sv.DrawBox(list, v.model, v.box, scene.BoxColor)

		ctx.BeginFrame(in, list)
		ctx.SetRect(0, 0, float32(w), float32(h))
		if delta := v.gizmo.Draw(ctx, &v.model, view, proj); delta != nil {
			logger.Debugf("delta position %v scale %v", delta.Position, delta.Scale)
		}

		renderer.Clear(fbW, fbH, background)
		renderer.Draw(list, w, h, float32(fbW)/float32(w))
		win.SwapBuffers()
	}
}
