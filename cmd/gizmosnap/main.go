// Command gizmosnap replays a scripted gizmo session without a window and
// writes the last frame to an image.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/canvas/raster"
	"github.com/gekko3d/gizmo/internal/scenario"
	"github.com/gekko3d/gizmo/internal/scene"
)

var background = color.NRGBA{R: 38, G: 38, B: 44, A: 255}

func main() {
	configFile := flag.String("config", "", "Path to gizmo config JSON")
	scenarioFile := flag.String("scenario", "", "Path to scenario JSON (default: idle translate gizmo)")
	out := flag.String("out", "gizmo.png", "Output image (.png, .webp or .tga)")
	width := flag.Int("w", 0, "Override scenario width")
	height := flag.Int("h", 0, "Override scenario height")
	op := flag.String("op", "", "Override scenario operation, e.g. rotate or translate|scale")
	debug := flag.Bool("debug", false, "Log drag events")
	flag.Parse()

	logger := gizmo.NewDefaultLogger("gizmosnap", *debug)

	cfg := gizmo.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = gizmo.LoadConfig(*configFile); err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	sc := scenario.Default()
	if *scenarioFile != "" {
		var err error
		if sc, err = scenario.Load(*scenarioFile); err != nil {
			log.Fatalf("Error loading scenario: %v", err)
		}
	}
	if *width > 0 {
		sc.Width = *width
	}
	if *height > 0 {
		sc.Height = *height
	}
	if *op != "" {
		sc.Operation = *op
	}
	if err := sc.Validate(); err != nil {
		log.Fatalf("Invalid scenario: %v", err)
	}

	format, err := raster.FormatForPath(*out)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := run(cfg, sc, *out, format, logger); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(cfg gizmo.Config, sc scenario.Scenario, out string, format raster.Format, logger gizmo.Logger) error {
	canvas, err := raster.New(sc.Width, sc.Height)
	if err != nil {
		return fmt.Errorf("create canvas: %w", err)
	}

	ctx := gizmo.NewContext(cfg, gizmo.WithLogger(logger))
	cam := sc.NewCamera()
	view := scene.NewView(cam.View(), cam.Projection(float32(sc.Width)/float32(sc.Height)),
		float32(sc.Width), float32(sc.Height))
	box := gizmo.Box{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}

	res := sc.Replay(ctx, func(model mgl32.Mat4) gizmo.Canvas {
		canvas.Clear(background)
		view.DrawGrid(canvas, 5, 0.5)
		view.DrawBox(canvas, model, box, scene.BoxColor)
		return canvas
	})
	logger.Infof("replayed %d frames, %d modified", res.Frames, res.Modified)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := raster.Encode(f, canvas.Image(), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	logger.Infof("wrote %s (%s, %dx%d)", out, format, sc.Width, sc.Height)
	return nil
}
