package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/geom"
)

type orbitControls struct {
	// Sensitivity is radians of orbit per pixel of mouse travel.
	Sensitivity float32
	// ZoomStep is the distance factor per wheel notch.
	ZoomStep float32
}

// viewer is the interactive state of the window between frames.
type viewer struct {
	cam      *geom.Camera
	gizmo    *gizmo.Gizmo
	model    mgl32.Mat4
	controls orbitControls

	snap       mgl32.Vec3
	snapOn     bool
	showBounds bool
	box        gizmo.Box
}

func newViewer() *viewer {
	cam := geom.NewCamera()
	cam.Yaw = mgl32.DegToRad(35)
	cam.Pitch = mgl32.DegToRad(25)
	cam.Distance = 6
	return &viewer{
		cam:      cam,
		gizmo:    gizmo.NewGizmo(),
		model:    mgl32.Ident4(),
		controls: orbitControls{Sensitivity: 0.01, ZoomStep: 0.1},
		snap:     mgl32.Vec3{0.25, 0.25, 0.25},
		box:      gizmo.Box{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}},
	}
}

// handleInput applies camera and shortcut input. It returns the input to
// hand to the gizmo, captured while the camera owns the mouse.
func (v *viewer) handleInput(in gizmo.Input, orbiting bool, dx, dy float32, gizmoBusy bool) gizmo.Input {
	if !gizmoBusy {
		if orbiting {
			v.cam.Orbit(-dx*v.controls.Sensitivity, dy*v.controls.Sensitivity)
		}
		if in.Scroll != 0 {
			v.cam.Zoom(1 - in.Scroll*v.controls.ZoomStep)
		}
	}
	in.MouseCaptured = in.MouseCaptured || orbiting

	if gizmoBusy || in.Shift() || in.Ctrl() {
		return in
	}
	v.gizmo.HandleKeyboard(in)
	switch {
	case in.JustPressed[gizmo.KeyU]:
		v.gizmo.Operation = gizmo.Universal
	case in.JustPressed[gizmo.KeyB]:
		v.showBounds = !v.showBounds
	case in.JustPressed[gizmo.KeyN]:
		v.snapOn = !v.snapOn
	case in.JustPressed[gizmo.KeyO]:
		v.cam.Orthographic = !v.cam.Orthographic
	case in.JustPressed[gizmo.KeyX]:
		v.model = mgl32.Ident4()
	}
	return in
}

// applyToggles pushes the snap, bounds and projection toggles into the
// gizmo and context before drawing.
func (v *viewer) applyToggles(ctx *gizmo.Context) {
	v.gizmo.Snap = nil
	if v.snapOn {
		s := v.snap
		if v.gizmo.Operation.Intersects(gizmo.Rotate) && !v.gizmo.Operation.Intersects(gizmo.Translate) {
			s = mgl32.Vec3{15, 0, 0}
		}
		v.gizmo.Snap = &s
	}
	v.gizmo.Bounds = nil
	if v.showBounds {
		b := v.box
		v.gizmo.Bounds = &b
	}
	ctx.SetOrthographic(v.cam.Orthographic)
}

func (v *viewer) title() string {
	t := fmt.Sprintf("gizmoview - %s (%s)", v.gizmo.Operation, v.gizmo.Mode)
	if v.snapOn {
		t += " snap"
	}
	if v.showBounds {
		t += " bounds"
	}
	return t
}
