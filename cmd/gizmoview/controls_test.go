package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo"
)

func press(key int) gizmo.Input {
	var in gizmo.Input
	in.Pressed[key] = true
	in.JustPressed[key] = true
	return in
}

func TestViewer_OrbitCapturesMouse(t *testing.T) {
	v := newViewer()
	yaw, pitch := v.cam.Yaw, v.cam.Pitch

	in := v.handleInput(gizmo.Input{}, true, 10, -5, false)
	assert.True(t, in.MouseCaptured)
	assert.InDelta(t, yaw-0.1, v.cam.Yaw, 1e-6)
	assert.InDelta(t, pitch-0.05, v.cam.Pitch, 1e-6)

	in = v.handleInput(gizmo.Input{}, false, 10, 10, false)
	assert.False(t, in.MouseCaptured)
	assert.InDelta(t, yaw-0.1, v.cam.Yaw, 1e-6)
}

func TestViewer_CameraFrozenWhileDragging(t *testing.T) {
	v := newViewer()
	dist := v.cam.Distance

	v.handleInput(gizmo.Input{Scroll: 1}, false, 0, 0, true)
	assert.Equal(t, dist, v.cam.Distance)

	v.handleInput(gizmo.Input{Scroll: 1}, false, 0, 0, false)
	assert.InDelta(t, dist*0.9, v.cam.Distance, 1e-5)
}

func TestViewer_Shortcuts(t *testing.T) {
	v := newViewer()
	ctx := gizmo.NewContext(gizmo.DefaultConfig())

	v.handleInput(press(gizmo.KeyR), false, 0, 0, false)
	assert.Equal(t, gizmo.Rotate, v.gizmo.Operation)

	v.handleInput(press(gizmo.KeyN), false, 0, 0, false)
	v.handleInput(press(gizmo.KeyB), false, 0, 0, false)
	v.applyToggles(ctx)
	require.NotNil(t, v.gizmo.Snap)
	assert.Equal(t, mgl32.Vec3{15, 0, 0}, *v.gizmo.Snap, "rotation snaps in degrees")
	require.NotNil(t, v.gizmo.Bounds)
	assert.Contains(t, v.title(), "snap")
	assert.Contains(t, v.title(), "bounds")

	v.handleInput(press(gizmo.KeyU), false, 0, 0, false)
	v.applyToggles(ctx)
	assert.Equal(t, gizmo.Universal, v.gizmo.Operation)
	assert.Equal(t, mgl32.Vec3{0.25, 0.25, 0.25}, *v.gizmo.Snap)

	v.model = mgl32.Translate3D(1, 2, 3)
	v.handleInput(press(gizmo.KeyX), false, 0, 0, false)
	assert.Equal(t, mgl32.Ident4(), v.model)

	v.handleInput(press(gizmo.KeyO), false, 0, 0, false)
	v.applyToggles(ctx)
	assert.True(t, v.cam.Orthographic)
	assert.True(t, ctx.Config().Orthographic)
}

func TestViewer_ShortcutsIgnoredWhileDragging(t *testing.T) {
	v := newViewer()
	v.handleInput(press(gizmo.KeyR), false, 0, 0, true)
	assert.Equal(t, gizmo.Translate, v.gizmo.Operation)
}
