package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func obliqueView(eye mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

func TestAxes_FlipTowardCamera(t *testing.T) {
	c := newTestContext(t)
	_, proj := testCamera()
	view := obliqueView(mgl32.Vec3{-3, 2, 4})

	c.computeFrame(view, proj, mgl32.Ident4(), World, Translate)
	assert.Equal(t, [3]float32{1, 1, 1}, c.frame.world.factor, "flip disabled by default")

	c.SetAllowAxisFlip(true)
	c.computeFrame(view, proj, mgl32.Ident4(), World, Translate)
	assert.Equal(t, [3]float32{-1, 1, 1}, c.frame.world.factor)
	assert.True(t, c.tripod(0, false).flipped)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, c.tripod(0, false).axis)
}

func TestAxes_FrozenWhileDragging(t *testing.T) {
	c := newTestContext(t)
	c.SetAllowAxisFlip(true)
	_, proj := testCamera()

	c.computeFrame(obliqueView(mgl32.Vec3{-3, 2, 4}), proj, mgl32.Ident4(), World, Translate)
	c.drag.active = true
	c.editingID = c.CurrentID()
	c.axes.arm(c.frameIndex, c.frame.world, c.frame.local)

	c.computeFrame(obliqueView(mgl32.Vec3{3, 2, 4}), proj, mgl32.Ident4(), World, Translate)
	assert.Equal(t, float32(1), c.frame.world.factor[0])
	assert.Equal(t, float32(-1), c.snapshot(false).factor[0], "dragging instance keeps its arm-time flip")

	c.PushID(3)
	assert.Equal(t, float32(1), c.snapshot(false).factor[0], "other instances see the live state")
	c.PopID()

	c.Reset()
	assert.Equal(t, float32(1), c.snapshot(false).factor[0])
}

func TestAxes_HideEdgeOn(t *testing.T) {
	c := newTestContext(t)
	view, proj := testCamera()
	c.computeFrame(view, proj, mgl32.Ident4(), World, Translate)

	assert.True(t, c.frame.world.axisVisible[0])
	assert.True(t, c.frame.world.axisVisible[1])
	assert.False(t, c.frame.world.axisVisible[2], "Z points at the camera")
	assert.True(t, c.frame.world.planeVisible[2])
	assert.False(t, c.frame.world.planeVisible[0], "YZ plane is edge-on")
}

func TestAxes_MaskHidesAxis(t *testing.T) {
	c := newTestContext(t)
	view, proj := testCamera()
	c.SetAxisMask(true, false, false)
	c.computeFrame(view, proj, mgl32.Ident4(), World, Translate)

	assert.False(t, c.frame.world.axisVisible[0])
	assert.True(t, c.frame.world.axisVisible[1])
	// only the plane normal to the sole masked axis survives
	assert.False(t, c.frame.world.planeVisible[2])
}
