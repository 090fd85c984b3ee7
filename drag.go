package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// minScale keeps scale ratios away from zero so the matrix stays
// invertible.
const minScale = 0.001

// dragState is the scratch of the single active handle drag.
type dragState struct {
	active bool
	handle Handle
	// local selects the composition frame, fixed when the drag is armed.
	local bool

	plane          geom.Plane
	planeOrigin    mgl32.Vec3
	matrixOrigin   mgl32.Vec3
	relativeOrigin mgl32.Vec3

	rotationSource mgl32.Vec3
	angle          float32
	angleOrigin    float32

	scale            mgl32.Vec3
	scaleLast        mgl32.Vec3
	scaleValueOrigin mgl32.Vec3
	savedMouseX      float32
}

// handleDrag continues the active drag of the current identity, or hit-tests
// for a hovered handle and arms it on a fresh click. It returns the handle
// to highlight and whether the matrix changed.
func (c *Context) handleDrag(p Params, matrix, delta *mgl32.Mat4) (Handle, bool) {
	if c.drag.active {
		if c.CurrentID() != c.editingID {
			return HandleNone, false
		}
		h := c.drag.handle
		return h, c.updateDrag(p, matrix, delta)
	}

	h := HandleNone
	if !c.overHotspot {
		h = c.hoveredHandle(p.Operation)
	}
	c.overHotspot = c.overHotspot || h != HandleNone
	if h == HandleNone || !c.canActivate() {
		return h, false
	}
	c.armDrag(h)
	return h, false
}

func (c *Context) armDrag(h Handle) {
	c.drag = dragState{
		active: true,
		handle: h,
		local:  c.frame.mode == Local,
		scale:  mgl32.Vec3{1, 1, 1},
	}
	c.drag.scaleLast = c.drag.scale
	c.editingID = c.CurrentID()
	c.axes.arm(c.frameIndex, c.frame.world, c.frame.local)

	switch h.Family() {
	case FamilyTranslate:
		c.armTranslate(h)
	case FamilyRotate:
		c.armRotate(h)
	case FamilyScale:
		c.armScale(h)
	}
	c.log.Debugf("drag armed handle=%v id=%08x frame=%d", h, c.editingID, c.frameIndex)
}

func (c *Context) updateDrag(p Params, matrix, delta *mgl32.Mat4) bool {
	var modified bool
	switch c.drag.handle.Family() {
	case FamilyTranslate:
		modified = c.updateTranslate(p, matrix, delta)
	case FamilyRotate:
		modified = c.updateRotate(p, matrix, delta)
	case FamilyScale:
		modified = c.updateScale(p, matrix, delta)
	}
	if !c.input.MouseDown {
		c.endDrag()
	}
	return modified
}

func (c *Context) endDrag() {
	c.log.Debugf("drag released handle=%v id=%08x", c.drag.handle, c.editingID)
	c.drag.active = false
	c.drag.scale = mgl32.Vec3{1, 1, 1}
	c.editingID = blankID
	c.axes.disarm()
}

// pickPlaneHit intersects the picking ray with the drag plane.
func (c *Context) pickPlaneHit() mgl32.Vec3 {
	return c.frame.ray.At(c.frame.ray.Intersect(c.drag.plane))
}
