package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
)

// behindCameraDepth is the clip depth under which a perspective gizmo is
// considered behind the camera and skipped.
const behindCameraDepth = 0.0001

// Params describes one gizmo instance for a Manipulate call.
type Params struct {
	View, Projection mgl32.Mat4
	Operation        Operation
	Mode             Mode
	// Snap holds translation increments per axis, the rotation increment
	// in degrees in Snap[0], or the scale increment in Snap[0].
	Snap *mgl32.Vec3
	// Bounds enables the bounds stretcher on this local box.
	Bounds     *Box
	BoundsSnap *mgl32.Vec3
}

// Manipulate draws the gizmo for matrix and applies any drag in
// progress. It returns true when matrix was changed this call. When delta
// is not nil it receives the incremental transform of this call, or the
// identity.
func (c *Context) Manipulate(p Params, matrix, delta *mgl32.Mat4) bool {
	if clip, ok := c.canvas.(Clipper); ok {
		clip.PushClipRect(c.rect.Min(), c.rect.Max())
		defer clip.PopClipRect()
	}

	if delta != nil {
		*delta = mgl32.Ident4()
	}
	// no viewport to unproject the mouse into
	if c.rect.W <= 0 || c.rect.H <= 0 {
		return false
	}

	mode := p.Mode
	// world-space scaling would shear a rotated matrix
	if p.Operation.Intersects(Scale) {
		mode = Local
	}
	c.computeFrame(p.View, p.Projection, *matrix, mode, p.Operation)

	camSpace := c.frame.mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if camSpace[2] < behindCameraDepth && !c.cfg.Orthographic && !c.drag.active {
		return false
	}

	h := HandleNone
	modified := false
	if c.enabled && !c.bounds.active {
		h, modified = c.handleDrag(p, matrix, delta)
	}

	if p.Bounds != nil && !c.drag.active {
		if c.handleBounds(p, matrix) {
			modified = true
		}
	}

	c.op = p.Operation
	if modified {
		// draw at the new placement
		c.computeFrame(p.View, p.Projection, *matrix, mode, p.Operation)
	}
	if !c.bounds.active {
		c.drawRotation(p.Operation, h)
		c.drawTranslation(p.Operation, h)
		c.drawScale(p.Operation, h)
		c.drawScaleUniversal(p.Operation, h)
		c.drawScaleInfo(h)
	}
	return modified
}
