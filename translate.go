package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

func (c *Context) armTranslate(h Handle) {
	f := &c.frame
	pos := geom.Position(f.model)

	var normal mgl32.Vec3
	switch {
	case h == MoveScreen:
		normal = f.cameraDir.Mul(-1)
	case h.IsPlanar():
		normal = geom.Basis(f.model, h.Axis())
	default:
		// plane containing the axis and facing the camera as much as
		// possible
		axis := geom.Basis(f.model, h.Axis())
		camToModel := geom.Normalize(pos.Sub(f.cameraEye))
		normal = geom.Normalize(axis.Cross(axis.Cross(camToModel)))
	}

	d := &c.drag
	d.plane = geom.BuildPlane(pos, normal)
	d.planeOrigin = c.pickPlaneHit()
	d.matrixOrigin = pos
	d.relativeOrigin = d.planeOrigin.Sub(pos).Mul(1 / f.screenFactor)
}

func (c *Context) updateTranslate(p Params, matrix, delta *mgl32.Mat4) bool {
	f := &c.frame
	d := &c.drag
	pos := geom.Position(f.model)

	// the ray starts inside the frustum, so the pick plane can lie behind
	// its origin
	t := geom.Absf(f.ray.Intersect(d.plane))
	newOrigin := f.ray.At(t).Sub(d.relativeOrigin.Mul(f.screenFactor))
	move := newOrigin.Sub(pos)

	if d.handle.IsLinear() {
		axis := geom.Basis(f.model, d.handle.Axis())
		move = axis.Mul(axis.Dot(move))
	}

	if p.Snap != nil {
		cumulative := pos.Add(move).Sub(d.matrixOrigin)
		if d.local {
			src := geom.Orthonormalize(f.modelSource)
			srcInverse, _ := geom.Inverse(src)
			cumulative = geom.TransformVector(srcInverse, cumulative)
			cumulative = geom.SnapVec3(cumulative, *p.Snap)
			cumulative = geom.TransformVector(src, cumulative)
		} else {
			cumulative = geom.SnapVec3(cumulative, *p.Snap)
		}
		move = d.matrixOrigin.Add(cumulative).Sub(pos)
	}

	modified := move != mgl32.Vec3{}

	step := mgl32.Translate3D(move[0], move[1], move[2])
	if delta != nil {
		*delta = step
	}
	*matrix = step.Mul4(f.modelSource)
	return modified
}
