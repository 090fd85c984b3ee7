package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

func (c *Context) armRotate(h Handle) {
	f := &c.frame
	d := &c.drag

	if h == RotateScreenHandle || f.mode == Local {
		normals := [4]mgl32.Vec3{
			geom.Basis(f.model, 0),
			geom.Basis(f.model, 1),
			geom.Basis(f.model, 2),
			f.cameraDir.Mul(-1),
		}
		idx := h.Axis()
		if h == RotateScreenHandle {
			idx = 3
		}
		d.plane = geom.BuildPlane(geom.Position(f.model), normals[idx])
	} else {
		d.plane = geom.BuildPlane(geom.Position(f.modelSource), geom.Unit(h.Axis()))
	}

	d.rotationSource = geom.Normalize(c.pickPlaneHit().Sub(geom.Position(f.model)))
	d.angleOrigin = c.angleOnPlane()
	d.angle = d.angleOrigin
}

// angleOnPlane is the signed angle between the armed direction and the
// current mouse direction on the pick plane.
func (c *Context) angleOnPlane() float32 {
	d := &c.drag
	local := geom.Normalize(c.pickPlaneHit().Sub(geom.Position(c.frame.model)))
	perp := geom.Normalize(d.rotationSource.Cross(d.plane.Normal))
	cos := mgl32.Clamp(local.Dot(d.rotationSource), -1, 1)
	angle := float32(math.Acos(float64(cos)))
	if local.Dot(perp) < 0 {
		return angle
	}
	return -angle
}

func (c *Context) updateRotate(p Params, matrix, delta *mgl32.Mat4) bool {
	f := &c.frame
	d := &c.drag

	d.angle = c.angleOnPlane()
	if p.Snap != nil {
		d.angle = geom.Snap(d.angle, mgl32.DegToRad(p.Snap[0]))
	}

	axisLocal := geom.Normalize(geom.TransformVector(f.modelInverse, d.plane.Normal))
	step := geom.RotationAxis(axisLocal, d.angle-d.angleOrigin)
	modified := d.angle != d.angleOrigin
	d.angleOrigin = d.angle

	if d.local {
		s := f.scaleOrigin
		*matrix = f.modelLocal.Mul4(step).Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	} else {
		res := f.modelSource
		geom.SetBasis(&res, 3, mgl32.Vec3{})
		res = step.Mul4(res)
		geom.SetBasis(&res, 3, geom.Position(f.modelSource))
		*matrix = res
	}

	if delta != nil {
		*delta = f.model.Mul4(step).Mul4(f.modelInverse)
	}
	return modified
}
