package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

func (c *Context) armScale(h Handle) {
	f := &c.frame
	d := &c.drag
	pos := geom.Position(f.modelLocal)

	var normal mgl32.Vec3
	switch h {
	case ScaleXHandle:
		normal = geom.Basis(f.modelLocal, 1)
	case ScaleYHandle:
		normal = geom.Basis(f.modelLocal, 2)
	case ScaleZHandle:
		normal = geom.Basis(f.modelLocal, 0)
	default:
		normal = f.cameraDir.Mul(-1)
	}

	d.plane = geom.BuildPlane(pos, normal)
	d.planeOrigin = c.pickPlaneHit()
	d.matrixOrigin = pos
	d.relativeOrigin = d.planeOrigin.Sub(pos).Mul(1 / f.screenFactor)
	d.scaleValueOrigin = geom.BasisLengths(f.modelSource)
	d.savedMouseX = c.input.MouseX
}

func (c *Context) updateScale(p Params, matrix, delta *mgl32.Mat4) bool {
	f := &c.frame
	d := &c.drag
	pos := geom.Position(f.modelLocal)

	if d.handle.IsLinear() {
		i := d.handle.Axis()
		axis := geom.Basis(f.modelLocal, i)
		newOrigin := c.pickPlaneHit().Sub(d.relativeOrigin.Mul(f.screenFactor))
		move := newOrigin.Sub(pos)
		move = axis.Mul(axis.Dot(move))

		base := d.planeOrigin.Sub(pos)
		ratio := axis.Dot(base.Add(move)) / axis.Dot(base)
		d.scale[i] = max(ratio, minScale)
	} else {
		s := max(1+(c.input.MouseX-d.savedMouseX)*c.cfg.UniformScaleSensitivity, minScale)
		d.scale = mgl32.Vec3{s, s, s}
	}

	if p.Snap != nil {
		axes := []int{0, 1, 2}
		if d.handle.IsLinear() {
			axes = axes[d.handle.Axis() : d.handle.Axis()+1]
		}
		for _, i := range axes {
			length := geom.Snap(d.scale[i]*d.scaleValueOrigin[i], p.Snap[0])
			if d.scaleValueOrigin[i] > geom.Epsilon {
				d.scale[i] = length / d.scaleValueOrigin[i]
			}
		}
	}
	for i := 0; i < 3; i++ {
		d.scale[i] = max(d.scale[i], minScale)
	}

	modified := d.scale != d.scaleLast
	d.scaleLast = d.scale

	abs := geom.MulElem(d.scale, d.scaleValueOrigin)
	*matrix = f.modelLocal.Mul4(mgl32.Scale3D(abs[0], abs[1], abs[2]))

	if delta != nil {
		step := mgl32.Vec3{
			abs[0] / f.scaleOrigin[0],
			abs[1] / f.scaleOrigin[1],
			abs[2] / f.scaleOrigin[2],
		}
		*delta = mgl32.Scale3D(step[0], step[1], step[2])
	}
	return modified
}
