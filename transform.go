package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// Transform is a position, rotation and scale, composed as T * R * S.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// DecomposeTransform splits an affine matrix without shear. A mirrored
// basis is reported as a negative X scale.
func DecomposeTransform(m mgl32.Mat4) Transform {
	scale := geom.BasisLengths(m)
	if m.Mat3().Det() < 0 {
		scale[0] = -scale[0]
	}

	var rot mgl32.Mat4
	for i := 0; i < 3; i++ {
		col := geom.Basis(m, i)
		if geom.Absf(scale[i]) > geom.Epsilon {
			col = col.Mul(1 / scale[i])
		}
		geom.SetBasis(&rot, i, col)
	}
	rot[15] = 1

	return Transform{
		Position: geom.Position(m),
		Rotation: mgl32.Mat4ToQuat(rot).Normalize(),
		Scale:    scale,
	}
}
