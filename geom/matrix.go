package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Basis returns column i of m as a 3-vector.
func Basis(m mgl32.Mat4, i int) mgl32.Vec3 {
	return m.Col(i).Vec3()
}

// SetBasis replaces column i of m, keeping its w component.
func SetBasis(m *mgl32.Mat4, i int, v mgl32.Vec3) {
	m[i*4+0] = v[0]
	m[i*4+1] = v[1]
	m[i*4+2] = v[2]
}

// Position is the translation column of m.
func Position(m mgl32.Mat4) mgl32.Vec3 {
	return Basis(m, 3)
}

// Orthonormalize normalizes the right, up and dir columns independently.
// Mutual orthogonality is not enforced: a sheared input stays sheared.
func Orthonormalize(m mgl32.Mat4) mgl32.Mat4 {
	for i := 0; i < 3; i++ {
		SetBasis(&m, i, Normalize(Basis(m, i)))
	}
	return m
}

// BasisLengths returns the lengths of the right, up and dir columns.
func BasisLengths(m mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{Basis(m, 0).Len(), Basis(m, 1).Len(), Basis(m, 2).Len()}
}

// Inverse computes the general inverse of m by cofactor expansion and
// returns the determinant alongside it. A singular m yields Inf/NaN entries;
// callers that cannot guarantee invertibility should check det.
func Inverse(m mgl32.Mat4) (mgl32.Mat4, float32) {
	var inv mgl32.Mat4

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	invDet := 1 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return inv, det
}

// InverseAffine inverts a matrix whose last row is (0,0,0,1): the 3x3 part
// is inverted through its adjugate and the translation is rotated back.
func InverseAffine(m mgl32.Mat4) mgl32.Mat4 {
	a := m.Mat3()
	det := a.Det()
	invDet := 1 / det

	var r mgl32.Mat3
	r[0] = (a[4]*a[8] - a[7]*a[5]) * invDet
	r[1] = (a[7]*a[2] - a[1]*a[8]) * invDet
	r[2] = (a[1]*a[5] - a[4]*a[2]) * invDet
	r[3] = (a[6]*a[5] - a[3]*a[8]) * invDet
	r[4] = (a[0]*a[8] - a[6]*a[2]) * invDet
	r[5] = (a[3]*a[2] - a[0]*a[5]) * invDet
	r[6] = (a[3]*a[7] - a[6]*a[4]) * invDet
	r[7] = (a[6]*a[1] - a[0]*a[7]) * invDet
	r[8] = (a[0]*a[4] - a[3]*a[1]) * invDet

	t := r.Mul3x1(Position(m)).Mul(-1)
	return mgl32.Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		t[0], t[1], t[2], 1,
	}
}

// RotationAxis builds a right-handed rotation of angle radians about axis.
// A near-zero axis yields the identity.
func RotationAxis(axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	l2 := axis.Dot(axis)
	if l2 < Epsilon {
		return mgl32.Ident4()
	}
	n := axis.Mul(1 / float32(math.Sqrt(float64(l2))))
	s := float32(math.Sin(float64(angle)))
	c := float32(math.Cos(float64(angle)))
	k := 1 - c

	xx := n[0]*n[0]*k + c
	yy := n[1]*n[1]*k + c
	zz := n[2]*n[2]*k + c
	xy := n[0] * n[1] * k
	yz := n[1] * n[2] * k
	zx := n[2] * n[0] * k
	xs := n[0] * s
	ys := n[1] * s
	zs := n[2] * s

	return mgl32.Mat4{
		xx, xy + zs, zx - ys, 0,
		xy - zs, yy, yz + xs, 0,
		zx + ys, yz - xs, zz, 0,
		0, 0, 0, 1,
	}
}
