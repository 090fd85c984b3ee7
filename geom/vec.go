// Package geom holds the vector, matrix and plane helpers the gizmo engine
// is built on. Matrices are mgl32 column-major: columns 0..3 are the right,
// up, dir and position bases.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the single-precision machine epsilon used by every guard.
const Epsilon float32 = 1.192092896e-07

// Normalize divides v by its length, clamping the length to Epsilon so a
// zero vector stays zero instead of producing NaN.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon {
		l = Epsilon
	}
	return v.Mul(1 / l)
}

// Abs returns the componentwise absolute value.
func Abs(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Absf(v[0]), Absf(v[1]), Absf(v[2])}
}

func Absf(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// MulElem multiplies two vectors componentwise.
func MulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Unit returns the i-th world basis vector.
func Unit(i int) mgl32.Vec3 {
	var v mgl32.Vec3
	v[i] = 1
	return v
}

// TransformPoint applies m to p with w=1 and does not divide by w.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies m to v with w=0, ignoring translation.
func TransformVector(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// Transform applies m to a full homogeneous vector.
func Transform(m mgl32.Mat4, v mgl32.Vec4) mgl32.Vec4 {
	return m.Mul4x1(v)
}

// Project applies m to p (w=1) and performs the perspective divide. The
// divide is skipped when |w| is within Epsilon, which happens for points
// lying on the camera plane.
func Project(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	c := m.Mul4x1(p.Vec4(1))
	if Absf(c[3]) > Epsilon {
		c = c.Mul(1 / c[3])
	}
	return c
}

// PointOnSegment returns the point of segment ab closest to p.
func PointOnSegment(p, a, b mgl32.Vec2) mgl32.Vec2 {
	ab := b.Sub(a)
	d := ab.Len()
	if d < Epsilon {
		return a
	}
	dir := ab.Mul(1 / d)
	t := dir.Dot(p.Sub(a))
	if t < 0 {
		return a
	}
	if t > d {
		return b
	}
	return a.Add(dir.Mul(t))
}
