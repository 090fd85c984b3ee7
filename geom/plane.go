package geom

import "github.com/go-gl/mathgl/mgl32"

// Plane is n·x = D with a unit normal.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// BuildPlane returns the plane through point with the given normal.
func BuildPlane(point, normal mgl32.Vec3) Plane {
	n := Normalize(normal)
	return Plane{Normal: n, D: n.Dot(point)}
}

// Distance is the signed distance from p to the plane.
func (pl Plane) Distance(p mgl32.Vec3) float32 {
	return pl.Normal.Dot(p) - pl.D
}

// Ray is a picking ray in world space.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns origin + t*direction.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectRayPlane returns the signed ray parameter of the hit, or -1 when
// the ray runs parallel to the plane.
func IntersectRayPlane(origin, dir mgl32.Vec3, pl Plane) float32 {
	numer := pl.Normal.Dot(origin) - pl.D
	denom := pl.Normal.Dot(dir)
	if Absf(denom) < Epsilon {
		return -1
	}
	return -(numer / denom)
}

// Intersect is IntersectRayPlane for a Ray value.
func (r Ray) Intersect(pl Plane) float32 {
	return IntersectRayPlane(r.Origin, r.Direction, pl)
}
