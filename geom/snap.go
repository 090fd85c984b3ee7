package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// snapTension is the fraction of an increment below which a value rounds
// toward zero and above whose complement it rounds away from zero.
const snapTension = 0.5

// Snap quantizes value to a multiple of increment. A remainder of exactly
// half an increment is left untouched. Increments within Epsilon of zero
// disable snapping.
func Snap(value, increment float32) float32 {
	if increment <= Epsilon {
		return value
	}
	modulo := float32(math.Mod(float64(value), float64(increment)))
	ratio := Absf(modulo) / increment
	switch {
	case ratio < snapTension:
		return value - modulo
	case ratio > 1-snapTension:
		sign := float32(1)
		if value < 0 {
			sign = -1
		}
		return value - modulo + increment*sign
	}
	return value
}

// SnapVec3 snaps each component by its own increment.
func SnapVec3(v, increments mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		v[i] = Snap(v[i], increments[i])
	}
	return v
}
