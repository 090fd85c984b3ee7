package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is an orbiting look-at camera. Yaw and Pitch place the eye on a
// sphere of radius Distance around Target, Y up.
type Camera struct {
	Target       mgl32.Vec3
	Distance     float32
	Yaw          float32
	Pitch        float32
	FovY         float32 // degrees
	Near         float32
	Far          float32
	Orthographic bool
	OrthoHeight  float32
}

func NewCamera() *Camera {
	return &Camera{
		Distance:    5,
		FovY:        45,
		Near:        0.1,
		Far:         100,
		OrthoHeight: 4,
	}
}

// Eye returns the world position of the camera.
func (c *Camera) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	offset := mgl32.Vec3{
		cp * float32(math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		cp * float32(math.Cos(float64(c.Yaw))),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if c.Orthographic {
		h := c.OrthoHeight / 2
		w := h * aspect
		return mgl32.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Orbit rotates the eye around the target. Pitch is clamped short of the
// poles so the look-at basis never degenerates.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -1.5, 1.5)
}

// Zoom scales the orbit distance by f.
func (c *Camera) Zoom(f float32) {
	c.Distance = mgl32.Clamp(c.Distance*f, c.Near*2, c.Far/2)
}
