// Package scene draws the reference geometry the gizmo tools manipulate: a
// ground grid and a model's box, projected through the same canvas as the
// gizmo.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
)

// nearClipW drops points too close to the eye plane to project stably.
const nearClipW = 0.1

var (
	GridColor = color.NRGBA{R: 90, G: 90, B: 90, A: 160}
	BoxColor  = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
)

// View projects world points into a pixel viewport.
type View struct {
	ViewProj      mgl32.Mat4
	Width, Height float32
}

func NewView(view, proj mgl32.Mat4, width, height float32) View {
	return View{ViewProj: proj.Mul4(view), Width: width, Height: height}
}

// Project returns the pixel position of pos and whether it is in front of
// the camera.
func (v View) Project(pos mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := v.ViewProj.Mul4x1(pos.Vec4(1))
	if clip.W() < nearClipW {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X()*0.5 + 0.5) * v.Width,
		(1 - (ndc.Y()*0.5 + 0.5)) * v.Height,
	}, true
}

func (v View) segment(c gizmo.Canvas, a, b mgl32.Vec3, col color.NRGBA, thickness float32) {
	pa, okA := v.Project(a)
	pb, okB := v.Project(b)
	if okA && okB {
		c.Line(pa, pb, col, thickness)
	}
}

// DrawGrid draws lines on the y=0 plane every step units out to half.
func (v View) DrawGrid(c gizmo.Canvas, half, step float32) {
	if step <= 0 {
		return
	}
	for x := -half; x <= half+step/2; x += step {
		v.segment(c, mgl32.Vec3{x, 0, -half}, mgl32.Vec3{x, 0, half}, GridColor, 1)
		v.segment(c, mgl32.Vec3{-half, 0, x}, mgl32.Vec3{half, 0, x}, GridColor, 1)
	}
}

// boxEdges indexes the corners built by corners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func corners(b gizmo.Box) [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range out {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				out[i][axis] = b.Max[axis]
			} else {
				out[i][axis] = b.Min[axis]
			}
		}
	}
	return out
}

// DrawBox draws the edges of box transformed by model.
func (v View) DrawBox(c gizmo.Canvas, model mgl32.Mat4, box gizmo.Box, col color.NRGBA) {
	pts := corners(box)
	for i := range pts {
		pts[i] = mgl32.TransformCoordinate(pts[i], model)
	}
	for _, e := range boxEdges {
		v.segment(c, pts[e[0]], pts[e[1]], col, 1.5)
	}
}
