package gizmo

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Canvas receives the 2D screen-space primitives the gizmo draws. Later
// calls paint over earlier ones; the engine never reads back. A segment
// count of zero or less lets the canvas choose one from the radius.
type Canvas interface {
	Line(a, b mgl32.Vec2, col color.NRGBA, thickness float32)
	Polyline(pts []mgl32.Vec2, col color.NRGBA, closed bool, thickness float32)
	ConvexPolyFilled(pts []mgl32.Vec2, col color.NRGBA)
	Circle(center mgl32.Vec2, radius float32, col color.NRGBA, segments int, thickness float32)
	CircleFilled(center mgl32.Vec2, radius float32, col color.NRGBA, segments int)
	TriangleFilled(a, b, c mgl32.Vec2, col color.NRGBA)
	Text(pos mgl32.Vec2, col color.NRGBA, text string)
}

// Clipper is implemented by canvases that can restrict drawing to a
// rectangle. Manipulate clips to the viewport when it is available.
type Clipper interface {
	PushClipRect(min, max mgl32.Vec2)
	PopClipRect()
}

type nopCanvas struct{}

func (nopCanvas) Line(a, b mgl32.Vec2, col color.NRGBA, thickness float32)                  {}
func (nopCanvas) Polyline(pts []mgl32.Vec2, col color.NRGBA, closed bool, thickness float32) {}
func (nopCanvas) ConvexPolyFilled(pts []mgl32.Vec2, col color.NRGBA)                         {}
func (nopCanvas) Circle(center mgl32.Vec2, radius float32, col color.NRGBA, segments int, thickness float32) {
}
func (nopCanvas) CircleFilled(center mgl32.Vec2, radius float32, col color.NRGBA, segments int) {}
func (nopCanvas) TriangleFilled(a, b, c mgl32.Vec2, col color.NRGBA)                            {}
func (nopCanvas) Text(pos mgl32.Vec2, col color.NRGBA, text string)                             {}
