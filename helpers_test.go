package gizmo

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const (
	testW   = 800
	testH   = 600
	testTol = 1e-3
)

// testCamera looks down -Z at the origin from five units away.
func testCamera() (view, proj mgl32.Mat4) {
	view = mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj = mgl32.Perspective(mgl32.DegToRad(45), float32(testW)/testH, 0.1, 100)
	return view, proj
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c := NewContext(DefaultConfig())
	c.SetRect(0, 0, testW, testH)
	return c
}

// toScreen projects a world point the same way the gizmo does.
func toScreen(view, proj mgl32.Mat4, p mgl32.Vec3) mgl32.Vec2 {
	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip[3])
	return mgl32.Vec2{(ndc[0]*0.5 + 0.5) * testW, (0.5 - ndc[1]*0.5) * testH}
}

// driver feeds a scripted mouse into a context one frame at a time.
type driver struct {
	ctx    *Context
	canvas *recordCanvas
	prev   Input
}

func newDriver(t *testing.T) *driver {
	return &driver{ctx: newTestContext(t), canvas: &recordCanvas{}}
}

func (d *driver) frame(x, y float32, down bool) {
	next := d.prev.Advance(Input{MouseX: x, MouseY: y, MouseDown: down})
	d.prev = next
	d.canvas.reset()
	d.ctx.BeginFrame(next, d.canvas)
}

func assertMatrix(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, testTol), "want\n%v\ngot\n%v", want, got)
}

type recordCanvas struct {
	lines, polylines, polys, circles, discs, triangles int
	texts                                              []string
	clipDepth                                          int
}

func (r *recordCanvas) reset() { *r = recordCanvas{} }

func (r *recordCanvas) Line(a, b mgl32.Vec2, col color.NRGBA, thickness float32) { r.lines++ }
func (r *recordCanvas) Polyline(pts []mgl32.Vec2, col color.NRGBA, closed bool, thickness float32) {
	r.polylines++
}
func (r *recordCanvas) ConvexPolyFilled(pts []mgl32.Vec2, col color.NRGBA) { r.polys++ }
func (r *recordCanvas) Circle(center mgl32.Vec2, radius float32, col color.NRGBA, segments int, thickness float32) {
	r.circles++
}
func (r *recordCanvas) CircleFilled(center mgl32.Vec2, radius float32, col color.NRGBA, segments int) {
	r.discs++
}
func (r *recordCanvas) TriangleFilled(a, b, c mgl32.Vec2, col color.NRGBA) { r.triangles++ }
func (r *recordCanvas) Text(pos mgl32.Vec2, col color.NRGBA, text string) {
	r.texts = append(r.texts, text)
}
func (r *recordCanvas) PushClipRect(min, max mgl32.Vec2) { r.clipDepth++ }
func (r *recordCanvas) PopClipRect()                     { r.clipDepth-- }
