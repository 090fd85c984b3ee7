package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/gekko3d/gizmo"
)

type lineCanvas struct {
	gizmo.Canvas
	lines [][2]mgl32.Vec2
}

func (c *lineCanvas) Line(a, b mgl32.Vec2, _ color.NRGBA, _ float32) {
	c.lines = append(c.lines, [2]mgl32.Vec2{a, b})
}

func testView() View {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	return NewView(view, proj, 800, 600)
}

func TestProject(t *testing.T) {
	v := testView()

	p, ok := v.Project(mgl32.Vec3{})
	assert.True(t, ok)
	assert.InDelta(t, 400, p[0], 1e-3)
	assert.InDelta(t, 300, p[1], 1e-3)

	p, ok = v.Project(mgl32.Vec3{0, 1, 0})
	assert.True(t, ok)
	assert.Less(t, p[1], float32(300), "up is toward the top of the image")

	_, ok = v.Project(mgl32.Vec3{0, 0, 10})
	assert.False(t, ok, "behind the eye")
}

func TestDrawBox(t *testing.T) {
	c := &lineCanvas{}
	box := gizmo.Box{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}

	testView().DrawBox(c, mgl32.Translate3D(1, 0, 0), box, BoxColor)

	assert.Len(t, c.lines, 12)
	for _, l := range c.lines {
		assert.Greater(t, l[0][0], float32(400), "translated box is right of center")
	}
}

func TestDrawGrid(t *testing.T) {
	c := &lineCanvas{}
	testView().DrawGrid(c, 1, 1)
	assert.Len(t, c.lines, 6)

	c = &lineCanvas{}
	testView().DrawGrid(c, 1, 0)
	assert.Empty(t, c.lines)
}
