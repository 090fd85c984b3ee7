package drawlist

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/canvas/fontface"
)

func newList(t *testing.T) *List {
	t.Helper()
	face, err := fontface.Default(fontface.DefaultSize)
	require.NoError(t, err)
	return New(NewAtlas(face))
}

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestList_EmitsWholeTriangles(t *testing.T) {
	l := newList(t)
	l.Line(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, red, 2)
	l.Polyline([]mgl32.Vec2{{0, 0}, {10, 0}, {10, 10}}, red, true, 1)
	l.CircleFilled(mgl32.Vec2{5, 5}, 4, red, 16)
	l.Circle(mgl32.Vec2{5, 5}, 8, red, 0, 2)
	l.TriangleFilled(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, red)
	l.Text(mgl32.Vec2{0, 0}, red, "X : 1.00")

	require.NotEmpty(t, l.Vertices)
	assert.Zero(t, len(l.Vertices)%3)
	total := 0
	for _, c := range l.Cmds {
		total += c.Count
	}
	assert.Equal(t, len(l.Vertices), total)
}

func TestList_PolyFilledTriangulatesConcave(t *testing.T) {
	l := newList(t)
	// three quarters of a disc, fanned from its center
	pts := []mgl32.Vec2{{0, 0}, {10, 0}, {0, 10}, {-10, 0}, {0, -10}}
	l.ConvexPolyFilled(pts, red)
	assert.Len(t, l.Vertices, 3*(len(pts)-2))

	l.Reset()
	l.ConvexPolyFilled(pts[:2], red)
	assert.Empty(t, l.Vertices)
}

func TestList_ClipSplitsCommands(t *testing.T) {
	l := newList(t)
	l.TriangleFilled(mgl32.Vec2{}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, red)
	l.PushClipRect(mgl32.Vec2{10, 10}, mgl32.Vec2{50, 40.5})
	l.TriangleFilled(mgl32.Vec2{}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, red)
	l.TriangleFilled(mgl32.Vec2{}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, red)
	l.PopClipRect()

	require.Len(t, l.Cmds, 2)
	assert.True(t, l.Cmds[0].Clip.Empty())
	assert.Equal(t, 10, l.Cmds[1].Clip.Min.X)
	assert.Equal(t, 41, l.Cmds[1].Clip.Max.Y)
	assert.Equal(t, 6, l.Cmds[1].Count)
	assert.Equal(t, 3, l.Cmds[1].First)
}

func TestAtlas_SolidTexel(t *testing.T) {
	l := newList(t)
	a := l.Atlas()
	assert.Equal(t, uint8(0xff), a.Image.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0xff), a.Image.AlphaAt(1, 1).A)
	assert.Contains(t, a.glyphs, 'X')
	assert.Contains(t, a.glyphs, ':')
	assert.Greater(t, a.glyphs['X'].adv, float32(0))
}
