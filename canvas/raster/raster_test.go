package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = color.NRGBA{B: 0xff, A: 0xff}

func newCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New(64, 64)
	require.NoError(t, err)
	c.Clear(color.White)
	return c
}

func isBlue(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return b > 0xf000 && r < 0x1000 && g < 0x1000
}

func TestCanvas_FilledShapesPaintInside(t *testing.T) {
	c := newCanvas(t)
	c.CircleFilled(mgl32.Vec2{32, 32}, 10, blue, 0)
	assert.True(t, isBlue(c.Image().At(32, 32)))
	assert.True(t, isBlue(c.Image().At(38, 32)))
	assert.False(t, isBlue(c.Image().At(50, 32)))

	c.TriangleFilled(mgl32.Vec2{0, 0}, mgl32.Vec2{20, 0}, mgl32.Vec2{0, 20}, blue)
	assert.True(t, isBlue(c.Image().At(3, 3)))
	assert.False(t, isBlue(c.Image().At(18, 18)))
}

func TestCanvas_CircleLeavesCenter(t *testing.T) {
	c := newCanvas(t)
	c.Circle(mgl32.Vec2{32, 32}, 20, blue, 32, 4)
	assert.False(t, isBlue(c.Image().At(32, 32)))
	assert.True(t, isBlue(c.Image().At(52, 32)))
}

func TestCanvas_Clip(t *testing.T) {
	c := newCanvas(t)
	c.PushClipRect(mgl32.Vec2{0, 0}, mgl32.Vec2{32, 64})
	c.Line(mgl32.Vec2{0, 10}, mgl32.Vec2{64, 10}, blue, 4)
	c.PopClipRect()

	assert.True(t, isBlue(c.Image().At(16, 10)))
	assert.False(t, isBlue(c.Image().At(48, 10)))

	c.PopClipRect()
	c.Line(mgl32.Vec2{0, 40}, mgl32.Vec2{64, 40}, blue, 4)
	assert.True(t, isBlue(c.Image().At(48, 40)))
}

func TestCanvas_TextDrawsSomething(t *testing.T) {
	c := newCanvas(t)
	before := image.NewRGBA(c.Image().Bounds())
	copy(before.Pix, c.Image().Pix)
	c.Text(mgl32.Vec2{4, 4}, blue, "XYZ : 1.00")
	assert.NotEqual(t, before.Pix, c.Image().Pix)
}

func TestEncode(t *testing.T) {
	c := newCanvas(t)
	c.CircleFilled(mgl32.Vec2{32, 32}, 10, blue, 0)

	for _, f := range []Format{PNG, WebP, TGA} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, c.Image(), f), f.String())
		assert.NotZero(t, buf.Len(), f.String())
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c.Image(), PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, isBlue(img.At(32, 32)))
}

func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]Format{"a.png": PNG, "b.WEBP": WebP, "c.tga": TGA} {
		got, err := FormatForPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatForPath("d.jpg")
	assert.Error(t, err)
}
