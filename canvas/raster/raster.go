// Package raster is a software gizmo canvas drawing into an RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gekko3d/gizmo/canvas/fontface"
)

// Canvas rasterizes gizmo primitives with antialiasing. It implements
// gizmo.Canvas and gizmo.Clipper.
type Canvas struct {
	img  *image.RGBA
	face font.Face
	clip []image.Rectangle
	z    *vector.Rasterizer
}

// New creates a w by h canvas labelled with the embedded font.
func New(w, h int) (*Canvas, error) {
	face, err := fontface.Default(fontface.DefaultSize)
	if err != nil {
		return nil, err
	}
	return NewWithFace(w, h, face), nil
}

func NewWithFace(w, h int, face font.Face) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: face,
		z:    vector.NewRasterizer(w, h),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) PushClipRect(min, max mgl32.Vec2) {
	r := image.Rect(int(math.Floor(float64(min[0]))), int(math.Floor(float64(min[1]))),
		int(math.Ceil(float64(max[0]))), int(math.Ceil(float64(max[1]))))
	c.clip = append(c.clip, r.Intersect(c.bounds()))
}

func (c *Canvas) PopClipRect() {
	if len(c.clip) > 0 {
		c.clip = c.clip[:len(c.clip)-1]
	}
}

func (c *Canvas) bounds() image.Rectangle {
	if len(c.clip) > 0 {
		return c.clip[len(c.clip)-1]
	}
	return c.img.Bounds()
}

// fill rasterizes the closed paths added by build over the clip rect.
func (c *Canvas) fill(col color.NRGBA, build func(p pen)) {
	r := c.bounds()
	if r.Empty() || col.A == 0 {
		return
	}
	c.z.Reset(r.Dx(), r.Dy())
	build(pen{z: c.z, off: mgl32.Vec2{float32(r.Min.X), float32(r.Min.Y)}})
	c.z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// pen offsets canvas coordinates into the rasterizer's clip-local space.
type pen struct {
	z   *vector.Rasterizer
	off mgl32.Vec2
}

func (p pen) poly(pts ...mgl32.Vec2) {
	if len(pts) < 3 {
		return
	}
	p.z.MoveTo(pts[0][0]-p.off[0], pts[0][1]-p.off[1])
	for _, v := range pts[1:] {
		p.z.LineTo(v[0]-p.off[0], v[1]-p.off[1])
	}
	p.z.ClosePath()
}

// quad adds the rectangle of half width hw around segment ab.
func (p pen) quad(a, b mgl32.Vec2, hw float32) {
	d := b.Sub(a)
	l := d.Len()
	if l < 1e-6 {
		return
	}
	n := mgl32.Vec2{-d[1], d[0]}.Mul(hw / l)
	p.poly(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func (c *Canvas) Line(a, b mgl32.Vec2, col color.NRGBA, thickness float32) {
	c.fill(col, func(p pen) { p.quad(a, b, thickness/2) })
}

func (c *Canvas) Polyline(pts []mgl32.Vec2, col color.NRGBA, closed bool, thickness float32) {
	if len(pts) < 2 {
		return
	}
	c.fill(col, func(p pen) {
		for i := 0; i+1 < len(pts); i++ {
			p.quad(pts[i], pts[i+1], thickness/2)
		}
		if closed {
			p.quad(pts[len(pts)-1], pts[0], thickness/2)
		}
	})
}

func (c *Canvas) ConvexPolyFilled(pts []mgl32.Vec2, col color.NRGBA) {
	c.fill(col, func(p pen) { p.poly(pts...) })
}

func (c *Canvas) TriangleFilled(a, b, v mgl32.Vec2, col color.NRGBA) {
	c.fill(col, func(p pen) { p.poly(a, b, v) })
}

func (c *Canvas) CircleFilled(center mgl32.Vec2, radius float32, col color.NRGBA, segments int) {
	c.fill(col, func(p pen) { p.poly(circle(center, radius, segments, false)...) })
}

// Circle strokes a ring centered on radius. The inner edge winds the other
// way so the rasterizer leaves the middle empty.
func (c *Canvas) Circle(center mgl32.Vec2, radius float32, col color.NRGBA, segments int, thickness float32) {
	outer := radius + thickness/2
	inner := max(radius-thickness/2, 0)
	c.fill(col, func(p pen) {
		p.poly(circle(center, outer, segments, false)...)
		if inner > 0 {
			p.poly(circle(center, inner, segments, true)...)
		}
	})
}

func (c *Canvas) Text(pos mgl32.Vec2, col color.NRGBA, text string) {
	r := c.bounds()
	if r.Empty() {
		return
	}
	d := font.Drawer{
		Dst:  c.img.SubImage(r).(*image.RGBA),
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(pos[0] * 64),
			Y: fixed.Int26_6(pos[1]*64) + c.face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// Segments picks a circle tessellation for radius when none is given.
func Segments(radius float32, segments int) int {
	if segments > 0 {
		return segments
	}
	return min(max(int(radius), 12), 64)
}

func circle(center mgl32.Vec2, radius float32, segments int, reverse bool) []mgl32.Vec2 {
	n := Segments(radius, segments)
	pts := make([]mgl32.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		pts[i] = mgl32.Vec2{
			center[0] + radius*float32(math.Cos(a)),
			center[1] + radius*float32(math.Sin(a)),
		}
	}
	return pts
}
