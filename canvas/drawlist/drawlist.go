// Package drawlist tessellates gizmo primitives into colored, textured
// triangles for upload to a GPU.
package drawlist

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rclancey/earcut"
)

// Vertex is the GPU vertex layout: pixel position, atlas UV and straight
// RGBA color.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]float32
}

// Cmd draws Count vertices starting at First with a scissor rectangle.
// An empty Clip means no scissor.
type Cmd struct {
	Clip  image.Rectangle
	First int
	Count int
}

// List implements gizmo.Canvas and gizmo.Clipper by appending triangles.
type List struct {
	Vertices []Vertex
	Cmds     []Cmd

	atlas *Atlas
	clip  []image.Rectangle
}

func New(atlas *Atlas) *List {
	return &List{atlas: atlas}
}

func (l *List) Atlas() *Atlas { return l.atlas }

// Reset empties the list, keeping its buffers.
func (l *List) Reset() {
	l.Vertices = l.Vertices[:0]
	l.Cmds = l.Cmds[:0]
	l.clip = l.clip[:0]
}

func (l *List) PushClipRect(min, max mgl32.Vec2) {
	r := image.Rect(int(min[0]), int(min[1]), int(math.Ceil(float64(max[0]))), int(math.Ceil(float64(max[1]))))
	if n := len(l.clip); n > 0 {
		r = r.Intersect(l.clip[n-1])
	}
	l.clip = append(l.clip, r)
}

func (l *List) PopClipRect() {
	if len(l.clip) > 0 {
		l.clip = l.clip[:len(l.clip)-1]
	}
}

func (l *List) currentClip() image.Rectangle {
	if n := len(l.clip); n > 0 {
		return l.clip[n-1]
	}
	return image.Rectangle{}
}

// cmd returns the command to append to, opening one when the clip changed.
func (l *List) cmd() *Cmd {
	clip := l.currentClip()
	if n := len(l.Cmds); n > 0 && l.Cmds[n-1].Clip == clip {
		return &l.Cmds[n-1]
	}
	l.Cmds = append(l.Cmds, Cmd{Clip: clip, First: len(l.Vertices)})
	return &l.Cmds[len(l.Cmds)-1]
}

func rgba(c color.NRGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func (l *List) tri(a, b, c mgl32.Vec2, col [4]float32) {
	uv := l.atlas.whiteUV
	cmd := l.cmd()
	l.Vertices = append(l.Vertices,
		Vertex{Pos: a, UV: uv, Color: col},
		Vertex{Pos: b, UV: uv, Color: col},
		Vertex{Pos: c, UV: uv, Color: col},
	)
	cmd.Count += 3
}

func (l *List) quad(a, b mgl32.Vec2, hw float32, col [4]float32) {
	d := b.Sub(a)
	n := d.Len()
	if n < 1e-6 {
		return
	}
	off := mgl32.Vec2{-d[1], d[0]}.Mul(hw / n)
	p0, p1, p2, p3 := a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)
	l.tri(p0, p1, p2, col)
	l.tri(p0, p2, p3, col)
}

func (l *List) Line(a, b mgl32.Vec2, col color.NRGBA, thickness float32) {
	l.quad(a, b, thickness/2, rgba(col))
}

func (l *List) Polyline(pts []mgl32.Vec2, col color.NRGBA, closed bool, thickness float32) {
	c := rgba(col)
	for i := 0; i+1 < len(pts); i++ {
		l.quad(pts[i], pts[i+1], thickness/2, c)
	}
	if closed && len(pts) > 2 {
		l.quad(pts[len(pts)-1], pts[0], thickness/2, c)
	}
}

// ConvexPolyFilled triangulates with earcut, which also copes with the
// reflex vertices of rotation sectors past a half turn.
func (l *List) ConvexPolyFilled(pts []mgl32.Vec2, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c := rgba(col)
	coords := make([]float64, len(pts)*2)
	for i, p := range pts {
		coords[i*2] = float64(p[0])
		coords[i*2+1] = float64(p[1])
	}
	idx, err := earcut.Earcut(coords, nil, 2)
	if err != nil || len(idx)%3 != 0 {
		// fall back to a fan from the first point
		for i := 1; i+1 < len(pts); i++ {
			l.tri(pts[0], pts[i], pts[i+1], c)
		}
		return
	}
	for i := 0; i < len(idx); i += 3 {
		l.tri(pts[idx[i]], pts[idx[i+1]], pts[idx[i+2]], c)
	}
}

func (l *List) TriangleFilled(a, b, v mgl32.Vec2, col color.NRGBA) {
	l.tri(a, b, v, rgba(col))
}

func (l *List) CircleFilled(center mgl32.Vec2, radius float32, col color.NRGBA, segments int) {
	c := rgba(col)
	pts := circle(center, radius, segments)
	for i := range pts {
		l.tri(center, pts[i], pts[(i+1)%len(pts)], c)
	}
}

func (l *List) Circle(center mgl32.Vec2, radius float32, col color.NRGBA, segments int, thickness float32) {
	c := rgba(col)
	outer := circle(center, radius+thickness/2, segments)
	inner := circle(center, max(radius-thickness/2, 0), segments)
	for i := range outer {
		j := (i + 1) % len(outer)
		l.tri(outer[i], outer[j], inner[j], c)
		l.tri(outer[i], inner[j], inner[i], c)
	}
}

// Text emits one textured quad per glyph, top-left anchored at pos.
func (l *List) Text(pos mgl32.Vec2, col color.NRGBA, text string) {
	c := rgba(col)
	x, y := pos[0], pos[1]+l.atlas.ascent
	for _, r := range text {
		g, ok := l.atlas.glyphs[r]
		if !ok {
			continue
		}
		x0, y0 := x+g.off[0], y+g.off[1]
		x1, y1 := x0+g.size[0], y0+g.size[1]
		cmd := l.cmd()
		l.Vertices = append(l.Vertices,
			Vertex{Pos: [2]float32{x0, y0}, UV: g.uvMin, Color: c},
			Vertex{Pos: [2]float32{x1, y0}, UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: c},
			Vertex{Pos: [2]float32{x0, y1}, UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: c},
			Vertex{Pos: [2]float32{x1, y0}, UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: c},
			Vertex{Pos: [2]float32{x1, y1}, UV: g.uvMax, Color: c},
			Vertex{Pos: [2]float32{x0, y1}, UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: c},
		)
		cmd.Count += 6
		x += g.adv
	}
}

func circle(center mgl32.Vec2, radius float32, segments int) []mgl32.Vec2 {
	n := segments
	if n <= 0 {
		n = min(max(int(radius), 12), 64)
	}
	pts := make([]mgl32.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = mgl32.Vec2{
			center[0] + radius*float32(math.Cos(a)),
			center[1] + radius*float32(math.Sin(a)),
		}
	}
	return pts
}
