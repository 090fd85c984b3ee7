package gizmo

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

const (
	anchorBigRadius   = 8
	anchorSmallRadius = 6
	anchorBorder      = 1.2
	anchorHoverPx     = 8
	boundsDashPx      = 10
	boundsMaxDashes   = 1000
	// axes seen nearly edge-on are not offered for stretching
	boundsMinFacing = 0.1
)

// Box is an axis-aligned box in model space.
type Box struct {
	Min, Max mgl32.Vec3
}

func (b Box) Size() mgl32.Vec3 { return b.Max.Sub(b.Min) }

// boundsState is the scratch of an active bounds stretch.
type boundsState struct {
	active     bool
	pivot      mgl32.Vec3
	anchor     mgl32.Vec3
	plane      geom.Plane
	localPivot mgl32.Vec3
	bestAxis   int
	// axis holds the one or two stretched local axes; -1 marks unused.
	axis   [2]int
	matrix mgl32.Mat4
}

// boundsAxes lists the local axes whose face is drawn, best facing first.
// While stretching only the armed axis is kept.
func (c *Context) boundsAxes() ([]int, []mgl32.Vec3) {
	f := &c.frame
	if c.bounds.active {
		dir := geom.Normalize(geom.TransformVector(f.modelSource, geom.Unit(c.bounds.bestAxis)))
		return []int{c.bounds.bestAxis}, []mgl32.Vec3{dir}
	}

	toEye := geom.Normalize(f.cameraEye.Sub(geom.Position(f.modelSource)))
	var (
		axes    []int
		dirs    []mgl32.Vec3
		best    int
		bestDir mgl32.Vec3
		bestDot float32
	)
	for i := 0; i < 3; i++ {
		dir := geom.Normalize(geom.TransformVector(f.modelSource, geom.Unit(i)))
		dt := geom.Absf(toEye.Dot(dir))
		if dt >= bestDot {
			bestDot = dt
			best = i
			bestDir = dir
		}
		if dt >= boundsMinFacing {
			axes = append(axes, i)
			dirs = append(dirs, dir)
		}
	}
	if len(axes) == 0 {
		return []int{best}, []mgl32.Vec3{bestDir}
	}
	for i := range axes {
		if axes[i] == best {
			axes[0], axes[i] = axes[i], axes[0]
			dirs[0], dirs[i] = dirs[i], dirs[0]
			break
		}
	}
	return axes, dirs
}

// boundsCorners returns the face of b across axis best, in the order
// min-min, min-max, max-max, max-min over the two other axes.
func boundsCorners(b Box, best int) [4]mgl32.Vec3 {
	second, third := (best+1)%3, (best+2)%3
	var box [4]mgl32.Vec3
	for i := 0; i < 4; i++ {
		if i>>1 == 0 {
			box[i][second] = b.Min[second]
		} else {
			box[i][second] = b.Max[second]
		}
		if (i>>1)^(i&1) == 0 {
			box[i][third] = b.Min[third]
		} else {
			box[i][third] = b.Max[third]
		}
	}
	return box
}

// handleBounds draws the box face, arms a corner or edge anchor on click
// and applies the stretch. It reports whether matrix changed.
func (c *Context) handleBounds(p Params, matrix *mgl32.Mat4) bool {
	f := &c.frame
	b := *p.Bounds
	mouse := c.mouse()
	modified := false

	anchorCol := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	if !c.enabled {
		anchorCol.A = 0x80
	}
	black := color.NRGBA{A: 0xff}
	selection := c.style.color(ColorSelection)
	boundsMVP := f.viewProj.Mul4(f.modelSource)

	axes, dirs := c.boundsAxes()
	for n, best := range axes {
		bestDir := dirs[n]
		second, third := (best+1)%3, (best+2)%3
		box := boundsCorners(b, best)

		for i := 0; i < 4; i++ {
			p1 := c.worldToPos(box[i], boundsMVP)
			p2 := c.worldToPos(box[(i+1)%4], boundsMVP)
			if !c.rect.Contains(p1) || !c.rect.Contains(p2) {
				continue
			}
			c.dashedLine(p1, p2, anchorCol)

			mid := box[i].Add(box[(i+1)%4]).Mul(0.5)
			midScreen := c.worldToPos(mid, boundsMVP)
			overBig := p1.Sub(mouse).Len() <= anchorHoverPx
			overSmall := midScreen.Sub(mouse).Len() <= anchorHoverPx
			if c.hoveredHandle(p.Operation) != HandleNone {
				overBig, overSmall = false, false
			}

			bigCol, smallCol := anchorCol, anchorCol
			if overBig {
				bigCol = selection
			}
			if overSmall {
				smallCol = selection
			}
			c.canvas.CircleFilled(p1, anchorBigRadius, black, 0)
			c.canvas.CircleFilled(p1, anchorBigRadius-anchorBorder, bigCol, 0)
			c.canvas.CircleFilled(midScreen, anchorSmallRadius, black, 0)
			c.canvas.CircleFilled(midScreen, anchorSmallRadius-anchorBorder, smallCol, 0)

			opposite := box[(i+2)%4]
			if !c.bounds.active && c.enabled && overBig && c.canActivate() {
				var local mgl32.Vec3
				local[second] = opposite[second]
				local[third] = opposite[third]
				c.armBounds(box[i], opposite, local, bestDir, best, [2]int{second, third})
			}
			if !c.bounds.active && c.enabled && overSmall && c.canActivate() {
				indices := [2]int{second, third}
				ax := indices[i%2]
				pivot := opposite.Add(box[(i+3)%4]).Mul(0.5)
				var local mgl32.Vec3
				local[ax] = opposite[ax]
				c.armBounds(mid, pivot, local, bestDir, best, [2]int{ax, -1})
			}
		}

		if c.bounds.active && c.CurrentID() == c.editingID {
			next := c.stretchBounds(b, p.BoundsSnap)
			modified = modified || next != *matrix
			*matrix = next
		}

		if !c.input.MouseDown && c.bounds.active {
			c.log.Debugf("bounds released id=%08x", c.editingID)
			c.bounds.active = false
			c.editingID = blankID
		}
		if c.bounds.active {
			break
		}
	}
	return modified
}

func (c *Context) armBounds(anchor, pivot, localPivot, planeNormal mgl32.Vec3, best int, axis [2]int) {
	src := c.frame.modelSource
	c.bounds = boundsState{
		active:     true,
		pivot:      geom.TransformPoint(src, pivot),
		anchor:     geom.TransformPoint(src, anchor),
		localPivot: localPivot,
		bestAxis:   best,
		axis:       axis,
		matrix:     src,
	}
	c.bounds.plane = geom.BuildPlane(c.bounds.anchor, planeNormal)
	c.editingID = c.CurrentID()
	c.log.Debugf("bounds armed axis=%v id=%08x", axis, c.editingID)
}

// stretchBounds scales the armed matrix about the pivot so the anchor
// follows the mouse on the anchor plane.
func (c *Context) stretchBounds(b Box, snap *mgl32.Vec3) mgl32.Mat4 {
	bs := &c.bounds
	f := &c.frame

	newPos := f.ray.At(f.ray.Intersect(bs.plane))
	deltaVec := geom.Abs(newPos.Sub(bs.pivot))
	refVec := geom.Abs(bs.anchor.Sub(bs.pivot))
	size := b.Size()

	scale := mgl32.Vec3{1, 1, 1}
	for _, ax := range bs.axis {
		if ax < 0 {
			continue
		}
		axisDir := geom.Abs(geom.Basis(bs.matrix, ax))
		ratio := float32(1)
		if dt := axisDir.Dot(refVec); dt > geom.Epsilon {
			ratio = axisDir.Dot(deltaVec) / dt
		}
		if snap != nil {
			length := geom.Snap(size[ax]*ratio, snap[ax])
			if size[ax] > geom.Epsilon {
				ratio = length / size[ax]
			}
		}
		scale[ax] *= ratio
	}

	lp := bs.localPivot
	res := bs.matrix.
		Mul4(mgl32.Translate3D(lp[0], lp[1], lp[2])).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2])).
		Mul4(mgl32.Translate3D(-lp[0], -lp[1], -lp[2]))

	origin := c.worldToPos(geom.Position(f.model), f.viewProj)
	label := fmt.Sprintf("X: %.2f Y: %.2f Z: %.2f",
		size[0]*geom.Basis(bs.matrix, 0).Len()*scale[0],
		size[1]*geom.Basis(bs.matrix, 1).Len()*scale[1],
		size[2]*geom.Basis(bs.matrix, 2).Len()*scale[2])
	c.annotate(origin, label)
	return res
}

// dashedLine draws half-length dashes every boundsDashPx pixels.
func (c *Context) dashedLine(a, b mgl32.Vec2, col color.NRGBA) {
	steps := min(int(b.Sub(a).Len()/boundsDashPx), boundsMaxDashes)
	if steps == 0 {
		return
	}
	step := 1 / float32(steps)
	for j := 0; j < steps; j++ {
		t1 := float32(j) * step
		t2 := t1 + step*0.5
		c.canvas.Line(lerp2(a, b, t1), lerp2(a, b, t2), col, 2)
	}
}

func lerp2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
