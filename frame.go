package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

const (
	// screenRotateSize is the minimum screen-rotation ring radius as a
	// fraction of the viewport height.
	screenRotateSize = 0.06
	// rotationDisplayFactor pushes rotation circles out past the
	// translate arrows.
	rotationDisplayFactor = 1.2
	// screenSquareHalf is the half size of the screen-space hotspot.
	screenSquareHalf = 10
	halfCircleSegments = 64
)

// frame holds everything derived from the camera and object matrices for
// one Manipulate call.
type frame struct {
	mode Mode

	view, proj mgl32.Mat4
	// model is the orthonormalized object matrix in Local mode and only its
	// translation in World mode. modelLocal is always orthonormalized.
	model, modelLocal, modelInverse mgl32.Mat4
	modelSource, modelSourceInverse mgl32.Mat4
	viewProj, mvp, mvpLocal         mgl32.Mat4
	scaleOrigin                     mgl32.Vec3

	cameraEye, cameraRight, cameraUp, cameraDir mgl32.Vec3
	reversed                                    bool

	ray          geom.Ray
	screenFactor float32
	displayRatio float32

	squareCenter, squareMin, squareMax mgl32.Vec2
	ringRadius                         float32

	mouseOver bool

	world, local axisSnapshot
}

// computeFrame derives the per-call matrices, screen factor and picking
// ray from the camera and object matrices.
func (c *Context) computeFrame(view, proj, matrix mgl32.Mat4, mode Mode, op Operation) {
	f := &c.frame
	f.mode = mode
	f.view = view
	f.proj = proj
	f.mouseOver = c.rect.Contains(c.mouse())
	f.displayRatio = 1
	if c.rect.H > 0 {
		f.displayRatio = c.rect.W / c.rect.H
	}

	f.modelLocal = geom.Orthonormalize(matrix)
	if mode == Local {
		f.model = f.modelLocal
	} else {
		p := geom.Position(matrix)
		f.model = mgl32.Translate3D(p[0], p[1], p[2])
	}
	f.modelSource = matrix
	f.scaleOrigin = geom.BasisLengths(matrix)

	f.modelInverse = geom.InverseAffine(f.model)
	f.modelSourceInverse, _ = geom.Inverse(f.modelSource)
	f.viewProj = proj.Mul4(view)
	f.mvp = f.viewProj.Mul4(f.model)
	f.mvpLocal = f.viewProj.Mul4(f.modelLocal)

	viewInverse := geom.InverseAffine(view)
	f.cameraRight = geom.Basis(viewInverse, 0)
	f.cameraUp = geom.Basis(viewInverse, 1)
	f.cameraDir = geom.Basis(viewInverse, 2)
	f.cameraEye = geom.Position(viewInverse)

	f.reversed = reversedDepth(proj)

	rightLocal := geom.TransformVector(f.modelInverse, f.cameraRight)
	f.screenFactor = c.cfg.GizmoSizeClipSpace / c.segmentLengthClip(mgl32.Vec3{}, rightLocal, false)

	f.squareCenter = c.worldToPos(mgl32.Vec3{}, f.mvp)
	half := mgl32.Vec2{screenSquareHalf, screenSquareHalf}
	f.squareMin = f.squareCenter.Sub(half)
	f.squareMax = f.squareCenter.Add(half)

	f.ray = c.cameraRay()

	f.world = c.computeAxes(false)
	f.local = c.computeAxes(true)
	f.ringRadius = c.rotationRingRadius(op)
}

// reversedDepth reports whether proj maps nearer points to larger depth.
// Samples are taken in front of the camera, on -Z for right-handed
// projections and +Z otherwise.
func reversedDepth(proj mgl32.Mat4) bool {
	nearPos := proj.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	farPos := proj.Mul4x1(mgl32.Vec4{0, 0, -2, 1})
	if nearPos[3] <= 0 {
		nearPos = proj.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
		farPos = proj.Mul4x1(mgl32.Vec4{0, 0, 2, 1})
	}
	return nearPos[2]/nearPos[3] > farPos[2]/farPos[3]
}

// cameraRay unprojects the mouse at near and far depth.
func (c *Context) cameraRay() geom.Ray {
	f := &c.frame
	vpInverse, _ := geom.Inverse(f.viewProj)

	mox := ((c.input.MouseX-c.rect.X)/c.rect.W)*2 - 1
	moy := (1-((c.input.MouseY-c.rect.Y)/c.rect.H))*2 - 1

	zNear, zFar := float32(0), 1-geom.Epsilon
	if f.reversed {
		zNear, zFar = 1-geom.Epsilon, 0
	}

	origin := vpInverse.Mul4x1(mgl32.Vec4{mox, moy, zNear, 1})
	origin = origin.Mul(1 / origin[3])
	end := vpInverse.Mul4x1(mgl32.Vec4{mox, moy, zFar, 1})
	end = end.Mul(1 / end[3])

	return geom.Ray{
		Origin:    origin.Vec3(),
		Direction: geom.Normalize(end.Vec3().Sub(origin.Vec3())),
	}
}

// worldToPos projects p through m into canvas pixels.
func (c *Context) worldToPos(p mgl32.Vec3, m mgl32.Mat4) mgl32.Vec2 {
	t := m.Mul4x1(p.Vec4(1))
	t = t.Mul(0.5 / t[3])
	x := (t[0] + 0.5) * c.rect.W
	y := (1 - (t[1] + 0.5)) * c.rect.H
	return mgl32.Vec2{x + c.rect.X, y + c.rect.Y}
}

// segmentLengthClip measures the aspect-corrected clip-space length of a
// model-space segment.
func (c *Context) segmentLengthClip(start, end mgl32.Vec3, local bool) float32 {
	mvp := c.frame.mvp
	if local {
		mvp = c.frame.mvpLocal
	}
	a := geom.Project(mvp, start)
	b := geom.Project(mvp, end)
	dx, dy := b[0]-a[0], b[1]-a[1]
	if r := c.frame.displayRatio; r < 1 {
		dx *= r
	} else {
		dy /= r
	}
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// parallelogram measures the clip-space area spanned by oa and ob.
func (c *Context) parallelogram(o, a, b mgl32.Vec3) float32 {
	po := geom.Project(c.frame.mvp, o)
	pa := geom.Project(c.frame.mvp, a)
	pb := geom.Project(c.frame.mvp, b)
	segA := mgl32.Vec2{pa[0] - po[0], (pa[1] - po[1]) / c.frame.displayRatio}
	segB := mgl32.Vec2{pb[0] - po[0], (pb[1] - po[1]) / c.frame.displayRatio}
	ortho := mgl32.Vec2{-segA[1], segA[0]}
	if l := ortho.Len(); l > geom.Epsilon {
		ortho = ortho.Mul(1 / l)
	}
	return segA.Len() * geom.Absf(ortho.Dot(segB))
}

// cameraToModelLocal is the viewing direction toward the object, in model
// space.
func (c *Context) cameraToModelLocal() mgl32.Vec3 {
	f := &c.frame
	var dir mgl32.Vec3
	if c.cfg.Orthographic {
		dir = f.cameraDir.Mul(-1)
	} else {
		dir = geom.Normalize(geom.Position(f.model).Sub(f.cameraEye))
	}
	return geom.TransformVector(f.modelInverse, dir)
}

// rotationCircle returns the screen points of the rotation circle around
// axis a. Half circles start on the side facing the camera.
func (c *Context) rotationCircle(a int, half bool) []mgl32.Vec2 {
	f := &c.frame
	camToModel := c.cameraToModelLocal()
	u, v := (a+1)%3, (a+2)%3
	start := math.Atan2(float64(camToModel[v]), float64(camToModel[u])) + math.Pi/2

	mul := 2
	if half {
		mul = 1
	}
	n := mul * halfCircleSegments
	radius := f.screenFactor * rotationDisplayFactor
	pts := make([]mgl32.Vec2, n+1)
	for i := range pts {
		ng := start + float64(mul)*math.Pi*float64(i)/float64(n)
		var p mgl32.Vec3
		p[u] = float32(math.Cos(ng)) * radius
		p[v] = float32(math.Sin(ng)) * radius
		pts[i] = c.worldToPos(p, f.mvp)
	}
	return pts
}

// rotationAxisShown applies the operation and the axis mask to the
// rotation circle of axis a.
func (c *Context) rotationAxisShown(op Operation, a int) bool {
	if !op.Intersects(RotateX << uint(a)) {
		return false
	}
	return c.cfg.noAxisMasked() || c.cfg.soleMaskedAxis(a)
}

// rotationRingRadius grows the screen-rotation ring to enclose every
// visible rotation circle.
func (c *Context) rotationRingRadius(op Operation) float32 {
	f := &c.frame
	r := screenRotateSize * c.rect.H
	if !op.Intersects(Rotate) {
		return r
	}
	center := c.worldToPos(geom.Position(f.model), f.viewProj)
	for a := 0; a < 3; a++ {
		if !c.rotationAxisShown(op, a) {
			continue
		}
		first := c.rotationCircle(a, true)[0]
		if d := first.Sub(center).Len(); d > r {
			r = d
		}
	}
	return r
}
