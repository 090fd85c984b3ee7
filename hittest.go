package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// Pixel thresholds of the hit tests. They are fixed and do not follow DPI.
const (
	translateHitPx = 12
	rotateHitPx    = 8
	scaleHitPx     = 12
	ringHalfWidth  = 4
	uniformRingMin = 17
	uniformRingMax = 23
	// Plane quads span [quadMin, quadMax] of the screen factor on both
	// plane axes.
	quadMin = 0.5
	quadMax = 0.8
)

// hoveredHandle runs the hit tests in priority order: translate, rotate,
// scale. The first hit wins.
func (c *Context) hoveredHandle(op Operation) Handle {
	if op.Intersects(Translate) {
		if h := c.hitMove(op); h != HandleNone {
			return h
		}
	}
	if op.Intersects(Rotate) {
		if h := c.hitRotate(op); h != HandleNone {
			return h
		}
	}
	if op.Intersects(Scale | ScaleU) {
		return c.hitScale(op)
	}
	return HandleNone
}

func (c *Context) inScreenSquare(p mgl32.Vec2) bool {
	f := &c.frame
	return p[0] >= f.squareMin[0] && p[0] <= f.squareMax[0] &&
		p[1] >= f.squareMin[1] && p[1] <= f.squareMax[1]
}

func (c *Context) hitMove(op Operation) Handle {
	f := &c.frame
	if !op.Intersects(Translate) || c.drag.active || !f.mouseOver {
		return HandleNone
	}
	mouse := c.mouse()
	h := HandleNone
	if c.inScreenSquare(mouse) && op.Contains(Translate) {
		h = MoveScreen
	}

	pos := geom.Position(f.model)
	for i := 0; i < 3 && h == HandleNone; i++ {
		tp := c.tripod(i, false)
		axis := geom.TransformVector(f.model, tp.axis)
		planeX := geom.TransformVector(f.model, tp.planeX)
		planeY := geom.TransformVector(f.model, tp.planeY)

		onPlane := f.ray.At(f.ray.Intersect(geom.BuildPlane(pos, axis)))

		start := c.worldToPos(pos.Add(axis.Mul(f.screenFactor*0.1)), f.viewProj)
		end := c.worldToPos(pos.Add(axis.Mul(f.screenFactor)), f.viewProj)
		closest := geom.PointOnSegment(mouse, start, end)
		if closest.Sub(mouse).Len() < translateHitPx && op.Intersects(TranslateX<<uint(i)) {
			if c.cfg.axisMasked(i) {
				break
			}
			if tp.axisVisible {
				h = moveHandle(i)
			}
		}

		rel := onPlane.Sub(pos).Mul(1 / f.screenFactor)
		dx, dy := planeX.Dot(rel), planeY.Dot(rel)
		if tp.planeVisible && dx >= quadMin && dx <= quadMax && dy >= quadMin && dy <= quadMax &&
			op.Contains(translatePlanes[i]) {
			if !c.cfg.noAxisMasked() && !c.cfg.soleMaskedAxis(i) {
				break
			}
			h = planeHandle(i)
		}
	}
	return h
}

func (c *Context) hitRotate(op Operation) Handle {
	f := &c.frame
	if c.drag.active || !f.mouseOver {
		return HandleNone
	}
	mouse := c.mouse()
	h := HandleNone

	dist := mouse.Sub(f.squareCenter).Len()
	if op.Intersects(RotateScreen) && dist >= f.ringRadius-ringHalfWidth && dist < f.ringRadius+ringHalfWidth {
		if !c.cfg.noAxisMasked() {
			return HandleNone
		}
		h = RotateScreenHandle
	}

	pos := geom.Position(f.model)
	modelView := geom.TransformPoint(f.view, pos)
	for i := 0; i < 3 && h == HandleNone; i++ {
		if !op.Intersects(RotateX << uint(i)) {
			continue
		}
		plane := geom.BuildPlane(pos, geom.Basis(f.model, i))
		hit := f.ray.At(f.ray.Intersect(plane))
		hitView := geom.TransformPoint(f.view, hit)
		// the far half of the circle is behind the object
		if geom.Absf(modelView[2])-geom.Absf(hitView[2]) < -geom.Epsilon {
			continue
		}

		ideal := geom.TransformVector(f.modelInverse, geom.Normalize(hit.Sub(pos)))
		onScreen := c.worldToPos(ideal.Mul(rotationDisplayFactor*f.screenFactor), f.mvp)
		if onScreen.Sub(mouse).Len() < rotateHitPx {
			if !c.cfg.noAxisMasked() && !c.cfg.soleMaskedAxis(i) {
				break
			}
			h = rotateHandle(i)
		}
	}
	return h
}

// scaleMarkerOffset is where the scale handle of axis i sits: pushed past
// the translate arrow when both are shown.
func scaleMarkerOffset(op Operation, i int) (start, end float32) {
	if op.Contains(TranslateX << uint(i)) {
		return 1.0, 1.4
	}
	return 0.1, 1.0
}

func (c *Context) hitScale(op Operation) Handle {
	f := &c.frame
	if c.drag.active || !f.mouseOver {
		return HandleNone
	}
	mouse := c.mouse()
	h := HandleNone

	if c.inScreenSquare(mouse) && op.Contains(Scale) {
		h = ScaleXYZ
	}

	pos := geom.Position(f.modelLocal)
	for i := 0; i < 3 && h == HandleNone; i++ {
		if !op.Intersects(ScaleX << uint(i)) {
			continue
		}
		tp := c.tripod(i, true)
		axis := geom.TransformVector(f.modelLocal, tp.axis)

		startOff, endOff := scaleMarkerOffset(op, i)
		start := c.worldToPos(pos.Add(axis.Mul(f.screenFactor*startOff)), f.viewProj)
		end := c.worldToPos(pos.Add(axis.Mul(f.screenFactor*endOff)), f.viewProj)
		closest := geom.PointOnSegment(mouse, start, end)
		if closest.Sub(mouse).Len() < scaleHitPx && !c.cfg.axisMasked(i) {
			h = scaleHandle(i)
		}
	}

	dist := mouse.Sub(f.squareCenter).Len()
	if op.Contains(ScaleU) && dist >= uniformRingMin && dist < uniformRingMax {
		h = ScaleXYZ
	}

	for i := 0; i < 3 && h == HandleNone; i++ {
		if !op.Intersects(ScaleXU << uint(i)) {
			continue
		}
		tp := c.tripod(i, true)
		if !tp.axisVisible {
			continue
		}
		_, marker := scaleMarkerOffset(op, i)
		onScreen := c.worldToPos(tp.axis.Mul(marker*f.screenFactor), f.mvpLocal)
		if onScreen.Sub(mouse).Len() < scaleHitPx {
			h = scaleHandle(i)
		}
	}
	return h
}
