package gizmo

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

const (
	disabledDim           = 0.8
	translationGuideR     = 6
	translationGuideInset = 5
	universalMarkerR      = 12
	universalRingR        = 20
)

var (
	quadUV = [8]float32{quadMin, quadMin, quadMin, quadMax, quadMax, quadMax, quadMax, quadMin}

	translationInfo = [7]struct {
		format string
		comps  []int
	}{
		{"X : %5.3f", []int{0}},
		{"Y : %5.3f", []int{1}},
		{"Z : %5.3f", []int{2}},
		{"Y : %5.3f Z : %5.3f", []int{1, 2}},
		{"X : %5.3f Z : %5.3f", []int{0, 2}},
		{"X : %5.3f Y : %5.3f", []int{0, 1}},
		{"X : %5.3f Y : %5.3f Z : %5.3f", []int{0, 1, 2}},
	}
	rotationInfo = [4]string{
		"X : %5.2f deg %5.2f rad",
		"Y : %5.2f deg %5.2f rad",
		"Z : %5.2f deg %5.2f rad",
		"Screen : %5.2f deg %5.2f rad",
	}
	scaleInfo = [4]string{"X : %5.2f", "Y : %5.2f", "Z : %5.2f", "XYZ : %5.2f"}

	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// handleColors returns the center color, the three axis colors and the
// three plane colors for family fam with handle h highlighted.
func (c *Context) handleColors(fam Family, h Handle) [7]color.NRGBA {
	var cols [7]color.NRGBA
	sel := c.style.color(ColorSelection)
	pick := func(hit bool, base color.NRGBA) color.NRGBA {
		if hit {
			return sel
		}
		return base
	}

	switch fam {
	case FamilyTranslate:
		cols[0] = pick(h == MoveScreen, c.style.color(ColorScreenTranslate))
		for i := 0; i < 3; i++ {
			cols[i+1] = pick(h == moveHandle(i), c.style.color(ColorDirectionX+ColorID(i)))
			cols[i+4] = pick(h == planeHandle(i) || h == MoveScreen, c.style.color(ColorPlaneX+ColorID(i)))
		}
	case FamilyRotate:
		cols[0] = pick(h == RotateScreenHandle, white)
		for i := 0; i < 3; i++ {
			cols[i+1] = pick(h == rotateHandle(i), c.style.color(ColorDirectionX+ColorID(i)))
		}
	case FamilyScale:
		cols[0] = pick(h == ScaleXYZ, white)
		for i := 0; i < 3; i++ {
			cols[i+1] = pick(h == scaleHandle(i), c.style.color(ColorDirectionX+ColorID(i)))
		}
	}

	if !c.enabled {
		for i := range cols {
			cols[i] = c.style.Dimmed(cols[i], disabledDim)
		}
	}
	return cols
}

// editing reports whether the current identity owns the active drag.
func (c *Context) editing() bool {
	return c.drag.active && c.CurrentID() == c.editingID
}

// annotate draws a shadowed value label next to pos.
func (c *Context) annotate(pos mgl32.Vec2, text string) {
	off := c.style.AnnotationOffset
	c.canvas.Text(mgl32.Vec2{pos[0] + off + 1, pos[1] + off + 1}, c.style.color(ColorTextShadow), text)
	c.canvas.Text(mgl32.Vec2{pos[0] + off, pos[1] + off}, c.style.color(ColorText), text)
}

func (c *Context) drawRotation(op Operation, h Handle) {
	if !op.Intersects(Rotate) {
		return
	}
	f := &c.frame
	cols := c.handleColors(FamilyRotate, h)
	screen := op.Intersects(RotateScreen)

	for a := 2; a >= 0; a-- {
		if !c.rotationAxisShown(op, a) {
			continue
		}
		usingAxis := c.drag.active && h == rotateHandle(a)
		pts := c.rotationCircle(a, screen && !usingAxis)
		if !c.drag.active || usingAxis {
			c.canvas.Polyline(pts, cols[a+1], false, c.style.RotationLineThickness)
		}
	}

	if screen && (!c.drag.active || h == RotateScreenHandle) && c.cfg.noAxisMasked() {
		center := c.worldToPos(geom.Position(f.model), f.viewProj)
		c.canvas.Circle(center, f.ringRadius, cols[0], halfCircleSegments, c.style.RotationOuterLineThickness)
	}

	if !c.editing() || h.Family() != FamilyRotate {
		return
	}
	d := &c.drag
	pos := geom.Position(f.model)
	pts := make([]mgl32.Vec2, halfCircleSegments+1)
	pts[0] = c.worldToPos(pos, f.viewProj)
	for i := 1; i < len(pts); i++ {
		ng := d.angle * float32(i-1) / float32(halfCircleSegments-1)
		v := geom.TransformVector(geom.RotationAxis(d.plane.Normal, ng), d.rotationSource)
		v = v.Mul(f.screenFactor * rotationDisplayFactor)
		pts[i] = c.worldToPos(pos.Add(v), f.viewProj)
	}
	c.canvas.ConvexPolyFilled(pts, c.style.color(ColorRotationUsingFill))
	c.canvas.Polyline(pts, c.style.color(ColorRotationUsingBorder), true, c.style.RotationLineThickness)

	idx := 3
	if h != RotateScreenHandle {
		idx = h.Axis()
	}
	c.annotate(pts[1], fmt.Sprintf(rotationInfo[idx], mgl32.RadToDeg(d.angle), d.angle))
}

func (c *Context) drawTranslation(op Operation, h Handle) {
	if !op.Intersects(Translate) {
		return
	}
	f := &c.frame
	cols := c.handleColors(FamilyTranslate, h)
	origin := c.worldToPos(geom.Position(f.model), f.viewProj)
	sf := f.screenFactor

	for i := 0; i < 3; i++ {
		tp := c.tripod(i, false)

		if (!c.drag.active || h == moveHandle(i)) && tp.axisVisible && op.Intersects(TranslateX<<uint(i)) {
			base := c.worldToPos(tp.axis.Mul(0.1*sf), f.mvp)
			tip := c.worldToPos(tp.axis.Mul(sf), f.mvp)
			c.canvas.Line(base, tip, cols[i+1], c.style.TranslationLineThickness)

			dir := origin.Sub(tip)
			if l := dir.Len(); l > geom.Epsilon {
				dir = dir.Mul(c.style.TranslationLineArrowSize / l)
			}
			ortho := mgl32.Vec2{dir[1], -dir[0]}
			a := tip.Add(dir)
			c.canvas.TriangleFilled(tip.Sub(dir), a.Add(ortho), a.Sub(ortho), cols[i+1])

			if tp.flipped {
				c.drawHatchedAxis(tp.axis, f.mvp)
			}
		}

		if (!c.drag.active || h == planeHandle(i)) && tp.planeVisible && op.Contains(translatePlanes[i]) {
			quad := make([]mgl32.Vec2, 4)
			for j := range quad {
				corner := tp.planeX.Mul(quadUV[j*2]).Add(tp.planeY.Mul(quadUV[j*2+1])).Mul(sf)
				quad[j] = c.worldToPos(corner, f.mvp)
			}
			c.canvas.Polyline(quad, c.style.color(ColorDirectionX+ColorID(i)), true, 1)
			c.canvas.ConvexPolyFilled(quad, cols[i+4])
		}
	}

	c.canvas.CircleFilled(f.squareCenter, c.style.CenterCircleSize, cols[0], 32)

	if !c.editing() || h.Family() != FamilyTranslate {
		return
	}
	lineCol := c.style.color(ColorTranslationLine)
	src := c.worldToPos(c.drag.matrixOrigin, f.viewProj)
	dst := c.worldToPos(geom.Position(f.model), f.viewProj)
	dif := dst.Sub(src)
	if l := dif.Len(); l > geom.Epsilon {
		dif = dif.Mul(translationGuideInset / l)
	}
	c.canvas.Circle(src, translationGuideR, lineCol, 0, 1)
	c.canvas.Circle(dst, translationGuideR, lineCol, 0, 1)
	c.canvas.Line(src.Add(dif), dst.Sub(dif), lineCol, 2)

	moved := geom.Position(f.model).Sub(c.drag.matrixOrigin)
	info := translationInfo[h-MoveX]
	args := make([]any, len(info.comps))
	for k, comp := range info.comps {
		args[k] = moved[comp]
	}
	c.annotate(dst, fmt.Sprintf(info.format, args...))
}

func (c *Context) drawHatchedAxis(axis mgl32.Vec3, mvp mgl32.Mat4) {
	if c.style.HatchedAxisLineThickness <= 0 {
		return
	}
	sf := c.frame.screenFactor
	col := c.style.color(ColorHatchedAxisLines)
	for j := 1; j < 10; j++ {
		a := c.worldToPos(axis.Mul(0.05*float32(2*j)*sf), mvp)
		b := c.worldToPos(axis.Mul(0.05*float32(2*j+1)*sf), mvp)
		c.canvas.Line(a, b, col, c.style.HatchedAxisLineThickness)
	}
}

// scaleDisplay is the live scale of the current identity's drag.
func (c *Context) scaleDisplay() mgl32.Vec3 {
	if c.editing() {
		return c.drag.scale
	}
	return mgl32.Vec3{1, 1, 1}
}

func (c *Context) drawScale(op Operation, h Handle) {
	if !op.Intersects(Scale) {
		return
	}
	f := &c.frame
	cols := c.handleColors(FamilyScale, h)
	display := c.scaleDisplay()
	sf := f.screenFactor

	for i := 0; i < 3; i++ {
		if !op.Intersects(ScaleX << uint(i)) {
			continue
		}
		if c.drag.active && h != scaleHandle(i) {
			continue
		}
		tp := c.tripod(i, true)
		if !tp.axisVisible {
			continue
		}
		hasTranslate := op.Contains(TranslateX << uint(i))
		_, marker := scaleMarkerOffset(op, i)
		base := c.worldToPos(tp.axis.Mul(0.1*sf), f.mvpLocal)
		tipRest := c.worldToPos(tp.axis.Mul(marker*sf), f.mvpLocal)
		tip := c.worldToPos(tp.axis.Mul(marker*display[i]*sf), f.mvpLocal)

		if c.editing() {
			guide := c.style.color(ColorScaleLine)
			c.canvas.Line(base, tipRest, guide, c.style.ScaleLineThickness)
			c.canvas.CircleFilled(tipRest, c.style.ScaleLineCircleSize, guide, 0)
		}
		if !hasTranslate || c.drag.active {
			c.canvas.Line(base, tip, cols[i+1], c.style.ScaleLineThickness)
		}
		c.canvas.CircleFilled(tip, c.style.ScaleLineCircleSize, cols[i+1], 0)

		if tp.flipped {
			c.drawHatchedAxis(tp.axis.Mul(display[i]), f.mvpLocal)
		}
	}

	c.canvas.CircleFilled(f.squareCenter, c.style.CenterCircleSize, cols[0], 32)
}

func (c *Context) drawScaleUniversal(op Operation, h Handle) {
	if !op.Intersects(ScaleU) {
		return
	}
	f := &c.frame
	cols := c.handleColors(FamilyScale, h)
	display := c.scaleDisplay()

	for i := 0; i < 3; i++ {
		if !op.Intersects(ScaleXU << uint(i)) {
			continue
		}
		if c.drag.active && h != scaleHandle(i) {
			continue
		}
		tp := c.tripod(i, true)
		if !tp.axisVisible {
			continue
		}
		_, marker := scaleMarkerOffset(op, i)
		tip := c.worldToPos(tp.axis.Mul(marker*display[i]*f.screenFactor), f.mvpLocal)
		c.canvas.CircleFilled(tip, universalMarkerR, cols[i+1], 0)
	}

	c.canvas.Circle(f.squareCenter, universalRingR, cols[0], 32, c.style.CenterCircleSize)
}

// drawScaleInfo labels the live scale of the handle being dragged.
func (c *Context) drawScaleInfo(h Handle) {
	if !c.editing() || h.Family() != FamilyScale {
		return
	}
	idx, comp := 3, 0
	if h != ScaleXYZ {
		idx, comp = h.Axis(), h.Axis()
	}
	pos := c.worldToPos(geom.Position(c.frame.model), c.frame.viewProj)
	c.annotate(pos, fmt.Sprintf(scaleInfo[idx], c.drag.scale[comp]))
}
