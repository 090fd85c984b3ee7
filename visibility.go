package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// axisSnapshot is the flip and visibility state of the three axes for one
// projection (world-aligned model or orthonormalized local model).
type axisSnapshot struct {
	factor       [3]float32
	axisVisible  [3]bool
	planeVisible [3]bool
}

// axisCache freezes the snapshots taken when a drag is armed so handles
// do not flip or vanish while the object moves under the mouse. It is
// armed at frame armedAt and stays valid until the drag ends.
type axisCache struct {
	armed        bool
	armedAt      uint64
	world, local axisSnapshot
}

func (a *axisCache) arm(frame uint64, world, local axisSnapshot) {
	a.armed = true
	a.armedAt = frame
	a.world = world
	a.local = local
}

func (a *axisCache) disarm() {
	a.armed = false
}

// tripod is one axis handle and its companion plane directions, in model
// space, after flipping.
type tripod struct {
	axis, planeX, planeY mgl32.Vec3
	axisVisible          bool
	planeVisible         bool
	flipped              bool
}

// computeAxes evaluates flip and visibility for the current frame.
func (c *Context) computeAxes(local bool) axisSnapshot {
	var s axisSnapshot
	for i := 0; i < 3; i++ {
		s.factor[i] = 1
		if !c.cfg.AllowAxisFlip {
			continue
		}
		dir := geom.Unit(i)
		lenDir := c.segmentLengthClip(mgl32.Vec3{}, dir, local)
		lenMinus := c.segmentLengthClip(mgl32.Vec3{}, dir.Mul(-1), local)
		if lenDir < lenMinus && geom.Absf(lenDir-lenMinus) > geom.Epsilon {
			s.factor[i] = -1
		}
	}

	sf := c.frame.screenFactor
	for i := 0; i < 3; i++ {
		axis := geom.Unit(i).Mul(s.factor[i])
		px := geom.Unit((i + 1) % 3).Mul(s.factor[(i+1)%3])
		py := geom.Unit((i + 2) % 3).Mul(s.factor[(i+2)%3])

		axisLen := c.segmentLengthClip(mgl32.Vec3{}, axis.Mul(sf), local)
		surface := c.parallelogram(mgl32.Vec3{}, px.Mul(sf), py.Mul(sf))

		s.axisVisible[i] = axisLen > c.cfg.AxisVisibilityLimit && !c.cfg.axisMasked(i)
		s.planeVisible[i] = surface > c.cfg.PlaneVisibilityLimit &&
			(c.cfg.soleMaskedAxis(i) || c.cfg.noAxisMasked())
	}
	return s
}

// snapshot returns the frozen state while the current identity is
// dragging, and this frame's state otherwise.
func (c *Context) snapshot(local bool) axisSnapshot {
	if c.axes.armed && c.drag.active && c.CurrentID() == c.editingID {
		if local {
			return c.axes.local
		}
		return c.axes.world
	}
	if local {
		return c.frame.local
	}
	return c.frame.world
}

func (c *Context) tripod(i int, local bool) tripod {
	s := c.snapshot(local)
	j, k := (i+1)%3, (i+2)%3
	return tripod{
		axis:         geom.Unit(i).Mul(s.factor[i]),
		planeX:       geom.Unit(j).Mul(s.factor[j]),
		planeY:       geom.Unit(k).Mul(s.factor[k]),
		axisVisible:  s.axisVisible[i],
		planeVisible: s.planeVisible[i],
		flipped:      s.factor[i] < 0,
	}
}
