package gizmo

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// blankID is the root of every identity stack and the "nobody" editing id.
const blankID uint32 = math.MaxUint32

// Rect is the viewport the gizmo projects into, in canvas pixels.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Min() mgl32.Vec2 { return mgl32.Vec2{r.X, r.Y} }
func (r Rect) Max() mgl32.Vec2 { return mgl32.Vec2{r.X + r.W, r.Y + r.H} }

// Contains is inclusive on both edges.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p[0] >= r.X && p[0] <= r.X+r.W && p[1] >= r.Y && p[1] <= r.Y+r.H
}

// Context owns the state shared by every gizmo drawn on one surface: the
// viewport, configuration, the identity stack and the single drag slot.
// It is not safe for concurrent use.
type Context struct {
	cfg   Config
	style Style
	log   Logger

	rect    Rect
	enabled bool

	ids       []uint32
	editingID uint32

	frameIndex  uint64
	input       Input
	canvas      Canvas
	overHotspot bool

	op     Operation
	frame  frame
	axes   axisCache
	drag   dragState
	bounds boundsState
}

type Option func(*Context)

func WithLogger(l Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

func WithStyle(s Style) Option {
	return func(c *Context) { c.style = s }
}

func NewContext(cfg Config, opts ...Option) *Context {
	c := &Context{
		cfg:       cfg,
		style:     DefaultStyle(),
		log:       NewNopLogger(),
		enabled:   true,
		ids:       []uint32{blankID},
		editingID: blankID,
		canvas:    nopCanvas{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginFrame installs the input and canvas used by every Manipulate call
// until the next BeginFrame. A nil canvas disables drawing.
func (c *Context) BeginFrame(in Input, canvas Canvas) {
	c.frameIndex++
	c.input = in
	if canvas == nil {
		canvas = nopCanvas{}
	}
	c.canvas = canvas
	c.overHotspot = false
}

func (c *Context) SetRect(x, y, w, h float32) {
	c.rect = Rect{X: x, Y: y, W: w, H: h}
}

func (c *Context) Rect() Rect { return c.rect }

func (c *Context) Config() Config { return c.cfg }

func (c *Context) SetConfig(cfg Config) { c.cfg = cfg }

func (c *Context) Style() *Style { return &c.style }

func (c *Context) Logger() Logger { return c.log }

func (c *Context) SetOrthographic(ortho bool) { c.cfg.Orthographic = ortho }

func (c *Context) SetGizmoSizeClipSpace(v float32) { c.cfg.GizmoSizeClipSpace = v }

func (c *Context) SetAxisVisibilityLimit(v float32) { c.cfg.AxisVisibilityLimit = v }

func (c *Context) SetPlaneVisibilityLimit(v float32) { c.cfg.PlaneVisibilityLimit = v }

func (c *Context) SetAllowAxisFlip(allow bool) { c.cfg.AllowAxisFlip = allow }

func (c *Context) SetAxisMask(x, y, z bool) {
	var m uint8
	if x {
		m |= MaskX
	}
	if y {
		m |= MaskY
	}
	if z {
		m |= MaskZ
	}
	c.cfg.AxisMask = m
}

// Enable toggles interaction. Disabling abandons any drag in progress.
func (c *Context) Enable(enable bool) {
	c.enabled = enable
	if !enable {
		c.Reset()
	}
}

func (c *Context) Enabled() bool { return c.enabled }

// Reset abandons any handle or bounds drag without applying it further.
func (c *Context) Reset() {
	if c.drag.active || c.bounds.active {
		c.log.Debugf("drag reset id=%08x", c.editingID)
	}
	c.drag = dragState{}
	c.bounds.active = false
	c.editingID = blankID
	c.axes.disarm()
}

// PushID pushes an identity derived from n and the current top.
func (c *Context) PushID(n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	c.ids = append(c.ids, hashID(buf[:], c.CurrentID()))
}

// PushUID pushes an identity derived from u and the current top.
func (c *Context) PushUID(u uuid.UUID) {
	c.ids = append(c.ids, hashID(u[:], c.CurrentID()))
}

// PopID pops the last pushed identity. The root identity is never popped.
func (c *Context) PopID() {
	if len(c.ids) <= 1 {
		c.log.Warnf("PopID called on an empty identity stack")
		return
	}
	c.ids = c.ids[:len(c.ids)-1]
}

func (c *Context) CurrentID() uint32 {
	return c.ids[len(c.ids)-1]
}

func hashID(data []byte, seed uint32) uint32 {
	return ^crc32.Update(^seed, crc32.IEEETable, data)
}

// IsUsing reports whether the current identity owns the active handle
// drag, or any bounds drag is in progress.
func (c *Context) IsUsing() bool {
	return (c.drag.active && c.CurrentID() == c.editingID) || c.bounds.active
}

// IsUsingAny reports whether any drag is in progress on this context.
func (c *Context) IsUsingAny() bool {
	return c.drag.active || c.bounds.active
}

// IsOver reports whether the mouse hovers a handle of the operation last
// passed to Manipulate, or a drag is in progress.
func (c *Context) IsOver() bool {
	return c.IsOverOp(c.op)
}

// IsOverOp is IsOver for an explicit operation, using the last frame's
// geometry.
func (c *Context) IsOverOp(op Operation) bool {
	return c.IsUsing() || c.hoveredHandle(op) != HandleNone
}

// ScreenFactor is the world length of a unit handle at the object's
// depth, as computed by the last Manipulate call.
func (c *Context) ScreenFactor() float32 { return c.frame.screenFactor }

// canActivate reports a fresh click that no other element has captured.
func (c *Context) canActivate() bool {
	return c.input.MouseClicked && !c.input.MouseCaptured
}

func (c *Context) mouse() mgl32.Vec2 {
	return mgl32.Vec2{c.input.MouseX, c.input.MouseY}
}
