package gizmo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContext_IDStack(t *testing.T) {
	c := newTestContext(t)
	root := c.CurrentID()
	assert.Equal(t, blankID, root)

	c.PushID(1)
	one := c.CurrentID()
	c.PopID()
	c.PushID(2)
	two := c.CurrentID()
	assert.NotEqual(t, one, two)

	c.PushID(5)
	nested := c.CurrentID()
	c.PopID()
	assert.Equal(t, two, c.CurrentID())
	c.PopID()
	assert.Equal(t, root, c.CurrentID())

	c.PushID(5)
	assert.NotEqual(t, nested, c.CurrentID(), "ids depend on the parent")
	c.PopID()

	c.PushID(1)
	assert.Equal(t, one, c.CurrentID(), "ids are stable")
	c.PopID()
}

func TestContext_PopIDKeepsRoot(t *testing.T) {
	c := newTestContext(t)
	c.PopID()
	c.PopID()
	assert.Equal(t, blankID, c.CurrentID())
}

func TestContext_PushUID(t *testing.T) {
	c := newTestContext(t)
	a, b := uuid.New(), uuid.New()
	c.PushUID(a)
	ida := c.CurrentID()
	c.PopID()
	c.PushUID(b)
	assert.NotEqual(t, ida, c.CurrentID())
	c.PopID()
	c.PushUID(a)
	assert.Equal(t, ida, c.CurrentID())
}

func TestContext_DisableAbandonsDrag(t *testing.T) {
	c := newTestContext(t)
	c.drag.active = true
	c.editingID = c.CurrentID()
	c.bounds.active = true

	c.Enable(false)
	assert.False(t, c.Enabled())
	assert.False(t, c.IsUsingAny())
	assert.Equal(t, blankID, c.editingID)
	assert.False(t, c.axes.armed)
}

func TestContext_SetAxisMask(t *testing.T) {
	c := newTestContext(t)
	c.SetAxisMask(true, false, true)
	assert.Equal(t, MaskX|MaskZ, c.Config().AxisMask)
	assert.True(t, c.cfg.multipleAxesMasked())
	c.SetAxisMask(false, true, false)
	assert.True(t, c.cfg.soleMaskedAxis(1))
	assert.False(t, c.cfg.soleMaskedAxis(0))
}

func TestRect_ContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.True(t, r.Contains(r.Min()))
	assert.True(t, r.Contains(r.Max()))
	assert.False(t, r.Contains(r.Max().Add([2]float32{0, 0.5})))
}

func TestInput_Advance(t *testing.T) {
	var prev Input
	prev.Pressed[KeyG] = true

	next := Input{MouseDown: true}
	next.Pressed[KeyG] = true
	next.Pressed[KeyR] = true
	next = prev.Advance(next)

	assert.True(t, next.MouseClicked)
	assert.False(t, next.MouseReleased)
	assert.False(t, next.JustPressed[KeyG])
	assert.True(t, next.JustPressed[KeyR])

	up := next.Advance(Input{})
	assert.True(t, up.MouseReleased)
	assert.False(t, up.MouseClicked)
}
