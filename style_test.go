package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_Dimmed(t *testing.T) {
	s := DefaultStyle()
	red := s.Colors[ColorDirectionX]

	same := s.Dimmed(red, 0)
	assert.InDelta(t, red.R, same.R, 1)
	assert.InDelta(t, red.G, same.G, 1)
	assert.Equal(t, red.A, same.A)
	full := s.Dimmed(red, 1)
	inactive := s.Colors[ColorInactive]
	assert.InDelta(t, inactive.R, full.R, 1)
	assert.InDelta(t, inactive.A, full.A, 1)
}

func TestStyle_SetAxisHues(t *testing.T) {
	s := DefaultStyle()
	s.SetAxisHues(120, 240, 0, 1)
	g := s.Colors[ColorDirectionX]
	assert.Equal(t, uint8(0xff), g.G)
	assert.Zero(t, g.R)
	assert.Less(t, s.Colors[ColorPlaneX].A, g.A)
}

func TestHandleColors_Selection(t *testing.T) {
	c := newTestContext(t)
	cols := c.handleColors(FamilyTranslate, MoveScreen)
	sel := c.style.Colors[ColorSelection]
	assert.Equal(t, sel, cols[0])
	assert.Equal(t, sel, cols[4])
	assert.NotEqual(t, sel, cols[1])

	c.Enable(false)
	dim := c.handleColors(FamilyRotate, HandleNone)
	assert.NotEqual(t, white, dim[0])
}
