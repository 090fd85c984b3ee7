package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_Groups(t *testing.T) {
	assert.True(t, Universal.Contains(Translate))
	assert.True(t, Universal.Contains(RotateScreen))
	assert.False(t, Universal.Intersects(Scale))
	assert.True(t, Rotate.Intersects(RotateScreen))
	assert.False(t, (TranslateX | TranslateY).Contains(Translate))
}

func TestOperation_StringRoundTrip(t *testing.T) {
	for _, op := range []Operation{Translate, Rotate | ScaleX, Universal | Bounds, TranslateX | RotateScreen, 0} {
		parsed, ok := ParseOperation(op.String())
		assert.True(t, ok, op.String())
		assert.Equal(t, op, parsed, op.String())
	}
	_, ok := ParseOperation("translate|wobble")
	assert.False(t, ok)
}

func TestHandle_FamilyAndAxis(t *testing.T) {
	cases := []struct {
		h      Handle
		family Family
		axis   int
	}{
		{HandleNone, FamilyNone, -1},
		{MoveX, FamilyTranslate, 0},
		{MoveZX, FamilyTranslate, 1},
		{MoveScreen, FamilyTranslate, -1},
		{RotateZHandle, FamilyRotate, 2},
		{RotateScreenHandle, FamilyRotate, -1},
		{ScaleYHandle, FamilyScale, 1},
		{ScaleXYZ, FamilyScale, -1},
	}
	for _, c := range cases {
		if c.h.Family() != c.family {
			t.Errorf("%v.Family() = %v, want %v", c.h, c.h.Family(), c.family)
		}
		if c.h.Axis() != c.axis {
			t.Errorf("%v.Axis() = %d, want %d", c.h, c.h.Axis(), c.axis)
		}
	}
	assert.Equal(t, MoveXY, planeHandle(2))
	assert.Equal(t, "scale-xyz", ScaleXYZ.String())
}
