package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(key int, mods ...int) Input {
	var in Input
	in.Pressed[key] = true
	in.JustPressed[key] = true
	for _, m := range mods {
		in.Pressed[m] = true
	}
	return in
}

func TestGizmo_HandleKeyboard(t *testing.T) {
	g := NewGizmo()
	require.Equal(t, Translate, g.Operation)
	require.Equal(t, World, g.Mode)

	g.HandleKeyboard(press(KeyR))
	assert.Equal(t, Rotate, g.Operation)
	assert.Equal(t, World, g.Mode)

	g.HandleKeyboard(press(KeyR))
	assert.Equal(t, Rotate, g.Operation)
	assert.Equal(t, Local, g.Mode, "repeat toggles the mode")

	g.HandleKeyboard(press(KeyS))
	assert.Equal(t, Scale, g.Operation)
	assert.Equal(t, Local, g.Mode)

	g.HandleKeyboard(press(KeyG, KeyLeftControl))
	assert.Equal(t, Scale, g.Operation, "chords are ignored")

	g.HandleKeyboard(press(KeyG))
	assert.Equal(t, Translate, g.Operation)

	g.HandleKeyboard(Input{})
	assert.Equal(t, Translate, g.Operation)
}

func TestGizmo_DrawReportsDelta(t *testing.T) {
	d := newDriver(t)
	view, proj := testCamera()
	g := NewGizmo()
	m := mgl32.Ident4()

	d.frame(430, 300, true)
	assert.Nil(t, g.Draw(d.ctx, &m, view, proj))
	assert.True(t, g.IsUsing(d.ctx))
	assert.False(t, d.ctx.IsUsing(), "root identity does not own the drag")

	d.frame(480, 300, true)
	tr := g.Draw(d.ctx, &m, view, proj)
	require.NotNil(t, tr)
	assert.InDelta(t, m[12], tr.Position[0], 1e-5)
	assert.InDelta(t, 1, tr.Scale[0], 1e-5)

	other := NewGizmo()
	o := mgl32.Ident4()
	assert.Nil(t, other.Draw(d.ctx, &o, view, proj))
	assert.False(t, other.IsUsing(d.ctx))
}

func TestDecomposeTransform(t *testing.T) {
	want := Transform{
		Position: mgl32.Vec3{1, -2, 3},
		Rotation: mgl32.QuatRotate(0.7, mgl32.Vec3{1, 2, 3}.Normalize()),
		Scale:    mgl32.Vec3{2, 0.5, 3},
	}
	got := DecomposeTransform(want.Matrix())

	assert.True(t, want.Position.ApproxEqualThreshold(got.Position, 1e-5))
	assert.True(t, want.Scale.ApproxEqualThreshold(got.Scale, 1e-4))
	assert.True(t, want.Rotation.ApproxEqualThreshold(got.Rotation, 1e-4) ||
		want.Rotation.ApproxEqualThreshold(got.Rotation.Scale(-1), 1e-4))
	assertMatrix(t, want.Matrix(), got.Matrix())
}

func TestDecomposeTransform_Mirrored(t *testing.T) {
	m := mgl32.Scale3D(-2, 1, 1)
	got := DecomposeTransform(m)
	assert.InDelta(t, -2, got.Scale[0], 1e-5)
	assertMatrix(t, m, got.Matrix())
}

func TestIdentityTransform(t *testing.T) {
	assertMatrix(t, mgl32.Ident4(), IdentityTransform().Matrix())
}
