package scenario

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_KeepsDefaults(t *testing.T) {
	sc, err := Load(writeScenario(t, `{"operation": "rotate", "snap": [15, 0, 0]}`))
	require.NoError(t, err)

	assert.Equal(t, 800, sc.Width)
	assert.Equal(t, 600, sc.Height)
	assert.Equal(t, "rotate", sc.Operation)
	assert.Equal(t, float32(5), sc.Camera.Distance)
	require.NotNil(t, sc.Snap)
	assert.Equal(t, float32(15), sc.Snap[0])
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = Load(writeScenario(t, `{"operation": `))
	assert.ErrorContains(t, err, "scenario: parse")

	_, err = Load(writeScenario(t, `{"operation": "twist"}`))
	assert.ErrorContains(t, err, `unknown operation "twist"`)

	_, err = Load(writeScenario(t, `{"mode": "screen"}`))
	assert.ErrorContains(t, err, `unknown mode "screen"`)

	_, err = Load(writeScenario(t, `{"width": 0}`))
	assert.ErrorContains(t, err, "invalid size")
}

func TestModelMatrix(t *testing.T) {
	sc := Default()
	sc.Model.Position = [3]float32{1, 2, 3}
	sc.Model.RotationDeg = [3]float32{0, 90, 0}
	sc.Model.Scale = [3]float32{2, 2, 2}

	m := sc.ModelMatrix()
	tr := gizmo.DecomposeTransform(m)
	assert.InDelta(t, 1, tr.Position[0], 1e-5)
	assert.InDelta(t, 3, tr.Position[2], 1e-5)
	assert.InDelta(t, 2, tr.Scale[1], 1e-5)

	x := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	assert.InDelta(t, -2, x[2], 1e-5, "yaw of 90 degrees turns +X to -Z")
}

func TestParams(t *testing.T) {
	sc := Default()
	sc.Operation = "scale|bounds"
	sc.Mode = "local"
	sc.Bounds = &[6]float32{-1, -1, -1, 1, 1, 1}

	p := sc.Params(sc.NewCamera())
	assert.Equal(t, gizmo.Scale|gizmo.Bounds, p.Operation)
	assert.Equal(t, gizmo.Local, p.Mode)
	require.NotNil(t, p.Bounds)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, p.Bounds.Size())
	assert.Nil(t, p.Snap)
}

func TestReplay_TranslateDrag(t *testing.T) {
	sc := Default()
	sc.Steps = []Step{
		{X: 430, Y: 300, Down: true},
		{X: 480, Y: 300, Down: true, Repeat: 3},
		{X: 480, Y: 300},
	}

	ctx := gizmo.NewContext(gizmo.DefaultConfig())
	res := sc.Replay(ctx, func(mgl32.Mat4) gizmo.Canvas { return nil })

	assert.Equal(t, 5, res.Frames)
	assert.Equal(t, 1, res.Modified, "holding still does not modify")
	assert.InDelta(t, 50.0/400/0.362132, res.Model[12], 1e-3)
	assert.InDelta(t, 0, res.Model[13], 1e-5)
	assert.False(t, ctx.IsUsingAny())
}

func TestReplay_NoSteps(t *testing.T) {
	calls := 0
	res := Default().Replay(gizmo.NewContext(gizmo.DefaultConfig()), func(mgl32.Mat4) gizmo.Canvas {
		calls++
		return nil
	})
	assert.Equal(t, 1, res.Frames)
	assert.Equal(t, 1, calls)
	assert.Equal(t, mgl32.Ident4(), res.Model)
}
