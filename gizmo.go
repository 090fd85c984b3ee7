package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Gizmo is one manipulable object with its own identity and tool state.
// Several gizmos can share a Context within a frame.
type Gizmo struct {
	ID        uuid.UUID
	Operation Operation
	Mode      Mode
	Snap      *mgl32.Vec3
	Bounds    *Box
}

func NewGizmo() *Gizmo {
	return &Gizmo{
		ID:        uuid.New(),
		Operation: Translate,
		Mode:      World,
	}
}

// HandleKeyboard applies the editor shortcuts: G translates, R rotates and
// S scales. Pressing the key of the active operation toggles between local
// and world mode. Chords with Shift or Ctrl are left to the host.
func (g *Gizmo) HandleKeyboard(in Input) {
	if in.Shift() || in.Ctrl() {
		return
	}
	for _, k := range []struct {
		key int
		op  Operation
	}{
		{KeyG, Translate},
		{KeyR, Rotate},
		{KeyS, Scale},
	} {
		if !in.JustPressed[k.key] {
			continue
		}
		if g.Operation == k.op {
			g.toggleMode()
		} else {
			g.Operation = k.op
		}
		return
	}
}

func (g *Gizmo) toggleMode() {
	if g.Mode == Local {
		g.Mode = World
	} else {
		g.Mode = Local
	}
}

// Draw runs the gizmo over model under this gizmo's identity. When the
// model was changed it returns the decomposed incremental transform.
func (g *Gizmo) Draw(ctx *Context, model *mgl32.Mat4, view, proj mgl32.Mat4) *Transform {
	ctx.PushUID(g.ID)
	defer ctx.PopID()

	var delta mgl32.Mat4
	p := Params{
		View:       view,
		Projection: proj,
		Operation:  g.Operation,
		Mode:       g.Mode,
		Snap:       g.Snap,
		Bounds:     g.Bounds,
	}
	if !ctx.Manipulate(p, model, &delta) {
		return nil
	}
	t := DecomposeTransform(delta)
	return &t
}

// IsUsing reports whether this gizmo owns the active drag.
func (g *Gizmo) IsUsing(ctx *Context) bool {
	ctx.PushUID(g.ID)
	defer ctx.PopID()
	return ctx.IsUsing()
}
