// Package scenario describes a scripted gizmo session in JSON and replays
// it against a Context.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/geom"
)

type Camera struct {
	Target       [3]float32 `json:"target"`
	Distance     float32    `json:"distance"`
	YawDeg       float32    `json:"yaw_deg"`
	PitchDeg     float32    `json:"pitch_deg"`
	FovYDeg      float32    `json:"fov_y_deg"`
	Orthographic bool       `json:"orthographic"`
}

type Model struct {
	Position    [3]float32 `json:"position"`
	RotationDeg [3]float32 `json:"rotation_deg"`
	Scale       [3]float32 `json:"scale"`
}

// Step is one frame of mouse input in pixels.
type Step struct {
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Down bool    `json:"down"`
	// Repeat holds the step for this many frames.
	Repeat int `json:"repeat"`
}

type Scenario struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Operation  string      `json:"operation"`
	Mode       string      `json:"mode"`
	Snap       *[3]float32 `json:"snap"`
	Bounds     *[6]float32 `json:"bounds"`
	BoundsSnap *[3]float32 `json:"bounds_snap"`
	Camera     Camera      `json:"camera"`
	Model      Model       `json:"model"`
	Steps      []Step      `json:"steps"`
}

// Default is a translate gizmo at the origin seen from +Z, with no steps.
func Default() Scenario {
	return Scenario{
		Width:     800,
		Height:    600,
		Operation: "translate",
		Mode:      "world",
		Camera:    Camera{Distance: 5, FovYDeg: 45},
		Model:     Model{Scale: [3]float32{1, 1, 1}},
	}
}

// Load reads a JSON scenario. Fields absent from the file keep their
// Default values.
func Load(path string) (Scenario, error) {
	sc := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return sc, nil
}

func (s Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	if _, ok := gizmo.ParseOperation(s.Operation); !ok {
		return fmt.Errorf("unknown operation %q", s.Operation)
	}
	if _, err := s.mode(); err != nil {
		return err
	}
	return nil
}

func (s Scenario) mode() (gizmo.Mode, error) {
	switch s.Mode {
	case "", "world":
		return gizmo.World, nil
	case "local":
		return gizmo.Local, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s.Mode)
}

// NewCamera builds the orbit camera of the scenario.
func (s Scenario) NewCamera() *geom.Camera {
	cam := geom.NewCamera()
	cam.Target = mgl32.Vec3(s.Camera.Target)
	if s.Camera.Distance > 0 {
		cam.Distance = s.Camera.Distance
	}
	if s.Camera.FovYDeg > 0 {
		cam.FovY = s.Camera.FovYDeg
	}
	cam.Yaw = mgl32.DegToRad(s.Camera.YawDeg)
	cam.Pitch = mgl32.DegToRad(s.Camera.PitchDeg)
	cam.Orthographic = s.Camera.Orthographic
	return cam
}

// ModelMatrix composes the initial model as T * R * S, rotating X then Y
// then Z.
func (s Scenario) ModelMatrix() mgl32.Mat4 {
	r := s.Model.RotationDeg
	t := gizmo.IdentityTransform()
	t.Position = mgl32.Vec3(s.Model.Position)
	t.Rotation = mgl32.AnglesToQuat(
		mgl32.DegToRad(r[2]), mgl32.DegToRad(r[1]), mgl32.DegToRad(r[0]), mgl32.ZYX)
	if s.Model.Scale != [3]float32{} {
		t.Scale = mgl32.Vec3(s.Model.Scale)
	}
	return t.Matrix()
}

// Params builds the Manipulate parameters for the scenario camera.
func (s Scenario) Params(cam *geom.Camera) gizmo.Params {
	op, _ := gizmo.ParseOperation(s.Operation)
	mode, _ := s.mode()
	p := gizmo.Params{
		View:       cam.View(),
		Projection: cam.Projection(float32(s.Width) / float32(s.Height)),
		Operation:  op,
		Mode:       mode,
	}
	if s.Snap != nil {
		v := mgl32.Vec3(*s.Snap)
		p.Snap = &v
	}
	if s.Bounds != nil {
		b := *s.Bounds
		p.Bounds = &gizmo.Box{Min: mgl32.Vec3{b[0], b[1], b[2]}, Max: mgl32.Vec3{b[3], b[4], b[5]}}
	}
	if s.BoundsSnap != nil {
		v := mgl32.Vec3(*s.BoundsSnap)
		p.BoundsSnap = &v
	}
	return p
}

// Result is the state after the last replayed frame.
type Result struct {
	Model    mgl32.Mat4
	Frames   int
	Modified int
}

// Replay runs every step through ctx. newCanvas receives the model as it
// stands before each frame; the canvas of the last frame holds the final
// drawing.
func (s Scenario) Replay(ctx *gizmo.Context, newCanvas func(model mgl32.Mat4) gizmo.Canvas) Result {
	cam := s.NewCamera()
	p := s.Params(cam)
	ctx.SetRect(0, 0, float32(s.Width), float32(s.Height))
	ctx.SetOrthographic(s.Camera.Orthographic)

	res := Result{Model: s.ModelMatrix()}
	var prev gizmo.Input
	frame := func(st Step) {
		in := prev.Advance(gizmo.Input{MouseX: st.X, MouseY: st.Y, MouseDown: st.Down})
		prev = in
		ctx.BeginFrame(in, newCanvas(res.Model))
		var delta mgl32.Mat4
		if ctx.Manipulate(p, &res.Model, &delta) {
			res.Modified++
		}
		res.Frames++
	}

	steps := s.Steps
	if len(steps) == 0 {
		steps = []Step{{}}
	}
	for _, st := range steps {
		n := max(st.Repeat, 1)
		for i := 0; i < n; i++ {
			frame(st)
		}
	}
	return res
}
