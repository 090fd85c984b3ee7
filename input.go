package gizmo

// Key indexes the keyboard arrays of Input. Only the keys the gizmo and
// its tools react to are named.
const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEscape
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyCount
)

// Input is the pre-sampled mouse and keyboard state of one frame, in the
// same pixel units as the canvas.
type Input struct {
	MouseX, MouseY float32
	// MouseDown is the primary button level; MouseClicked and MouseReleased
	// are its edges this frame.
	MouseDown     bool
	MouseClicked  bool
	MouseReleased bool
	// MouseCaptured is set when another UI element owns the mouse.
	MouseCaptured bool
	// Scroll is the wheel delta accumulated this frame.
	Scroll float32

	Pressed     [KeyCount]bool
	JustPressed [KeyCount]bool
}

func (in Input) Shift() bool {
	return in.Pressed[KeyLeftShift] || in.Pressed[KeyRightShift]
}

func (in Input) Ctrl() bool {
	return in.Pressed[KeyLeftControl] || in.Pressed[KeyRightControl]
}

// Advance derives the edge flags of next from the level state of in, for
// hosts that only sample button levels.
func (in Input) Advance(next Input) Input {
	next.MouseClicked = next.MouseDown && !in.MouseDown
	next.MouseReleased = !next.MouseDown && in.MouseDown
	for i := range next.Pressed {
		next.JustPressed[i] = next.Pressed[i] && !in.Pressed[i]
	}
	return next
}
