package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/gizmo"
)

var keyToGlfw = map[int]glfw.Key{
	gizmo.KeyA:            glfw.KeyA,
	gizmo.KeyB:            glfw.KeyB,
	gizmo.KeyC:            glfw.KeyC,
	gizmo.KeyD:            glfw.KeyD,
	gizmo.KeyE:            glfw.KeyE,
	gizmo.KeyF:            glfw.KeyF,
	gizmo.KeyG:            glfw.KeyG,
	gizmo.KeyH:            glfw.KeyH,
	gizmo.KeyI:            glfw.KeyI,
	gizmo.KeyJ:            glfw.KeyJ,
	gizmo.KeyK:            glfw.KeyK,
	gizmo.KeyL:            glfw.KeyL,
	gizmo.KeyM:            glfw.KeyM,
	gizmo.KeyN:            glfw.KeyN,
	gizmo.KeyO:            glfw.KeyO,
	gizmo.KeyP:            glfw.KeyP,
	gizmo.KeyQ:            glfw.KeyQ,
	gizmo.KeyR:            glfw.KeyR,
	gizmo.KeyS:            glfw.KeyS,
	gizmo.KeyT:            glfw.KeyT,
	gizmo.KeyU:            glfw.KeyU,
	gizmo.KeyV:            glfw.KeyV,
	gizmo.KeyW:            glfw.KeyW,
	gizmo.KeyX:            glfw.KeyX,
	gizmo.KeyY:            glfw.KeyY,
	gizmo.KeyZ:            glfw.KeyZ,
	gizmo.KeySpace:        glfw.KeySpace,
	gizmo.KeyEscape:       glfw.KeyEscape,
	gizmo.KeyLeftShift:    glfw.KeyLeftShift,
	gizmo.KeyRightShift:   glfw.KeyRightShift,
	gizmo.KeyLeftControl:  glfw.KeyLeftControl,
	gizmo.KeyRightControl: glfw.KeyRightControl,
}

// Poller samples window input once per frame into gizmo.Input, deriving
// click and key edges from the previous sample.
type Poller struct {
	win    *Window
	prev   gizmo.Input
	scroll float32

	// Secondary drives host camera controls; the gizmo only uses the
	// primary button.
	SecondaryDown            bool
	MouseDeltaX, MouseDeltaY float32
}

func NewPoller(w *Window) *Poller {
	p := &Poller{win: w}
	w.glfw.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		p.scroll += float32(dy)
	})
	return p
}

// Poll pumps the event queue and returns this frame's input.
func (p *Poller) Poll() gizmo.Input {
	glfw.PollEvents()
	win := p.win.glfw

	var next gizmo.Input
	for key, glfwKey := range keyToGlfw {
		next.Pressed[key] = win.GetKey(glfwKey) == glfw.Press
	}

	mx, my := win.GetCursorPos()
	next.MouseX, next.MouseY = float32(mx), float32(my)
	next.MouseDown = win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	next.Scroll = p.scroll
	p.scroll = 0

	p.MouseDeltaX = next.MouseX - p.prev.MouseX
	p.MouseDeltaY = next.MouseY - p.prev.MouseY
	p.SecondaryDown = win.GetMouseButton(glfw.MouseButtonRight) == glfw.Press

	next = p.prev.Advance(next)
	p.prev = next
	return next
}
