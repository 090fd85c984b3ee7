// Package platform hosts the gizmo in a GLFW window with an OpenGL 4.1
// renderer for drawlists.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	glfw  *glfw.Window
	Title string
}

// NewWindow initializes GLFW and OpenGL. The calling goroutine stays
// locked to its OS thread, which must also run every later call.
func NewWindow(width, height int, title string) (*Window, error) {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Gizmo"
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &Window{glfw: win, Title: title}, nil
}

func (w *Window) ShouldClose() bool { return w.glfw.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.glfw.SetShouldClose(v) }

func (w *Window) SwapBuffers() { w.glfw.SwapBuffers() }

func (w *Window) SetTitle(title string) { w.glfw.SetTitle(title) }

// Size is the window size in screen coordinates, the unit of the cursor.
func (w *Window) Size() (int, int) { return w.glfw.GetSize() }

// FramebufferSize is the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) { return w.glfw.GetFramebufferSize() }

func (w *Window) Close() {
	w.glfw.Destroy()
	glfw.Terminate()
}
