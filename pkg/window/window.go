package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Options struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

type Window struct {
	window *glfw.Window
	events []Event
	cursor cursorTracker
}

// New opens a window with a current OpenGL 4.1 core context and a captured
// cursor. It must be called from the locked main thread, which also has to
// make every later call on the window.
func New(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	gw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	gw.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: gw}
	gw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		gw.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	gw.SetKeyCallback(w.onKey)
	gw.SetCursorPosCallback(w.onCursor)
	gw.SetScrollCallback(w.onScroll)
	gw.SetFramebufferSizeCallback(w.onResize)

	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	name, ok := KeyName(key)
	if !ok {
		return
	}
	w.events = append(w.events, EventKey{Name: name, Pressed: action == glfw.Press})
}

func (w *Window) onCursor(_ *glfw.Window, x, y float64) {
	dx, dy, ok := w.cursor.move(x, y)
	if !ok {
		return
	}
	w.events = append(w.events, EventMouseMove{DX: dx, DY: dy})
}

func (w *Window) onScroll(_ *glfw.Window, _, dy float64) {
	w.events = append(w.events, EventScroll{DY: dy})
}

func (w *Window) onResize(_ *glfw.Window, width, height int) {
	w.events = append(w.events, EventResize{Width: width, Height: height})
}

// PollEvents processes pending window system events, queueing any that
// the callbacks turn into Events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Events returns and clears the queued events, oldest first.
func (w *Window) Events() []Event {
	events := w.events
	w.events = nil
	return events
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}
