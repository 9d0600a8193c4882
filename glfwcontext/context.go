package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gobezier/graphics"
	"github.com/richinsley/gobezier/logging"
	"github.com/richinsley/gobezier/options"
)

// Context is a GLFW window that implements graphics.Context. Input arrives
// through callbacks during glfw.PollEvents and is queued until PollEvents
// hands it out.
type Context struct {
	window *glfw.Window
	// canvas size that cursor positions are mapped into
	width, height int
	queue         []graphics.Event
}

var _ graphics.Context = (*Context)(nil)

// New creates a window for a canvas of win.Width by win.Height pixels.
func New(win options.Window) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(win.Width, win.Height, win.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	c := &Context{
		window: w,
		width:  win.Width,
		height: win.Height,
	}
	w.SetKeyCallback(c.glfwKeyCallback)
	w.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	w.SetCursorPosCallback(c.glfwCursorPosCallback)
	w.SetCloseCallback(c.glfwCloseCallback)
	return c, nil
}

func (c *Context) push(ev graphics.Event) {
	c.queue = append(c.queue, ev)
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	c.push(graphics.KeyDown{Key: mapKey(key)})
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	x, y := c.cursor(w.GetCursorPos())
	switch action {
	case glfw.Press:
		c.push(graphics.MouseButtonDown{X: x, Y: y})
	case glfw.Release:
		c.push(graphics.MouseButtonUp{X: x, Y: y})
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := c.cursor(xpos, ypos)
	c.push(graphics.MouseMotion{X: x, Y: y})
}

func (c *Context) glfwCloseCallback(w *glfw.Window) {
	c.push(graphics.Quit{})
}

func (c *Context) cursor(x, y float64) (int, int) {
	winWidth, winHeight := c.window.GetSize()
	return scaleCursor(x, y, winWidth, winHeight, c.width, c.height)
}

// scaleCursor maps a cursor position in window coordinates onto a canvas
// stretched over the whole window.
func scaleCursor(x, y float64, winWidth, winHeight, canvasWidth, canvasHeight int) (int, int) {
	scaleX, scaleY := 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(canvasWidth) / float64(winWidth)
		scaleY = float64(canvasHeight) / float64(winHeight)
	}
	return int(x * scaleX), int(y * scaleY)
}

func mapKey(key glfw.Key) graphics.Key {
	switch key {
	case glfw.KeyEscape:
		return graphics.KeyEscape
	case glfw.KeySpace:
		return graphics.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return graphics.KeyEnter
	case glfw.KeyQ:
		return graphics.KeyQ
	default:
		return graphics.KeyUnknown
	}
}

// PollEvents processes pending window events and returns everything queued
// since the last call.
func (c *Context) PollEvents() []graphics.Event {
	glfw.PollEvents()
	events := c.queue
	c.queue = nil
	return events
}

// MakeCurrent makes the GL context current on the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame swaps buffers. Input is collected separately by PollEvents.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	logging.Logger().Info("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logging.Logger().Info("GLFW terminated")
}
