package renderer

import (
	"context"
	"fmt"

	"github.com/richinsley/gobezier/canvas"
	"github.com/richinsley/gobezier/graphics"
	"github.com/richinsley/gobezier/logging"
	"github.com/richinsley/gobezier/scene"
)

// Presenter puts a finished RGBA frame on screen.
type Presenter interface {
	Present(pixels []byte, width, height, fbWidth, fbHeight int) error
	Destroy()
}

// Renderer drives the interactive loop: draw the scene on the canvas, present
// it, then apply the input gathered since the previous frame.
type Renderer struct {
	context    graphics.Context
	presenter  Presenter
	canvas     *canvas.Canvas
	scene      *scene.Scene
	frameCount int64
}

// NewRenderer takes ownership of the window and presenter. The canvas and
// scene stay with the caller.
func NewRenderer(ctx graphics.Context, p Presenter, c *canvas.Canvas, s *scene.Scene) *Renderer {
	return &Renderer{
		context:   ctx,
		presenter: p,
		canvas:    c,
		scene:     s,
	}
}

// Shutdown releases the presenter and window.
func (r *Renderer) Shutdown() {
	r.presenter.Destroy()
	r.context.Shutdown()
}

// Frames returns how many frames have completed.
func (r *Renderer) Frames() int64 {
	return r.frameCount
}

// Frame renders and presents one frame, then handles queued input. It
// reports whether the user asked to quit.
func (r *Renderer) Frame() (bool, error) {
	r.scene.Draw(r.canvas)

	width, height := r.canvas.Size()
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	if err := r.presenter.Present(r.canvas.Pixels(), width, height, fbWidth, fbHeight); err != nil {
		return false, fmt.Errorf("failed to present frame %d: %w", r.frameCount, err)
	}
	r.context.EndFrame()
	r.frameCount++

	return r.scene.HandleEvents(r.context.PollEvents()), nil
}

// Run loops until the user quits, the window closes or ctx is done.
func (r *Renderer) Run(ctx context.Context) error {
	log := logging.Logger()
	log.Info("starting interactive render loop")
	for !r.context.ShouldClose() {
		select {
		case <-ctx.Done():
			log.Info("render loop cancelled", "frames", r.frameCount, "cause", context.Cause(ctx))
			return nil
		default:
		}

		quit, err := r.Frame()
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	log.Info("render loop finished", "frames", r.frameCount)
	return nil
}
