// Package scene owns the editable state of the curve editor: the control
// points, the curve styles and the sampler. It draws itself onto any
// graphics.Canvas and consumes graphics.Events.
package scene

import (
	"fmt"

	"github.com/richinsley/gobezier/control"
	"github.com/richinsley/gobezier/curve"
	"github.com/richinsley/gobezier/graphics"
	"github.com/richinsley/gobezier/logging"
	"github.com/richinsley/gobezier/options"
)

// Style is the plot color of the curve of each degree, indexed by degree.
type Style [curve.MaxDegree + 1]graphics.RGB

// Scene is the editor context. It is not safe for concurrent use; a single
// render loop owns it.
type Scene struct {
	Points     *control.Set
	Sampler    curve.Sampler
	Palette    control.Palette
	Styles     Style
	Background graphics.RGB
}

// Stats summarises one Draw call.
type Stats struct {
	Curves  int
	Samples int
	// Dropped counts plots and circles that failed, typically because they
	// fell outside the canvas.
	Dropped int
}

// New builds a scene from a validated config.
func New(cfg options.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	snap, err := curve.ParseSnap(cfg.Sampling.Snap)
	if err != nil {
		return nil, err
	}
	policy, err := control.ParsePolicy(cfg.Selection.Policy)
	if err != nil {
		return nil, err
	}

	pts := make([]control.Point, len(cfg.Points))
	for i, p := range cfg.Points {
		pts[i] = control.NewPoint(p.X, p.Y, cfg.Selection.Radius)
	}

	s := &Scene{
		Points: control.NewSet(policy, pts...),
		Sampler: curve.Sampler{
			Step:     cfg.Sampling.Step,
			Snap:     snap,
			Adaptive: cfg.Sampling.Adaptive,
		},
		Palette: control.Palette{
			Idle:     options.MustColor(cfg.Palette.Idle),
			Selected: options.MustColor(cfg.Palette.Selected),
		},
		Background: options.MustColor(cfg.Palette.Background),
	}
	s.Styles[1] = options.MustColor(cfg.Palette.Linear)
	s.Styles[2] = options.MustColor(cfg.Palette.Quadratic)
	s.Styles[3] = options.MustColor(cfg.Palette.Cubic)
	return s, nil
}

// Curves returns one curve per degree the point count allows, lowest degree
// first. Each uses the leading degree+1 points.
func (s *Scene) Curves() []curve.Bezier {
	var out []curve.Bezier
	for degree := 1; degree <= curve.MaxDegree && degree < s.Points.Len(); degree++ {
		b, err := curve.NewBezier(s.Points.Curve(degree + 1)...)
		if err != nil {
			panic(fmt.Sprintf("scene: degree %d: %v", degree, err))
		}
		out = append(out, b)
	}
	return out
}

// Draw renders one frame: background, every curve as a point cloud, then the
// control points on top. Failed plots are counted, never fatal.
func (s *Scene) Draw(c graphics.Canvas) Stats {
	var st Stats
	var firstErr error
	fail := func(err error) {
		st.Dropped++
		if firstErr == nil {
			firstErr = err
		}
	}

	c.SetDrawColor(s.Background)
	c.Clear()

	for _, b := range s.Curves() {
		c.SetDrawColor(s.Styles[b.Degree()])
		for px := range s.Sampler.Samples(b) {
			st.Samples++
			if err := c.PlotPixel(px.X, px.Y); err != nil {
				fail(err)
			}
		}
		st.Curves++
	}

	for i := range s.Points.Len() {
		p := s.Points.At(i)
		if err := c.FilledCircle(p.Position.X, p.Position.Y, p.Radius(), p.Color(s.Palette)); err != nil {
			fail(err)
		}
	}

	if st.Dropped > 0 {
		logging.Logger().Debug("frame drew with failures",
			"dropped", st.Dropped, "samples", st.Samples, "first", firstErr)
	}
	return st
}

// HandleEvent applies one input event and reports whether the application
// should quit.
func (s *Scene) HandleEvent(ev graphics.Event) bool {
	switch e := ev.(type) {
	case graphics.Quit:
		return true
	case graphics.KeyDown:
		return e.Key == graphics.KeyEscape
	case graphics.MouseButtonDown:
		if n := s.Points.Press(e.X, e.Y); n > 0 {
			logging.Logger().Debug("selected", "points", s.Points.Selected(), "x", e.X, "y", e.Y)
		}
	case graphics.MouseButtonUp:
		s.Points.Release()
	case graphics.MouseMotion:
		s.Points.Move(e.X, e.Y)
	}
	return false
}

// HandleEvents applies events in order, stopping at the first that asks to
// quit.
func (s *Scene) HandleEvents(events []graphics.Event) bool {
	for _, ev := range events {
		if s.HandleEvent(ev) {
			return true
		}
	}
	return false
}
