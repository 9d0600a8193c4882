package scene

import (
	"errors"
	"testing"

	"github.com/richinsley/gobezier/canvas"
	"github.com/richinsley/gobezier/curve"
	"github.com/richinsley/gobezier/graphics"
	"github.com/richinsley/gobezier/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a graphics.Canvas that remembers what was drawn.
type recorder struct {
	w, h    int
	color   graphics.RGB
	clears  []graphics.RGB
	plots   map[graphics.RGB][]curve.Pixel
	circles []circle
}

type circle struct {
	x, y, r int
	c       graphics.RGB
}

var errOff = errors.New("off canvas")

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, plots: map[graphics.RGB][]curve.Pixel{}}
}

func (r *recorder) Size() (int, int)             { return r.w, r.h }
func (r *recorder) SetDrawColor(c graphics.RGB) { r.color = c }
func (r *recorder) Clear()                       { r.clears = append(r.clears, r.color) }

func (r *recorder) PlotPixel(x, y int) error {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return errOff
	}
	r.plots[r.color] = append(r.plots[r.color], curve.Pixel{X: x, Y: y})
	return nil
}

func (r *recorder) FilledCircle(x, y, radius int, c graphics.RGB) error {
	r.circles = append(r.circles, circle{x, y, radius, c})
	return nil
}

func newScene(t *testing.T, mutate func(*options.Config)) *Scene {
	t.Helper()
	cfg := options.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := options.Default()
	cfg.Points = cfg.Points[:1]
	_, err := New(cfg)
	assert.ErrorIs(t, err, options.ErrInvalidConfig)
}

func TestCurves(t *testing.T) {
	s := newScene(t, nil)
	cs := s.Curves()
	require.Len(t, cs, 3)
	for i, b := range cs {
		assert.Equal(t, i+1, b.Degree())
		assert.Equal(t, curve.Pt(100, 50), b.Start())
	}

	two := newScene(t, func(c *options.Config) { c.Points = c.Points[:2] })
	assert.Len(t, two.Curves(), 1)
}

func TestDraw(t *testing.T) {
	s := newScene(t, nil)
	r := newRecorder(1600, 900)
	st := s.Draw(r)

	assert.Equal(t, []graphics.RGB{graphics.Black}, r.clears)
	assert.Equal(t, 3, st.Curves)
	assert.Equal(t, 30000, st.Samples)
	assert.Zero(t, st.Dropped)

	assert.Len(t, r.plots[graphics.Red], 10000, "linear")
	assert.Len(t, r.plots[graphics.Green], 10000, "quadratic")
	assert.Len(t, r.plots[graphics.Blue], 10000, "cubic")
	assert.Equal(t, curve.Pixel{X: 100, Y: 50}, r.plots[graphics.Blue][0])
	assert.Contains(t, r.plots[graphics.Blue], curve.Pixel{X: 781, Y: 481})

	require.Len(t, r.circles, 4)
	assert.Equal(t, circle{1500, 800, 6, graphics.Red}, r.circles[3])
}

func TestDrawSelectedColor(t *testing.T) {
	s := newScene(t, nil)
	s.HandleEvent(graphics.MouseButtonDown{X: 250, Y: 800})
	r := newRecorder(1600, 900)
	s.Draw(r)
	assert.Equal(t, graphics.Green, r.circles[1].c)
	assert.Equal(t, graphics.Red, r.circles[0].c)
}

func TestDrawOffCanvasIsNotFatal(t *testing.T) {
	s := newScene(t, nil)
	s.HandleEvents([]graphics.Event{
		graphics.MouseButtonDown{X: 1500, Y: 800},
		graphics.MouseMotion{X: 3000, Y: 800},
		graphics.MouseButtonUp{},
	})

	r := newRecorder(1600, 900)
	st := s.Draw(r)
	assert.Positive(t, st.Dropped)
	assert.Equal(t, 30000, st.Samples)
	assert.Len(t, r.circles, 4, "control points are still drawn")
	assert.Len(t, r.plots[graphics.Red], 10000, "the linear curve is unaffected")
}

func TestHandleEventQuit(t *testing.T) {
	s := newScene(t, nil)
	assert.True(t, s.HandleEvent(graphics.Quit{}))
	assert.True(t, s.HandleEvent(graphics.KeyDown{Key: graphics.KeyEscape}))
	assert.False(t, s.HandleEvent(graphics.KeyDown{Key: graphics.KeySpace}))
	assert.False(t, s.HandleEvent(graphics.MouseButtonUp{}))
}

func TestHandleEventsStopsAtQuit(t *testing.T) {
	s := newScene(t, nil)
	quit := s.HandleEvents([]graphics.Event{
		graphics.MouseButtonDown{X: 100, Y: 50},
		graphics.Quit{},
		graphics.MouseMotion{X: 10, Y: 10},
	})
	assert.True(t, quit)
	assert.Equal(t, curve.Pixel{X: 100, Y: 50}, s.Points.At(0).Position)
}

func TestEndToEnd(t *testing.T) {
	s := newScene(t, nil)
	before := s.Curves()[2].Eval(0.5)

	quit := s.HandleEvents([]graphics.Event{graphics.MouseButtonDown{X: 100, Y: 50}})
	require.False(t, quit)
	assert.Equal(t, []int{0}, s.Points.Selected())

	s.HandleEvent(graphics.MouseMotion{X: 400, Y: 400})
	assert.Equal(t, []curve.Pixel{{X: 400, Y: 400}, {X: 250, Y: 800}, {X: 1300, Y: 200}, {X: 1500, Y: 800}}, s.Points.Positions())

	s.HandleEvent(graphics.MouseButtonUp{X: 400, Y: 400})
	assert.Empty(t, s.Points.Selected())

	after := s.Curves()[2].Eval(0.5)
	assert.NotEqual(t, before, after)
	assert.InDelta(t, 818.75, after.X, 1e-9)
	assert.InDelta(t, 525.0, after.Y, 1e-9)
}

func TestDrawOnCanvas(t *testing.T) {
	s := newScene(t, func(c *options.Config) {
		c.Window.Width, c.Window.Height = 200, 100
		c.Points = []options.Point{{X: 10, Y: 10}, {X: 190, Y: 10}}
	})
	c, err := canvas.New(200, 100)
	require.NoError(t, err)
	defer c.Close()

	st := s.Draw(c)
	assert.Zero(t, st.Dropped)
	assert.Equal(t, graphics.Red, c.At(100, 10))
	assert.Equal(t, graphics.Black, c.At(100, 50))
}

func TestDrawCountsOffCanvasCircle(t *testing.T) {
	s := newScene(t, func(c *options.Config) {
		c.Window.Width, c.Window.Height = 200, 100
		c.Points = []options.Point{{X: 10, Y: 10}, {X: 190, Y: 10}}
	})
	s.HandleEvents([]graphics.Event{
		graphics.MouseButtonDown{X: 190, Y: 10},
		graphics.MouseMotion{X: 300, Y: 10},
		graphics.MouseButtonUp{},
	})
	c, err := canvas.New(200, 100)
	require.NoError(t, err)
	defer c.Close()

	offPlots := 0
	for px := range s.Sampler.Samples(s.Curves()[0]) {
		if px.X >= 200 {
			offPlots++
		}
	}
	require.Positive(t, offPlots)

	st := s.Draw(c)
	assert.Equal(t, offPlots+1, st.Dropped, "off-canvas samples plus the off-canvas control point")
}
