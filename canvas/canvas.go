// Package canvas provides a CPU pixel surface backed by a gg drawing context.
package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/richinsley/gobezier/graphics"
)

// ErrOutOfBounds is returned when a plot falls outside the surface.
var ErrOutOfBounds = errors.New("canvas: pixel out of bounds")

var _ graphics.Canvas = (*Canvas)(nil)

// Canvas is an RGBA surface. Rows run top to bottom, 4 bytes per pixel.
type Canvas struct {
	dc     *gg.Context
	pixmap *gg.Pixmap
	color  gg.RGBA
}

// New returns a black canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", width, height)
	}
	pm := gg.NewPixmap(width, height)
	c := &Canvas{
		dc:     gg.NewContext(width, height, gg.WithPixmap(pm)),
		pixmap: pm,
		color:  gg.Black,
	}
	c.Clear()
	return c, nil
}

func toRGBA(c graphics.RGB) gg.RGBA {
	return gg.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// Size returns the width and height in pixels.
func (c *Canvas) Size() (int, int) {
	return c.pixmap.Width(), c.pixmap.Height()
}

// SetDrawColor sets the color used by Clear and PlotPixel.
func (c *Canvas) SetDrawColor(col graphics.RGB) {
	c.color = toRGBA(col)
}

// Clear fills the canvas with the draw color.
func (c *Canvas) Clear() {
	c.pixmap.Clear(c.color)
}

// PlotPixel sets a single pixel to the draw color.
func (c *Canvas) PlotPixel(x, y int) error {
	w, h := c.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	c.pixmap.SetPixel(x, y, c.color)
	return nil
}

// FilledCircle fills a disc of the given radius centred on (x, y). It does
// not change the draw color. A disc partly on the surface is clipped; one
// entirely off it returns ErrOutOfBounds.
func (c *Canvas) FilledCircle(x, y, radius int, col graphics.RGB) error {
	w, h := c.Size()
	if x+radius < 0 || y+radius < 0 || x-radius >= w || y-radius >= h {
		return fmt.Errorf("%w: circle at (%d, %d) radius %d", ErrOutOfBounds, x, y, radius)
	}
	c.dc.SetColor(toRGBA(col).Color())
	c.dc.DrawCircle(float64(x), float64(y), float64(radius))
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("canvas: fill circle at (%d, %d): %w", x, y, err)
	}
	return nil
}

// At returns the color of pixel (x, y).
func (c *Canvas) At(x, y int) graphics.RGB {
	p := c.pixmap.Data()
	i := (y*c.pixmap.Width() + x) * 4
	return graphics.RGB{R: p[i], G: p[i+1], B: p[i+2]}
}

// Pixels returns the live RGBA buffer. It is overwritten by the next frame.
func (c *Canvas) Pixels() []byte {
	return c.pixmap.Data()
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
