// Package control implements draggable control points and the
// press/move/release state machine that selects and repositions them.
package control

import (
	"math"

	"github.com/richinsley/gobezier/curve"
	"github.com/richinsley/gobezier/graphics"
)

// DefaultRadius is the hit-test and draw radius of a control point.
const DefaultRadius = 6

// Palette holds the two colors a control point can take.
type Palette struct {
	Idle     graphics.RGB
	Selected graphics.RGB
}

// DefaultPalette draws idle points red and dragged points green.
var DefaultPalette = Palette{Idle: graphics.Red, Selected: graphics.Green}

// Point is a draggable control point. Its radius is fixed at construction.
type Point struct {
	Position curve.Pixel
	radius   int
	selected bool
}

// NewPoint returns an idle point at (x, y). A non-positive radius is
// replaced by DefaultRadius.
func NewPoint(x, y, radius int) Point {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Point{Position: curve.Pixel{X: x, Y: y}, radius: radius}
}

// Radius returns the hit-test and draw radius.
func (p Point) Radius() int { return p.radius }

// Selected reports whether the point is being dragged.
func (p Point) Selected() bool { return p.selected }

// Color returns the palette entry for the point's state.
func (p Point) Color(pal Palette) graphics.RGB {
	if p.selected {
		return pal.Selected
	}
	return pal.Idle
}

// Distance returns the Euclidean distance from the point to (x, y).
func (p Point) Distance(x, y int) float64 {
	return math.Hypot(float64(x-p.Position.X), float64(y-p.Position.Y))
}

// HitTest reports whether (x, y) lies within the point's radius, boundary
// included.
func (p Point) HitTest(x, y int) bool {
	return p.Distance(x, y) <= float64(p.radius)
}

// Curve returns the position in continuous space.
func (p Point) Curve() curve.Point {
	return p.Position.Point()
}
