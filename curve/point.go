package curve

import (
	"fmt"
	"math"
)

// Point is a position in continuous canvas space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns the component-wise sum p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both coordinates by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return p.Scale(1 - t).Add(o.Scale(t))
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Pixel is a position on the integer pixel grid.
type Pixel struct {
	X int
	Y int
}

func (px Pixel) String() string {
	return fmt.Sprintf("(%d, %d)", px.X, px.Y)
}

// Point converts px to continuous space.
func (px Pixel) Point() Point {
	return Point{X: float64(px.X), Y: float64(px.Y)}
}

// Snap selects how a continuous coordinate lands on the pixel grid.
type Snap int

const (
	// Round picks the nearest pixel, halves away from zero.
	Round Snap = iota
	// Truncate discards the fractional part (toward zero).
	Truncate
)

func (s Snap) String() string {
	switch s {
	case Round:
		return "round"
	case Truncate:
		return "truncate"
	default:
		return fmt.Sprintf("Snap(%d)", int(s))
	}
}

// ParseSnap parses the names produced by [Snap.String].
func ParseSnap(name string) (Snap, error) {
	switch name {
	case "round", "":
		return Round, nil
	case "truncate":
		return Truncate, nil
	default:
		return 0, fmt.Errorf("unknown snap mode %q", name)
	}
}

// Pixel converts p to the pixel grid using mode s.
func (s Snap) Pixel(p Point) Pixel {
	if s == Truncate {
		return Pixel{X: int(p.X), Y: int(p.Y)}
	}
	return Pixel{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}
