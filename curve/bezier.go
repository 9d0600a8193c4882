package curve

import (
	"errors"
	"fmt"
)

// MaxDegree is the highest curve degree this package evaluates.
const MaxDegree = 3

// ErrDegree is returned when a curve is built from fewer than 2 or more than
// MaxDegree+1 control points.
var ErrDegree = errors.New("curve: degree must be 1, 2 or 3")

// Linear evaluates (1-t)·p0 + t·p1.
func Linear(p0, p1 Point, t float64) Point {
	return p0.Scale(1 - t).Add(p1.Scale(t))
}

// Quadratic evaluates (1-t)²·p0 + 2(1-t)t·p1 + t²·p2.
func Quadratic(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return p0.Scale(mt * mt).
		Add(p1.Scale(2 * mt * t)).
		Add(p2.Scale(t * t))
}

// Cubic evaluates (1-t)³·p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³·p3.
func Cubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	return p0.Scale(mt * mt * mt).
		Add(p1.Scale(3 * mt * mt * t)).
		Add(p2.Scale(3 * mt * t * t)).
		Add(p3.Scale(t * t * t))
}

// Weights returns the Bernstein coefficients of the given degree at t, one
// per control point. They sum to 1 for every t.
func Weights(degree int, t float64) []float64 {
	mt := 1 - t
	switch degree {
	case 1:
		return []float64{mt, t}
	case 2:
		return []float64{mt * mt, 2 * mt * t, t * t}
	case 3:
		return []float64{mt * mt * mt, 3 * mt * mt * t, 3 * mt * t * t, t * t * t}
	default:
		return nil
	}
}

// Bezier is a curve of degree 1 to 3 over an ordered set of control points.
// The first point is the start, the last is the end, and any points in
// between are tangent handles.
type Bezier struct {
	pts [MaxDegree + 1]Point
	n   int
}

// NewBezier returns the curve through pts. Its degree is len(pts)-1.
func NewBezier(pts ...Point) (Bezier, error) {
	if len(pts) < 2 || len(pts) > MaxDegree+1 {
		return Bezier{}, fmt.Errorf("%w: got %d control points", ErrDegree, len(pts))
	}
	var b Bezier
	b.n = copy(b.pts[:], pts)
	return b, nil
}

// Degree returns 1 for a line, 2 for a quadratic and 3 for a cubic.
func (b Bezier) Degree() int {
	return b.n - 1
}

// Points returns a copy of the control points.
func (b Bezier) Points() []Point {
	return append([]Point(nil), b.pts[:b.n]...)
}

// Start returns the first control point.
func (b Bezier) Start() Point {
	return b.pts[0]
}

// End returns the last control point.
func (b Bezier) End() Point {
	return b.pts[b.n-1]
}

// Eval evaluates the curve at t.
func (b Bezier) Eval(t float64) Point {
	p := b.pts
	switch b.n {
	case 2:
		return Linear(p[0], p[1], t)
	case 3:
		return Quadratic(p[0], p[1], p[2], t)
	case 4:
		return Cubic(p[0], p[1], p[2], p[3], t)
	default:
		return Point{}
	}
}

// Reversed returns the same curve traversed from end to start.
func (b Bezier) Reversed() Bezier {
	r := Bezier{n: b.n}
	for i := range b.n {
		r.pts[i] = b.pts[b.n-1-i]
	}
	return r
}

// PolygonLength returns the length of the control polygon, an upper bound on
// the curve's arc length.
func (b Bezier) PolygonLength() float64 {
	var l float64
	for i := 1; i < b.n; i++ {
		l += b.pts[i-1].Dist(b.pts[i])
	}
	return l
}

// SpeedBound returns an upper bound on |B'(t)| over [0, 1]: the degree times
// the longest control polygon edge.
func (b Bezier) SpeedBound() float64 {
	var longest float64
	for i := 1; i < b.n; i++ {
		longest = max(longest, b.pts[i-1].Dist(b.pts[i]))
	}
	return float64(b.Degree()) * longest
}
