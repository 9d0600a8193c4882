package control

import (
	"fmt"

	"github.com/richinsley/gobezier/curve"
)

// Policy decides which of the points under a press become selected.
type Policy int

const (
	// SelectAll selects every point the press hits. Overlapping points are
	// dragged together and collapse onto the cursor.
	SelectAll Policy = iota
	// SelectNearest selects only the closest hit point, the lowest index
	// winning ties.
	SelectNearest
)

func (p Policy) String() string {
	switch p {
	case SelectAll:
		return "all"
	case SelectNearest:
		return "nearest"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the names produced by [Policy.String].
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "all", "":
		return SelectAll, nil
	case "nearest":
		return SelectNearest, nil
	default:
		return 0, fmt.Errorf("unknown selection policy %q", name)
	}
}

// Set is an ordered, fixed-length sequence of control points. Order matters:
// curves consume the points positionally.
type Set struct {
	points []Point
	policy Policy
}

// NewSet returns a set owning a copy of points.
func NewSet(policy Policy, points ...Point) *Set {
	return &Set{
		points: append([]Point(nil), points...),
		policy: policy,
	}
}

// Len returns the number of points.
func (s *Set) Len() int { return len(s.points) }

// At returns point i.
func (s *Set) At(i int) Point { return s.points[i] }

// Policy returns the selection policy.
func (s *Set) Policy() Policy { return s.policy }

// Positions returns the current positions in order.
func (s *Set) Positions() []curve.Pixel {
	out := make([]curve.Pixel, len(s.points))
	for i, p := range s.points {
		out[i] = p.Position
	}
	return out
}

// Curve returns the first n positions in continuous space.
func (s *Set) Curve(n int) []curve.Point {
	n = min(n, len(s.points))
	out := make([]curve.Point, n)
	for i := range n {
		out[i] = s.points[i].Curve()
	}
	return out
}

// Selected returns the indexes of the selected points.
func (s *Set) Selected() []int {
	var idx []int
	for i, p := range s.points {
		if p.selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// Dragging reports whether any point is selected.
func (s *Set) Dragging() bool {
	for _, p := range s.points {
		if p.selected {
			return true
		}
	}
	return false
}

// Press selects the points hit at (x, y) according to the policy and
// returns how many became selected. Under SelectAll points already selected
// stay selected; under SelectNearest a hit replaces the previous selection.
func (s *Set) Press(x, y int) int {
	if s.policy == SelectNearest {
		best := -1
		var bestDist float64
		for i, p := range s.points {
			if !p.HitTest(x, y) {
				continue
			}
			if d := p.Distance(x, y); best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return 0
		}
		s.Release()
		s.points[best].selected = true
		return 1
	}

	var n int
	for i := range s.points {
		if s.points[i].HitTest(x, y) {
			s.points[i].selected = true
			n++
		}
	}
	return n
}

// Release returns every selected point to idle. Positions are unchanged.
func (s *Set) Release() {
	for i := range s.points {
		s.points[i].selected = false
	}
}

// Move places every selected point at (x, y).
func (s *Set) Move(x, y int) {
	for i := range s.points {
		if s.points[i].selected {
			s.points[i].Position = curve.Pixel{X: x, Y: y}
		}
	}
}
