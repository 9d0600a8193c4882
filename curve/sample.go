package curve

import (
	"iter"
	"math"
)

// DefaultStep is the parameter increment of a fixed-step [Sampler]. It yields
// 10,000 samples per curve.
const DefaultStep = 0.0001

// Sampler turns a curve into a cloud of pixels.
type Sampler struct {
	// Step is the parameter increment. Zero means DefaultStep.
	Step float64
	// Snap converts samples to the pixel grid.
	Snap Snap
	// Adaptive reduces the sample count so consecutive samples are at most
	// one pixel apart. It never samples more densely than Step.
	Adaptive bool
}

func (s Sampler) step() float64 {
	if s.Step <= 0 || s.Step >= 1 {
		return DefaultStep
	}
	return s.Step
}

// Count returns the number of samples Samples yields for b.
func (s Sampler) Count(b Bezier) int {
	n := int(math.Round(1 / s.step()))
	if !s.Adaptive {
		return n
	}
	// |B'(t)| never exceeds SpeedBound, so this many uniform steps keep
	// neighbouring samples within a pixel of each other.
	m := int(math.Ceil(b.SpeedBound())) + 1
	return min(n, max(m, 2))
}

// Params returns the parameter values t = i/n for i in [0, n). The end point
// t = 1 is never produced.
func (s Sampler) Params(b Bezier) iter.Seq[float64] {
	n := s.Count(b)
	return func(yield func(float64) bool) {
		for i := range n {
			if !yield(float64(i) / float64(n)) {
				return
			}
		}
	}
}

// Points evaluates b at every parameter of Params.
func (s Sampler) Points(b Bezier) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for t := range s.Params(b) {
			if !yield(b.Eval(t)) {
				return
			}
		}
	}
}

// Samples returns the pixels of b. The sequence is lazy and can be ranged
// over any number of times.
func (s Sampler) Samples(b Bezier) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for p := range s.Points(b) {
			if !yield(s.Snap.Pixel(p)) {
				return
			}
		}
	}
}
