package curve

import (
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

var controlSets = [][]Point{
	{Pt(100, 50), Pt(250, 800), Pt(1300, 200), Pt(1500, 800)},
	{Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)},
	{Pt(-40, 12.5), Pt(3, -700), Pt(10, 10), Pt(-1e4, 2e4)},
	{Pt(400, 400), Pt(1, 1), Pt(400, 400), Pt(800, 0)},
}

func params(n int) []float64 {
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
	}
	return ts
}

func assertPointNear(t *testing.T, want, got Point, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, epsilon, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, epsilon, msgAndArgs...)
}

func ggPt(p Point) gg.Point { return gg.Pt(p.X, p.Y) }

func TestLinearEndpoints(t *testing.T) {
	for _, pts := range controlSets {
		p0, p1 := pts[0], pts[1]
		assert.Equal(t, p0, Linear(p0, p1, 0))
		assertPointNear(t, p1, Linear(p0, p1, 1))

		// The sampled cloud stops one step short of p1.
		b, err := NewBezier(p0, p1)
		require.NoError(t, err)
		var last Point
		for p := range (Sampler{}).Points(b) {
			last = p
		}
		assert.LessOrEqual(t, last.Dist(p1), DefaultStep*p0.Dist(p1)+epsilon)
	}
}

func TestQuadraticSymmetry(t *testing.T) {
	for _, pts := range controlSets {
		p0, p1, p2 := pts[0], pts[1], pts[2]
		for _, ts := range params(64) {
			fwd := Quadratic(p0, p1, p2, ts)
			rev := Quadratic(p2, p1, p0, 1-ts)
			assert.InDelta(t, fwd.X, rev.X, 1e-6, "t=%g", ts)
			assert.InDelta(t, fwd.Y, rev.Y, 1e-6, "t=%g", ts)
		}
	}
}

func TestCubicReducesToQuadratic(t *testing.T) {
	for _, pts := range controlSets {
		q := gg.NewQuadBez(ggPt(pts[0]), ggPt(pts[1]), ggPt(pts[2]))
		c := q.Raise()
		c1 := Pt(c.P1.X, c.P1.Y)
		c2 := Pt(c.P2.X, c.P2.Y)
		for _, ts := range params(32) {
			want := Quadratic(pts[0], pts[1], pts[2], ts)
			got := Cubic(pts[0], c1, c2, pts[2], ts)
			assert.InDelta(t, want.X, got.X, 1e-6, "t=%g", ts)
			assert.InDelta(t, want.Y, got.Y, 1e-6, "t=%g", ts)
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	for degree := 1; degree <= MaxDegree; degree++ {
		for _, ts := range params(100) {
			w := Weights(degree, ts)
			require.Len(t, w, degree+1)
			var sum float64
			for _, v := range w {
				sum += v
				assert.GreaterOrEqual(t, v, 0.0)
			}
			assert.InDelta(t, 1.0, sum, epsilon, "degree %d t=%g", degree, ts)
		}
	}
	assert.Nil(t, Weights(0, 0.5))
	assert.Nil(t, Weights(4, 0.5))
}

func TestWeightsMatchEval(t *testing.T) {
	pts := controlSets[0]
	for degree := 1; degree <= MaxDegree; degree++ {
		b, err := NewBezier(pts[:degree+1]...)
		require.NoError(t, err)
		for _, ts := range params(16) {
			var want Point
			for i, w := range Weights(degree, ts) {
				want = want.Add(pts[i].Scale(w))
			}
			assertPointNear(t, want, b.Eval(ts))
		}
	}
}

func TestEvalMatchesReference(t *testing.T) {
	for i, pts := range controlSets {
		line := gg.NewLine(ggPt(pts[0]), ggPt(pts[1]))
		quad := gg.NewQuadBez(ggPt(pts[0]), ggPt(pts[1]), ggPt(pts[2]))
		cubic := gg.NewCubicBez(ggPt(pts[0]), ggPt(pts[1]), ggPt(pts[2]), ggPt(pts[3]))
		for _, ts := range params(20) {
			name := fmt.Sprintf("set %d t=%g", i, ts)
			want := line.Eval(ts)
			assertPointNear(t, Pt(want.X, want.Y), Linear(pts[0], pts[1], ts), name)
			want = quad.Eval(ts)
			assertPointNear(t, Pt(want.X, want.Y), Quadratic(pts[0], pts[1], pts[2], ts), name)
			want = cubic.Eval(ts)
			got := Cubic(pts[0], pts[1], pts[2], pts[3], ts)
			// Large coordinates accumulate rounding differently.
			tol := 1e-9 * max(1, math.Abs(want.X), math.Abs(want.Y))
			assert.InDelta(t, want.X, got.X, tol, name)
			assert.InDelta(t, want.Y, got.Y, tol, name)
		}
	}
}

func TestNewBezierDegree(t *testing.T) {
	_, err := NewBezier(Pt(1, 1))
	assert.ErrorIs(t, err, ErrDegree)
	_, err = NewBezier(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4), Pt(5, 5))
	assert.ErrorIs(t, err, ErrDegree)

	for n := 2; n <= 4; n++ {
		b, err := NewBezier(controlSets[0][:n]...)
		require.NoError(t, err)
		assert.Equal(t, n-1, b.Degree())
		assert.Equal(t, controlSets[0][0], b.Start())
		assert.Equal(t, controlSets[0][n-1], b.End())
		assert.Equal(t, controlSets[0][:n], b.Points())
	}
}

func TestBezierEndpoints(t *testing.T) {
	for _, pts := range controlSets {
		b, err := NewBezier(pts...)
		require.NoError(t, err)
		assertPointNear(t, b.Start(), b.Eval(0))
		assertPointNear(t, b.End(), b.Eval(1))

		r := b.Reversed()
		assertPointNear(t, b.Eval(0.3), r.Eval(0.7))
	}
}

func TestDegenerateCurve(t *testing.T) {
	p := Pt(42, 17)
	b, err := NewBezier(p, p, p, p)
	require.NoError(t, err)
	for px := range (Sampler{}).Samples(b) {
		assert.Equal(t, Pixel{42, 17}, px)
	}
	assert.Zero(t, b.PolygonLength())
	assert.Zero(t, b.SpeedBound())
}

func TestPolygonBoundsCurve(t *testing.T) {
	b, err := NewBezier(controlSets[0]...)
	require.NoError(t, err)

	var arc float64
	prev := b.Start()
	for _, ts := range params(1000)[1:] {
		p := b.Eval(ts)
		arc += prev.Dist(p)
		prev = p
	}
	assert.LessOrEqual(t, arc, b.PolygonLength())
}
