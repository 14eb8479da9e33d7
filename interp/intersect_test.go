package interp

import (
	"testing"

	"github.com/sgostarter/libpumpcalc/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, lo, hi, slope, offset float64, n int) *Samples {
	xs := make([]float64, n)
	ys := make([]float64, n)

	for idx := range xs {
		xs[idx] = lo + (hi-lo)*float64(idx)/float64(n-1)
		ys[idx] = slope*xs[idx] + offset
	}

	return mustSamples(t, xs, ys)
}

func TestIntersectLines(t *testing.T) {
	a := line(t, 0, 10, 2, 1, 11)
	b := line(t, 2, 12, -1, 10, 11)

	p, err := Intersect(a, b)
	require.Nil(t, err)
	assert.InDelta(t, 3, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)
}

func TestIntersectParabola(t *testing.T) {
	var xs, ys []float64

	for i := 0; i <= 40; i++ {
		x := float64(i) / 10
		xs = append(xs, x)
		ys = append(ys, x*x-4*x+3)
	}

	a := mustSamples(t, xs, ys)
	zero := line(t, 0, 4, 0, 0, 2)

	ps, err := IntersectAll(a, zero)
	require.Nil(t, err)
	require.Len(t, ps, 2)
	assert.InDelta(t, 1, ps[0].X, 1e-3)
	assert.InDelta(t, 3, ps[1].X, 1e-3)

	p, err := Intersect(a, zero, WithKind(KindMonotonic), WithSamples(200))
	require.Nil(t, err)
	assert.InDelta(t, 1, p.X, 1e-3)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestIntersectFailures(t *testing.T) {
	_, err := Intersect(line(t, 0, 1, 1, 0, 3), line(t, 2, 3, 1, 0, 3))
	assert.ErrorIs(t, err, ErrNoOverlap)
	assert.Contains(t, err.Error(), "no overlapping domain")

	_, err = Intersect(line(t, 0, 5, 1, 10, 6), line(t, 0, 5, 1, 0, 6))
	assert.ErrorIs(t, err, ErrNoIntersection)
}

func TestIntersectWithBisection(t *testing.T) {
	a := line(t, 0, 10, 2, 1, 11)
	b := line(t, 2, 12, -1, 10, 11)

	p, err := Intersect(a, b, WithKind(KindLinear), WithSolver(rootfind.Bisect))
	require.Nil(t, err)
	assert.InDelta(t, 3, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)
}
