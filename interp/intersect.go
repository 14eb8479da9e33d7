package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/sgostarter/libpumpcalc/rootfind"
)

// IntersectAll returns every crossing of a and b inside their common
// domain, ordered by x.
func IntersectAll(a, b *Samples, options ...Option) ([]Point, error) {
	if a == nil || b == nil || a.Len() == 0 || b.Len() == 0 {
		return nil, ErrEmpty
	}

	opts := optionNew(KindCubic, options...)

	aLo, aHi := a.Domain()
	bLo, bHi := b.Domain()

	lo := math.Max(aLo, bLo)
	hi := math.Min(aHi, bHi)

	if lo >= hi {
		return nil, fmt.Errorf("%w: [%g, %g] and [%g, %g]", ErrNoOverlap, aLo, aHi, bLo, bHi)
	}

	pa, _, err := fit(opts.kind, a.xs, a.ys)
	if err != nil {
		return nil, err
	}

	pb, _, err := fit(opts.kind, b.xs, b.ys)
	if err != nil {
		return nil, err
	}

	diff := func(x float64) float64 {
		return pa.Predict(x) - pb.Predict(x)
	}

	var roots []float64

	step := (hi - lo) / float64(opts.samples-1)
	prevX := lo
	prevD := diff(lo)

	if prevD == 0 {
		roots = append(roots, lo)
	}

	for idx := 1; idx < opts.samples; idx++ {
		x := lo + step*float64(idx)
		if idx == opts.samples-1 {
			x = hi
		}

		d := diff(x)

		switch {
		case d == 0:
			roots = append(roots, x)
		case prevD != 0 && math.Signbit(d) != math.Signbit(prevD):
			r, err := opts.solver(diff, prevX, x, opts.solverOpts...)
			if err != nil && !errors.Is(err, rootfind.ErrMaxIterations) {
				return nil, err
			}

			roots = append(roots, r)
		}

		prevX, prevD = x, d
	}

	if len(roots) == 0 {
		return nil, ErrNoIntersection
	}

	ps := make([]Point, 0, len(roots))
	for _, r := range roots {
		ps = append(ps, Point{X: r, Y: pa.Predict(r)})
	}

	return ps, nil
}

// Intersect returns the crossing of a and b with the smallest x.
func Intersect(a, b *Samples, options ...Option) (Point, error) {
	ps, err := IntersectAll(a, b, options...)
	if err != nil {
		return Point{X: math.NaN(), Y: math.NaN()}, err
	}

	return ps[0], nil
}
