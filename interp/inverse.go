package interp

import (
	"fmt"
	"math"
	"sort"
)

type branch struct {
	xs []float64
	ys []float64 // strictly increasing
}

func (b branch) brackets(y float64) bool {
	return y >= b.ys[0] && y <= b.ys[len(b.ys)-1]
}

// dedupY drops samples whose y is within tol of the last kept sample.
func dedupY(xs, ys []float64, tol float64) (oxs, oys []float64) {
	oxs = append(oxs, xs[0])
	oys = append(oys, ys[0])

	for idx := 1; idx < len(xs); idx++ {
		if math.Abs(ys[idx]-oys[len(oys)-1]) <= tol {
			continue
		}

		oxs = append(oxs, xs[idx])
		oys = append(oys, ys[idx])
	}

	return
}

// splitBranches cuts the samples at every turning point. A turning point
// belongs to both neighbouring branches.
func splitBranches(xs, ys []float64) []branch {
	var branches []branch

	start := 0

	for idx := 1; idx < len(xs)-1; idx++ {
		if (ys[idx]-ys[idx-1] > 0) != (ys[idx+1]-ys[idx] > 0) {
			branches = append(branches, newBranch(xs[start:idx+1], ys[start:idx+1]))
			start = idx
		}
	}

	return append(branches, newBranch(xs[start:], ys[start:]))
}

func newBranch(xs, ys []float64) branch {
	b := branch{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}

	if b.ys[0] > b.ys[len(b.ys)-1] {
		for i, j := 0, len(b.ys)-1; i < j; i, j = i+1, j-1 {
			b.xs[i], b.xs[j] = b.xs[j], b.xs[i]
			b.ys[i], b.ys[j] = b.ys[j], b.ys[i]
		}
	}

	return b
}

// Inverse returns every x at which the sampled curve reaches y, in
// ascending order. Non-monotonic curves are split into monotone branches
// and each branch whose y range contains the query contributes one root.
func Inverse(s *Samples, y float64, options ...Option) ([]float64, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmpty
	}

	if !isFinite(y) {
		return nil, ErrNotFinite
	}

	opts := optionNew(KindMonotonic, options...)

	xs, ys := dedupY(s.xs, s.ys, opts.tolerance)
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}

	var roots []float64

	for _, b := range splitBranches(xs, ys) {
		if !b.brackets(y) {
			continue
		}

		p, _, err := fit(opts.kind, b.ys, b.xs)
		if err != nil {
			return nil, err
		}

		roots = append(roots, p.Predict(y))
	}

	if len(roots) == 0 {
		lo, hi := s.Range()

		return nil, fmt.Errorf("%w: y=%g outside reachable values [%g, %g]", ErrOutOfRange, y, lo, hi)
	}

	sort.Float64s(roots)

	return dedupRoots(roots, s), nil
}

// InverseFirst returns the smallest x at which the curve reaches y.
func InverseFirst(s *Samples, y float64, options ...Option) (float64, error) {
	roots, err := Inverse(s, y, options...)
	if err != nil {
		return math.NaN(), err
	}

	return roots[0], nil
}

func dedupRoots(roots []float64, s *Samples) []float64 {
	lo, hi := s.Domain()
	eps := 1e-12 * math.Max(1, hi-lo)

	out := roots[:1]

	for _, r := range roots[1:] {
		if r-out[len(out)-1] > eps {
			out = append(out, r)
		}
	}

	return out
}
