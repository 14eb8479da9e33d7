package interp

import (
	"fmt"
	"math"
	"sort"
)

// Samples is an immutable set of (x, y) pairs sorted by strictly increasing x.
type Samples struct {
	xs []float64
	ys []float64
}

func NewSamples(xs, ys []float64) (*Samples, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}

	if len(xs) == 0 {
		return nil, ErrEmpty
	}

	ps := make([]Point, len(xs))

	for idx := range xs {
		if !isFinite(xs[idx]) || !isFinite(ys[idx]) {
			return nil, fmt.Errorf("%w: sample %d", ErrNotFinite, idx)
		}

		ps[idx] = Point{X: xs[idx], Y: ys[idx]}
	}

	return newSamplesFromPoints(ps)
}

func NewSamplesFromPoints(ps []Point) (*Samples, error) {
	if len(ps) == 0 {
		return nil, ErrEmpty
	}

	cp := make([]Point, len(ps))

	for idx, p := range ps {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, fmt.Errorf("%w: sample %d", ErrNotFinite, idx)
		}

		cp[idx] = p
	}

	return newSamplesFromPoints(cp)
}

func newSamplesFromPoints(ps []Point) (*Samples, error) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].X < ps[j].X
	})

	s := &Samples{
		xs: make([]float64, len(ps)),
		ys: make([]float64, len(ps)),
	}

	for idx, p := range ps {
		if idx > 0 && p.X == ps[idx-1].X {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateX, p.X)
		}

		s.xs[idx] = p.X
		s.ys[idx] = p.Y
	}

	return s, nil
}

func (s *Samples) Len() int {
	return len(s.xs)
}

func (s *Samples) X() []float64 {
	return append([]float64(nil), s.xs...)
}

func (s *Samples) Y() []float64 {
	return append([]float64(nil), s.ys...)
}

func (s *Samples) Points() []Point {
	ps := make([]Point, len(s.xs))
	for idx := range s.xs {
		ps[idx] = Point{X: s.xs[idx], Y: s.ys[idx]}
	}

	return ps
}

// Domain returns the smallest and largest x.
func (s *Samples) Domain() (lo, hi float64) {
	return s.xs[0], s.xs[len(s.xs)-1]
}

// Range returns the smallest and largest y.
func (s *Samples) Range() (lo, hi float64) {
	lo, hi = s.ys[0], s.ys[0]

	for _, y := range s.ys[1:] {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}

	return
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
