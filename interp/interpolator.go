package interp

import (
	"fmt"
	"math"

	gi "gonum.org/v1/gonum/interp"
)

type slopePredictor interface {
	PredictDerivative(x float64) float64
}

// fit returns the fitted gonum predictor and the kind actually used;
// cubic kinds degrade to linear below three points.
func fit(kind Kind, xs, ys []float64) (gi.Predictor, Kind, error) {
	if len(xs) < 2 {
		return nil, kind, ErrTooFewPoints
	}

	if len(xs) < 3 {
		kind = KindLinear
	}

	var err error

	switch kind {
	case KindLinear:
		var p gi.PiecewiseLinear
		if err = p.Fit(xs, ys); err == nil {
			return &p, kind, nil
		}
	case KindCubic:
		var p gi.NaturalCubic
		if err = p.Fit(xs, ys); err == nil {
			return &p, kind, nil
		}
	case KindMonotonic:
		var p gi.FritschButland
		if err = p.Fit(xs, ys); err == nil {
			return &p, kind, nil
		}
	case KindAkima:
		var p gi.AkimaSpline
		if err = p.Fit(xs, ys); err == nil {
			return &p, kind, nil
		}
	default:
		return nil, kind, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	return nil, kind, err
}

// Interpolator evaluates a spline fitted through Samples. Queries outside
// the sampled domain follow the configured Mode.
type Interpolator struct {
	samples *Samples
	kind    Kind
	mode    Mode
	p       gi.Predictor

	loSlope float64
	hiSlope float64
}

func NewInterpolator(s *Samples, kind Kind, options ...Option) (*Interpolator, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmpty
	}

	opts := optionNew(kind, options...)

	p, usedKind, err := fit(opts.kind, s.xs, s.ys)
	if err != nil {
		return nil, err
	}

	impl := &Interpolator{
		samples: s,
		kind:    usedKind,
		mode:    opts.mode,
		p:       p,
	}

	impl.loSlope, impl.hiSlope = impl.boundarySlopes()

	return impl, nil
}

func (impl *Interpolator) boundarySlopes() (lo, hi float64) {
	xs, ys := impl.samples.xs, impl.samples.ys
	n := len(xs)

	lo = (ys[1] - ys[0]) / (xs[1] - xs[0])
	hi = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])

	if impl.kind == KindLinear {
		return
	}

	if sp, ok := impl.p.(slopePredictor); ok {
		lo = sp.PredictDerivative(xs[0])
		hi = sp.PredictDerivative(xs[n-1])
	}

	return
}

func (impl *Interpolator) Kind() Kind {
	return impl.kind
}

func (impl *Interpolator) Mode() Mode {
	return impl.mode
}

func (impl *Interpolator) Samples() *Samples {
	return impl.samples
}

func (impl *Interpolator) Domain() (lo, hi float64) {
	return impl.samples.Domain()
}

// At evaluates the spline at x.
func (impl *Interpolator) At(x float64) (float64, error) {
	if !isFinite(x) {
		return math.NaN(), ErrNotFinite
	}

	xs, ys := impl.samples.xs, impl.samples.ys
	lo, hi := xs[0], xs[len(xs)-1]

	if x >= lo && x <= hi {
		return impl.p.Predict(x), nil
	}

	switch impl.mode {
	case ModeClamp:
		if x < lo {
			return ys[0], nil
		}

		return ys[len(ys)-1], nil
	case ModeExtrapolate:
		if x < lo {
			return ys[0] + impl.loSlope*(x-lo), nil
		}

		return ys[len(ys)-1] + impl.hiSlope*(x-hi), nil
	}

	return math.NaN(), fmt.Errorf("%w: x=%g outside [%g, %g]", ErrOutOfRange, x, lo, hi)
}

// AtAll evaluates every x and stops on the first error.
func (impl *Interpolator) AtAll(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))

	for idx, x := range xs {
		y, err := impl.At(x)
		if err != nil {
			return nil, err
		}

		out[idx] = y
	}

	return out, nil
}

// Evaluate is the one-shot form of NewInterpolator + At.
func Evaluate(s *Samples, kind Kind, mode Mode, x float64) (float64, error) {
	impl, err := NewInterpolator(s, kind, WithMode(mode))
	if err != nil {
		return math.NaN(), err
	}

	return impl.At(x)
}
