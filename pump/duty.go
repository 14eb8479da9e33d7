package pump

import (
	"errors"
	"fmt"
	"math"

	"github.com/sgostarter/libpumpcalc/interp"
)

const systemCurveSamples = 201

// SystemCurve is H = StaticHead + K·Q² with Q in m³/h.
type SystemCurve struct {
	StaticHead float64 `yaml:"staticHead" json:"staticHead"`
	K          float64 `yaml:"k" json:"k"`
}

func (sc SystemCurve) Head(flowM3h float64) float64 {
	return sc.StaticHead + sc.K*flowM3h*flowM3h
}

// Samples tabulates the curve on [lo, hi].
func (sc SystemCurve) Samples(lo, hi float64, n int) (*interp.Samples, error) {
	if n < 2 || !(hi > lo) {
		return nil, fmt.Errorf("%w: [%g, %g] n=%d", ErrInvalidSystem, lo, hi, n)
	}

	xs := make([]float64, n)
	ys := make([]float64, n)

	for idx := range xs {
		xs[idx] = lo + (hi-lo)*float64(idx)/float64(n-1)
		ys[idx] = sc.Head(xs[idx])
	}

	return interp.NewSamples(xs, ys)
}

// DutyPoint intersects the pump head curve with the system curve.
func DutyPoint(pumpCurve *interp.Samples, sc SystemCurve, options ...interp.Option) (OperatingPoint, error) {
	if math.IsNaN(sc.StaticHead) || math.IsNaN(sc.K) || sc.K < 0 {
		return OperatingPoint{}, fmt.Errorf("%w: static %g, k %g", ErrInvalidSystem, sc.StaticHead, sc.K)
	}

	if pumpCurve == nil || pumpCurve.Len() < 2 {
		return OperatingPoint{}, interp.ErrTooFewPoints
	}

	lo, hi := pumpCurve.Domain()

	sys, err := sc.Samples(lo, hi, systemCurveSamples)
	if err != nil {
		return OperatingPoint{}, err
	}

	p, err := interp.Intersect(pumpCurve, sys, options...)
	if err != nil {
		if errors.Is(err, interp.ErrNoIntersection) {
			return OperatingPoint{}, fmt.Errorf("%w: %s", ErrNoDutyPoint, err.Error())
		}

		return OperatingPoint{}, err
	}

	return OperatingPoint{FlowM3h: p.X, HeadM: sc.Head(p.X)}, nil
}
