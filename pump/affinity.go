package pump

import (
	"fmt"
	"math"

	"github.com/sgostarter/libpumpcalc/fluid"
	"github.com/sgostarter/libpumpcalc/interp"
)

type OperatingPoint struct {
	FlowM3h float64 `yaml:"flowM3h" json:"flowM3h"`
	HeadM   float64 `yaml:"headM" json:"headM"`
	PowerKW float64 `yaml:"powerKW" json:"powerKW"`
}

// ScaleBySpeed applies the affinity laws from speed n1 to n2.
func ScaleBySpeed(p OperatingPoint, n1, n2 float64) (OperatingPoint, error) {
	if math.IsNaN(n1) || math.IsNaN(n2) || n1 <= 0 || n2 <= 0 {
		return OperatingPoint{}, fmt.Errorf("%w: %g -> %g", ErrInvalidSpeed, n1, n2)
	}

	r := n2 / n1

	return OperatingPoint{
		FlowM3h: p.FlowM3h * r,
		HeadM:   p.HeadM * r * r,
		PowerKW: p.PowerKW * r * r * r,
	}, nil
}

// ScaleCurveBySpeed maps every point of a head curve through the affinity
// laws.
func ScaleCurveBySpeed(s *interp.Samples, n1, n2 float64) (*interp.Samples, error) {
	ps := s.Points()

	for idx, p := range ps {
		op, err := ScaleBySpeed(OperatingPoint{FlowM3h: p.X, HeadM: p.Y}, n1, n2)
		if err != nil {
			return nil, err
		}

		ps[idx] = interp.Point{X: op.FlowM3h, Y: op.HeadM}
	}

	return interp.NewSamplesFromPoints(ps)
}

// HydraulicPower returns ρ·g·Q·H in W.
func HydraulicPower(flowM3h, headM, density float64) (float64, error) {
	if math.IsNaN(flowM3h) || flowM3h < 0 {
		return math.NaN(), fmt.Errorf("%w: %g", ErrInvalidFlow, flowM3h)
	}

	if math.IsNaN(headM) || headM < 0 {
		return math.NaN(), fmt.Errorf("%w: %g", ErrInvalidHead, headM)
	}

	if math.IsNaN(density) || density <= 0 {
		return math.NaN(), fmt.Errorf("%w: %g", ErrInvalidDensity, density)
	}

	return density * fluid.Gravity * flowM3h / 3600 * headM, nil
}
