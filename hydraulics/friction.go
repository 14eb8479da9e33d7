// Package hydraulics computes pipe friction and fitting pressure drops.
package hydraulics

import (
	"fmt"
	"math"

	"github.com/sgostarter/libpumpcalc/fluid"
)

// Gravity is the standard acceleration shared with the fluid package.
const Gravity = fluid.Gravity

func Area(diameterM float64) float64 {
	return math.Pi * diameterM * diameterM / 4
}

// Velocity returns the mean velocity in m/s for a flow in m³/h through a
// bore in mm.
func Velocity(flowM3h, diameterMM float64) float64 {
	return flowM3h / 3600 / Area(diameterMM/1000)
}

// Reynolds returns ρvD/μ; zero viscosity gives +Inf.
func Reynolds(density, velocity, diameterM, viscosity float64) float64 {
	if viscosity == 0 {
		return math.Inf(1)
	}

	return density * velocity * diameterM / viscosity
}

// FrictionFactor returns the Darcy friction factor. Below the laminar
// limit f = 64/Re; above it the Colebrook–White equation is solved by
// fixed-point iteration on 1/√f.
func FrictionFactor(re, relRoughness float64, options ...Option) (float64, error) {
	if math.IsNaN(re) || re <= 0 {
		return math.NaN(), fmt.Errorf("%w: %g", ErrInvalidReynolds, re)
	}

	if math.IsNaN(relRoughness) || relRoughness < 0 {
		return math.NaN(), fmt.Errorf("%w: %g", ErrInvalidRoughness, relRoughness)
	}

	if re < LaminarLimit {
		return 64 / re, nil
	}

	if math.IsInf(re, 1) {
		if relRoughness == 0 {
			return 0, nil
		}

		x := -2 * math.Log10(relRoughness/3.7)

		return 1 / (x * x), nil
	}

	opts := optionNew(options...)

	x := 1 / math.Sqrt(swameeJain(re, relRoughness))

	for i := 0; i < opts.maxIter; i++ {
		xn := -2 * math.Log10(relRoughness/3.7+2.51*x/re)

		if math.Abs(xn-x) <= opts.tolerance*math.Abs(xn) {
			return 1 / (xn * xn), nil
		}

		x = xn
	}

	return math.NaN(), fmt.Errorf("%w: re=%g after %d iterations", ErrNoConvergence, re, opts.maxIter)
}

// swameeJain is the explicit approximation used as the starting point.
func swameeJain(re, relRoughness float64) float64 {
	l := math.Log10(relRoughness/3.7 + 5.74/math.Pow(re, 0.9))

	return 0.25 / (l * l)
}

// ColebrookResidual is 1/√f + 2·log10(ε/3.7 + 2.51/(Re·√f)); zero for an
// exact solution.
func ColebrookResidual(f, re, relRoughness float64) float64 {
	s := math.Sqrt(f)

	return 1/s + 2*math.Log10(relRoughness/3.7+2.51/(re*s))
}
