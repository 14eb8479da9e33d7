package fluid

import (
	"fmt"
	"math"
)

const (
	waterMinTempC       = 0.0
	waterMaxTempC       = 150.0
	waterCompressiblity = 4.6e-10
)

type waterProvider struct{}

// NewWaterProvider returns correlations for liquid water between 0 and
// 150 °C.
func NewWaterProvider() Provider {
	return waterProvider{}
}

func IsWater(fluid string) bool {
	switch normalizeName(fluid) {
	case "water", "h2o", "":
		return true
	}

	return false
}

func (waterProvider) Property(p Property, tempC, pressurePa float64, fluid string) (float64, error) {
	if !IsWater(fluid) {
		return math.NaN(), fmt.Errorf("%w: %q", ErrUnknownFluid, fluid)
	}

	if math.IsNaN(tempC) || tempC < waterMinTempC || tempC > waterMaxTempC {
		return math.NaN(), fmt.Errorf("%w: %g °C", ErrOutOfRange, tempC)
	}

	if math.IsNaN(pressurePa) || pressurePa < 0 {
		return math.NaN(), fmt.Errorf("%w: %g Pa", ErrOutOfRange, pressurePa)
	}

	switch p {
	case PropDensity:
		return WaterDensity(tempC, pressurePa), nil
	case PropViscosity:
		return WaterViscosity(tempC), nil
	case PropKinematicViscosity:
		return WaterViscosity(tempC) / WaterDensity(tempC, pressurePa), nil
	case PropVaporPressure:
		return WaterVaporPressure(tempC), nil
	}

	return math.NaN(), fmt.Errorf("%w: %d", ErrUnknownProperty, int(p))
}

// WaterDensity uses the Kell formulation at atmospheric pressure with a
// linear compressibility correction.
func WaterDensity(tempC, pressurePa float64) float64 {
	t := tempC
	num := 999.83952 + 16.945176*t - 7.9870401e-3*t*t - 46.170461e-6*t*t*t +
		105.56302e-9*t*t*t*t - 280.54253e-12*t*t*t*t*t
	rho := num / (1 + 16.879850e-3*t)

	return rho * (1 + waterCompressiblity*(pressurePa-StandardPressure))
}

// WaterViscosity is the Vogel equation, Pa·s.
func WaterViscosity(tempC float64) float64 {
	return 2.414e-5 * math.Pow(10, 247.8/(tempC+273.15-140))
}

// WaterVaporPressure is the Antoine equation in Pa; constants switch at
// 100 °C.
func WaterVaporPressure(tempC float64) float64 {
	a, b, c := 8.07131, 1730.63, 233.426
	if tempC > 100 {
		a, b, c = 8.14019, 1810.94, 244.485
	}

	return math.Pow(10, a-b/(c+tempC)) * 133.322368
}
