package fluid

import "math"

const (
	StandardPressure = 101325.0
	Gravity          = 9.80665
)

// BarometricPressure returns the standard-atmosphere pressure in Pa at an
// altitude in metres.
func BarometricPressure(altitudeM float64) float64 {
	base := 1 - 2.25577e-5*altitudeM
	if base <= 0 {
		return 0
	}

	return StandardPressure * math.Pow(base, 5.25588)
}
