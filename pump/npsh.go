package pump

import (
	"fmt"
	"math"

	"github.com/sgostarter/libpumpcalc/fluid"
)

type NPSHInput struct {
	TempC          float64 `yaml:"tempC" json:"tempC"`
	AltitudeM      float64 `yaml:"altitudeM" json:"altitudeM"`
	SuctionGaugePa float64 `yaml:"suctionGaugePa" json:"suctionGaugePa"`
	StaticHeadM    float64 `yaml:"staticHeadM" json:"staticHeadM"`
	LossHeadM      float64 `yaml:"lossHeadM" json:"lossHeadM"`
	Fluid          string  `yaml:"fluid" json:"fluid"`
}

// NPSHAvailable returns (p_atm + p_gauge − p_vap)/(ρg) + z − h_loss in m.
// StaticHeadM is positive for a flooded suction and negative for a lift.
func NPSHAvailable(in NPSHInput, provider fluid.Provider) (float64, error) {
	if math.IsNaN(in.LossHeadM) || in.LossHeadM < 0 {
		return math.NaN(), fmt.Errorf("%w: loss head %g", ErrInvalidCondition, in.LossHeadM)
	}

	pressure := fluid.BarometricPressure(in.AltitudeM) + in.SuctionGaugePa
	if pressure <= 0 {
		return math.NaN(), fmt.Errorf("%w: absolute suction pressure %g", ErrInvalidCondition, pressure)
	}

	rho, err := provider.Property(fluid.PropDensity, in.TempC, pressure, in.Fluid)
	if err != nil {
		return math.NaN(), err
	}

	pv, err := provider.Property(fluid.PropVaporPressure, in.TempC, pressure, in.Fluid)
	if err != nil {
		return math.NaN(), err
	}

	return (pressure-pv)/(rho*fluid.Gravity) + in.StaticHeadM - in.LossHeadM, nil
}

// NPSHMargin is NPSHa − NPSHr; a negative margin means cavitation.
func NPSHMargin(available, required float64) (float64, error) {
	margin := available - required
	if margin < 0 {
		return margin, fmt.Errorf("%w: margin %g m", ErrNegativeNPSH, margin)
	}

	return margin, nil
}
