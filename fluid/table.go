package fluid

import (
	"errors"
	"fmt"
	"math"

	"github.com/sgostarter/libpumpcalc/interp"
)

type tableProvider struct {
	fluid  string
	tables map[Property]*interp.Interpolator
}

// NewTableProvider serves a single fluid from property-versus-temperature
// tables. Pressure is ignored; queries outside a table are rejected.
func NewTableProvider(fluid string, tables map[Property]*interp.Samples) (Provider, error) {
	impl := &tableProvider{
		fluid:  normalizeName(fluid),
		tables: make(map[Property]*interp.Interpolator),
	}

	for p, s := range tables {
		ip, err := interp.NewInterpolator(s, interp.KindMonotonic, interp.WithMode(interp.ModeReject))
		if err != nil {
			return nil, fmt.Errorf("%s table: %w", p, err)
		}

		impl.tables[p] = ip
	}

	return impl, nil
}

func (impl *tableProvider) Property(p Property, tempC, _ float64, fluid string) (float64, error) {
	if normalizeName(fluid) != impl.fluid {
		return math.NaN(), fmt.Errorf("%w: %q", ErrUnknownFluid, fluid)
	}

	if p == PropKinematicViscosity {
		if _, ok := impl.tables[p]; !ok {
			mu, err := impl.Property(PropViscosity, tempC, 0, fluid)
			if err != nil {
				return math.NaN(), err
			}

			rho, err := impl.Property(PropDensity, tempC, 0, fluid)
			if err != nil {
				return math.NaN(), err
			}

			return mu / rho, nil
		}
	}

	ip, ok := impl.tables[p]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %s", ErrNoTable, p)
	}

	v, err := ip.At(tempC)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %s at %g °C", ErrOutOfRange, p, tempC)
	}

	return v, nil
}

// Multi dispatches to the first provider that knows the fluid.
type Multi []Provider

func (m Multi) Property(p Property, tempC, pressurePa float64, fluid string) (v float64, err error) {
	err = fmt.Errorf("%w: %q", ErrUnknownFluid, fluid)

	for _, provider := range m {
		v, err = provider.Property(p, tempC, pressurePa, fluid)
		if err == nil || !errors.Is(err, ErrUnknownFluid) {
			return
		}
	}

	return math.NaN(), err
}
