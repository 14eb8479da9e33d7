// Package fluid looks up thermophysical properties by temperature and
// pressure.
package fluid

import (
	"fmt"
	"strings"
)

type Property int

const (
	PropDensity Property = iota + 1
	PropViscosity
	PropKinematicViscosity
	PropVaporPressure
)

func (p Property) String() string {
	switch p {
	case PropDensity:
		return "density"
	case PropViscosity:
		return "viscosity"
	case PropKinematicViscosity:
		return "kinematic_viscosity"
	case PropVaporPressure:
		return "vapor_pressure"
	}

	return fmt.Sprintf("property(%d)", int(p))
}

// ParseProperty accepts long names and the short keys used by common
// property libraries (D, V, P_sat).
func ParseProperty(s string) (Property, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "dmass", "rho", "density":
		return PropDensity, nil
	case "v", "mu", "viscosity", "dynamic_viscosity":
		return PropViscosity, nil
	case "nu", "kinematic_viscosity":
		return PropKinematicViscosity, nil
	case "p_sat", "psat", "pv", "vapor_pressure", "vapour_pressure":
		return PropVaporPressure, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, s)
}

// Provider returns a property value in SI units (kg/m³, Pa·s, m²/s, Pa)
// for a fluid at tempC and pressurePa.
type Provider interface {
	Property(p Property, tempC, pressurePa float64, fluid string) (float64, error)
}

func normalizeName(fluid string) string {
	return strings.ToLower(strings.TrimSpace(fluid))
}
