package hydraulics

import "errors"

var (
	ErrInvalidFlow      = errors.New("flow must be positive")
	ErrInvalidDiameter  = errors.New("diameter must be positive")
	ErrInvalidDensity   = errors.New("density must be positive")
	ErrInvalidViscosity = errors.New("viscosity must not be negative")
	ErrInvalidRoughness = errors.New("roughness must not be negative")
	ErrInvalidLength    = errors.New("length must not be negative")
	ErrInvalidReynolds  = errors.New("reynolds number must be positive")
	ErrInvalidK         = errors.New("loss coefficient must not be negative")
	ErrUnknownFitting   = errors.New("unknown fitting")
	ErrNoConvergence    = errors.New("friction factor did not converge")
)
