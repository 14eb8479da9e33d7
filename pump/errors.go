package pump

import "errors"

var (
	ErrInvalidFlow      = errors.New("invalid flow")
	ErrInvalidHead      = errors.New("invalid head")
	ErrInvalidSpeed     = errors.New("speed must be positive")
	ErrInvalidDensity   = errors.New("density must be positive")
	ErrDegenerate       = errors.New("degenerate correction factor")
	ErrUnknownStrategy  = errors.New("unknown normalization strategy")
	ErrInvalidSystem    = errors.New("invalid system curve")
	ErrNoDutyPoint      = errors.New("no duty point")
	ErrNegativeNPSH     = errors.New("npsh available is negative")
	ErrInvalidCondition = errors.New("invalid condition")
)
