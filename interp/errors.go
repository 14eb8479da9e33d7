package interp

import "errors"

var (
	ErrEmpty          = errors.New("no samples")
	ErrLengthMismatch = errors.New("x and y lengths differ")
	ErrNotFinite      = errors.New("value is not finite")
	ErrDuplicateX     = errors.New("duplicate x value")
	ErrTooFewPoints   = errors.New("too few points")
	ErrOutOfRange     = errors.New("out of range")
	ErrUnknownKind    = errors.New("unknown interpolation kind")
	ErrUnknownMode    = errors.New("unknown out-of-range mode")
	ErrNoOverlap      = errors.New("no overlapping domain")
	ErrNoIntersection = errors.New("no intersection")
)
