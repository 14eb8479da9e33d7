package curve

import "errors"

var (
	ErrInvalidName   = errors.New("invalid curve name")
	ErrNoPoints      = errors.New("no curve points")
	ErrBadCell       = errors.New("cell is not a number")
	ErrInvalidColumn = errors.New("invalid column")
	ErrNoSheet       = errors.New("no such sheet")
)
