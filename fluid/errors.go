package fluid

import "errors"

var (
	ErrUnknownFluid    = errors.New("unknown fluid")
	ErrUnknownProperty = errors.New("unknown property")
	ErrOutOfRange      = errors.New("state out of range")
	ErrNoTable         = errors.New("no table for property")
)
