package rootfind

import "errors"

var (
	ErrInvalidBracket = errors.New("invalid bracket")
	ErrNoSignChange   = errors.New("no sign change in bracket")
	ErrMaxIterations  = errors.New("max iterations reached")
	ErrUnknownSolver  = errors.New("unknown solver")
)
