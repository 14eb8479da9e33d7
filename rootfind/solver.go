package rootfind

import (
	"fmt"
	"strings"
)

// Solver finds a root of f inside [a, b]. Brent and Bisect are Solvers.
type Solver func(f Func, a, b float64, options ...Option) (float64, error)

func SolverByName(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "brent":
		return Brent, nil
	case "bisect", "bisection":
		return Bisect, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}
