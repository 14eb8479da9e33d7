package interp

import "github.com/sgostarter/libpumpcalc/rootfind"

const (
	DefaultInverseTolerance = 1e-9
	DefaultIntersectSamples = 1000
)

type Options struct {
	kind       Kind
	mode       Mode
	tolerance  float64
	samples    int
	solver     rootfind.Solver
	solverOpts []rootfind.Option
}

type Option func(o *Options)

func optionNew(kind Kind, option ...Option) *Options {
	opts := &Options{
		kind:      kind,
		mode:      ModeReject,
		tolerance: DefaultInverseTolerance,
		samples:   DefaultIntersectSamples,
		solver:    rootfind.Brent,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithKind(kind Kind) Option {
	return func(o *Options) {
		o.kind = kind
	}
}

func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

// WithTolerance sets the Y distance under which neighbouring samples are
// treated as duplicates by inverse lookups.
func WithTolerance(tolerance float64) Option {
	return func(o *Options) {
		if tolerance >= 0 {
			o.tolerance = tolerance
		}
	}
}

func WithSamples(n int) Option {
	return func(o *Options) {
		if n >= 2 {
			o.samples = n
		}
	}
}

func WithSolverOptions(solverOpts ...rootfind.Option) Option {
	return func(o *Options) {
		o.solverOpts = append(o.solverOpts, solverOpts...)
	}
}

// WithSolver sets the root finder that refines intersection brackets.
func WithSolver(solver rootfind.Solver) Option {
	return func(o *Options) {
		if solver != nil {
			o.solver = solver
		}
	}
}
