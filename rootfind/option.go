package rootfind

const (
	DefaultTolerance = 1e-12
	DefaultMaxIter   = 200
)

type Options struct {
	tolerance float64
	maxIter   int
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		tolerance: DefaultTolerance,
		maxIter:   DefaultMaxIter,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithTolerance(tolerance float64) Option {
	return func(o *Options) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

func WithMaxIter(maxIter int) Option {
	return func(o *Options) {
		if maxIter > 0 {
			o.maxIter = maxIter
		}
	}
}
