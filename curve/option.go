package curve

import (
	"time"

	"github.com/sgostarter/libpumpcalc/interp"
)

const DefaultCacheTTL = 10 * time.Minute

type Options struct {
	cacheTTL    time.Duration
	kind        interp.Kind
	interpOpts  []interp.Option
	skipRows    int
	sheet       string
	withoutHead bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		cacheTTL: DefaultCacheTTL,
		kind:     interp.KindCubic,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(o *Options) {
		if ttl > 0 {
			o.cacheTTL = ttl
		}
	}
}

// WithKind sets the spline used for curves that do not name one.
func WithKind(kind interp.Kind) Option {
	return func(o *Options) {
		o.kind = kind
	}
}

func WithInterpOptions(interpOpts ...interp.Option) Option {
	return func(o *Options) {
		o.interpOpts = append(o.interpOpts, interpOpts...)
	}
}

// WithSkipRows drops leading rows before the table starts.
func WithSkipRows(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.skipRows = n
		}
	}
}

func WithSheet(sheet string) Option {
	return func(o *Options) {
		o.sheet = sheet
	}
}

// WithoutHeader makes a non-numeric first row an error instead of a
// header.
func WithoutHeader() Option {
	return func(o *Options) {
		o.withoutHead = true
	}
}
