package udf

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpumpcalc/config"
	"github.com/sgostarter/libpumpcalc/curve"
	"github.com/sgostarter/libpumpcalc/fluid"
)

// Context carries everything a call may read. There is no package level
// state; two contexts never share settings.
type Context struct {
	Config *config.Config
	Fluids fluid.Provider
	Curves *curve.Library
	Logger l.Wrapper
}

// NewContext fills gaps with the default config, a cached water provider
// and a nop logger. curves may be nil when no library is configured.
func NewContext(cfg *config.Config, fluids fluid.Provider, curves *curve.Library, logger l.Wrapper) *Context {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = config.Default()
	}

	if fluids == nil {
		fluids = fluid.NewCachedProvider(fluid.NewWaterProvider(), cfg.CacheTTL, logger)
	}

	return &Context{
		Config: cfg,
		Fluids: fluids,
		Curves: curves,
		Logger: logger,
	}
}

// complete returns ctx itself when nothing is missing, otherwise a copy with
// the gaps filled as NewContext does. The caller's value is never mutated.
func (ctx *Context) complete() *Context {
	if ctx == nil {
		return NewContext(nil, nil, nil, nil)
	}

	if ctx.Config != nil && ctx.Fluids != nil && ctx.Logger != nil {
		return ctx
	}

	return NewContext(ctx.Config, ctx.Fluids, ctx.Curves, ctx.Logger)
}
