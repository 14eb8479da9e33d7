package udf

import (
	"github.com/sgostarter/libpumpcalc/interp"
)

func samplesArg(args Args, xIdx, yIdx int) (*interp.Samples, error) {
	xs, err := args.Floats(xIdx, "x values")
	if err != nil {
		return nil, err
	}

	ys, err := args.Floats(yIdx, "y values")
	if err != nil {
		return nil, err
	}

	return interp.NewSamples(xs, ys)
}

func kindArg(ctx *Context, args Args, idx int) (interp.Kind, error) {
	if !args.Has(idx) {
		return ctx.Config.Kind(), nil
	}

	return interp.ParseKind(args.StringOr(idx, ""))
}

// interpWith evaluates (xs, ys, x[, kind]) with a fixed out-of-range mode.
func interpWith(mode interp.Mode) Func {
	return func(ctx *Context, args Args) (any, error) {
		s, err := samplesArg(args, 0, 1)
		if err != nil {
			return nil, err
		}

		x, err := args.Float(2, "x")
		if err != nil {
			return nil, err
		}

		kind, err := kindArg(ctx, args, 3)
		if err != nil {
			return nil, err
		}

		return interp.Evaluate(s, kind, mode, x)
	}
}

func interpMono(_ *Context, args Args) (any, error) {
	s, err := samplesArg(args, 0, 1)
	if err != nil {
		return nil, err
	}

	x, err := args.Float(2, "x")
	if err != nil {
		return nil, err
	}

	return interp.Evaluate(s, interp.KindMonotonic, interp.ModeReject, x)
}

func inverseArgs(ctx *Context, args Args) (*interp.Samples, float64, []interp.Option, error) {
	s, err := samplesArg(args, 0, 1)
	if err != nil {
		return nil, 0, nil, err
	}

	y, err := args.Float(2, "y")
	if err != nil {
		return nil, 0, nil, err
	}

	opts := ctx.Config.InterpOptions()

	if args.Has(3) {
		tol, err := args.Float(3, "tolerance")
		if err != nil {
			return nil, 0, nil, err
		}

		opts = append(opts, interp.WithTolerance(tol))
	}

	return s, y, opts, nil
}

func inverseFirst(ctx *Context, args Args) (any, error) {
	s, y, opts, err := inverseArgs(ctx, args)
	if err != nil {
		return nil, err
	}

	return interp.InverseFirst(s, y, opts...)
}

func inverseAll(ctx *Context, args Args) (any, error) {
	s, y, opts, err := inverseArgs(ctx, args)
	if err != nil {
		return nil, err
	}

	return interp.Inverse(s, y, opts...)
}

func intersect(pick func(p interp.Point) float64) Func {
	return func(ctx *Context, args Args) (any, error) {
		a, err := samplesArg(args, 0, 1)
		if err != nil {
			return nil, err
		}

		b, err := samplesArg(args, 2, 3)
		if err != nil {
			return nil, err
		}

		kind, err := kindArg(ctx, args, 4)
		if err != nil {
			return nil, err
		}

		p, err := interp.Intersect(a, b, append(ctx.Config.InterpOptions(), interp.WithKind(kind))...)
		if err != nil {
			return nil, err
		}

		return pick(p), nil
	}
}

func interpFunctions() []Function {
	return []Function{
		{
			Name: "INTERP", MinArgs: 3, MaxArgs: 4, Fn: interpWith(interp.ModeExtrapolate),
			Usage: "INTERP(xs, ys, x[, kind]) spline value, extrapolates outside the samples",
		},
		{
			Name: "INTERP_CLIP", MinArgs: 3, MaxArgs: 4, Fn: interpWith(interp.ModeClamp),
			Usage: "INTERP_CLIP(xs, ys, x[, kind]) spline value, boundary y outside the samples",
		},
		{
			Name: "INTERP_STRICT", MinArgs: 3, MaxArgs: 4, Fn: interpWith(interp.ModeReject),
			Usage: "INTERP_STRICT(xs, ys, x[, kind]) spline value, out of range error outside the samples",
		},
		{
			Name: "INTERP_MONO", MinArgs: 3, MaxArgs: 3, Fn: interpMono,
			Usage: "INTERP_MONO(xs, ys, x) monotonic spline value, out of range error outside the samples",
		},
		{
			Name: "INVERSE_INTERP", MinArgs: 3, MaxArgs: 4, Fn: inverseFirst,
			Usage: "INVERSE_INTERP(xs, ys, y[, tolerance]) smallest x reaching y",
		},
		{
			Name: "INVERSE_INTERP_ALL", MinArgs: 3, MaxArgs: 4, Fn: inverseAll,
			Usage: "INVERSE_INTERP_ALL(xs, ys, y[, tolerance]) every x reaching y",
		},
		{
			Name: "CURVE_INTERSECT", MinArgs: 4, MaxArgs: 5,
			Fn:    intersect(func(p interp.Point) float64 { return p.X }),
			Usage: "CURVE_INTERSECT(x1, y1, x2, y2[, kind]) x of the first crossing",
		},
		{
			Name: "CURVE_INTERSECT_Y", MinArgs: 4, MaxArgs: 5,
			Fn:    intersect(func(p interp.Point) float64 { return p.Y }),
			Usage: "CURVE_INTERSECT_Y(x1, y1, x2, y2[, kind]) y of the first crossing",
		},
	}
}
