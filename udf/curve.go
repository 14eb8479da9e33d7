package udf

import (
	"github.com/sgostarter/libpumpcalc/interp"
)

func curveAt(ctx *Context, args Args) (any, error) {
	if ctx.Curves == nil {
		return nil, ErrNoLibrary
	}

	name, err := args.String(0, "curve")
	if err != nil {
		return nil, err
	}

	x, err := args.Float(1, "x")
	if err != nil {
		return nil, err
	}

	mode, err := interp.ParseMode(args.StringOr(2, ""))
	if err != nil {
		return nil, err
	}

	return ctx.Curves.At(name, x, mode)
}

func curveInverse(ctx *Context, args Args) (any, error) {
	if ctx.Curves == nil {
		return nil, ErrNoLibrary
	}

	name, err := args.String(0, "curve")
	if err != nil {
		return nil, err
	}

	y, err := args.Float(1, "y")
	if err != nil {
		return nil, err
	}

	return ctx.Curves.Inverse(name, y)
}

func curveFunctions() []Function {
	return []Function{
		{
			Name: "CURVE_AT", MinArgs: 2, MaxArgs: 3, Fn: curveAt,
			Usage: "CURVE_AT(name, x[, reject|clamp|extrapolate]) value of a stored curve",
		},
		{
			Name: "CURVE_INVERSE", MinArgs: 2, MaxArgs: 2, Fn: curveInverse,
			Usage: "CURVE_INVERSE(name, y) every x at which a stored curve reaches y",
		},
	}
}
