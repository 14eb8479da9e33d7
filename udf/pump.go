package udf

import (
	"github.com/sgostarter/libpumpcalc/fluid"
	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/sgostarter/libpumpcalc/pump"
)

func fluidProp(ctx *Context, args Args) (any, error) {
	name, err := args.String(0, "property")
	if err != nil {
		return nil, err
	}

	p, err := fluid.ParseProperty(name)
	if err != nil {
		return nil, err
	}

	tempC, err := args.Float(1, "temperature")
	if err != nil {
		return nil, err
	}

	pressure, err := args.FloatOr(2, "pressure", fluid.BarometricPressure(ctx.Config.AltitudeM))
	if err != nil {
		return nil, err
	}

	return ctx.Fluids.Property(p, tempC, pressure, args.StringOr(3, ctx.Config.Fluid))
}

func baroPressure(_ *Context, args Args) (any, error) {
	altitude, err := args.Float(0, "altitude")
	if err != nil {
		return nil, err
	}

	return fluid.BarometricPressure(altitude), nil
}

func conditionsArg(ctx *Context, args Args, idx int) (cond pump.Conditions, err error) {
	if cond.TempC, err = args.Float(idx, "temperature"); err != nil {
		return
	}

	if cond.RefTempC, err = args.FloatOr(idx+1, "reference temperature", ctx.Config.RefTempC); err != nil {
		return
	}

	if cond.AltitudeM, err = args.FloatOr(idx+2, "altitude", ctx.Config.AltitudeM); err != nil {
		return
	}

	cond.Fluid = args.StringOr(idx+3, ctx.Config.Fluid)

	return
}

// normalize maps (value, tempC[, refTempC, altitudeM, fluid]) through one
// strategy and returns the corrected flow or head.
func normalize(s pump.Strategy, head bool) Func {
	return func(ctx *Context, args Args) (any, error) {
		v, err := args.Float(0, "value")
		if err != nil {
			return nil, err
		}

		cond, err := conditionsArg(ctx, args, 1)
		if err != nil {
			return nil, err
		}

		n := pump.NewNormalizer(ctx.Fluids, ctx.Logger)

		if head {
			r, err := n.Normalize(s, 0, v, cond)
			if err != nil {
				return nil, err
			}

			return r.Head, nil
		}

		r, err := n.Normalize(s, v, 0, cond)
		if err != nil {
			return nil, err
		}

		return r.Flow, nil
	}
}

func affinity(head bool) Func {
	return func(_ *Context, args Args) (any, error) {
		v, err := args.Float(0, "value")
		if err != nil {
			return nil, err
		}

		n1, err := args.Float(1, "speed")
		if err != nil {
			return nil, err
		}

		n2, err := args.Float(2, "new speed")
		if err != nil {
			return nil, err
		}

		if head {
			p, err := pump.ScaleBySpeed(pump.OperatingPoint{HeadM: v}, n1, n2)

			return p.HeadM, err
		}

		p, err := pump.ScaleBySpeed(pump.OperatingPoint{FlowM3h: v}, n1, n2)

		return p.FlowM3h, err
	}
}

func duty(head bool) Func {
	return func(ctx *Context, args Args) (any, error) {
		s, err := samplesArg(args, 0, 1)
		if err != nil {
			return nil, err
		}

		var sc pump.SystemCurve

		if sc.StaticHead, err = args.Float(2, "static head"); err != nil {
			return nil, err
		}

		if sc.K, err = args.Float(3, "system k"); err != nil {
			return nil, err
		}

		p, err := pump.DutyPoint(s, sc, append(ctx.Config.InterpOptions(), interp.WithKind(ctx.Config.Kind()))...)
		if err != nil {
			return nil, err
		}

		if head {
			return p.HeadM, nil
		}

		return p.FlowM3h, nil
	}
}

func npsha(ctx *Context, args Args) (any, error) {
	var (
		in  pump.NPSHInput
		err error
	)

	if in.TempC, err = args.Float(0, "temperature"); err != nil {
		return nil, err
	}

	if in.StaticHeadM, err = args.Float(1, "static head"); err != nil {
		return nil, err
	}

	if in.LossHeadM, err = args.Float(2, "loss head"); err != nil {
		return nil, err
	}

	if in.AltitudeM, err = args.FloatOr(3, "altitude", ctx.Config.AltitudeM); err != nil {
		return nil, err
	}

	if in.SuctionGaugePa, err = args.FloatOr(4, "suction gauge pressure", 0); err != nil {
		return nil, err
	}

	in.Fluid = args.StringOr(5, ctx.Config.Fluid)

	return pump.NPSHAvailable(in, ctx.Fluids)
}

func pumpFunctions() []Function {
	return []Function{
		{
			Name: "FLUID_PROP", MinArgs: 2, MaxArgs: 4, Fn: fluidProp,
			Usage: "FLUID_PROP(property, tempC[, pressurePa, fluid]) density, viscosity, nu or vapor pressure",
		},
		{
			Name: "BARO_PRESSURE", MinArgs: 1, MaxArgs: 1, Fn: baroPressure,
			Usage: "BARO_PRESSURE(altitudeM) standard atmosphere pressure in Pa",
		},
		{
			Name: "NORMALIZE_FLOW_STD", MinArgs: 2, MaxArgs: 5, Fn: normalize(pump.StrategyStandard, false),
			Usage: "NORMALIZE_FLOW_STD(flow, tempC[, refTempC, altitudeM, fluid]) 0.15 slope",
		},
		{
			Name: "NORMALIZE_HEAD_STD", MinArgs: 2, MaxArgs: 5, Fn: normalize(pump.StrategyStandard, true),
			Usage: "NORMALIZE_HEAD_STD(head, tempC[, refTempC, altitudeM, fluid]) 0.10 slope",
		},
		{
			Name: "NORMALIZE_FLOW_MILD", MinArgs: 2, MaxArgs: 5, Fn: normalize(pump.StrategyMild, false),
			Usage: "NORMALIZE_FLOW_MILD(flow, tempC[, refTempC, altitudeM, fluid]) 0.05 slope",
		},
		{
			Name: "NORMALIZE_HEAD_MILD", MinArgs: 2, MaxArgs: 5, Fn: normalize(pump.StrategyMild, true),
			Usage: "NORMALIZE_HEAD_MILD(head, tempC[, refTempC, altitudeM, fluid]) 0.03 slope",
		},
		{
			Name: "AFFINITY_FLOW", MinArgs: 3, MaxArgs: 3, Fn: affinity(false),
			Usage: "AFFINITY_FLOW(flow, n1, n2) flow at speed n2",
		},
		{
			Name: "AFFINITY_HEAD", MinArgs: 3, MaxArgs: 3, Fn: affinity(true),
			Usage: "AFFINITY_HEAD(head, n1, n2) head at speed n2",
		},
		{
			Name: "DUTY_FLOW", MinArgs: 4, MaxArgs: 4, Fn: duty(false),
			Usage: "DUTY_FLOW(qs, hs, staticHead, k) flow where the pump meets H = static + k·Q²",
		},
		{
			Name: "DUTY_HEAD", MinArgs: 4, MaxArgs: 4, Fn: duty(true),
			Usage: "DUTY_HEAD(qs, hs, staticHead, k) head where the pump meets H = static + k·Q²",
		},
		{
			Name: "NPSHA", MinArgs: 3, MaxArgs: 6, Fn: npsha,
			Usage: "NPSHA(tempC, staticHeadM, lossHeadM[, altitudeM, suctionGaugePa, fluid]) NPSH available in m",
		},
	}
}
