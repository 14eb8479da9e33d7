package udf

import (
	"github.com/sgostarter/libpumpcalc/hydraulics"
)

func frictionFactor(ctx *Context, args Args) (any, error) {
	re, err := args.Float(0, "reynolds")
	if err != nil {
		return nil, err
	}

	rr, err := args.FloatOr(1, "relative roughness", 0)
	if err != nil {
		return nil, err
	}

	return hydraulics.FrictionFactor(re, rr, ctx.Config.HydraulicsOptions()...)
}

func pipeDP(ctx *Context, args Args) (any, error) {
	var (
		seg hydraulics.PipeSegment
		err error
	)

	fields := []struct {
		name string
		dst  *float64
	}{
		{"flow", &seg.FlowM3h},
		{"diameter", &seg.DiameterMM},
		{"length", &seg.LengthM},
		{"roughness", &seg.RoughnessMM},
		{"density", &seg.Density},
		{"viscosity", &seg.Viscosity},
	}

	for idx, f := range fields {
		if *f.dst, err = args.Float(idx, f.name); err != nil {
			return nil, err
		}
	}

	if seg.ElevationM, err = args.FloatOr(6, "elevation", 0); err != nil {
		return nil, err
	}

	r, err := hydraulics.PressureDrop(seg, ctx.Config.HydraulicsOptions()...)
	if err != nil {
		return nil, err
	}

	return r.TotalPa, nil
}

func fittingDP(_ *Context, args Args) (any, error) {
	name, err := args.String(0, "fitting")
	if err != nil {
		return nil, err
	}

	var f hydraulics.Fitting

	if f.Kind, err = hydraulics.ParseFittingKind(name); err != nil {
		return nil, err
	}

	if f.FlowM3h, err = args.Float(1, "flow"); err != nil {
		return nil, err
	}

	if f.DiameterMM, err = args.Float(2, "diameter"); err != nil {
		return nil, err
	}

	if f.Density, err = args.Float(3, "density"); err != nil {
		return nil, err
	}

	if f.OutletDiameterMM, err = args.FloatOr(4, "outlet diameter", 0); err != nil {
		return nil, err
	}

	if f.K, err = args.FloatOr(5, "k", 0); err != nil {
		return nil, err
	}

	r, err := hydraulics.FittingLoss(f)
	if err != nil {
		return nil, err
	}

	return r.DeltaPa, nil
}

func pipeFunctions() []Function {
	return []Function{
		{
			Name: "FRICTION_FACTOR", Marker: MarkerCellError, MinArgs: 1, MaxArgs: 2, Fn: frictionFactor,
			Usage: "FRICTION_FACTOR(re[, relativeRoughness]) Darcy friction factor",
		},
		{
			Name: "PIPE_DP", Marker: MarkerCellError, MinArgs: 6, MaxArgs: 7, Fn: pipeDP,
			Usage: "PIPE_DP(flowM3h, diameterMM, lengthM, roughnessMM, density, viscosity[, elevationM]) pressure drop in Pa",
		},
		{
			Name: "FITTING_DP", Marker: MarkerCellError, MinArgs: 4, MaxArgs: 6, Fn: fittingDP,
			Usage: "FITTING_DP(fitting, flowM3h, diameterMM, density[, outletDiameterMM, k]) minor loss in Pa",
		},
	}
}
