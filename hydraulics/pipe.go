package hydraulics

import (
	"fmt"
	"math"
)

// PipeSegment is one straight run of pipe in spreadsheet units.
type PipeSegment struct {
	FlowM3h     float64 `yaml:"flowM3h" json:"flowM3h"`
	DiameterMM  float64 `yaml:"diameterMM" json:"diameterMM"`
	LengthM     float64 `yaml:"lengthM" json:"lengthM"`
	RoughnessMM float64 `yaml:"roughnessMM" json:"roughnessMM"`
	Density     float64 `yaml:"density" json:"density"`
	Viscosity   float64 `yaml:"viscosity" json:"viscosity"`
	ElevationM  float64 `yaml:"elevationM" json:"elevationM"`
}

type PipeResult struct {
	Velocity       float64
	Reynolds       float64
	FrictionFactor float64
	Laminar        bool

	FrictionPa float64
	StaticPa   float64
	TotalPa    float64
	HeadLossM  float64
}

func (seg PipeSegment) Validate() error {
	switch {
	case math.IsNaN(seg.FlowM3h) || seg.FlowM3h <= 0:
		return fmt.Errorf("%w: %g", ErrInvalidFlow, seg.FlowM3h)
	case math.IsNaN(seg.DiameterMM) || seg.DiameterMM <= 0:
		return fmt.Errorf("%w: %g", ErrInvalidDiameter, seg.DiameterMM)
	case math.IsNaN(seg.Density) || seg.Density <= 0:
		return fmt.Errorf("%w: %g", ErrInvalidDensity, seg.Density)
	case math.IsNaN(seg.Viscosity) || seg.Viscosity < 0:
		return fmt.Errorf("%w: %g", ErrInvalidViscosity, seg.Viscosity)
	case math.IsNaN(seg.RoughnessMM) || seg.RoughnessMM < 0:
		return fmt.Errorf("%w: %g", ErrInvalidRoughness, seg.RoughnessMM)
	case math.IsNaN(seg.LengthM) || seg.LengthM < 0:
		return fmt.Errorf("%w: %g", ErrInvalidLength, seg.LengthM)
	}

	return nil
}

// PressureDrop applies Darcy–Weisbach to the segment and adds the
// hydrostatic term for the elevation change.
func PressureDrop(seg PipeSegment, options ...Option) (r PipeResult, err error) {
	if err = seg.Validate(); err != nil {
		return
	}

	d := seg.DiameterMM / 1000

	r.Velocity = Velocity(seg.FlowM3h, seg.DiameterMM)
	r.Reynolds = Reynolds(seg.Density, r.Velocity, d, seg.Viscosity)
	r.Laminar = r.Reynolds < LaminarLimit

	r.FrictionFactor, err = FrictionFactor(r.Reynolds, seg.RoughnessMM/seg.DiameterMM, options...)
	if err != nil {
		return
	}

	r.FrictionPa = r.FrictionFactor * (seg.LengthM / d) * seg.Density * r.Velocity * r.Velocity / 2
	r.StaticPa = seg.Density * Gravity * seg.ElevationM
	r.TotalPa = r.FrictionPa + r.StaticPa
	r.HeadLossM = r.FrictionPa / (seg.Density * Gravity)

	return
}

// PressureDropSum adds up the total drop of consecutive segments.
func PressureDropSum(segs []PipeSegment, options ...Option) (total float64, err error) {
	for idx, seg := range segs {
		r, e := PressureDrop(seg, options...)
		if e != nil {
			err = fmt.Errorf("segment %d: %w", idx, e)

			return
		}

		total += r.TotalPa
	}

	return
}
