package pump

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpumpcalc/fluid"
)

type Conditions struct {
	TempC     float64 `yaml:"tempC" json:"tempC"`
	RefTempC  float64 `yaml:"refTempC" json:"refTempC"`
	AltitudeM float64 `yaml:"altitudeM" json:"altitudeM"`
	Fluid     string  `yaml:"fluid" json:"fluid"`
}

type Normalized struct {
	Strategy string

	Flow float64
	Head float64

	FlowFactor     float64
	HeadFactor     float64
	ViscosityRatio float64
	DensityRatio   float64
	PressurePa     float64
}

type Normalizer struct {
	logger   l.Wrapper
	provider fluid.Provider
}

func NewNormalizer(provider fluid.Provider, logger l.Wrapper) *Normalizer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "normalizer"))

	if provider == nil {
		logger.Fatal("no fluid provider")
	}

	return &Normalizer{
		logger:   logger,
		provider: provider,
	}
}

func (impl *Normalizer) ratio(p fluid.Property, cond Conditions, pressure float64) (float64, error) {
	v, err := impl.provider.Property(p, cond.TempC, pressure, cond.Fluid)
	if err != nil {
		return math.NaN(), err
	}

	ref, err := impl.provider.Property(p, cond.RefTempC, pressure, cond.Fluid)
	if err != nil {
		return math.NaN(), err
	}

	if ref <= 0 || v <= 0 {
		return math.NaN(), fmt.Errorf("%w: %s %g / %g", ErrDegenerate, p, v, ref)
	}

	return v / ref, nil
}

// Normalize scales a measured flow/head pair to the reference
// temperature:
//
//	CQ = 1 + FlowSlope·(μ/μref − 1)
//	CH = (1 + HeadSlope·(μ/μref − 1)) · ρref/ρ
//
// with fluid properties evaluated at the barometric pressure of the
// site altitude.
func (impl *Normalizer) Normalize(s Strategy, flow, head float64, cond Conditions) (n Normalized, err error) {
	defer func() {
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("strategy", s.Name)).Debug("normalize failed")
		}
	}()

	if math.IsNaN(flow) || math.IsInf(flow, 0) || flow < 0 {
		err = fmt.Errorf("%w: %g", ErrInvalidFlow, flow)

		return
	}

	if math.IsNaN(head) || math.IsInf(head, 0) || head < 0 {
		err = fmt.Errorf("%w: %g", ErrInvalidHead, head)

		return
	}

	n.Strategy = s.Name
	n.PressurePa = fluid.BarometricPressure(cond.AltitudeM)

	if n.ViscosityRatio, err = impl.ratio(fluid.PropViscosity, cond, n.PressurePa); err != nil {
		return
	}

	if n.DensityRatio, err = impl.ratio(fluid.PropDensity, cond, n.PressurePa); err != nil {
		return
	}

	n.FlowFactor = 1 + s.FlowSlope*(n.ViscosityRatio-1)
	n.HeadFactor = (1 + s.HeadSlope*(n.ViscosityRatio-1)) / n.DensityRatio

	if n.FlowFactor <= 0 || n.HeadFactor <= 0 {
		err = fmt.Errorf("%w: flow %g, head %g", ErrDegenerate, n.FlowFactor, n.HeadFactor)

		return
	}

	n.Flow = flow * n.FlowFactor
	n.Head = head * n.HeadFactor

	return
}

// NormalizeStandard applies the 0.15/0.10 slopes.
func (impl *Normalizer) NormalizeStandard(flow, head float64, cond Conditions) (Normalized, error) {
	return impl.Normalize(StrategyStandard, flow, head, cond)
}

// NormalizeMild applies the 0.05/0.03 slopes.
func (impl *Normalizer) NormalizeMild(flow, head float64, cond Conditions) (Normalized, error) {
	return impl.Normalize(StrategyMild, flow, head, cond)
}
