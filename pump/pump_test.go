package pump

import (
	"testing"

	"github.com/sgostarter/libpumpcalc/fluid"
	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName(" Standard ")
	require.Nil(t, err)
	assert.Equal(t, StrategyStandard, s)

	s, err = StrategyByName("mild")
	require.Nil(t, err)
	assert.EqualValues(t, 0.05, s.FlowSlope)
	assert.EqualValues(t, 0.03, s.HeadSlope)

	_, err = StrategyByName("aggressive")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	assert.Equal(t, []string{"mild", "standard"}, StrategyNames())
}

func TestNormalizeStandard(t *testing.T) {
	n := NewNormalizer(fluid.NewWaterProvider(), nil)

	r, err := n.NormalizeStandard(100, 50, Conditions{TempC: 60, RefTempC: 20, Fluid: "water"})
	require.Nil(t, err)
	assert.Equal(t, "standard", r.Strategy)
	assert.InDelta(t, 0.462295, r.ViscosityRatio, 1e-6)
	assert.InDelta(t, 0.984968, r.DensityRatio, 1e-6)
	assert.InDelta(t, 91.934425, r.Flow, 1e-5)
	assert.InDelta(t, 48.033527, r.Head, 1e-5)
	assert.InDelta(t, fluid.StandardPressure, r.PressurePa, 1e-9)
}

func TestNormalizeMild(t *testing.T) {
	n := NewNormalizer(fluid.NewWaterProvider(), nil)

	r, err := n.NormalizeMild(100, 50, Conditions{TempC: 60, RefTempC: 20, Fluid: "water"})
	require.Nil(t, err)
	assert.Equal(t, "mild", r.Strategy)
	assert.InDelta(t, 97.311475, r.Flow, 1e-5)
	assert.InDelta(t, 49.944216, r.Head, 1e-5)
}

func TestNormalizeIdentityAtReference(t *testing.T) {
	n := NewNormalizer(fluid.NewWaterProvider(), nil)

	for _, s := range []Strategy{StrategyStandard, StrategyMild} {
		r, err := n.Normalize(s, 120, 30, Conditions{TempC: 25, RefTempC: 25, AltitudeM: 800})
		require.Nil(t, err)
		assert.InDelta(t, 120, r.Flow, 1e-12)
		assert.InDelta(t, 30, r.Head, 1e-12)
	}
}

func TestNormalizeErrors(t *testing.T) {
	n := NewNormalizer(fluid.NewWaterProvider(), nil)

	_, err := n.NormalizeStandard(-1, 50, Conditions{TempC: 60, RefTempC: 20})
	assert.ErrorIs(t, err, ErrInvalidFlow)

	_, err = n.NormalizeStandard(1, -50, Conditions{TempC: 60, RefTempC: 20})
	assert.ErrorIs(t, err, ErrInvalidHead)

	_, err = n.NormalizeStandard(1, 50, Conditions{TempC: 60, RefTempC: 20, Fluid: "oil"})
	assert.ErrorIs(t, err, fluid.ErrUnknownFluid)

	_, err = n.NormalizeMild(1, 50, Conditions{TempC: 200, RefTempC: 20})
	assert.ErrorIs(t, err, fluid.ErrOutOfRange)

	_, err = n.Normalize(Strategy{Name: "steep", FlowSlope: 5, HeadSlope: 0.1}, 1, 50,
		Conditions{TempC: 80, RefTempC: 10})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestAffinity(t *testing.T) {
	p, err := ScaleBySpeed(OperatingPoint{FlowM3h: 100, HeadM: 40, PowerKW: 15}, 1450, 2900)
	require.Nil(t, err)
	assert.InDelta(t, 200, p.FlowM3h, 1e-9)
	assert.InDelta(t, 160, p.HeadM, 1e-9)
	assert.InDelta(t, 120, p.PowerKW, 1e-9)

	_, err = ScaleBySpeed(OperatingPoint{}, 0, 2900)
	assert.ErrorIs(t, err, ErrInvalidSpeed)

	s, err := interp.NewSamples([]float64{0, 50, 100}, []float64{40, 36, 25})
	require.Nil(t, err)

	scaled, err := ScaleCurveBySpeed(s, 1000, 500)
	require.Nil(t, err)
	assert.EqualValues(t, []float64{0, 25, 50}, scaled.X())
	assert.EqualValues(t, []float64{10, 9, 6.25}, scaled.Y())
}

func TestHydraulicPower(t *testing.T) {
	w, err := HydraulicPower(3600, 10, 1000)
	require.Nil(t, err)
	assert.InDelta(t, 1000*fluid.Gravity*10, w, 1e-9)

	_, err = HydraulicPower(1, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidDensity)
}

func TestDutyPoint(t *testing.T) {
	var qs, hs []float64

	for q := 0.0; q <= 100; q += 10 {
		qs = append(qs, q)
		hs = append(hs, 50-0.005*q*q)
	}

	curve, err := interp.NewSamples(qs, hs)
	require.Nil(t, err)

	sc := SystemCurve{StaticHead: 10, K: 0.003}

	p, err := DutyPoint(curve, sc)
	require.Nil(t, err)
	assert.InDelta(t, 70.7107, p.FlowM3h, 0.05)
	assert.InDelta(t, 25, p.HeadM, 0.05)

	_, err = DutyPoint(curve, SystemCurve{StaticHead: 60, K: 0.003})
	assert.ErrorIs(t, err, ErrNoDutyPoint)

	_, err = DutyPoint(curve, SystemCurve{StaticHead: 10, K: -1})
	assert.ErrorIs(t, err, ErrInvalidSystem)
}

func TestNPSH(t *testing.T) {
	provider := fluid.NewWaterProvider()

	v, err := NPSHAvailable(NPSHInput{TempC: 20, StaticHeadM: 2, LossHeadM: 0.5, Fluid: "water"}, provider)
	require.Nil(t, err)
	assert.InDelta(t, 11.612885, v, 1e-5)

	v, err = NPSHAvailable(NPSHInput{TempC: 60, AltitudeM: 1500, StaticHeadM: -3, LossHeadM: 1}, provider)
	require.Nil(t, err)
	assert.InDelta(t, 2.708887, v, 1e-5)

	_, err = NPSHAvailable(NPSHInput{TempC: 20, LossHeadM: -1}, provider)
	assert.ErrorIs(t, err, ErrInvalidCondition)

	margin, err := NPSHMargin(5, 3)
	require.Nil(t, err)
	assert.EqualValues(t, 2, margin)

	_, err = NPSHMargin(2, 3)
	assert.ErrorIs(t, err, ErrNegativeNPSH)
}
