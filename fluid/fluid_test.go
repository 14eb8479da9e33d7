package fluid

import (
	"math"
	"testing"

	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarometricPressure(t *testing.T) {
	assert.InDelta(t, 101325, BarometricPressure(0), 1e-9)
	assert.InDelta(t, 89875, BarometricPressure(1000), 10)
	assert.EqualValues(t, 0, BarometricPressure(50000))
	assert.True(t, BarometricPressure(-100) > StandardPressure)
}

func TestWaterProvider(t *testing.T) {
	p := NewWaterProvider()

	rho, err := p.Property(PropDensity, 20, StandardPressure, "Water")
	require.Nil(t, err)
	assert.InDelta(t, 998.2, rho, 0.1)

	rho4, err := p.Property(PropDensity, 4, StandardPressure, "water")
	require.Nil(t, err)
	assert.InDelta(t, 1000.0, rho4, 0.1)

	mu, err := p.Property(PropViscosity, 20, StandardPressure, "H2O")
	require.Nil(t, err)
	assert.InDelta(t, 1.002e-3, mu, 0.01e-3)

	mu80, err := p.Property(PropViscosity, 80, StandardPressure, "water")
	require.Nil(t, err)
	assert.InDelta(t, 0.351e-3, mu80, 0.005e-3)

	nu, err := p.Property(PropKinematicViscosity, 20, StandardPressure, "water")
	require.Nil(t, err)
	assert.InDelta(t, mu/rho, nu, 1e-15)

	pv, err := p.Property(PropVaporPressure, 100, StandardPressure, "water")
	require.Nil(t, err)
	assert.InDelta(t, 101325, pv, 300)

	high, err := p.Property(PropDensity, 20, 10*StandardPressure, "water")
	require.Nil(t, err)
	assert.True(t, high > rho)

	_, err = p.Property(PropDensity, 20, StandardPressure, "glycol")
	assert.ErrorIs(t, err, ErrUnknownFluid)

	_, err = p.Property(PropDensity, 200, StandardPressure, "water")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = p.Property(Property(99), 20, StandardPressure, "water")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestParseProperty(t *testing.T) {
	for s, want := range map[string]Property{
		"D":         PropDensity,
		"V":         PropViscosity,
		"nu":        PropKinematicViscosity,
		"P_sat":     PropVaporPressure,
		" density ": PropDensity,
	} {
		p, err := ParseProperty(s)
		assert.Nil(t, err, s)
		assert.Equal(t, want, p, s)
	}

	_, err := ParseProperty("enthalpy")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

type countingProvider struct {
	calls int
}

func (c *countingProvider) Property(p Property, tempC, pressurePa float64, fluid string) (float64, error) {
	c.calls++

	return NewWaterProvider().Property(p, tempC, pressurePa, fluid)
}

func TestCachedProvider(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, 0, nil)

	v1, err := p.Property(PropViscosity, 30, StandardPressure, "water")
	require.Nil(t, err)

	v2, err := p.Property(PropViscosity, 30, StandardPressure, "WATER")
	require.Nil(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, inner.calls)

	_, err = p.Property(PropViscosity, 31, StandardPressure, "water")
	require.Nil(t, err)
	assert.Equal(t, 2, inner.calls)

	_, err = p.Property(PropViscosity, 30, StandardPressure, "oil")
	assert.ErrorIs(t, err, ErrUnknownFluid)

	_, err = p.Property(PropViscosity, 30, StandardPressure, "oil")
	assert.ErrorIs(t, err, ErrUnknownFluid)
	assert.Equal(t, 4, inner.calls)
}

func TestCachedProviderKeyPrecision(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, 0, nil)

	_, err := p.Property(PropDensity, 20, StandardPressure, "water")
	require.Nil(t, err)

	_, err = p.Property(PropDensity, 20.0000000001, StandardPressure, "water")
	require.Nil(t, err)
	assert.Equal(t, 2, inner.calls)

	_, err = p.Property(PropDensity, 20, StandardPressure+1e-7, "water")
	require.Nil(t, err)
	assert.Equal(t, 3, inner.calls)

	_, err = p.Property(PropDensity, 20.0000000001, StandardPressure, "water")
	require.Nil(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestTableProvider(t *testing.T) {
	rho, err := interp.NewSamples([]float64{0, 50, 100}, []float64{1030, 1010, 980})
	require.Nil(t, err)

	mu, err := interp.NewSamples([]float64{0, 50, 100}, []float64{40e-3, 8e-3, 3e-3})
	require.Nil(t, err)

	p, err := NewTableProvider("Glycol30", map[Property]*interp.Samples{
		PropDensity:   rho,
		PropViscosity: mu,
	})
	require.Nil(t, err)

	v, err := p.Property(PropDensity, 50, 0, "glycol30")
	require.Nil(t, err)
	assert.InDelta(t, 1010, v, 1e-9)

	v, err = p.Property(PropKinematicViscosity, 50, 0, "glycol30")
	require.Nil(t, err)
	assert.InDelta(t, 8e-3/1010, v, 1e-15)

	_, err = p.Property(PropDensity, 120, 0, "glycol30")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = p.Property(PropVaporPressure, 50, 0, "glycol30")
	assert.ErrorIs(t, err, ErrNoTable)

	multi := Multi{p, NewWaterProvider()}

	v, err = multi.Property(PropDensity, 20, StandardPressure, "water")
	require.Nil(t, err)
	assert.InDelta(t, 998.2, v, 0.1)

	v, err = multi.Property(PropDensity, 0, 0, "glycol30")
	require.Nil(t, err)
	assert.InDelta(t, 1030, v, 1e-9)

	v, err = multi.Property(PropDensity, 0, 0, "brine")
	assert.ErrorIs(t, err, ErrUnknownFluid)
	assert.True(t, math.IsNaN(v))
}
