package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisect(t *testing.T) {
	x, err := Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2)
	require.Nil(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)

	x, err = Bisect(func(x float64) float64 { return x - 1 }, 1, 3)
	require.Nil(t, err)
	assert.EqualValues(t, 1, x)

	_, err = Bisect(func(x float64) float64 { return x*x + 1 }, -1, 1)
	assert.ErrorIs(t, err, ErrNoSignChange)

	_, err = Bisect(func(x float64) float64 { return x }, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidBracket)

	_, err = Bisect(func(x float64) float64 { return x - 0.3 }, 0, 1, WithMaxIter(3))
	assert.ErrorIs(t, err, ErrMaxIterations)
}

func TestBrent(t *testing.T) {
	cases := []struct {
		name string
		f    Func
		a, b float64
		want float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2},
		{"cos", math.Cos, 0, 3, math.Pi / 2},
		{"cubic", func(x float64) float64 { return (x + 3) * (x - 1) * (x - 1) * (x - 1) }, -4, 0, -3},
		{"reversed", func(x float64) float64 { return math.Exp(x) - 2 }, 2, -1, math.Ln2},
	}

	for _, c := range cases {
		x, err := Brent(c.f, c.a, c.b)
		require.Nil(t, err, c.name)
		assert.InDelta(t, c.want, x, 1e-9, c.name)
	}

	_, err := Brent(func(x float64) float64 { return x*x + 1 }, -1, 1)
	assert.ErrorIs(t, err, ErrNoSignChange)

	_, err = Brent(func(x float64) float64 { return x }, math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidBracket)
}

func TestSolverByName(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	for _, name := range []string{"", "Brent", "bisect", " bisection "} {
		solver, err := SolverByName(name)
		require.Nil(t, err, name)

		x, err := solver(f, 0, 2)
		require.Nil(t, err, name)
		assert.InDelta(t, math.Sqrt2, x, 1e-10, name)
	}

	_, err := SolverByName("newton")
	assert.ErrorIs(t, err, ErrUnknownSolver)
}
