package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSamples(t *testing.T, xs, ys []float64) *Samples {
	s, err := NewSamples(xs, ys)
	require.Nil(t, err)

	return s
}

func TestNewSamples(t *testing.T) {
	s, err := NewSamples([]float64{3, 1, 2}, []float64{9, 1, 4})
	require.Nil(t, err)
	assert.EqualValues(t, []float64{1, 2, 3}, s.X())
	assert.EqualValues(t, []float64{1, 4, 9}, s.Y())

	lo, hi := s.Domain()
	assert.EqualValues(t, 1, lo)
	assert.EqualValues(t, 3, hi)

	_, err = NewSamples([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewSamples(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewSamples([]float64{1, math.NaN()}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = NewSamples([]float64{1, 1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDuplicateX)

	_, err = NewSamplesFromPoints([]Point{{X: 1, Y: 2}, {X: 0, Y: math.Inf(1)}})
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestParse(t *testing.T) {
	k, err := ParseKind("PCHIP")
	assert.Nil(t, err)
	assert.Equal(t, KindMonotonic, k)

	k, err = ParseKind("")
	assert.Nil(t, err)
	assert.Equal(t, KindCubic, k)

	_, err = ParseKind("quintic")
	assert.ErrorIs(t, err, ErrUnknownKind)

	m, err := ParseMode("clip")
	assert.Nil(t, err)
	assert.Equal(t, ModeClamp, m)

	_, err = ParseMode("wrap")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestInterpolatorPassesThroughKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1, 3, 2, 5, 4, 6}
	s := mustSamples(t, xs, ys)

	for _, kind := range []Kind{KindLinear, KindCubic, KindMonotonic, KindAkima} {
		impl, err := NewInterpolator(s, kind)
		require.Nil(t, err, kind.String())

		for idx, x := range xs {
			y, err := impl.At(x)
			assert.Nil(t, err)
			assert.InDelta(t, ys[idx], y, 1e-12, "%s at %g", kind, x)
		}
	}
}

func TestInterpolatorSquare(t *testing.T) {
	s := mustSamples(t, []float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})

	for _, kind := range []Kind{KindLinear, KindCubic, KindMonotonic, KindAkima} {
		y, err := Evaluate(s, kind, ModeReject, 1.5)
		assert.Nil(t, err)
		assert.True(t, y > 1 && y < 4, "%s: %g", kind, y)
	}
}

func TestMonotonicStaysInRange(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []float64{0, 0, 0, 1, 10, 10, 10, 3, 3, 3}
	s := mustSamples(t, xs, ys)

	impl, err := NewInterpolator(s, KindMonotonic)
	require.Nil(t, err)

	for i := 0; i <= 900; i++ {
		x := float64(i) / 100

		y, err := impl.At(x)
		require.Nil(t, err)
		assert.True(t, y >= 0 && y <= 10, "x=%g y=%g", x, y)
	}
}

func TestInterpolatorModes(t *testing.T) {
	s := mustSamples(t, []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})

	impl, err := NewInterpolator(s, KindLinear, WithMode(ModeClamp))
	require.Nil(t, err)

	y, err := impl.At(-5)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, y)

	y, err = impl.At(50)
	assert.Nil(t, err)
	assert.EqualValues(t, 7, y)

	impl, err = NewInterpolator(s, KindCubic)
	require.Nil(t, err)
	assert.Equal(t, ModeReject, impl.Mode())

	_, err = impl.At(3.0001)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = impl.At(math.NaN())
	assert.ErrorIs(t, err, ErrNotFinite)

	impl, err = NewInterpolator(s, KindLinear, WithMode(ModeExtrapolate))
	require.Nil(t, err)

	y, err = impl.At(10)
	assert.Nil(t, err)
	assert.InDelta(t, 21, y, 1e-12)

	y, err = impl.At(-1)
	assert.Nil(t, err)
	assert.InDelta(t, -1, y, 1e-12)

	impl, err = NewInterpolator(s, KindCubic, WithMode(ModeExtrapolate))
	require.Nil(t, err)

	y, err = impl.At(5)
	assert.Nil(t, err)
	assert.InDelta(t, 11, y, 1e-9)

	ys, err := impl.AtAll([]float64{0, 1.5, 5})
	assert.Nil(t, err)
	assert.InDeltaSlice(t, []float64{1, 4, 11}, ys, 1e-9)
}

func TestInterpolatorFewPoints(t *testing.T) {
	impl, err := NewInterpolator(mustSamples(t, []float64{0, 2}, []float64{0, 4}), KindCubic)
	require.Nil(t, err)
	assert.Equal(t, KindLinear, impl.Kind())

	y, err := impl.At(1)
	assert.Nil(t, err)
	assert.InDelta(t, 2, y, 1e-12)

	_, err = NewInterpolator(mustSamples(t, []float64{1}, []float64{1}), KindLinear)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}
