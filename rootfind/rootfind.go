// Package rootfind holds bracketed scalar root finders.
package rootfind

import (
	"math"
)

const epsilon = 2.220446049250313e-16

type Func func(x float64) float64

func checkBracket(f Func, a, b float64) (fa, fb float64, err error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a == b {
		err = ErrInvalidBracket

		return
	}

	fa = f(a)
	fb = f(b)

	if math.IsNaN(fa) || math.IsNaN(fb) {
		err = ErrInvalidBracket

		return
	}

	return
}

// Bisect halves [a, b] until the bracket is narrower than the tolerance.
func Bisect(f Func, a, b float64, options ...Option) (float64, error) {
	opts := optionNew(options...)

	fa, fb, err := checkBracket(f, a, b)
	if err != nil {
		return math.NaN(), err
	}

	if fa == 0 {
		return a, nil
	}

	if fb == 0 {
		return b, nil
	}

	if math.Signbit(fa) == math.Signbit(fb) {
		return math.NaN(), ErrNoSignChange
	}

	for i := 0; i < opts.maxIter; i++ {
		m := a + (b-a)/2
		fm := f(m)

		if fm == 0 || math.Abs(b-a)/2 < opts.tolerance {
			return m, nil
		}

		if math.Signbit(fm) == math.Signbit(fa) {
			a, fa = m, fm
		} else {
			b = m
		}
	}

	return a + (b-a)/2, ErrMaxIterations
}

// Brent combines bisection, secant and inverse quadratic interpolation
// steps while keeping the root bracketed.
func Brent(f Func, a, b float64, options ...Option) (float64, error) {
	opts := optionNew(options...)

	fa, fb, err := checkBracket(f, a, b)
	if err != nil {
		return math.NaN(), err
	}

	if fa == 0 {
		return a, nil
	}

	if fb == 0 {
		return b, nil
	}

	if math.Signbit(fa) == math.Signbit(fb) {
		return math.NaN(), ErrNoSignChange
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < opts.maxIter; i++ {
		if math.Signbit(fb) == math.Signbit(fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}

		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*epsilon*math.Abs(b) + opts.tolerance/2
		m := (c - b) / 2

		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			var p, q float64

			s := fb / fa

			if a == c {
				p = 2 * m * s
				q = 1 - s
			} else {
				qq := fa / fc
				r := fb / fc
				p = s * (2*m*qq*(qq-r) - (b-a)*(r-1))
				q = (qq - 1) * (r - 1) * (s - 1)
			}

			if p > 0 {
				q = -q
			} else {
				p = -p
			}

			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = d
			}
		} else {
			d = m
			e = d
		}

		a, fa = b, fb

		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}

		fb = f(b)
	}

	return b, ErrMaxIterations
}
