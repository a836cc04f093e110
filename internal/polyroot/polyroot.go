// Package polyroot provides polynomial root finding shared by filter design
// code.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Roots returns all roots of a real polynomial in descending power order.
// The Durand-Kerner estimates are refined with Newton steps on the input
// coefficients, which recovers most of the precision lost for higher degrees.
func Roots(coeff []float64) ([]complex128, error) {
	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	roots, err := DurandKerner(c)
	if err != nil {
		return nil, err
	}

	return Polish(c, roots, polishIterations), nil
}

const polishIterations = 8

// Polish refines each root with at most iters Newton steps. A step that does
// not reduce the residual is discarded.
func Polish(coeff, roots []complex128, iters int) []complex128 {
	d := Derivative(coeff)
	out := make([]complex128, len(roots))

	for i, r := range roots {
		res := cmplx.Abs(PolyEval(coeff, r))

		for range iters {
			fp := PolyEval(d, r)
			if fp == 0 {
				break
			}

			next := r - PolyEval(coeff, r)/fp

			nextRes := cmplx.Abs(PolyEval(coeff, next))
			if nextRes >= res {
				break
			}

			r, res = next, nextRes
		}

		out[i] = r
	}

	return out
}

// Derivative returns the coefficients of the derivative of a polynomial in
// descending power order.
func Derivative(coeff []complex128) []complex128 {
	n := len(coeff) - 1
	if n < 1 {
		return []complex128{0}
	}

	out := make([]complex128, n)
	for i := range out {
		out[i] = coeff[i] * complex(float64(n-i), 0)
	}

	return out
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
