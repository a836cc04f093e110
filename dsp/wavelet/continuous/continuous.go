// Package continuous provides point evaluators for continuous wavelets.
//
// Every wavelet exposes a scaling function and a wavelet function evaluated
// at a real support point. Real-valued wavelets implement [Real],
// complex-valued ones [Complex]. Wavelets without a true scaling function
// (Mexican hat, Morlet, Gaussian derivatives, Poisson) return the smoothing
// kernel they are derived from.
package continuous

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOrder is returned when a derivative or spline order is outside
// the supported range.
var ErrInvalidOrder = errors.New("continuous: order out of range")

// Real is a real-valued continuous wavelet.
type Real interface {
	Scaling(x float64) float64
	Wavelet(x float64) float64
}

// Complex is a complex-valued continuous wavelet.
type Complex interface {
	Scaling(x float64) complex128
	Wavelet(x float64) complex128
}

func checkOrder(name string, order, lo, hi int) error {
	if order < lo || order > hi {
		return fmt.Errorf("%w: %s order %d not in [%d, %d]", ErrInvalidOrder, name, order, lo, hi)
	}

	return nil
}

// gaussian is the unit-norm Gaussian pi^(-1/4) exp(-x^2/2).
func gaussian(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(math.SqrtPi)
}

// sinc is the normalized sinc sin(pi x)/(pi x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
