// Package meyeraux provides the auxiliary function and scaling spectrum of
// the Meyer wavelet.
package meyeraux

import "math"

// Nu is the auxiliary polynomial x^4(35 - 84x + 70x^2 - 20x^3), clamped to 0
// below 0 and to 1 above 1. It satisfies Nu(x) + Nu(1-x) = 1.
func Nu(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}

	x2 := x * x

	return x2 * x2 * (35 - 84*x + 70*x2 - 20*x2*x)
}

// ScalingSpectrum returns the Fourier transform of the Meyer scaling function
// at angular frequency w. It is 1 for |w| <= 2pi/3, 0 for |w| >= 4pi/3, and
// a smooth cosine transition in between.
func ScalingSpectrum(w float64) float64 {
	a := math.Abs(w)

	switch {
	case a <= 2*math.Pi/3:
		return 1
	case a >= 4*math.Pi/3:
		return 0
	}

	return math.Cos(math.Pi / 2 * Nu(3*a/(2*math.Pi)-1))
}

// WaveletSpectrum returns the magnitude of the Fourier transform of the
// Meyer wavelet at angular frequency w. The support is
// 2pi/3 <= |w| <= 8pi/3.
func WaveletSpectrum(w float64) float64 {
	a := math.Abs(w)

	switch {
	case a <= 2*math.Pi/3 || a >= 8*math.Pi/3:
		return 0
	case a <= 4*math.Pi/3:
		return math.Sin(math.Pi / 2 * Nu(3*a/(2*math.Pi)-1))
	default:
		return math.Cos(math.Pi / 2 * Nu(3*a/(4*math.Pi)-1))
	}
}
