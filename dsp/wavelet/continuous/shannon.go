package continuous

import "math"

// Shannon is the real Shannon (sinc) wavelet with an ideal half-band
// spectrum.
type Shannon struct{}

// Scaling returns sinc(x).
func (Shannon) Scaling(x float64) float64 { return sinc(x) }

// Wavelet returns 2 sinc(2x) - sinc(x).
func (Shannon) Wavelet(x float64) float64 { return 2*sinc(2*x) - sinc(x) }

// Poisson is the Poisson wavelet (1-x^2) / (pi (1+x^2)^2), the derivative of
// the conjugate Poisson kernel. Its scaling function is the Poisson kernel.
type Poisson struct{}

// Scaling returns 1 / (pi (1+x^2)).
func (Poisson) Scaling(x float64) float64 { return 1 / (math.Pi * (1 + x*x)) }

// Wavelet returns the Poisson wavelet at x.
func (Poisson) Wavelet(x float64) float64 {
	d := 1 + x*x

	return (1 - x*x) / (math.Pi * d * d)
}
