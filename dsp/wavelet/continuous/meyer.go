package continuous

import (
	"math"

	"github.com/cwbudde/algo-wavelet/internal/meyeraux"
)

// Meyer evaluates the Meyer scaling and wavelet functions by numerical
// inversion of their band-limited spectra. The scaling function is even and
// the wavelet is symmetric about x = 1/2.
type Meyer struct{}

const meyerPanels = 1024

// Scaling returns phi(x) = 1/pi * integral over w >= 0 of Phi(w) cos(w x).
// The flat part of the spectrum is integrated in closed form.
func (Meyer) Scaling(x float64) float64 {
	const lo, hi = 2 * math.Pi / 3, 4 * math.Pi / 3

	var flat float64
	if x == 0 {
		flat = lo
	} else {
		flat = math.Sin(lo*x) / x
	}

	tail := simpson(func(w float64) float64 {
		return meyeraux.ScalingSpectrum(w) * math.Cos(w*x)
	}, lo, hi, meyerPanels)

	return (flat + tail) / math.Pi
}

// Wavelet returns psi(x) = 1/pi * integral over w >= 0 of |Psi(w)| cos(w (x - 1/2)).
func (Meyer) Wavelet(x float64) float64 {
	const a, b, c = 2 * math.Pi / 3, 4 * math.Pi / 3, 8 * math.Pi / 3

	s := x - 0.5
	f := func(w float64) float64 {
		return meyeraux.WaveletSpectrum(w) * math.Cos(w*s)
	}

	return (simpson(f, a, b, meyerPanels) + simpson(f, b, c, 2*meyerPanels)) / math.Pi
}

// simpson integrates f over [a, b] with the composite Simpson rule on an
// even number of panels.
func simpson(f func(float64) float64, a, b float64, panels int) float64 {
	if panels%2 == 1 {
		panels++
	}

	h := (b - a) / float64(panels)
	sum := f(a) + f(b)

	for i := 1; i < panels; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4
		}

		sum += w * f(a+float64(i)*h)
	}

	return sum * h / 3
}
