package wavelet

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/internal/meyeraux"
)

// DesignMeyer returns a discrete Meyer scaling filter with the given even
// number of taps. The lowpass spectrum sqrt(2)*Phi(2w) is sampled on grid
// bins and inverted with an FFT; the zero-phase impulse response is cut to
// taps -(taps/2-1) .. taps/2 and renormalized to a DC gain of sqrt(2).
//
// The result is only approximately orthonormal; the truncation error sets
// the reconstruction error (about 6e-6 for 102 taps on 1024 bins). The
// Meyer preset ships a corrected 102-tap table instead.
func DesignMeyer(taps, grid int) ([]float64, error) {
	if taps < 2 || taps%2 != 0 {
		return nil, fmt.Errorf("%w: %d taps", ErrInvalidOrder, taps)
	}

	if grid < taps || grid&(grid-1) != 0 {
		return nil, fmt.Errorf("%w: n=%d, taps=%d", ErrInvalidFFTSize, grid, taps)
	}

	plan, err := algofft.NewPlan64(grid)
	if err != nil {
		return nil, err
	}

	spectrum := make([]complex128, grid)

	for k := range spectrum {
		w := 2 * math.Pi * float64(k) / float64(grid)
		if w >= math.Pi {
			w -= 2 * math.Pi
		}

		spectrum[k] = complex(math.Sqrt2*meyeraux.ScalingSpectrum(2*w), 0)
	}

	impulse := make([]complex128, grid)

	err = plan.Inverse(impulse, spectrum)
	if err != nil {
		return nil, err
	}

	h := make([]float64, taps)
	for i := range h {
		n := i - (taps/2 - 1)
		h[i] = real(impulse[(n+grid)%grid])
	}

	vecmath.ScaleBlockInPlace(h, math.Sqrt2/vecmath.Sum(h))

	return h, nil
}
