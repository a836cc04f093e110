package wavelet

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response holds the magnitude responses of the analysis filters sampled at
// n/2+1 equally spaced frequencies from DC to Nyquist.
type Response struct {
	Low  []float64
	High []float64
}

// PowerComplementaryError returns max | |H0|^2 + |H1|^2 - 2 | over all bins.
// It is close to zero for orthonormal filter banks.
func (r Response) PowerComplementaryError() float64 {
	var worst float64

	for i := range min(len(r.Low), len(r.High)) {
		e := math.Abs(r.Low[i]*r.Low[i] + r.High[i]*r.High[i] - 2)
		worst = max(worst, e)
	}

	return worst
}

// Response computes the magnitude responses of the analysis filters with an
// FFT of size n, which must be a power of two no shorter than the longest
// filter.
func (f FilterSet) Response(n int) (Response, error) {
	low, err := FrequencyResponse(f.analysisLow, n)
	if err != nil {
		return Response{}, err
	}

	high, err := FrequencyResponse(f.analysisHigh, n)
	if err != nil {
		return Response{}, err
	}

	return Response{Low: low, High: high}, nil
}

// FrequencyResponse returns |H(k)| for k = 0..n/2 of the zero-padded taps.
func FrequencyResponse(taps []float64, n int) ([]float64, error) {
	if n < 2 || n&(n-1) != 0 || n < len(taps) {
		return nil, fmt.Errorf("%w: n=%d, taps=%d", ErrInvalidFFTSize, n, len(taps))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("wavelet: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)

	err = plan.Forward(spectrum, in)
	if err != nil {
		return nil, err
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
