package wavelet

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/internal/polyroot"
)

// DesignDaubechies computes the minimum-phase Daubechies scaling filter with
// 2*order taps, normalized to a DC gain of sqrt(2).
//
// The filter is (1+z^-1)^order times the minimum-phase spectral factor of
// the Bezout polynomial P(y) = sum_k C(order-1+k, k) y^k with
// y = (2 - z - z^-1)/4. Precision degrades with order because the roots of
// P cluster; up to order 20 the taps agree with the tabulated presets to
// about 1e-12.
func DesignDaubechies(order int) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: Daubechies order %d", ErrInvalidOrder, order)
	}

	h := []complex128{1}
	for range order {
		h = mulLinear(h, -1)
	}

	if order > 1 {
		// P(y) in descending powers.
		p := make([]float64, order)
		for k := range order {
			p[order-1-k] = binomial(order-1+k, k)
		}

		ys, err := polyroot.Roots(p)
		if err != nil {
			return nil, fmt.Errorf("wavelet: Daubechies order %d: %w", order, err)
		}

		for _, y := range ys {
			// z + 1/z = 2 - 4y; keep the root inside the unit circle.
			b := 2 - 4*y
			disc := cmplx.Sqrt(b*b - 4)

			z := (b + disc) / 2
			if cmplx.Abs(z) > 1 {
				z = (b - disc) / 2
			}

			h = mulLinear(h, z)
		}
	}

	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = real(v)
	}

	vecmath.ScaleBlockInPlace(out, math.Sqrt2/vecmath.Sum(out))

	return out, nil
}

// mulLinear multiplies the polynomial p (ascending powers of z^-1) by
// (1 - r z^-1).
func mulLinear(p []complex128, r complex128) []complex128 {
	out := make([]complex128, len(p)+1)
	for i, v := range p {
		out[i] += v
		out[i+1] -= r * v
	}

	return out
}

func binomial(n, k int) float64 {
	v := 1.0
	for i := 1; i <= k; i++ {
		v = v * float64(n-k+i) / float64(i)
	}

	return math.Round(v)
}
