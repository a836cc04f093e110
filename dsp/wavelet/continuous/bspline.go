package continuous

import (
	"math"
	"math/cmplx"
)

// BSpline is the complex frequency B-spline wavelet
// sqrt(Bandwidth) sinc(Bandwidth x / m)^m exp(2 pi i Center x) of order m.
// Its scaling function is the centred cardinal B-spline of order m, a
// piecewise polynomial of degree m-1 supported on [-m/2, m/2].
type BSpline struct {
	order     int
	Bandwidth float64
	Center    float64
}

const (
	minBSplineOrder = 1
	maxBSplineOrder = 8

	defaultBSplineBandwidth = 1.0
	defaultBSplineCenter    = 1.5
)

// NewBSpline returns a B-spline wavelet of the given order with bandwidth 1
// and centre frequency 1.5.
func NewBSpline(order int) (*BSpline, error) {
	b := &BSpline{Bandwidth: defaultBSplineBandwidth, Center: defaultBSplineCenter}
	if err := b.SetOrder(order); err != nil {
		return nil, err
	}

	return b, nil
}

// Order returns the spline order.
func (b *BSpline) Order() int { return b.order }

// SetOrder changes the spline order. It returns [ErrInvalidOrder] for orders
// outside [1, 8] and leaves the wavelet unchanged.
func (b *BSpline) SetOrder(order int) error {
	if err := checkOrder("B-spline", order, minBSplineOrder, maxBSplineOrder); err != nil {
		return err
	}

	b.order = order

	return nil
}

// Scaling returns the cardinal B-spline at x.
func (b *BSpline) Scaling(x float64) complex128 {
	return complex(cardinalBSpline(b.order, x), 0)
}

// Wavelet returns the frequency B-spline wavelet at x.
func (b *BSpline) Wavelet(x float64) complex128 {
	m := float64(b.order)
	env := math.Sqrt(b.Bandwidth) * math.Pow(sinc(b.Bandwidth*x/m), m)

	return complex(env, 0) * cmplx.Exp(complex(0, 2*math.Pi*b.Center*x))
}

// cardinalBSpline evaluates the truncated-power form
// 1/(m-1)! * sum_k (-1)^k C(m,k) (x + m/2 - k)_+^(m-1).
func cardinalBSpline(m int, x float64) float64 {
	half := float64(m) / 2
	if x < -half || x >= half {
		return 0
	}

	sum := 0.0
	coef := 1.0

	for k := 0; k <= m; k++ {
		t := x + half - float64(k)
		if t >= 0 {
			sum += coef * math.Pow(t, float64(m-1))
		}

		coef *= -float64(m-k) / float64(k+1)
	}

	return sum / math.Gamma(float64(m))
}
