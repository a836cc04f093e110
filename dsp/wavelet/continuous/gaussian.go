package continuous

import (
	"math"
	"math/cmplx"
)

// GaussianDerivative is the unit-norm n-th derivative of a Gaussian,
// He_n(x) exp(-x^2/2) / sqrt(Gamma(n+1/2)), with He_n the probabilists'
// Hermite polynomial. Supported orders are 1 to 8.
type GaussianDerivative struct {
	order int
}

const (
	minGaussianOrder = 1
	maxGaussianOrder = 8
)

// NewGaussianDerivative returns the derivative wavelet of the given order.
func NewGaussianDerivative(order int) (*GaussianDerivative, error) {
	g := &GaussianDerivative{}
	if err := g.SetOrder(order); err != nil {
		return nil, err
	}

	return g, nil
}

// Order returns the derivative order.
func (g *GaussianDerivative) Order() int { return g.order }

// SetOrder changes the derivative order. It returns [ErrInvalidOrder] for
// orders outside [1, 8] and leaves the wavelet unchanged.
func (g *GaussianDerivative) SetOrder(order int) error {
	if err := checkOrder("Gaussian derivative", order, minGaussianOrder, maxGaussianOrder); err != nil {
		return err
	}

	g.order = order

	return nil
}

// Scaling returns the unit-norm Gaussian.
func (g *GaussianDerivative) Scaling(x float64) float64 { return gaussian(x) }

// Wavelet returns the normalized derivative at x.
func (g *GaussianDerivative) Wavelet(x float64) float64 {
	return gaussianDerivative(g.order, x)
}

func gaussianDerivative(order int, x float64) float64 {
	gamma := math.Gamma(float64(order) + 0.5)

	return hermite(order, x) * math.Exp(-x*x/2) / math.Sqrt(gamma)
}

// hermite evaluates the probabilists' Hermite polynomial He_n by recurrence.
func hermite(n int, x float64) float64 {
	prev, cur := 1.0, x
	if n == 0 {
		return prev
	}

	for k := 1; k < n; k++ {
		prev, cur = cur, x*cur-float64(k)*prev
	}

	return cur
}

// MexicanHat is the negated, unit-norm second Gaussian derivative
// 2/(sqrt(3) pi^(1/4)) (1-x^2) exp(-x^2/2).
type MexicanHat struct{}

// Scaling returns the unit-norm Gaussian.
func (MexicanHat) Scaling(x float64) float64 { return gaussian(x) }

// Wavelet returns the Mexican hat at x.
func (MexicanHat) Wavelet(x float64) float64 {
	return 2 / (math.Sqrt(3) * math.Sqrt(math.SqrtPi)) * (1 - x*x) * math.Exp(-x*x/2)
}

// Hermitian is the complex Hermitian wavelet of order n (1 to 3):
// (-D_{n+1}(x) + i D_n(x)) / sqrt(2), where D_k is the unit-norm k-th
// Gaussian derivative. Order 1 is the Hermitian hat.
type Hermitian struct {
	order int
}

const (
	minHermitianOrder = 1
	maxHermitianOrder = 3
)

// NewHermitian returns the Hermitian wavelet of the given order.
func NewHermitian(order int) (*Hermitian, error) {
	h := &Hermitian{}
	if err := h.SetOrder(order); err != nil {
		return nil, err
	}

	return h, nil
}

// Order returns the order.
func (h *Hermitian) Order() int { return h.order }

// SetOrder changes the order. It returns [ErrInvalidOrder] for orders
// outside [1, 3] and leaves the wavelet unchanged.
func (h *Hermitian) SetOrder(order int) error {
	if err := checkOrder("Hermitian", order, minHermitianOrder, maxHermitianOrder); err != nil {
		return err
	}

	h.order = order

	return nil
}

// Scaling returns the unit-norm Gaussian.
func (h *Hermitian) Scaling(x float64) complex128 { return complex(gaussian(x), 0) }

// Wavelet returns the Hermitian wavelet at x.
func (h *Hermitian) Wavelet(x float64) complex128 {
	re := -gaussianDerivative(h.order+1, x)
	im := gaussianDerivative(h.order, x)

	return complex(re, im) / complex(math.Sqrt2, 0)
}

// Morlet is the real Morlet wavelet exp(-x^2/2) cos(Omega0 x). The zero
// value uses Omega0 = 5.
type Morlet struct {
	Omega0 float64
}

const defaultMorletOmega0 = 5.0

func (m Morlet) omega0() float64 {
	if m.Omega0 == 0 {
		return defaultMorletOmega0
	}

	return m.Omega0
}

// Scaling returns the Gaussian envelope exp(-x^2/2).
func (m Morlet) Scaling(x float64) float64 { return math.Exp(-x * x / 2) }

// Wavelet returns the Morlet wavelet at x.
func (m Morlet) Wavelet(x float64) float64 {
	return math.Exp(-x*x/2) * math.Cos(m.omega0()*x)
}

// Gabor is a complex Gabor wavelet: a unit-norm Gaussian envelope of width
// Sigma modulated by exp(i Omega x). Zero fields default to Sigma = 1 and
// Omega = 5.
type Gabor struct {
	Sigma float64
	Omega float64
}

func (g Gabor) params() (sigma, omega float64) {
	sigma, omega = g.Sigma, g.Omega
	if sigma == 0 {
		sigma = 1
	}

	if omega == 0 {
		omega = defaultMorletOmega0
	}

	return sigma, omega
}

// Scaling returns the Gaussian envelope.
func (g Gabor) Scaling(x float64) complex128 {
	sigma, _ := g.params()

	return complex(gaussian(x/sigma)/math.Sqrt(sigma), 0)
}

// Wavelet returns the modulated envelope at x.
func (g Gabor) Wavelet(x float64) complex128 {
	_, omega := g.params()

	return g.Scaling(x) * cmplx.Exp(complex(0, omega*x))
}
