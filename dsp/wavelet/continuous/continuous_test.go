package continuous

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

var (
	_ Real    = Haar{}
	_ Real    = MexicanHat{}
	_ Real    = Morlet{}
	_ Real    = Shannon{}
	_ Real    = Poisson{}
	_ Real    = Meyer{}
	_ Real    = (*GaussianDerivative)(nil)
	_ Complex = Gabor{}
	_ Complex = (*Hermitian)(nil)
	_ Complex = (*BSpline)(nil)
)

const (
	gridLo   = -30.0
	gridHi   = 30.0
	gridStep = 0.05
)

// trapezoid integrates f over the test grid.
func trapezoid(f func(float64) float64) float64 {
	n := int(math.Round((gridHi - gridLo) / gridStep))
	sum := 0.5 * (f(gridLo) + f(gridHi))

	for i := 1; i < n; i++ {
		sum += f(gridLo + float64(i)*gridStep)
	}

	return sum * gridStep
}

func TestHaar(t *testing.T) {
	tests := []struct {
		x, scaling, wavelet float64
	}{
		{-0.1, 0, 0},
		{0, 1, 1},
		{0.25, 1, 1},
		{0.5, 1, -1},
		{0.99, 1, -1},
		{1, 0, 0},
	}

	var h Haar
	for _, tt := range tests {
		if got := h.Scaling(tt.x); got != tt.scaling {
			t.Errorf("Scaling(%v) = %v, want %v", tt.x, got, tt.scaling)
		}

		if got := h.Wavelet(tt.x); got != tt.wavelet {
			t.Errorf("Wavelet(%v) = %v, want %v", tt.x, got, tt.wavelet)
		}
	}
}

func TestGaussianDerivativeUnitNormZeroMean(t *testing.T) {
	for order := minGaussianOrder; order <= maxGaussianOrder; order++ {
		g, err := NewGaussianDerivative(order)
		if err != nil {
			t.Fatalf("NewGaussianDerivative(%d): %v", order, err)
		}

		norm := trapezoid(func(x float64) float64 {
			v := g.Wavelet(x)
			return v * v
		})
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("order %d: norm = %v, want 1", order, norm)
		}

		if mean := trapezoid(g.Wavelet); math.Abs(mean) > 1e-9 {
			t.Errorf("order %d: mean = %v, want 0", order, mean)
		}
	}
}

func TestGaussianDerivativeOrderRange(t *testing.T) {
	for _, order := range []int{0, -1, 9} {
		if _, err := NewGaussianDerivative(order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("NewGaussianDerivative(%d) error = %v, want ErrInvalidOrder", order, err)
		}
	}

	g, err := NewGaussianDerivative(3)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.SetOrder(9); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("SetOrder(9) error = %v", err)
	}

	if g.Order() != 3 {
		t.Fatalf("order changed to %d after failed SetOrder", g.Order())
	}

	if err := g.SetOrder(8); err != nil || g.Order() != 8 {
		t.Fatalf("SetOrder(8): order %d, err %v", g.Order(), err)
	}
}

func TestMexicanHatIsNegatedSecondDerivative(t *testing.T) {
	g, err := NewGaussianDerivative(2)
	if err != nil {
		t.Fatal(err)
	}

	var m MexicanHat
	for _, x := range []float64{-3, -1.2, 0, 0.4, 1, 2.5} {
		if diff := math.Abs(m.Wavelet(x) + g.Wavelet(x)); diff > 1e-14 {
			t.Errorf("x=%v: MexicanHat %v, -D2 %v", x, m.Wavelet(x), -g.Wavelet(x))
		}
	}

	if got := m.Wavelet(1); got != 0 {
		t.Errorf("Wavelet(1) = %v, want 0", got)
	}
}

func TestHermitianUnitNorm(t *testing.T) {
	for order := minHermitianOrder; order <= maxHermitianOrder; order++ {
		h, err := NewHermitian(order)
		if err != nil {
			t.Fatalf("NewHermitian(%d): %v", order, err)
		}

		norm := trapezoid(func(x float64) float64 {
			a := cmplx.Abs(h.Wavelet(x))
			return a * a
		})
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("order %d: norm = %v, want 1", order, norm)
		}
	}

	for _, order := range []int{0, 4} {
		if _, err := NewHermitian(order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("NewHermitian(%d) error = %v, want ErrInvalidOrder", order, err)
		}
	}
}

func TestHermitianHatShape(t *testing.T) {
	h, err := NewHermitian(1)
	if err != nil {
		t.Fatal(err)
	}

	// The real part is the Mexican hat scaled by 1/sqrt(2).
	var m MexicanHat
	for _, x := range []float64{-2, -0.5, 0, 0.7, 1.5} {
		if diff := math.Abs(real(h.Wavelet(x)) - m.Wavelet(x)/math.Sqrt2); diff > 1e-14 {
			t.Errorf("x=%v: real part %v", x, real(h.Wavelet(x)))
		}
	}

	if im := imag(h.Wavelet(0)); im != 0 {
		t.Errorf("imag at 0 = %v, want 0", im)
	}
}

func TestMorlet(t *testing.T) {
	var m Morlet
	if got := m.Wavelet(0); got != 1 {
		t.Errorf("Wavelet(0) = %v, want 1", got)
	}

	x := math.Pi / 10
	if got := m.Wavelet(x); math.Abs(got) > 1e-15 {
		t.Errorf("Wavelet(pi/10) = %v, want 0", got)
	}

	custom := Morlet{Omega0: 2}
	want := math.Exp(-0.5) * math.Cos(2)
	if got := custom.Wavelet(1); math.Abs(got-want) > 1e-15 {
		t.Errorf("Omega0=2: Wavelet(1) = %v, want %v", got, want)
	}
}

func TestGaborUnitNormAndModulus(t *testing.T) {
	for _, g := range []Gabor{{}, {Sigma: 2, Omega: 3}} {
		norm := trapezoid(func(x float64) float64 {
			a := cmplx.Abs(g.Wavelet(x))
			return a * a
		})
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("%+v: norm = %v, want 1", g, norm)
		}

		for _, x := range []float64{-1, 0, 0.3, 2} {
			if diff := math.Abs(cmplx.Abs(g.Wavelet(x)) - real(g.Scaling(x))); diff > 1e-15 {
				t.Errorf("%+v: |psi(%v)| differs from envelope by %v", g, x, diff)
			}
		}
	}
}

func TestShannon(t *testing.T) {
	var s Shannon
	if got := s.Scaling(0); got != 1 {
		t.Errorf("Scaling(0) = %v, want 1", got)
	}

	if got := s.Wavelet(0); got != 1 {
		t.Errorf("Wavelet(0) = %v, want 1", got)
	}

	if got, want := s.Wavelet(0.5), -2/math.Pi; math.Abs(got-want) > 1e-15 {
		t.Errorf("Wavelet(0.5) = %v, want %v", got, want)
	}

	for _, k := range []float64{-3, -1, 2, 5} {
		if got := s.Scaling(k); math.Abs(got) > 1e-15 {
			t.Errorf("Scaling(%v) = %v, want 0", k, got)
		}
	}
}

func TestPoisson(t *testing.T) {
	var p Poisson
	if got := p.Wavelet(0); math.Abs(got-1/math.Pi) > 1e-15 {
		t.Errorf("Wavelet(0) = %v, want 1/pi", got)
	}

	if got := p.Wavelet(1); got != 0 {
		t.Errorf("Wavelet(1) = %v, want 0", got)
	}

	if got, want := p.Scaling(1), 1/(2*math.Pi); math.Abs(got-want) > 1e-15 {
		t.Errorf("Scaling(1) = %v, want %v", got, want)
	}
}

func TestMeyerMomentsAndSymmetry(t *testing.T) {
	var m Meyer

	phi := make(map[float64]float64)
	scaling := func(x float64) float64 {
		if v, ok := phi[x]; ok {
			return v
		}

		v := m.Scaling(x)
		phi[x] = v

		return v
	}

	if got := trapezoid(scaling); math.Abs(got-1) > 1e-4 {
		t.Errorf("integral of phi = %v, want 1", got)
	}

	norm := trapezoid(func(x float64) float64 {
		v := scaling(x)
		return v * v
	})
	if math.Abs(norm-1) > 1e-6 {
		t.Errorf("norm of phi = %v, want 1", norm)
	}

	psiNorm := trapezoid(func(x float64) float64 {
		v := m.Wavelet(x)
		return v * v
	})
	if math.Abs(psiNorm-1) > 1e-6 {
		t.Errorf("norm of psi = %v, want 1", psiNorm)
	}

	for _, d := range []float64{0.3, 1.1, 2.7} {
		if diff := math.Abs(m.Scaling(d) - m.Scaling(-d)); diff > 1e-12 {
			t.Errorf("phi not even at %v: diff %v", d, diff)
		}

		if diff := math.Abs(m.Wavelet(0.5+d) - m.Wavelet(0.5-d)); diff > 1e-12 {
			t.Errorf("psi not symmetric about 1/2 at %v: diff %v", d, diff)
		}
	}
}

func TestBSplineScalingPartitionOfUnity(t *testing.T) {
	for order := minBSplineOrder; order <= maxBSplineOrder; order++ {
		b, err := NewBSpline(order)
		if err != nil {
			t.Fatalf("NewBSpline(%d): %v", order, err)
		}

		for _, x := range []float64{0, 0.1, 0.37, 0.5, 0.9} {
			sum := 0.0
			for k := -10; k <= 10; k++ {
				sum += real(b.Scaling(x - float64(k)))
			}

			if math.Abs(sum-1) > 1e-11 {
				t.Errorf("order %d x=%v: sum = %v, want 1", order, x, sum)
			}
		}
	}
}

func TestBSplineValues(t *testing.T) {
	tests := []struct {
		order int
		x     float64
		want  float64
	}{
		{1, -0.5, 1},
		{1, 0.5, 0},
		{2, 0, 1},
		{2, 0.5, 0.5},
		{3, 0, 0.75},
		{4, 0, 2.0 / 3},
		{4, 2, 0},
	}

	for _, tt := range tests {
		b, err := NewBSpline(tt.order)
		if err != nil {
			t.Fatal(err)
		}

		if got := real(b.Scaling(tt.x)); math.Abs(got-tt.want) > 1e-14 {
			t.Errorf("order %d: Scaling(%v) = %v, want %v", tt.order, tt.x, got, tt.want)
		}
	}
}

func TestBSplineWavelet(t *testing.T) {
	b, err := NewBSpline(2)
	if err != nil {
		t.Fatal(err)
	}

	if got := b.Wavelet(0); cmplx.Abs(got-1) > 1e-15 {
		t.Errorf("Wavelet(0) = %v, want 1", got)
	}

	// The envelope vanishes at x = m / Bandwidth.
	if got := cmplx.Abs(b.Wavelet(2)); got > 1e-15 {
		t.Errorf("|Wavelet(2)| = %v, want 0", got)
	}

	if _, err := NewBSpline(9); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("NewBSpline(9) error = %v, want ErrInvalidOrder", err)
	}

	if err := b.SetOrder(0); !errors.Is(err, ErrInvalidOrder) || b.Order() != 2 {
		t.Errorf("SetOrder(0): err %v, order %d", err, b.Order())
	}
}
