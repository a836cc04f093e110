package meyeraux

import (
	"math"
	"testing"
)

func TestNuSymmetry(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.7, 0.9, 1} {
		if got := Nu(x) + Nu(1-x); math.Abs(got-1) > 1e-14 {
			t.Errorf("Nu(%g)+Nu(%g) = %g, want 1", x, 1-x, got)
		}
	}

	if Nu(-1) != 0 || Nu(2) != 1 {
		t.Errorf("Nu not clamped: Nu(-1)=%g Nu(2)=%g", Nu(-1), Nu(2))
	}
}

func TestScalingSpectrumPartitionOfUnity(t *testing.T) {
	// |phi(w)|^2 + |phi(w+2pi)|^2 = 1 on the transition band.
	for w := -math.Pi; w <= 0; w += 0.05 {
		a := ScalingSpectrum(w)
		b := ScalingSpectrum(w + 2*math.Pi)

		if got := a*a + b*b; math.Abs(got-1) > 1e-12 {
			t.Fatalf("w=%g: sum of squares = %g", w, got)
		}
	}
}

func TestWaveletSpectrumSupport(t *testing.T) {
	tests := []struct {
		w    float64
		want float64
	}{
		{0, 0},
		{math.Pi / 2, 0},
		{4 * math.Pi / 3, 1},
		{3 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := WaveletSpectrum(tt.w); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WaveletSpectrum(%g) = %g, want %g", tt.w, got, tt.want)
		}
	}
}
