package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestFrequencyResponseHaar(t *testing.T) {
	mag, err := FrequencyResponse(PresetHaar.MustFilterSet().AnalysisLow(), 16)
	if err != nil {
		t.Fatal(err)
	}

	if len(mag) != 9 {
		t.Fatalf("bins = %d, want 9", len(mag))
	}

	if math.Abs(mag[0]-math.Sqrt2) > 1e-12 {
		t.Errorf("DC gain = %g, want sqrt(2)", mag[0])
	}

	if mag[8] > 1e-12 {
		t.Errorf("Nyquist gain = %g, want 0", mag[8])
	}

	// |H(w)| = sqrt(2)|cos(w/2)| for Haar.
	for k, v := range mag {
		w := math.Pi * float64(k) / 8
		if want := math.Sqrt2 * math.Abs(math.Cos(w/2)); math.Abs(v-want) > 1e-12 {
			t.Errorf("bin %d: %g, want %g", k, v, want)
		}
	}
}

func TestPowerComplementaryOrthogonal(t *testing.T) {
	for _, p := range Presets() {
		if !p.Orthogonal() {
			continue
		}

		resp, err := p.MustFilterSet().Response(256)
		if err != nil {
			t.Fatal(err)
		}

		if e := resp.PowerComplementaryError(); e > 1e-10 {
			t.Errorf("%v: power-complementary error %g", p, e)
		}
	}
}

func TestFrequencyResponseInvalidSize(t *testing.T) {
	taps := PresetD4.MustFilterSet().AnalysisLow()

	for _, n := range []int{0, 1, 6, 4} {
		if _, err := FrequencyResponse(taps, n); !errors.Is(err, ErrInvalidFFTSize) {
			t.Errorf("n=%d: err = %v, want ErrInvalidFFTSize", n, err)
		}
	}

	if _, err := PresetD38.MustFilterSet().Response(64); !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("Response(64) for 76 taps: err = %v, want ErrInvalidFFTSize", err)
	}
}
