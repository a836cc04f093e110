package wavelet

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/meyeraux"
	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestPresetD2Fidelity(t *testing.T) {
	want := []float64{
		0.48296291314453414337,
		0.83651630373780790558,
		0.22414386804201338103,
		-0.12940952255126038117,
	}

	got := PresetD2.MustFilterSet().AnalysisLow()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tap %d = %.20g, want %.20g", i, got[i], want[i])
		}
	}
}

func TestPresetFilterLengths(t *testing.T) {
	tests := []struct {
		preset Preset
		lo, hi int
	}{
		{PresetHaar, 2, 2},
		{PresetD1, 2, 2},
		{PresetD4, 8, 8},
		{PresetD38, 76, 76},
		{PresetSym1, 2, 2},
		{PresetSym8, 16, 16},
		{PresetSym20, 40, 40},
		{PresetCoif1, 6, 6},
		{PresetCoif5, 30, 30},
		{PresetBior11, 2, 2},
		{PresetBior22, 6, 6},
		{PresetBior37, 16, 16},
		{PresetCDF53, 6, 6},
		{PresetCDF97, 10, 10},
		{PresetFK4, 4, 4},
		{PresetFK14, 14, 14},
		{PresetFK22, 22, 22},
		{PresetLegendre1, 2, 2},
		{PresetLegendre9, 18, 18},
		{PresetBSpline100, 2, 2},
		{PresetBSpline103, 6, 6},
		{PresetBSpline105, 10, 10},
		{PresetMeyer, 102, 102},
		{PresetKravchenko, 102, 102},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			fs, err := tt.preset.FilterSet()
			if err != nil {
				t.Fatal(err)
			}

			if n := len(fs.AnalysisLow()); n != tt.lo {
				t.Errorf("analysis lowpass taps = %d, want %d", n, tt.lo)
			}

			if n := len(fs.AnalysisHigh()); n != tt.hi {
				t.Errorf("analysis highpass taps = %d, want %d", n, tt.hi)
			}
		})
	}
}

func TestPresetDCGain(t *testing.T) {
	for _, p := range Presets() {
		lo := p.MustFilterSet().AnalysisLow()

		var sum float64
		for _, v := range lo {
			sum += v
		}

		if math.Abs(sum-math.Sqrt2) > 1e-12 {
			t.Errorf("%v: lowpass sum = %.15g, want sqrt(2)", p, sum)
		}
	}
}

func TestPresetOrthonormality(t *testing.T) {
	for _, p := range Presets() {
		if !p.Orthogonal() {
			continue
		}

		h := p.MustFilterSet().AnalysisLow()
		for shift := 0; shift < len(h); shift += 2 {
			var dot float64
			for k := 0; k+shift < len(h); k++ {
				dot += h[k] * h[k+shift]
			}

			want := 0.0
			if shift == 0 {
				want = 1
			}

			if math.Abs(dot-want) > 1e-12 {
				t.Errorf("%v: autocorrelation at lag %d = %g, want %g", p, shift, dot, want)
			}
		}
	}
}

func TestPresetAliases(t *testing.T) {
	pairs := [][2]Preset{
		{PresetHaar, PresetD1},
		{PresetSym1, PresetD1},
		{PresetSym2, PresetD2},
		{PresetSym3, PresetD3},
		{PresetCDF53, PresetBior22},
		{PresetBior11, PresetHaar},
		{PresetLegendre1, PresetHaar},
		{PresetBSpline100, PresetBior11},
	}
	for _, pair := range pairs {
		a := pair[0].MustFilterSet().AnalysisLow()
		b := pair[1].MustFilterSet().AnalysisLow()

		for i := range a {
			if math.Abs(a[i]-b[i]) > 1e-15 {
				t.Errorf("%v vs %v: tap %d differs: %g vs %g", pair[0], pair[1], i, a[i], b[i])
			}
		}
	}
}

func TestPresetString(t *testing.T) {
	tests := []struct {
		preset Preset
		want   string
	}{
		{PresetHaar, "Haar"},
		{PresetD38, "D38"},
		{PresetSym4, "Sym4"},
		{PresetCoif3, "Coif3"},
		{PresetBior35, "Bior3.5"},
		{PresetCDF97, "CDF9/7"},
		{PresetFK14, "FK14"},
		{PresetLegendre5, "Legendre5"},
		{PresetBSpline103, "BSpline1-0-3"},
		{PresetMeyer, "Meyer"},
		{PresetKravchenko, "Kravchenko"},
		{Preset(-1), "Preset(-1)"},
		{presetCount, "Preset(" + strconv.Itoa(int(presetCount)) + ")"},
	}
	for _, tt := range tests {
		if got := tt.preset.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPresetInvalid(t *testing.T) {
	if Preset(-1).Valid() || presetCount.Valid() {
		t.Fatal("out-of-range presets should be invalid")
	}

	if _, err := presetCount.FilterSet(); !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("err = %v, want ErrInvalidPreset", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustFilterSet should panic on an invalid preset")
		}
	}()

	Preset(1000).MustFilterSet()
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name string
		want Preset
	}{
		{"haar", PresetHaar},
		{"D4", PresetD4},
		{" sym8 ", PresetSym8},
		{"COIF2", PresetCoif2},
		{"bior2.2", PresetBior22},
		{"Bior22", PresetBior22},
		{"cdf9/7", PresetCDF97},
		{"cdf-5-3", PresetCDF53},
		{"meyer", PresetMeyer},
		{"FK4", PresetFK4},
		{"fk22", PresetFK22},
		{"Legendre1", PresetLegendre1},
		{"legendre-9", PresetLegendre9},
		{"bspline1.0.5", PresetBSpline105},
		{"BSpline103", PresetBSpline103},
		{"kravchenko", PresetKravchenko},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.name)
		if err != nil {
			t.Errorf("ParsePreset(%q): %v", tt.name, err)
			continue
		}

		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParsePreset("db99"); !errors.Is(err, ErrUnknownPresetID) {
		t.Errorf("err = %v, want ErrUnknownPresetID", err)
	}
}

func TestPresetsRoundTripNames(t *testing.T) {
	all := Presets()
	if len(all) != int(presetCount) {
		t.Fatalf("Presets() returned %d entries, want %d", len(all), presetCount)
	}

	for _, p := range all {
		got, err := ParsePreset(p.String())
		if err != nil {
			t.Fatalf("%v: %v", p, err)
		}

		// Haar and D1 share taps but must resolve to their own names.
		if got != p {
			t.Errorf("ParsePreset(%q) = %v", p.String(), got)
		}
	}
}

func TestPresetClassification(t *testing.T) {
	tests := []struct {
		preset         Preset
		orthogonal, pr bool
	}{
		{PresetD4, true, true},
		{PresetFK8, true, true},
		{PresetMeyer, true, true},
		{PresetKravchenko, true, true},
		{PresetLegendre1, true, true},
		{PresetLegendre2, false, false},
		{PresetLegendre9, false, false},
		{PresetBior22, false, true},
		{PresetBSpline105, false, true},
		{presetCount, false, false},
	}
	for _, tt := range tests {
		if got := tt.preset.Orthogonal(); got != tt.orthogonal {
			t.Errorf("%v.Orthogonal() = %v, want %v", tt.preset, got, tt.orthogonal)
		}

		if got := tt.preset.PerfectReconstruction(); got != tt.pr {
			t.Errorf("%v.PerfectReconstruction() = %v, want %v", tt.preset, got, tt.pr)
		}
	}
}

// fejerKorovkinPower evaluates |H(w)|^2 / 2 for the FK filter with the given
// tap count directly from the kernel weights.
func fejerKorovkinPower(taps int, w float64) float64 {
	n := taps
	if taps == 4 {
		n = 3
	}

	alpha := math.Pi / float64(n+2)

	weights := make([]float64, n+1)
	for k := range weights {
		weights[k] = math.Sin(float64(k+1) * alpha)
	}

	var sum, norm float64

	for j := 1; j <= n; j += 2 {
		var r float64
		for k := 0; k+j <= n; k++ {
			r += weights[k] * weights[k+j]
		}

		if (j/2)%2 == 1 {
			r = -r
		}

		sum += r * math.Cos(float64(j)*w) / float64(j)
		norm += r / float64(j)
	}

	return 0.5 + 0.5*sum/norm
}

func TestFejerKorovkinPowerSpectrum(t *testing.T) {
	const n = 128

	tests := []struct {
		preset Preset
		taps   int
	}{
		{PresetFK4, 4},
		{PresetFK6, 6},
		{PresetFK8, 8},
		{PresetFK14, 14},
		{PresetFK22, 22},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			resp, err := tt.preset.MustFilterSet().Response(n)
			if err != nil {
				t.Fatal(err)
			}

			for k, mag := range resp.Low {
				w := 2 * math.Pi * float64(k) / n

				want := 2 * fejerKorovkinPower(tt.taps, w)
				if got := mag * mag; math.Abs(got-want) > 1e-12 {
					t.Fatalf("bin %d: |H|^2 = %.15g, want %.15g", k, got, want)
				}
			}
		})
	}
}

func TestFejerKorovkinTransitionSharperThanDaubechies(t *testing.T) {
	// At w = pi/2 both have |H|^2 = 1; the FK slope there is steeper.
	const n = 256

	slope := func(p Preset) float64 {
		resp, err := p.MustFilterSet().Response(n)
		if err != nil {
			t.Fatal(err)
		}

		a, b := resp.Low[n/4-4], resp.Low[n/4+4]

		return a*a - b*b
	}

	if fk, db := slope(PresetFK22), slope(PresetD11); fk <= db {
		t.Errorf("FK22 transition slope %g not steeper than D11 %g", fk, db)
	}
}

// legendre evaluates the Legendre polynomial P_n(x) by recurrence.
func legendre(n int, x float64) float64 {
	p0, p1 := 1.0, x
	if n == 0 {
		return p0
	}

	for k := 1; k < n; k++ {
		p0, p1 = p1, (float64(2*k+1)*x*p1-float64(k)*p0)/float64(k+1)
	}

	return p1
}

func TestLegendreResponse(t *testing.T) {
	const n = 64

	for order := 1; order <= 9; order++ {
		p := PresetLegendre1 + Preset(order-1)

		t.Run(p.String(), func(t *testing.T) {
			resp, err := p.MustFilterSet().Response(n)
			if err != nil {
				t.Fatal(err)
			}

			for k, mag := range resp.Low {
				w := 2 * math.Pi * float64(k) / n

				want := math.Sqrt2 * math.Abs(legendre(2*order-1, math.Cos(w/2)))
				if math.Abs(mag-want) > 1e-12 {
					t.Fatalf("bin %d: |H| = %.15g, want %.15g", k, mag, want)
				}
			}
		})
	}
}

func TestLegendreTapsSymmetric(t *testing.T) {
	for p := PresetLegendre1; p <= PresetLegendre9; p++ {
		h := p.MustFilterSet().AnalysisLow()
		for i := range h {
			if h[i] != h[len(h)-1-i] {
				t.Errorf("%v: tap %d = %g, mirror = %g", p, i, h[i], h[len(h)-1-i])
			}
		}
	}
}

func TestMeyerTypeSpectra(t *testing.T) {
	const n = 512

	meyer, err := PresetMeyer.MustFilterSet().Response(n)
	if err != nil {
		t.Fatal(err)
	}

	krav, err := PresetKravchenko.MustFilterSet().Response(n)
	if err != nil {
		t.Fatal(err)
	}

	var differ bool

	for k := range meyer.Low {
		w := 2 * math.Pi * float64(k) / n

		want := math.Sqrt2 * meyeraux.ScalingSpectrum(2*w)
		if d := math.Abs(meyer.Low[k] - want); d > 5e-3 {
			t.Errorf("Meyer bin %d: |H| = %g, want %g", k, meyer.Low[k], want)
		}

		switch {
		case w <= math.Pi/3:
			if d := math.Abs(krav.Low[k] - math.Sqrt2); d > 5e-3 {
				t.Errorf("Kravchenko passband bin %d: |H| = %g", k, krav.Low[k])
			}
		case w >= 2*math.Pi/3:
			if krav.Low[k] > 5e-3 {
				t.Errorf("Kravchenko stopband bin %d: |H| = %g", k, krav.Low[k])
			}
		default:
			if math.Abs(krav.Low[k]-meyer.Low[k]) > 1e-2 {
				differ = true
			}
		}
	}

	if !differ {
		t.Error("Kravchenko transition band matches Meyer")
	}
}

func TestMeyerTableTracksDesign(t *testing.T) {
	designed, err := DesignMeyer(102, 1024)
	if err != nil {
		t.Fatal(err)
	}

	d, err := testutil.MaxAbsDiff(designed, PresetMeyer.MustFilterSet().AnalysisLow())
	if err != nil {
		t.Fatal(err)
	}

	if d > 2e-4 {
		t.Errorf("table deviates from DesignMeyer by %g", d)
	}

	// The sampled design is only approximately orthonormal.
	resp, err := mustOrthogonal(t, designed).Response(1024)
	if err != nil {
		t.Fatal(err)
	}

	if e := resp.PowerComplementaryError(); e > 1e-4 || e < 1e-12 {
		t.Errorf("DesignMeyer power complementary error = %g", e)
	}
}

func TestDesignMeyerInvalid(t *testing.T) {
	tests := []struct {
		taps, grid int
		want       error
	}{
		{0, 1024, ErrInvalidOrder},
		{101, 1024, ErrInvalidOrder},
		{102, 1000, ErrInvalidFFTSize},
		{102, 64, ErrInvalidFFTSize},
	}
	for _, tt := range tests {
		if _, err := DesignMeyer(tt.taps, tt.grid); !errors.Is(err, tt.want) {
			t.Errorf("DesignMeyer(%d, %d): err = %v, want %v", tt.taps, tt.grid, err, tt.want)
		}
	}
}

func mustOrthogonal(t *testing.T, scaling []float64) FilterSet {
	t.Helper()

	fs, err := NewOrthogonal(scaling)
	if err != nil {
		t.Fatal(err)
	}

	return fs
}
