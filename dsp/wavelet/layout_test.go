package wavelet

import (
	"math"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestBands(t *testing.T) {
	tests := []struct {
		name      string
		n, levels int
		want      []Band
	}{
		{"empty", 0, 3, nil},
		{"single", 1, 3, []Band{{Kind: BandApproximation, Start: 0, End: 1}}},
		{"dyadic", 8, 2, []Band{
			{Kind: BandApproximation, Level: 2, Start: 0, End: 2},
			{Kind: BandDetail, Level: 2, Start: 2, End: 4},
			{Kind: BandDetail, Level: 1, Start: 4, End: 8},
		}},
		{"odd", 11, 3, []Band{
			{Kind: BandApproximation, Level: 3, Start: 0, End: 1},
			{Kind: BandDetail, Level: 3, Start: 1, End: 2},
			{Kind: BandDetail, Level: 2, Start: 2, End: 4},
			{Kind: BandPassThrough, Level: 2, Start: 4, End: 5},
			{Kind: BandDetail, Level: 1, Start: 5, End: 10},
			{Kind: BandPassThrough, Level: 1, Start: 10, End: 11},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.n, tt.levels)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Bands(%d, %d) = %+v, want %+v", tt.n, tt.levels, got, tt.want)
			}
		})
	}
}

func TestBandsCoverBuffer(t *testing.T) {
	for n := 1; n <= 70; n++ {
		for levels := 1; levels <= 7; levels++ {
			next := 0
			for _, b := range Bands(n, levels) {
				if b.Start != next || b.Len() <= 0 {
					t.Fatalf("n=%d levels=%d: band %+v does not continue at %d", n, levels, b, next)
				}

				next = b.End
			}

			if next != n {
				t.Fatalf("n=%d levels=%d: bands end at %d", n, levels, next)
			}
		}
	}
}

func TestBandsMatchPassThrough(t *testing.T) {
	// Coefficients in pass-through slots equal the corresponding samples of
	// the previous level's approximation; at level 1 that is the input.
	tr, err := NewFromPreset(PresetD2, WithLevels(1))
	if err != nil {
		t.Fatal(err)
	}

	x := testutil.DeterministicNoise(14, 1, 13)
	y := tr.Forward(x)

	for _, b := range tr.Bands(len(x)) {
		if b.Kind == BandPassThrough && y[b.Start] != x[b.Start] {
			t.Fatalf("pass-through slot %d changed: %g -> %g", b.Start, x[b.Start], y[b.Start])
		}
	}
}

func TestBandEnergies(t *testing.T) {
	tr, err := NewFromPreset(PresetSym4, WithLevels(3))
	if err != nil {
		t.Fatal(err)
	}

	x := testutil.DeterministicSine(750, 48000, 1, 128)
	y := tr.Forward(x)

	energies := BandEnergies(y, tr.Bands(len(y)))

	var total float64
	for _, e := range energies {
		total += e
	}

	if math.Abs(total-Energy(x)) > 1e-9 {
		t.Fatalf("band energies sum to %g, want %g", total, Energy(x))
	}

	// A low-frequency sine concentrates in the approximation band.
	if energies[0] < 0.99*total {
		t.Errorf("approximation holds %g of %g", energies[0], total)
	}
}

func TestBandEnergiesClipped(t *testing.T) {
	got := BandEnergies([]float64{1, 2, 3}, []Band{{Start: 2, End: 10}, {Start: -4, End: 1}, {Start: 5, End: 9}})
	testutil.RequireSliceNearlyEqual(t, got, []float64{9, 1, 0}, 0)
}

func TestBandKindString(t *testing.T) {
	if BandDetail.String() != "detail" || BandKind(9).String() != "BandKind(9)" {
		t.Fatalf("unexpected names %q, %q", BandDetail.String(), BandKind(9).String())
	}
}
