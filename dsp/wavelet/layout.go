package wavelet

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// BandKind classifies a coefficient range in the Mallat layout.
type BandKind int

const (
	BandApproximation BandKind = iota // coarsest lowpass block
	BandDetail                        // highpass output of one level
	BandPassThrough                   // odd trailing sample left untouched by a level
)

// String returns the name of the band kind.
func (k BandKind) String() string {
	switch k {
	case BandApproximation:
		return "approximation"
	case BandDetail:
		return "detail"
	case BandPassThrough:
		return "pass-through"
	default:
		return fmt.Sprintf("BandKind(%d)", int(k))
	}
}

// Band is a half-open index range [Start, End) of a coefficient buffer.
// Level is 1 for the finest scale and increases towards the approximation.
type Band struct {
	Kind  BandKind
	Level int
	Start int
	End   int
}

// Len returns the number of coefficients in the band.
func (b Band) Len() int { return b.End - b.Start }

// Bands describes the layout produced by a forward transform of n samples
// with the given requested level count. The bands are ordered by index and
// cover [0, n) exactly.
func Bands(n, levels int) []Band {
	lv := ActiveLevels(n, levels)
	if lv == 0 {
		if n == 0 {
			return nil
		}

		return []Band{{Kind: BandApproximation, Start: 0, End: n}}
	}

	bands := []Band{{Kind: BandApproximation, Level: lv, Start: 0, End: n >> lv}}

	for level := lv - 1; level >= 0; level-- {
		bound := n >> level
		half := bound >> 1

		bands = append(bands, Band{Kind: BandDetail, Level: level + 1, Start: half, End: 2 * half})
		if bound%2 == 1 {
			bands = append(bands, Band{Kind: BandPassThrough, Level: level + 1, Start: bound - 1, End: bound})
		}
	}

	return bands
}

// Bands returns the layout of a forward transform of n samples.
func (t *Transform) Bands(n int) []Band {
	return Bands(n, t.levels)
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	return vecmath.DotProduct(x, x)
}

// BandEnergies returns the energy of each band of coeffs. Bands that exceed
// the buffer are clipped.
func BandEnergies(coeffs []float64, bands []Band) []float64 {
	out := make([]float64, len(bands))

	for i, b := range bands {
		start := min(max(b.Start, 0), len(coeffs))
		end := min(max(b.End, start), len(coeffs))
		out[i] = Energy(coeffs[start:end])
	}

	return out
}
