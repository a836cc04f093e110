package wavelet

import "slices"

// FilterSet is a perfect-reconstruction filter quadruple. The slices are
// stored in tap order and are never exposed directly; accessors return
// copies so a FilterSet behaves as an immutable value.
type FilterSet struct {
	analysisLow   []float64
	analysisHigh  []float64
	synthesisLow  []float64
	synthesisHigh []float64
}

// NewOrthogonal builds a filter set from a scaling (lowpass) sequence.
//
// The analysis highpass is the reversed scaling sequence with odd-indexed
// entries negated. The synthesis filters are the reversed analysis filters.
func NewOrthogonal(scaling []float64) (FilterSet, error) {
	if len(scaling) == 0 {
		return FilterSet{}, ErrEmptyFilter
	}

	n := len(scaling)
	wavelet := make([]float64, n)

	for k := range n {
		v := scaling[n-1-k]
		if k%2 == 1 {
			v = -v
		}

		wavelet[k] = v
	}

	return FilterSet{
		analysisLow:   slices.Clone(scaling),
		analysisHigh:  wavelet,
		synthesisLow:  reversed(scaling),
		synthesisHigh: reversed(wavelet),
	}, nil
}

// NewBiorthogonal builds a filter set from explicit analysis scaling and
// wavelet sequences.
//
// The synthesis lowpass is the wavelet sequence with even-indexed entries
// negated; the synthesis highpass is the scaling sequence with odd-indexed
// entries negated. This rule differs from [NewOrthogonal] and is kept as a
// separate constructor so the biorthogonal presets keep their exact values.
func NewBiorthogonal(scaling, wavelet []float64) (FilterSet, error) {
	if len(scaling) == 0 || len(wavelet) == 0 {
		return FilterSet{}, ErrEmptyFilter
	}

	synLow := make([]float64, len(wavelet))
	for k, v := range wavelet {
		if k%2 == 0 {
			v = -v
		}

		synLow[k] = v
	}

	synHigh := make([]float64, len(scaling))
	for k, v := range scaling {
		if k%2 == 1 {
			v = -v
		}

		synHigh[k] = v
	}

	return FilterSet{
		analysisLow:   slices.Clone(scaling),
		analysisHigh:  slices.Clone(wavelet),
		synthesisLow:  synLow,
		synthesisHigh: synHigh,
	}, nil
}

// NewFilterSet builds a filter set from four explicit sequences. No
// derivation is applied; the caller is responsible for the
// perfect-reconstruction property.
func NewFilterSet(analysisLow, analysisHigh, synthesisLow, synthesisHigh []float64) (FilterSet, error) {
	f := FilterSet{
		analysisLow:   slices.Clone(analysisLow),
		analysisHigh:  slices.Clone(analysisHigh),
		synthesisLow:  slices.Clone(synthesisLow),
		synthesisHigh: slices.Clone(synthesisHigh),
	}

	if err := f.Validate(); err != nil {
		return FilterSet{}, err
	}

	return f, nil
}

// AnalysisLow returns a copy of the analysis lowpass taps.
func (f FilterSet) AnalysisLow() []float64 { return slices.Clone(f.analysisLow) }

// AnalysisHigh returns a copy of the analysis highpass taps.
func (f FilterSet) AnalysisHigh() []float64 { return slices.Clone(f.analysisHigh) }

// SynthesisLow returns a copy of the synthesis lowpass taps.
func (f FilterSet) SynthesisLow() []float64 { return slices.Clone(f.synthesisLow) }

// SynthesisHigh returns a copy of the synthesis highpass taps.
func (f FilterSet) SynthesisHigh() []float64 { return slices.Clone(f.synthesisHigh) }

// Len returns the longest filter length in the set.
func (f FilterSet) Len() int {
	return max(len(f.analysisLow), len(f.analysisHigh), len(f.synthesisLow), len(f.synthesisHigh))
}

// Equal reports whether both sets hold identical taps.
func (f FilterSet) Equal(other FilterSet) bool {
	return slices.Equal(f.analysisLow, other.analysisLow) &&
		slices.Equal(f.analysisHigh, other.analysisHigh) &&
		slices.Equal(f.synthesisLow, other.synthesisLow) &&
		slices.Equal(f.synthesisHigh, other.synthesisHigh)
}

// Validate returns [ErrEmptyFilter] if any of the four sequences is empty.
func (f FilterSet) Validate() error {
	return validateFilters(f)
}

func reversed(s []float64) []float64 {
	out := slices.Clone(s)
	slices.Reverse(out)

	return out
}
