package bandfilter

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Blend returns the band-scaled mean of equally long inputs, computed in
// the wavelet domain and reconstructed once. The inputs are not modified.
func (f *Filter) Blend(inputs ...[]float64) ([]float64, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	n := len(inputs[0])
	for i, in := range inputs {
		if len(in) != n {
			return nil, fmt.Errorf("%w: input %d has length %d, want %d", ErrShapeMismatch, i, len(in), n)
		}
	}

	r := paddedLength(n, f.delta(n), f.transform.Levels())
	approx := approxLength(r, f.transform.ActiveLevels(r))
	weight := 1 / float64(len(inputs))
	sum := make([]float64, r)

	for _, in := range inputs {
		wave := f.transform.Forward(extend(in, r))
		f.scaleBands(wave, approx, weight)
		vecmath.AddBlockInPlace(sum, wave)
	}

	out := make([]float64, n)
	crop(out, f.transform.Backward(sum))

	return out, nil
}

// Blend2D is the 2-D counterpart of [Filter.Blend].
func (f *Filter) Blend2D(inputs ...[][]float64) ([][]float64, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	rows, cols, err := shape(inputs[0])
	if err != nil {
		return nil, err
	}

	for i, in := range inputs[1:] {
		r, c, err := shape(in)
		if err != nil {
			return nil, err
		}

		if r != rows || c != cols {
			return nil, fmt.Errorf("%w: input %d is %dx%d, want %dx%d", ErrShapeMismatch, i+1, r, c, rows, cols)
		}
	}

	levels := f.transform.Levels()
	pr := paddedLength(rows, f.delta(rows), levels)
	pc := paddedLength(cols, f.delta(cols), levels)
	weight := 1 / float64(len(inputs))

	sum := make([][]float64, pr)
	for r := range sum {
		sum[r] = make([]float64, pc)
	}

	for _, in := range inputs {
		wave, err := f.transform.Forward2D(extend2D(in, pr, pc))
		if err != nil {
			return nil, err
		}

		f.scaleBands2D(wave, pr, pc, weight)

		for r := range sum {
			vecmath.AddBlockInPlace(sum[r], wave[r])
		}
	}

	ext, err := f.transform.Backward2D(sum)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
	}

	crop2D(out, ext)

	return out, nil
}

// BlendComplex blends complex inputs by blending their real and imaginary
// parts independently.
func (f *Filter) BlendComplex(inputs ...[]complex128) ([]complex128, error) {
	re := make([][]float64, len(inputs))
	im := make([][]float64, len(inputs))

	for i, in := range inputs {
		re[i], im[i] = splitComplex(in)
	}

	blendRe, err := f.Blend(re...)
	if err != nil {
		return nil, err
	}

	blendIm, err := f.Blend(im...)
	if err != nil {
		return nil, err
	}

	return joinComplex(blendRe, blendIm), nil
}
