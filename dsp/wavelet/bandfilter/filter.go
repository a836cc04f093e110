package bandfilter

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Filter rescales wavelet detail bands. It shares the transform it was
// created with; reconfiguring that transform affects later calls.
type Filter struct {
	transform *wavelet.Transform
	factor    float64
	accuracy  float64
}

// New creates a band filter driving t.
func New(t *wavelet.Transform, opts ...Option) (*Filter, error) {
	if t == nil {
		return nil, wavelet.ErrNilTransform
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Filter{
		transform: t,
		factor:    cfg.factor,
		accuracy:  cfg.accuracy,
	}, nil
}

// Transform returns the underlying wavelet transform.
func (f *Filter) Transform() *wavelet.Transform { return f.transform }

// Factor returns the detail-band factor.
func (f *Filter) Factor() float64 { return f.factor }

// Accuracy returns the padding fraction.
func (f *Filter) Accuracy() float64 { return f.accuracy }

// Apply returns a filtered copy of data.
func (f *Filter) Apply(data []float64) []float64 {
	out := make([]float64, len(data))
	crop(out, f.transform.Backward(f.analyze(data)))

	return out
}

// ApplyInPlace filters data and overwrites it with the result.
func (f *Filter) ApplyInPlace(data []float64) {
	crop(data, f.transform.Backward(f.analyze(data)))
}

// Apply2D returns a filtered copy of a row-major matrix. Rows of unequal
// length yield [wavelet.ErrRaggedMatrix].
func (f *Filter) Apply2D(m [][]float64) ([][]float64, error) {
	out := make([][]float64, len(m))
	for r, row := range m {
		out[r] = slices.Clone(row)
	}

	if err := f.ApplyInPlace2D(out); err != nil {
		return nil, err
	}

	return out, nil
}

// ApplyInPlace2D filters m and overwrites it with the result. On error m is
// left unchanged.
func (f *Filter) ApplyInPlace2D(m [][]float64) error {
	wave, err := f.analyze2D(m)
	if err != nil {
		return err
	}

	ext, err := f.transform.Backward2D(wave)
	if err != nil {
		return err
	}

	crop2D(m, ext)

	return nil
}

// ApplyComplex returns a filtered copy of complex data. The filter is
// linear with real taps, so real and imaginary parts are processed
// independently.
func (f *Filter) ApplyComplex(data []complex128) []complex128 {
	re, im := splitComplex(data)

	return joinComplex(f.Apply(re), f.Apply(im))
}

// ApplyComplex2D returns a filtered copy of a complex matrix.
func (f *Filter) ApplyComplex2D(m [][]complex128) ([][]complex128, error) {
	re := make([][]float64, len(m))
	im := make([][]float64, len(m))

	for r, row := range m {
		re[r], im[r] = splitComplex(row)
	}

	if err := f.ApplyInPlace2D(re); err != nil {
		return nil, err
	}

	if err := f.ApplyInPlace2D(im); err != nil {
		return nil, err
	}

	out := make([][]complex128, len(m))
	for r := range out {
		out[r] = joinComplex(re[r], im[r])
	}

	return out, nil
}

// analyze extends data, transforms it and rescales the detail bands.
func (f *Filter) analyze(data []float64) []float64 {
	n := len(data)
	r := paddedLength(n, f.delta(n), f.transform.Levels())

	wave := f.transform.Forward(extend(data, r))
	f.scaleBands(wave, approxLength(r, f.transform.ActiveLevels(r)), 1)

	return wave
}

func (f *Filter) analyze2D(m [][]float64) ([][]float64, error) {
	rows, cols, err := shape(m)
	if err != nil {
		return nil, err
	}

	levels := f.transform.Levels()
	pr := paddedLength(rows, f.delta(rows), levels)
	pc := paddedLength(cols, f.delta(cols), levels)

	wave, err := f.transform.Forward2D(extend2D(m, pr, pc))
	if err != nil {
		return nil, err
	}

	f.scaleBands2D(wave, pr, pc, 1)

	return wave, nil
}

func (f *Filter) delta(n int) int {
	return int(math.Floor(float64(n) * f.accuracy))
}

// scaleBands multiplies wave[:approx] by weight and the remaining detail
// coefficients by weight*(1+factor).
func (f *Filter) scaleBands(wave []float64, approx int, weight float64) {
	if weight != 1 {
		vecmath.ScaleBlockInPlace(wave[:approx], weight)
	}

	vecmath.ScaleBlockInPlace(wave[approx:], weight*(1+f.factor))
}

// scaleBands2D applies the band rule to a 2-D decomposition: a coefficient
// belongs to the approximation block only if both its row and its column do.
// Each dimension uses its own level count.
func (f *Filter) scaleBands2D(wave [][]float64, rows, cols int, weight float64) {
	vertical, horizontal := f.transform.ActiveLevels2D(rows, cols)
	approxRows := approxLength(rows, vertical)
	approxCols := approxLength(cols, horizontal)

	for r, row := range wave {
		if r < approxRows {
			f.scaleBands(row, approxCols, weight)
		} else {
			vecmath.ScaleBlockInPlace(row, weight*(1+f.factor))
		}
	}
}

func approxLength(n, levels int) int {
	return n >> levels
}

// shape returns the dimensions of m, or wavelet.ErrRaggedMatrix.
func shape(m [][]float64) (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 {
		return 0, 0, nil
	}

	cols = len(m[0])
	for r, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", wavelet.ErrRaggedMatrix, r, len(row), cols)
		}
	}

	return rows, cols, nil
}

func splitComplex(x []complex128) (re, im []float64) {
	re = make([]float64, len(x))
	im = make([]float64, len(x))

	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}

	return re, im
}

func joinComplex(re, im []float64) []complex128 {
	out := make([]complex128, len(re))
	for i := range out {
		out[i] = complex(re[i], im[i])
	}

	return out
}
