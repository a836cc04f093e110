package wavelet

import (
	"slices"

	"github.com/cwbudde/algo-wavelet/internal/scratch"
)

// workspace holds the per-call scratch buffers of all transforms.
var workspace = scratch.NewPool()

// Forward returns the multilevel decomposition of x. The input is not
// modified. Level i (0-based) operates on the prefix of length len(x)>>i.
func (t *Transform) Forward(x []float64) []float64 {
	out := slices.Clone(x)
	tmp := workspace.Get(len(out))
	defer workspace.Put(tmp)

	t.forwardInPlace(out, tmp.Samples())

	return out
}

// Backward reconstructs a signal from coefficients produced by [Transform.Forward]
// with the same configuration. The input is not modified.
func (t *Transform) Backward(y []float64) []float64 {
	out := slices.Clone(y)
	low, high := workspace.Get(len(out)), workspace.Get(len(out))
	defer workspace.Put(low, high)

	t.backwardInPlace(out, low.Samples(), high.Samples())

	return out
}

// ForwardComplex decomposes a complex signal. The real and imaginary parts
// are transformed independently since the filter taps are real.
func (t *Transform) ForwardComplex(x []complex128) []complex128 {
	re, im := splitComplex(x)
	tmp := workspace.Get(len(x))
	defer workspace.Put(tmp)

	t.forwardInPlace(re, tmp.Samples())
	t.forwardInPlace(im, tmp.Samples())

	return joinComplex(re, im)
}

// BackwardComplex inverts [Transform.ForwardComplex].
func (t *Transform) BackwardComplex(y []complex128) []complex128 {
	re, im := splitComplex(y)
	low, high := workspace.Get(len(y)), workspace.Get(len(y))
	defer workspace.Put(low, high)

	t.backwardInPlace(re, low.Samples(), high.Samples())
	t.backwardInPlace(im, low.Samples(), high.Samples())

	return joinComplex(re, im)
}

func (t *Transform) forwardInPlace(buf, scratch []float64) {
	n := len(buf)
	for level := range t.ActiveLevels(n) {
		t.analyzeStep(buf, scratch, n>>level)
	}
}

func (t *Transform) backwardInPlace(buf, low, high []float64) {
	n := len(buf)
	for level := t.ActiveLevels(n); level >= 1; level-- {
		t.synthesizeStep(buf, low, high, n>>level)
	}
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
