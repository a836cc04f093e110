package bandfilter

import "github.com/cwbudde/algo-wavelet/dsp/wavelet"

// paddedLength returns the smallest length >= n+2*delta whose first
// ActiveLevels levels all see an even active length.
func paddedLength(n, delta, levels int) int {
	v := n + 2*delta
	lv := wavelet.ActiveLevels(v, levels)

	for range lv {
		v = (v + 1) / 2
	}

	return v << lv
}

// reflect maps i onto [0, n) by half-sample symmetric reflection, repeated
// as often as needed.
func reflect(i, n int) int {
	period := 2 * n

	i %= period
	if i < 0 {
		i += period
	}

	if i >= n {
		i = period - 1 - i
	}

	return i
}

// extend returns data padded to length r, centered, with mirrored borders.
func extend(data []float64, r int) []float64 {
	n := len(data)
	out := make([]float64, r)

	if n == 0 {
		return out
	}

	offset := (r - n) / 2
	for i := range out {
		out[i] = data[reflect(i-offset, n)]
	}

	return out
}

// crop copies the centered n samples of ext into dst.
func crop(dst, ext []float64) {
	offset := (len(ext) - len(dst)) / 2
	copy(dst, ext[offset:offset+len(dst)])
}

func extend2D(m [][]float64, rows, cols int) [][]float64 {
	srcRows := len(m)
	out := make([][]float64, rows)

	if srcRows == 0 {
		for r := range out {
			out[r] = make([]float64, cols)
		}

		return out
	}

	offset := (rows - srcRows) / 2
	for r := range out {
		out[r] = extend(m[reflect(r-offset, srcRows)], cols)
	}

	return out
}

func crop2D(dst, ext [][]float64) {
	offset := (len(ext) - len(dst)) / 2
	for r := range dst {
		crop(dst[r], ext[r+offset])
	}
}
