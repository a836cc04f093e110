package wavelet

import "math"

// analyzeStep runs one decomposition level on buf[:bound] in place. An odd
// trailing sample is left untouched. scratch must hold at least bound
// samples.
func (t *Transform) analyzeStep(buf, scratch []float64, bound int) {
	b := bound &^ 1
	if b == 0 {
		return
	}

	src := scratch[:b]
	copy(src, buf[:b])

	half := b / 2
	lo, hi := t.filters.analysisLow, t.filters.analysisHigh
	loStart := -(len(lo)/2 - 1)
	hiStart := -(len(hi)/2 - 1)

	for r := range half {
		low := accumulateWrap(0, src, lo, loStart)
		high := accumulateWrap(0, src, hi, hiStart)

		if t.normalized {
			low /= math.Sqrt2
			high /= math.Sqrt2
		}

		buf[r] = low
		buf[r+half] = high
		loStart += 2
		hiStart += 2
	}
}

// synthesizeStep inverts one level: buf[:half] holds the approximation and
// buf[half:2*half] the detail band; the result replaces buf[:2*half]. low and
// high are scratch buffers of at least 2*half samples.
func (t *Transform) synthesizeStep(buf, low, high []float64, half int) {
	h := 2 * half
	if h == 0 {
		return
	}

	low, high = low[:h], high[:h]
	clear(low)
	clear(high)

	for i := range half {
		low[2*i+1] = buf[i]
		high[2*i+1] = buf[i+half]
	}

	lo, hi := t.filters.synthesisLow, t.filters.synthesisHigh
	loStart := -(len(lo)/2 - 1)
	hiStart := -(len(hi)/2 - 1)

	for i := range h {
		sum := accumulateWrap(0, low, lo, loStart)
		sum = accumulateWrap(sum, high, hi, hiStart)

		if t.normalized {
			sum *= math.Sqrt2
		}

		buf[i] = sum
		loStart++
		hiStart++
	}
}

// accumulateWrap adds sum(taps[k] * src[(start+k) mod len(src)]) to acc,
// in tap order.
func accumulateWrap(acc float64, src, taps []float64, start int) float64 {
	n := len(src)

	idx := start % n
	if idx < 0 {
		idx += n
	}

	for _, c := range taps {
		acc += c * src[idx]

		idx++
		if idx == n {
			idx = 0
		}
	}

	return acc
}
