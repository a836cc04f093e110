package wavelet

import "slices"

// Forward2D decomposes a row-major matrix. Each level transforms the active
// rows and then the active columns. The level count is clamped per
// dimension (see [Transform.ActiveLevels2D]): once one dimension is
// exhausted the other keeps decomposing, so a 1 x n matrix transforms
// exactly like its single row. Rows of unequal length yield
// [ErrRaggedMatrix].
func (t *Transform) Forward2D(m [][]float64) ([][]float64, error) {
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return nil, err
	}

	out := cloneMatrix(m)
	t.forward2DInPlace(out, rows, cols)

	return out, nil
}

// Backward2D inverts [Transform.Forward2D].
func (t *Transform) Backward2D(m [][]float64) ([][]float64, error) {
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return nil, err
	}

	out := cloneMatrix(m)
	t.backward2DInPlace(out, rows, cols)

	return out, nil
}

// ForwardComplex2D decomposes a complex matrix by transforming its real and
// imaginary parts independently.
func (t *Transform) ForwardComplex2D(m [][]complex128) ([][]complex128, error) {
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return nil, err
	}

	re, im := splitComplexMatrix(m)
	t.forward2DInPlace(re, rows, cols)
	t.forward2DInPlace(im, rows, cols)

	return joinComplexMatrix(re, im), nil
}

// BackwardComplex2D inverts [Transform.ForwardComplex2D].
func (t *Transform) BackwardComplex2D(m [][]complex128) ([][]complex128, error) {
	rows, cols, err := validateMatrix(m)
	if err != nil {
		return nil, err
	}

	re, im := splitComplexMatrix(m)
	t.backward2DInPlace(re, rows, cols)
	t.backward2DInPlace(im, rows, cols)

	return joinComplexMatrix(re, im), nil
}

// ActiveLevels2D returns the number of levels applied to a rows x cols
// matrix along each dimension: vertical counts the column transforms and
// is limited by rows, horizontal counts the row transforms and is limited
// by cols.
func (t *Transform) ActiveLevels2D(rows, cols int) (vertical, horizontal int) {
	return ActiveLevels(rows, t.levels), ActiveLevels(cols, t.levels)
}

func (t *Transform) forward2DInPlace(m [][]float64, rows, cols int) {
	tmp, col := workspace.Get(max(rows, cols)), workspace.Get(rows)
	defer workspace.Put(tmp, col)

	scratch, column := tmp.Samples(), col.Samples()

	vertical, horizontal := t.ActiveLevels2D(rows, cols)

	for level := range max(vertical, horizontal) {
		rb, cb := rows>>min(level, vertical), cols>>min(level, horizontal)

		if level < horizontal {
			for r := range rb {
				t.analyzeStep(m[r], scratch, cb)
			}
		}

		if level < vertical {
			for c := range cb {
				gatherColumn(column[:rb], m, c)
				t.analyzeStep(column, scratch, rb)
				scatterColumn(m, column[:rb], c)
			}
		}
	}
}

func (t *Transform) backward2DInPlace(m [][]float64, rows, cols int) {
	n := max(rows, cols)
	lb, hb, col := workspace.Get(n), workspace.Get(n), workspace.Get(rows)
	defer workspace.Put(lb, hb, col)

	low, high, column := lb.Samples(), hb.Samples(), col.Samples()

	vertical, horizontal := t.ActiveLevels2D(rows, cols)

	for level := max(vertical, horizontal); level >= 1; level-- {
		prev := level - 1
		rb, cb := rows>>min(prev, vertical), cols>>min(prev, horizontal)

		if prev < vertical {
			for c := range cb {
				gatherColumn(column[:rb], m, c)
				t.synthesizeStep(column, low, high, rows>>level)
				scatterColumn(m, column[:rb], c)
			}
		}

		if prev < horizontal {
			for r := range rb {
				t.synthesizeStep(m[r], low, high, cols>>level)
			}
		}
	}
}

func gatherColumn(dst []float64, m [][]float64, c int) {
	for r := range dst {
		dst[r] = m[r][c]
	}
}

func scatterColumn(m [][]float64, src []float64, c int) {
	for r, v := range src {
		m[r][c] = v
	}
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}

	return out
}

func splitComplexMatrix(m [][]complex128) (re, im [][]float64) {
	re = make([][]float64, len(m))
	im = make([][]float64, len(m))

	for i, row := range m {
		re[i], im[i] = splitComplex(row)
	}

	return re, im
}

func joinComplexMatrix(re, im [][]float64) [][]complex128 {
	out := make([][]complex128, len(re))
	for i := range out {
		out[i] = joinComplex(re[i], im[i])
	}

	return out
}
