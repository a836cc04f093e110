package continuous

// Haar is the Haar wavelet supported on [0, 1).
type Haar struct{}

// Scaling returns the box function on [0, 1).
func (Haar) Scaling(x float64) float64 {
	if x >= 0 && x < 1 {
		return 1
	}

	return 0
}

// Wavelet returns 1 on [0, 1/2), -1 on [1/2, 1) and 0 elsewhere.
func (Haar) Wavelet(x float64) float64 {
	switch {
	case x >= 0 && x < 0.5:
		return 1
	case x >= 0.5 && x < 1:
		return -1
	default:
		return 0
	}
}
