package wavelet

import (
	"errors"
	"fmt"
)

// Errors returned by filter-set construction and transform configuration.
var (
	ErrEmptyFilter     = errors.New("wavelet: filter sequence must not be empty")
	ErrInvalidLevels   = errors.New("wavelet: level count must be >= 1")
	ErrInvalidPreset   = errors.New("wavelet: invalid preset")
	ErrRaggedMatrix    = errors.New("wavelet: matrix rows must have equal length")
	ErrInvalidOrder    = errors.New("wavelet: invalid filter order")
	ErrInvalidFFTSize  = errors.New("wavelet: response size must be a power of two >= filter length")
	ErrNilTransform    = errors.New("wavelet: nil transform")
	ErrUnknownPresetID = errors.New("wavelet: unknown preset name")
)

func validateLevels(levels int) error {
	if levels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLevels, levels)
	}

	return nil
}

func validateFilters(f FilterSet) error {
	switch {
	case len(f.analysisLow) == 0:
		return fmt.Errorf("%w: analysis lowpass", ErrEmptyFilter)
	case len(f.analysisHigh) == 0:
		return fmt.Errorf("%w: analysis highpass", ErrEmptyFilter)
	case len(f.synthesisLow) == 0:
		return fmt.Errorf("%w: synthesis lowpass", ErrEmptyFilter)
	case len(f.synthesisHigh) == 0:
		return fmt.Errorf("%w: synthesis highpass", ErrEmptyFilter)
	}

	return nil
}

// validateMatrix checks that all rows share the width of the first row and
// returns the dimensions.
func validateMatrix[T float64 | complex128](m [][]T) (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 {
		return 0, 0, nil
	}

	cols = len(m[0])

	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMatrix, i, len(row), cols)
		}
	}

	return rows, cols, nil
}
