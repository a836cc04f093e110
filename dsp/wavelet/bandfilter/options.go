package bandfilter

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the band filter.
var (
	ErrInvalidFactor   = errors.New("bandfilter: factor must be finite")
	ErrInvalidAccuracy = errors.New("bandfilter: accuracy must be in [0, 1]")
	ErrNoInputs        = errors.New("bandfilter: blend needs at least one input")
	ErrShapeMismatch   = errors.New("bandfilter: inputs must share the same shape")
)

const (
	defaultFactor   = 0.0
	defaultAccuracy = 0.0
)

type config struct {
	factor   float64
	accuracy float64
}

func defaultConfig() config {
	return config{
		factor:   defaultFactor,
		accuracy: defaultAccuracy,
	}
}

// Option configures a [Filter].
type Option func(*config) error

// WithFactor sets the signed detail-band factor (default 0). Detail
// coefficients are multiplied by 1+factor.
func WithFactor(factor float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(factor) || math.IsInf(factor, 0) {
			return fmt.Errorf("%w: %f", ErrInvalidFactor, factor)
		}

		cfg.factor = factor

		return nil
	}
}

// WithAccuracy sets the padding fraction (default 0, range [0, 1]). Each
// side of the input is extended by floor(n*accuracy) mirrored samples before
// transforming, which moves boundary artifacts out of the cropped result.
func WithAccuracy(accuracy float64) Option {
	return func(cfg *config) error {
		if !(accuracy >= 0 && accuracy <= 1) {
			return fmt.Errorf("%w: %f", ErrInvalidAccuracy, accuracy)
		}

		cfg.accuracy = accuracy

		return nil
	}
}
