package wavelet

import "math/bits"

const (
	defaultLevels     = 2
	defaultNormalized = false
)

type config struct {
	levels     int
	normalized bool
}

func defaultConfig() config {
	return config{
		levels:     defaultLevels,
		normalized: defaultNormalized,
	}
}

// Option configures a [Transform].
type Option func(*config) error

// WithLevels sets the requested number of decomposition levels (default 2,
// must be >= 1). The count actually used for a signal of length n is
// min(floor(log2 n), levels).
func WithLevels(levels int) Option {
	return func(cfg *config) error {
		if err := validateLevels(levels); err != nil {
			return err
		}

		cfg.levels = levels

		return nil
	}
}

// WithNormalized enables the per-stage 1/sqrt(2) analysis and sqrt(2)
// synthesis scaling (default false).
func WithNormalized(normalized bool) Option {
	return func(cfg *config) error {
		cfg.normalized = normalized

		return nil
	}
}

// Transform is a multilevel discrete wavelet transform using circular
// convolution. The coefficients of a forward transform are packed in Mallat
// order: the coarsest approximation first, followed by detail bands from
// coarse to fine.
//
// A Transform holds no buffers between calls. Forward and Backward may run
// concurrently on one instance as long as no setter is called meanwhile.
type Transform struct {
	filters    FilterSet
	levels     int
	normalized bool
}

// New creates a transform for the given filter set.
func New(filters FilterSet, opts ...Option) (*Transform, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Transform{
		filters:    filters,
		levels:     cfg.levels,
		normalized: cfg.normalized,
	}, nil
}

// NewFromPreset is a convenience wrapper around [Preset.FilterSet] and [New].
func NewFromPreset(p Preset, opts ...Option) (*Transform, error) {
	filters, err := p.FilterSet()
	if err != nil {
		return nil, err
	}

	return New(filters, opts...)
}

// Levels returns the requested level count.
func (t *Transform) Levels() int { return t.levels }

// SetLevels changes the requested level count. It returns
// [ErrInvalidLevels] if levels < 1 and leaves the transform unchanged.
func (t *Transform) SetLevels(levels int) error {
	if err := validateLevels(levels); err != nil {
		return err
	}

	t.levels = levels

	return nil
}

// Normalized reports whether per-stage sqrt(2) scaling is applied.
func (t *Transform) Normalized() bool { return t.normalized }

// SetNormalized enables or disables per-stage sqrt(2) scaling.
func (t *Transform) SetNormalized(normalized bool) { t.normalized = normalized }

// Filters returns the filter set in use.
func (t *Transform) Filters() FilterSet { return t.filters }

// SetFilters replaces the filter set. Empty sequences are rejected with
// [ErrEmptyFilter].
func (t *Transform) SetFilters(filters FilterSet) error {
	if err := validateFilters(filters); err != nil {
		return err
	}

	t.filters = filters

	return nil
}

// ActiveLevels returns the number of levels applied to a signal of length n.
func (t *Transform) ActiveLevels(n int) int {
	return ActiveLevels(n, t.levels)
}

// ActiveLevels returns min(floor(log2 n), levels), or 0 for n < 2.
func ActiveLevels(n, levels int) int {
	if n < 2 || levels < 1 {
		return 0
	}

	return min(bits.Len(uint(n))-1, levels)
}
