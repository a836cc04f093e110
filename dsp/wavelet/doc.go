// Package wavelet provides a multilevel discrete wavelet transform (DWT) with
// circular boundary handling and a catalog of standard filter banks.
//
// # Filter banks
//
// A [FilterSet] holds the analysis and synthesis lowpass/highpass taps. It is
// built from a scaling sequence with [NewOrthogonal], from an explicit
// scaling/wavelet pair with [NewBiorthogonal], or from four explicit
// sequences with [NewFilterSet]. Named filter banks are available as
// [Preset] values:
//
//	fs, err := wavelet.PresetD4.FilterSet()
//	p, err := wavelet.ParsePreset("bior2.2")
//
// The catalog covers Haar, Daubechies D1-D38, Symlets 1-20, Coiflets 1-5,
// the spline biorthogonal family, CDF 5/3, CDF 9/7, Fejer-Korovkin FK4-FK22,
// Legendre 1-9, the B-spline pairs 1-0-0, 1-0-3 and 1-0-5, and the
// Meyer-type Meyer and Kravchenko filters. All lowpass filters have a DC
// gain of sqrt(2). The Legendre filters of order 2 and up are not power
// complementary and do not reconstruct exactly; see
// [Preset.PerfectReconstruction].
//
// # Transform
//
// [Transform] applies the filter bank level by level. Each level convolves
// the active prefix circularly, decimates by two, and stores the lowpass
// output in the first half and the highpass output in the second half
// (Mallat layout):
//
//	t, err := wavelet.New(fs, wavelet.WithLevels(3))
//	coeffs := t.Forward(signal)
//	restored := t.Backward(coeffs)
//
// The number of levels actually applied is min(floor(log2 n), levels). When
// a level sees an odd active length, its last sample passes through
// unchanged. [Bands] describes the resulting coefficient layout.
//
// 2-D inputs are row-major matrices. Every level transforms the active rows,
// then the active columns; [Transform.Backward2D] undoes this in reverse
// order. Levels are clamped per dimension, so a 1 x n matrix gives the same
// coefficients as the 1-D transform of its row. Complex inputs are transformed by applying the real filter bank to
// the real and imaginary parts.
//
// # Normalization
//
// Catalog taps are orthonormal: they sum to sqrt(2), so every analysis stage
// already carries a gain of sqrt(2) at DC. The default, normalized=false,
// applies the taps as they are and therefore preserves energy for
// orthogonal presets; one Haar level maps [1 1 1 1 -1 -1 -1 -1] to
// [sqrt2 sqrt2 -sqrt2 -sqrt2 0 0 0 0]. With [WithNormalized] enabled the
// analysis outputs are additionally divided by sqrt(2) and the synthesis
// outputs multiplied by sqrt(2), giving [1 1 -1 -1 0 0 0 0] instead.
// Reconstruction is exact either way.
package wavelet
