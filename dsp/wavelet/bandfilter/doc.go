// Package bandfilter rescales the detail bands of a wavelet decomposition.
//
// A [Filter] pads its input by symmetric reflection to a length that the
// configured [wavelet.Transform] can decompose without truncation, runs the
// forward transform, multiplies every coefficient outside the coarsest
// approximation block by 1+factor, reconstructs, and crops the centered
// region back to the input extent. A factor of -1 removes all detail, a
// positive factor sharpens.
//
// [Filter.Blend] averages several equally shaped inputs in the wavelet
// domain with the same band scaling and reconstructs once:
//
//	f, err := bandfilter.New(t, bandfilter.WithFactor(0.5), bandfilter.WithAccuracy(0.1))
//	sharpened := f.Apply(signal)
//	mean, err := f.Blend(a, b, c)
package bandfilter
