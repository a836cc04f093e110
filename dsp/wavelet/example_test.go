package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func ExampleTransform_Forward() {
	t, err := wavelet.NewFromPreset(wavelet.PresetHaar, wavelet.WithLevels(1))
	if err != nil {
		panic(err)
	}

	coeffs := t.Forward([]float64{1, 1, 1, 1, -1, -1, -1, -1})
	fmt.Printf("%.4f\n", coeffs)

	restored := t.Backward(coeffs)
	fmt.Printf("%.4f\n", restored)
	// Output:
	// [1.4142 1.4142 -1.4142 -1.4142 0.0000 0.0000 0.0000 0.0000]
	// [1.0000 1.0000 1.0000 1.0000 -1.0000 -1.0000 -1.0000 -1.0000]
}

func ExampleTransform_Forward2D() {
	t, err := wavelet.NewFromPreset(wavelet.PresetHaar, wavelet.WithLevels(1))
	if err != nil {
		panic(err)
	}

	coeffs, err := t.Forward2D([][]float64{
		{1, 1},
		{1, 1},
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", coeffs)
	// Output: [[2.0000 0.0000] [0.0000 0.0000]]
}

func ExampleParsePreset() {
	p, err := wavelet.ParsePreset("bior2.2")
	if err != nil {
		panic(err)
	}

	fs, err := p.FilterSet()
	if err != nil {
		panic(err)
	}

	fmt.Println(p, len(fs.AnalysisLow()), p.Orthogonal())
	// Output: Bior2.2 6 false
}

func ExampleBands() {
	for _, b := range wavelet.Bands(11, 2) {
		fmt.Printf("%-13s level %d [%d, %d)\n", b.Kind, b.Level, b.Start, b.End)
	}
	// Output:
	// approximation level 2 [0, 2)
	// detail        level 2 [2, 4)
	// pass-through  level 2 [4, 5)
	// detail        level 1 [5, 10)
	// pass-through  level 1 [10, 11)
}
