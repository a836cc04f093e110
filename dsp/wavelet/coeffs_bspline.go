package wavelet

// B-spline pairs 1-0-d. The analysis lowpass is the order-1 (box) B-spline
// and the analysis highpass is the order-d dual spline lowpass modulated to
// high frequency, so the synthesis side carries the longer smooth filter.
// These are the Bior1.d banks with analysis and synthesis roles exchanged;
// 1-0-0 reuses the Bior1.1 (Haar) taps.

var coeffBSpline103Lo = []float64{
	0, 0, 0.70710678118654752440,
	0.70710678118654752440, 0, 0,
}

var coeffBSpline103Hi = []float64{
	0.088388347648318440550, 0.088388347648318440550, -0.70710678118654752440,
	0.70710678118654752440, -0.088388347648318440550, -0.088388347648318440550,
}

var coeffBSpline105Lo = []float64{
	0, 0, 0,
	0, 0.70710678118654752440, 0.70710678118654752440,
	0, 0, 0,
	0,
}

var coeffBSpline105Hi = []float64{
	-0.016572815184059707603, -0.016572815184059707603, 0.12153397801643785576,
	0.12153397801643785576, -0.70710678118654752440, 0.70710678118654752440,
	-0.12153397801643785576, -0.12153397801643785576, 0.016572815184059707603,
	0.016572815184059707603,
}
