package wavelet

// Biorthogonal spline analysis filters (lowpass, highpass). Synthesis filters
// are derived by NewBiorthogonal. Nr is the spline order of the synthesis
// side, Nd the order of the analysis side.

var coeffBior11Lo = []float64{
	0.70710678118654752440, 0.70710678118654752440,
}

var coeffBior11Hi = []float64{
	-0.70710678118654752440, 0.70710678118654752440,
}

var coeffBior13Lo = []float64{
	-0.088388347648318440550, 0.088388347648318440550, 0.70710678118654752440,
	0.70710678118654752440, 0.088388347648318440550, -0.088388347648318440550,
}

var coeffBior13Hi = []float64{
	0, 0, -0.70710678118654752440,
	0.70710678118654752440, 0, 0,
}

var coeffBior15Lo = []float64{
	0.016572815184059707603, -0.016572815184059707603, -0.12153397801643785576,
	0.12153397801643785576, 0.70710678118654752440, 0.70710678118654752440,
	0.12153397801643785576, -0.12153397801643785576, -0.016572815184059707603,
	0.016572815184059707603,
}

var coeffBior15Hi = []float64{
	0, 0, 0,
	0, -0.70710678118654752440, 0.70710678118654752440,
	0, 0, 0,
	0,
}

var coeffBior22Lo = []float64{
	0, -0.17677669529663688110, 0.35355339059327376220,
	1.0606601717798212866, 0.35355339059327376220, -0.17677669529663688110,
}

var coeffBior22Hi = []float64{
	0, 0.35355339059327376220, -0.70710678118654752440,
	0.35355339059327376220, 0, 0,
}

var coeffBior24Lo = []float64{
	0, 0.033145630368119415206, -0.066291260736238830413,
	-0.17677669529663688110, 0.41984465132951259261, 0.99436891104358245619,
	0.41984465132951259261, -0.17677669529663688110, -0.066291260736238830413,
	0.033145630368119415206,
}

var coeffBior24Hi = []float64{
	0, 0, 0,
	0.35355339059327376220, -0.70710678118654752440, 0.35355339059327376220,
	0, 0, 0,
	0,
}

var coeffBior26Lo = []float64{
	0, -0.0069053396600248781680, 0.013810679320049756336,
	0.046956309688169171542, -0.10772329869638809942, -0.16987135563661200293,
	0.44746600996961210528, 0.96674755240348294352, 0.44746600996961210528,
	-0.16987135563661200293, -0.10772329869638809942, 0.046956309688169171542,
	0.013810679320049756336, -0.0069053396600248781680,
}

var coeffBior26Hi = []float64{
	0, 0, 0,
	0, 0, 0.35355339059327376220,
	-0.70710678118654752440, 0.35355339059327376220, 0,
	0, 0, 0,
	0, 0,
}

var coeffBior28Lo = []float64{
	0, 0.0015105430506304420992, -0.0030210861012608841985,
	-0.012947511862546646565, 0.028916109826354177328, 0.052998481890690939939,
	-0.13491307360773605721, -0.16382918343409023454, 0.46257144047591652628,
	0.95164212189717852252, 0.46257144047591652628, -0.16382918343409023454,
	-0.13491307360773605721, 0.052998481890690939939, 0.028916109826354177328,
	-0.012947511862546646565, -0.0030210861012608841985, 0.0015105430506304420992,
}

var coeffBior28Hi = []float64{
	0, 0, 0,
	0, 0, 0,
	0, 0.35355339059327376220, -0.70710678118654752440,
	0.35355339059327376220, 0, 0,
	0, 0, 0,
	0, 0, 0,
}

var coeffBior31Lo = []float64{
	-0.35355339059327376220, 1.0606601717798212866, 1.0606601717798212866,
	-0.35355339059327376220,
}

var coeffBior31Hi = []float64{
	-0.17677669529663688110, 0.53033008588991064330, -0.53033008588991064330,
	0.17677669529663688110,
}

var coeffBior33Lo = []float64{
	0.066291260736238830413, -0.19887378220871649124, -0.15467960838455727096,
	0.99436891104358245619, 0.99436891104358245619, -0.15467960838455727096,
	-0.19887378220871649124, 0.066291260736238830413,
}

var coeffBior33Hi = []float64{
	0, 0, -0.17677669529663688110,
	0.53033008588991064330, -0.53033008588991064330, 0.17677669529663688110,
	0, 0,
}

var coeffBior35Lo = []float64{
	-0.013810679320049756336, 0.041432037960149269008, 0.052480581416189074077,
	-0.26792717880896527292, -0.071815532464258732947, 0.96674755240348294352,
	0.96674755240348294352, -0.071815532464258732947, -0.26792717880896527292,
	0.052480581416189074077, 0.041432037960149269008, -0.013810679320049756336,
}

var coeffBior35Hi = []float64{
	0, 0, 0,
	0, -0.17677669529663688110, 0.53033008588991064330,
	-0.53033008588991064330, 0.17677669529663688110, 0,
	0, 0, 0,
}

var coeffBior37Lo = []float64{
	0.0030210861012608841985, -0.0090632583037826525955, -0.016831765421310640534,
	0.074663985074018995191, 0.031332978707362884687, -0.30115912592283499910,
	-0.026499240945345469970, 0.95164212189717852252, 0.95164212189717852252,
	-0.026499240945345469970, -0.30115912592283499910, 0.031332978707362884687,
	0.074663985074018995191, -0.016831765421310640534, -0.0090632583037826525955,
	0.0030210861012608841985,
}

var coeffBior37Hi = []float64{
	0, 0, 0,
	0, 0, 0,
	-0.17677669529663688110, 0.53033008588991064330, -0.53033008588991064330,
	0.17677669529663688110, 0, 0,
	0, 0, 0,
	0,
}

// Cohen-Daubechies-Feauveau 9/7 pair, zero-padded to ten taps.
var coeffCDF97Lo = []float64{
	0, 0.037828455506995461393, -0.023849465019380001913,
	-0.11062440441842340885, 0.37740285561265376411, 0.85269867900940341931,
	0.37740285561265376411, -0.11062440441842340885, -0.023849465019380001913,
	0.037828455506995461393,
}

var coeffCDF97Hi = []float64{
	0, -0.064538882628938438637, 0.040689417609558436724,
	0.41809227322221220084, -0.78848561640566439785, 0.41809227322221220084,
	0.040689417609558436724, -0.064538882628938438637, 0,
	0,
}
