package wavelet

// Fejer-Korovkin scaling filters. The squared lowpass response is the
// integral of the odd-harmonic part of the Fejer-Korovkin kernel of degree
// n, which gives a narrower transition band than Daubechies filters of the
// same length at the cost of vanishing moments. FKn uses degree n except FK4,
// which uses degree 3 (degree 4 reproduces D2). Factors are taken minimum
// phase; taps sum to sqrt(2).

var coeffFK4 = []float64{
	0.65392755150243299341, 0.75327249628890912960, 0.053179229684114530988,
	-0.046165715102361605199,
}

var coeffFK6 = []float64{
	0.42791502028397536081, 0.81291964435411331471, 0.35636952280358634641,
	-0.14643867874320485387, -0.077177761901014182815, 0.040625815575639063565,
}

var coeffFK8 = []float64{
	0.34921404685091776578, 0.78267781457368359536, 0.47529212343019779547,
	-0.099670695005818900082, -0.15998657439543108213, 0.043101149901578582426,
	0.042587185300863045283, -0.019001488282895753306,
}

var coeffFK14 = []float64{
	0.26037176930370085539, 0.68689147724663607004, 0.61155465394720985048,
	0.051421654128927564029, -0.24561392816100151247, -0.048575339077288753707,
	0.12428256092000188585, 0.022226739618766142267, -0.063997373038793996594,
	-0.0050743725474976209074, 0.029779711589290988008, -0.0032974791532950297575,
	-0.0092706133738605462683, 0.0035141009702991524377,
}

var coeffFK22 = []float64{
	0.19386516038401567043, 0.58941999729292725133, 0.67010428158002609965,
	0.21568306987597303220, -0.22801125446114742033, -0.16449345969729937619,
	0.11153282827798317547, 0.11017180041736682093, -0.066072919385192541757,
	-0.071852358700636935920, 0.043534625806656311972, 0.044782756149050429671,
	-0.029738529462038644098, -0.025975825758852377582, 0.020282054883467883343,
	0.012967848757714827923, -0.012885463371460100043, -0.0048402442054227803915,
	0.0071736970622667746045, 0.00036247911747387263846, -0.0026777001280296848444,
	0.00088071793825275979251,
}
