package wavelet

// Coiflet scaling filters. Order K has 6K taps, 2K vanishing wavelet moments
// and 2K-1 vanishing scaling moments.

var coeffCoif1 = []float64{
	-0.072732619512526448024, 0.33789766245748176967, 0.85257202021160042045,
	0.38486484686485774725, -0.072732619512526448024, -0.015655728135791992526,
}

var coeffCoif2 = []float64{
	0.016387336463203640427, -0.041464936786871774010, -0.067372554723725593805,
	0.38611006682276285042, 0.81272363544941349534, 0.41700518442323904805,
	-0.076488599078280754278, -0.059434418646431087307, 0.023680171946847768806,
	0.0056114348193688342456, -0.0018232088709110320946, -0.00072054944552034699507,
}

var coeffCoif3 = []float64{
	-0.0037935128643808016755, 0.0077825964256727457566, 0.023452696142077166243,
	-0.065771911281469367184, -0.061123390002972541277, 0.40517690240911819927,
	0.79377722262608717479, 0.42848347637736998101, -0.071799821619154834013,
	-0.082301927106299818487, 0.034555027573297733013, 0.015880544863669450942,
	-0.0090079761367306238987, -0.0025745176881367970103, 0.0011175187708306302235,
	0.00046621695982040286947, -0.000070983302506379005611, -0.000034599773197272773883,
}

var coeffCoif4 = []float64{
	0.00089231390253700296443, -0.0016294924252267858123, -0.0073461679362680497689,
	0.016068947131575026513, 0.026682304669604832607, -0.081266710249193723345,
	-0.056077319603569255660, 0.41530842700068227313, 0.78223893442428258983,
	0.43438603311435654244, -0.066627472366817156604, -0.096220424535952636960,
	0.039334422605589146331, 0.025082253337949606818, -0.015211728187697211597,
	-0.0056582838001308837069, 0.0037514346971460863492, 0.0012665610789256602060,
	-0.00058902022463321647799, -0.00025997433712225680320, 0.000062338854312787181126,
	0.000031229861599195265305, -0.0000032596479400307506783, -0.0000017849909144933466813,
}

var coeffCoif5 = []float64{
	-0.00021208186206749399965, 0.00035857774116175769127, 0.0021782943778456947604,
	-0.0041593126275786396555, -0.010131584846900274915, 0.023408322118927783078,
	0.028169744270532351894, -0.091921588060086083296, -0.052046670253554756651,
	0.42157126673075435177, 0.77429362286032745160, 0.43798230665916331793,
	-0.062037751574981950893, -0.10556315130733722647, 0.041287530472117831469,
	0.032674799467057350954, -0.019758391600965465139, -0.0091595073386761629949,
	0.0067615202206204168024, 0.0024315754425382884906, -0.0016616273039298787746,
	-0.00063755892612588110917, 0.00030185794166824474986, 0.00014035632812373242699,
	-0.000041219861924265502197, -0.000021270221672515613819, 0.0000037007277113394795164,
	0.0000020612203985788781567, -1.6237995172048335175e-7, -9.6040101127678921250e-8,
}
