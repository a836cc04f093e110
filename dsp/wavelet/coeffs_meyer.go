package wavelet

// Discrete Meyer-type scaling filters, 102 taps with the centre tap at
// index 50. Each table starts from the sampled spectrum sqrt(2)*Phi(2w)
// (see DesignMeyer) and is then corrected by Gauss-Newton steps onto the
// orthonormality conditions, so the banks reconstruct to rounding error.
// The magnitude response stays within 5e-3 of the ideal spectrum.

// coeffMeyer uses the polynomial auxiliary function of meyeraux.Nu.
var coeffMeyer = []float64{
	-8.3082544892753646e-10, 2.6877487888756669e-09, 2.4395612980873523e-09,
	-7.5738798159470598e-09, 9.0469182281957059e-10, -1.7046204787641999e-08,
	-3.6316174236178729e-09, 7.1986549704507769e-08, -1.0272522732174456e-08,
	-8.6130984995703019e-10, -1.3938981971376779e-08, -2.5420766133917045e-07,
	1.3685038968608559e-07, 1.3082637170605922e-07, 1.8770254589464415e-07,
	-3.8168239191257853e-07, -0.0000015068779942056326, 0.0000045640276507545268,
	6.7998201095251874e-07, -7.2434913646621396e-07, -0.0000011926176328232521,
	-0.000017697425688533692, 0.000013692758671461588, 0.000011869431075269936,
	-0.000025604640605061491, 0.000028264051648676136, 0.000017415699048134796,
	-0.000079592758250291121, 0.000010406263157185360, 0.00013138005141786162,
	-0.000033749281388676816, -0.00014643765575562387, -0.00014251603292800294,
	0.00022468923534792832, 0.00087698457917055812, -0.00066269799576118625,
	-0.0026704032555638097, 0.0022406732446805140, 0.0059707611539750920,
	-0.0063464784389440131, -0.011021028878323373, 0.015212603508979242,
	0.017448159989701353, -0.032125583268219661, -0.024315583913296586,
	0.063673721600413569, 0.030610554018952633, -0.13268701807773189,
	-0.035056000717479191, 0.44410166500357051, 0.74374404628111401,
	0.44410126449267057, -0.035056000717479191, -0.13268791729513127,
	0.030610554018952633, 0.063676893802523823, -0.024315583913296586,
	-0.032119483219000482, 0.017448159989701353, 0.015199713366484534,
	-0.011021028878323373, -0.0063742205341598057, 0.0059707611539750920,
	0.0022584273856105807, -0.0026704032555638097, -0.00064756052314206270,
	0.00087698457917055812, 0.00021538397540407016, -0.00014251603292800294,
	-0.00016355022986376302, -0.000033749281388676816, 0.00013414872371258899,
	0.000010406263157185360, -0.000073374847865128942, 0.000017415699048134796,
	0.000034072753403581575, -0.000025604640605061491, -0.000015523948516519011,
	0.000013692758671461588, 0.0000075575749868739228, -0.0000011926176328232521,
	-0.0000016575746618261082, 6.7998201095251874e-07, 3.2901966788000344e-08,
	-0.0000015068779942056326, -2.8507511360565737e-07, 1.8770254589464415e-07,
	1.1362731885977094e-07, 1.3685038968608559e-07, 2.1770908283860827e-09,
	-1.3938981971376779e-08, 8.9757594644406055e-09, -1.0272522732174456e-08,
	-1.4034649757812084e-08, -3.6316174236178729e-09, 4.9426095057541938e-09,
	9.0469182281957059e-10, -1.0730984379111055e-09, 2.4395612980873523e-09,
	7.8451013187427895e-10, -8.3082544892753646e-10, -2.5682122132939185e-10,
}

// coeffKravchenko replaces the auxiliary function with the Rvachev atomic
// function, nu(x) = up(x-1), whose transition band is infinitely smooth.
var coeffKravchenko = []float64{
	9.0279578495200358e-11, -3.0666217697795932e-11, -4.252538412484485e-10,
	-4.0177500112950086e-11, 2.3946813983207492e-09, -7.8028506198065939e-10,
	-1.1369526580748226e-08, 1.0993655740336966e-09, 5.3997187803036382e-08,
	-1.3678758423388013e-08, -1.9956681046749996e-07, 2.744516709261213e-08,
	6.9243639401939231e-07, -1.8979044341230221e-07, -0.0000019933307232832332,
	4.5836773470559161e-07, 0.0000054645303076816014, -0.0000020082344828782301,
	-0.000013251267766912859, 0.0000044904052911575465, 0.000031116979501385049,
	-0.000014851324815396391, -0.000066515088974998765, 0.000031293008674389488,
	0.00013670242351854873, -0.000079978372732963037, -0.00022746203598968522,
	0.00016089475541067381, 0.00033839949080347406, -0.00036424986392010307,
	-0.00040214754801666503, 0.00059720238536342327, 0.00022784131169922595,
	-0.00074966972032974074, 0.00050754868541317427, 0.00051291589535860547,
	-0.0023706248264907643, 0.00076473126767083173, 0.0059763170925799065,
	-0.0048376967355423369, -0.011441647663713713, 0.014002946677350926,
	0.018079317318020805, -0.031473566489384174, -0.024774141970364604,
	0.063199805560231193, 0.031002259274327662, -0.13248042547419028,
	-0.035377070781128554, 0.44414356073920769, 0.74384548088663838,
	0.44414451410266625, -0.035377070781128554, -0.13246488156525152,
	0.031002259274327662, 0.063245917537249077, -0.024774141970364604,
	-0.031413334018334925, 0.018079317318020805, 0.014024267082020023,
	-0.011441647663713713, -0.0048453937320466472, 0.0059763170925799065,
	0.00078357693338885754, -0.0023706248264907643, 0.00059553493472187628,
	0.00050754868541317427, -0.00076360727512649474, 0.00022784131169922595,
	0.00063926693139712402, -0.00040214754801666503, -0.00047159550412092946,
	0.00033839949080347406, 0.00036889676588985779, -0.00022746203598968522,
	-0.00024063702813799053, 0.00013670242351854873, 0.00014094447905769715,
	-0.000066515088974998765, -0.000084199582834117365, 0.000031116979501385049,
	0.000048890586367027451, -0.000013251267766912859, -0.000025631712182080425,
	0.0000054645303076816014, 0.000012450652306396065, -0.0000019933307232832332,
	-0.0000054727362013239135, 6.9243639401939231e-07, 0.0000021980459510977310,
	-1.9956681046749996e-07, -8.0560679159877228e-07, 5.3997187803036382e-08,
	2.6393572878114065e-07, -1.1369526580748226e-08, -7.3494730089773486e-08,
	2.3946813983207492e-09, 1.6970741388454611e-08, -4.252538412484485e-10,
	-2.8520558584608695e-09, 9.0279578495200358e-11, 2.6577787888908238e-10,
}
