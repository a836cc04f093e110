package wavelet

// Legendre scaling filters. Order n has 2n taps with
// h[k] = sqrt(2) * a(k) * a(2n-1-k), a(k) = binomial(2k, k) / 4^k, so the
// lowpass response is sqrt(2) * P(2n-1, cos(w/2)) up to phase. The taps are
// symmetric and sum to sqrt(2) but are not power complementary, so these
// banks do not reconstruct exactly. Order 1 is Haar.

var coeffLegendre2 = []float64{
	0.44194173824159220275, 0.26516504294495532165, 0.26516504294495532165,
	0.44194173824159220275,
}

var coeffLegendre3 = []float64{
	0.34802911886525385967, 0.19334951048069658870, 0.16572815184059707603,
	0.16572815184059707603, 0.19334951048069658870, 0.34802911886525385967,
}

var coeffLegendre4 = []float64{
	0.29623907141506727341, 0.15951334614657468568, 0.13051091957447019737,
	0.12084344405043536794, 0.12084344405043536794, 0.13051091957447019737,
	0.15951334614657468568, 0.29623907141506727341,
}

var coeffLegendre5 = []float64{
	0.26229501114875748166, 0.13886206472581278441, 0.11108965178065022753,
	0.099695841341609178550, 0.095164212189717852252, 0.095164212189717852252,
	0.099695841341609178550, 0.11108965178065022753, 0.13886206472581278441,
	0.26229501114875748166,
}

var coeffLegendre6 = []float64{
	0.23785388510989598905, 0.12459013029565980379, 0.098360629180784055623,
	0.086788790453632990256, 0.081002871090057457572, 0.078510475056517228108,
	0.078510475056517228108, 0.081002871090057457572, 0.086788790453632990256,
	0.098360629180784055623, 0.12459013029565980379, 0.23785388510989598905,
}

var coeffLegendre7 = []float64{
	0.21917625631120223350, 0.11397165328182516142, 0.089195206916210995895,
	0.077868831434787377368, 0.071721292110988373892, 0.068346172482235979826,
	0.066827368649297402497, 0.066827368649297402497, 0.068346172482235979826,
	0.071721292110988373892, 0.077868831434787377368, 0.089195206916210995895,
	0.11397165328182516142, 0.21917625631120223350,
}

var coeffLegendre8 = []float64{
	0.20430358177579922480, 0.10567426643575821972, 0.082191096116700837563,
	0.071232283301140725888, 0.065038171709737184507, 0.061321704754895059678,
	0.059170065991565408461, 0.058175611100950863781, 0.058175611100950863781,
	0.059170065991565408461, 0.061321704754895059678, 0.065038171709737184507,
	0.071232283301140725888, 0.082191096116700837563, 0.10567426643575821972,
	0.20430358177579922480,
}

var coeffLegendre9 = []float64{
	0.19209794499691416082, 0.098959547422652749512, 0.076613843165924709300,
	0.066046416522348887328, 0.059931007585094360723, 0.056095423099648321637,
	0.053656491660533177218, 0.052196451071130913892, 0.051509655662300243973,
	0.051509655662300243973, 0.052196451071130913892, 0.053656491660533177218,
	0.056095423099648321637, 0.059931007585094360723, 0.066046416522348887328,
	0.076613843165924709300, 0.098959547422652749512, 0.19209794499691416082,
}
