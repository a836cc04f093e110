package wavelet

// Minimum-phase Daubechies scaling filters. Order N has 2N taps and N
// vanishing moments; taps sum to sqrt(2).

var coeffDB1 = []float64{
	0.70710678118654752440, 0.70710678118654752440,
}

var coeffDB2 = []float64{
	0.48296291314453414337, 0.83651630373780790558, 0.22414386804201338103,
	-0.12940952255126038117,
}

var coeffDB3 = []float64{
	0.33267055295008261600, 0.80689150931109257649, 0.45987750211849157010,
	-0.13501102001025458870, -0.085441273882026661693, 0.035226291885709536603,
}

var coeffDB4 = []float64{
	0.23037781330889650086, 0.71484657055291564709, 0.63088076792985890788,
	-0.027983769416859854211, -0.18703481171909308408, 0.030841381835560763627,
	0.032883011666885199735, -0.010597401785069032105,
}

var coeffDB5 = []float64{
	0.16010239797419291448, 0.60382926979718967054, 0.72430852843777292773,
	0.13842814590132073151, -0.24229488706638203186, -0.032244869584638374648,
	0.077571493840045713523, -0.0062414902127982742742, -0.012580751999081999469,
	0.0033357252854737712780,
}

var coeffDB6 = []float64{
	0.11154074335010946362, 0.49462389039845308568, 0.75113390802109535068,
	0.31525035170919762909, -0.22626469396543982008, -0.12976686756726193556,
	0.097501605587323049102, 0.027522865530305728626, -0.031582039317486029565,
	0.00055384220116149613925, 0.0047772575109455106396, -0.0010773010853084795649,
}

var coeffDB7 = []float64{
	0.077852054085009179020, 0.39653931948191730654, 0.72913209084623511992,
	0.46978228740519312247, -0.14390600392856497541, -0.22403618499387498264,
	0.071309219266830264751, 0.080612609151083071913, -0.038029936935014413580,
	-0.016574541630666880654, 0.012550998556099840613, 0.00042957797292136652113,
	-0.0018016407040474909153, 0.00035371379997452024845,
}

var coeffDB8 = []float64{
	0.054415842243104009955, 0.31287159091429997066, 0.67563073629728980681,
	0.58535468365420671277, -0.015829105256349305667, -0.28401554296154692652,
	0.00047248457391328277036, 0.12874742662047845886, -0.017369301001807546170,
	-0.044088253930794751507, 0.013981027917398281649, 0.0087460940474057767164,
	-0.0048703529934515743104, -0.00039174037337694704630, 0.00067544940645056936637,
	-0.00011747678412476953373,
}

var coeffDB9 = []float64{
	0.038077947363878346589, 0.24383467461259035373, 0.60482312369011111190,
	0.65728807805130053808, 0.13319738582500757619, -0.29327378327917490881,
	-0.096840783222976460514, 0.14854074933810638014, 0.030725681479333379212,
	-0.067632829061329973676, 0.00025094711483145195759, 0.022361662123679097205,
	-0.0047232047577513972779, -0.0042815036824634298345, 0.0018476468830562264766,
	0.00023038576352319596721, -0.00025196318894271013697, 0.000039347320316271599481,
}

var coeffDB10 = []float64{
	0.026670057900555553587, 0.18817680007769148902, 0.52720118893172558648,
	0.68845903945360356574, 0.28117234366057746075, -0.24984642432731537942,
	-0.19594627437737704350, 0.12736934033579326008, 0.093057364603572351160,
	-0.071394147166397087145, -0.029457536821875812858, 0.033212674059341001740,
	0.0036065535669561696554, -0.010733175483330575044, 0.0013953517470529011658,
	0.0019924052951850561172, -0.00068585669495971162656, -0.00011646685512928545095,
	0.000093588670320069591334, -0.000013264202894521244812,
}

var coeffDB11 = []float64{
	0.018694297761471084025, 0.14406702115062451280, 0.44989976435604533477,
	0.68568677491620051112, 0.41196436894790746293, -0.16227524502749036224,
	-0.27423084681794696120, 0.066043588196683191901, 0.14981201246637849641,
	-0.046479955116684187272, -0.066438785695025205279, 0.031335090219046076031,
	0.020840904360181063023, -0.015364820906201599426, -0.0033408588730144456061,
	0.0049284176560590411232, -0.00030859285881514316518, -0.00089302325066626461339,
	0.00024915252355282349887, 0.000054439074699368471674, -0.000034634984186984995541,
	0.0000044942742772365100954,
}

var coeffDB12 = []float64{
	0.013112257957229517507, 0.10956627282118515461, 0.37735513521421265709,
	0.65719872257930708930, 0.51588647842781560876, -0.044763885653774626668,
	-0.31617845375278553686, -0.023779257256069727684, 0.18247860592757967985,
	0.0053595696743521503283, -0.096432120096507082027, 0.010849130255822184381,
	0.041546277495084440739, -0.012218649069748280720, -0.012840825198300683295,
	0.0067114990087955091778, 0.0022486072409952376000, -0.0021795036186277604716,
	0.0000065451282125095955665, 0.00038865306282093144359, -0.000088504109208204324208,
	-0.000024241545757030784030, 0.000012776952219379766587, -0.0000015290717580685109027,
}

var coeffDB13 = []float64{
	0.0092021335389623679730, 0.082861243872902779644, 0.31199632216043806340,
	0.61105585115878765282, 0.58888957043121890807, 0.086985726179647237310,
	-0.31497290771138863300, -0.12457673075081525894, 0.17947607942933984323,
	0.072948933656777163809, -0.10580761818793432645, -0.026488406475343694640,
	0.056139477100283428862, 0.0023799722540590788115, -0.023831420710323649032,
	0.0039239414487974162433, 0.0072555894016175661945, -0.0027619112346568621780,
	-0.0013156739118922989366, 0.00093232613086726338622, 0.000049251525126289461921,
	-0.00016512898855650548946, 0.000030678537579325493466, 0.000010441930571408137082,
	-0.0000047004164793608683257, 5.2200350984548646917e-7,
}

var coeffDB14 = []float64{
	0.0064611534600879478182, 0.062364758849398898328, 0.25485026779262135367,
	0.55430561794089383599, 0.63118784910485677956, 0.21867068775890652149,
	-0.27168855227874804141, -0.21803352999327604476, 0.13839521386480659107,
	0.13998901658446070125, -0.086748411568169689046, -0.071548955504046130736,
	0.055237126259216044116, 0.026981408307912916974, -0.030185351540390635187,
	-0.0056150495303569591332, 0.012789493266333408962, -0.00074621898926838493718,
	-0.0038496388680221874458, 0.0010616910856067618430, 0.00070802115423552785864,
	-0.00038683194731295448211, -0.000041777245770372597353, 0.000068755042526975096039,
	-0.000010337209184570773947, -0.0000043897049017813941153, 0.0000017249946753678127699,
	-1.7871399683113590763e-7,
}

var coeffDB15 = []float64{
	0.0045385373615788988815, 0.046743394892766271892, 0.20602386398699573154,
	0.49263177170813962361, 0.64581314035742435818, 0.33900253545473152769,
	-0.19320413960914542871, -0.28888259656696564625, 0.065282952848772816923,
	0.19014671400712298235, -0.039666176555790944484, -0.11112093603723169337,
	0.033877143923507686209, 0.054780550584507612689, -0.025767007328439962586,
	-0.020810050169693081678, 0.015083918027835902363, 0.0051010003604075431697,
	-0.0064877345603157449952, -0.00024175649076162428117, 0.0019433239803822115418,
	-0.00037348235413761699201, -0.00035956524436246881216, 0.00015589648992059974795,
	0.000025792699155318936809, -0.000028133296266047813648, 0.0000033629871817375798031,
	0.0000018112704079405770838, -6.3168823258816644212e-7, 6.1333599133057520291e-8,
}

var coeffDB16 = []float64{
	0.0031892209253477380298, 0.034907714323673346410, 0.16506428348885311790,
	0.43031272284600381374, 0.63735633208378889863, 0.44029025688635690004,
	-0.089751089402489642857, -0.32706331052791770465, -0.027918208133028276683,
	0.21119069394710428872, 0.027340263752716041365, -0.13238830556381039045,
	-0.0062397227524748717657, 0.075924236044276315821, -0.0075889743688577376385,
	-0.036888397691730142334, 0.010297659640955969412, 0.013993768859828731030,
	-0.0069900145634139166703, -0.0036442796214983899322, 0.0031280233812062688317,
	0.00040789698084971283624, -0.00094102174935956758893, 0.00011424152003872239264,
	0.00017478724522533818038, -0.000061035966214109358352, -0.000013945668988208893452,
	0.000011336608661276258588, -0.0000010435713423116065015, -7.3636567854512055121e-7,
	2.3087840868575458664e-7, -2.1093396301007430970e-8,
}

var coeffDB17 = []float64{
	0.0022418070010373128535, 0.025985393703606043389, 0.13121490330782440658,
	0.37035072415264115045, 0.61099661568462281819, 0.51831576405693783933,
	0.027314970403293635004, -0.32832074836396173609, -0.12659975221588270287,
	0.19731058956501099279, 0.10113548917747027215, -0.12681569177828631109,
	-0.057091419631676927289, 0.081105986654160885080, 0.022312336178103795953,
	-0.046922438389269737333, -0.0032709555358192937817, 0.022733676583946270318,
	-0.0030429899813546370686, -0.0086029215203228548317, 0.0029679966915260948728,
	0.0023012052421535456243, -0.0014368453048029761262, -0.00032813251940983797140,
	0.00043946542776864367784, -0.000025610109566548458827, -0.000082048032024533918391,
	0.000023186813798745950845, 0.0000069906009850767512732, -0.0000045059424772229881941,
	3.0165496099945574156e-7, 2.9577009333168567550e-7, -8.4239484460026801788e-8,
	7.2674929685616081109e-9,
}

var coeffDB18 = []float64{
	0.0015763102184407604315, 0.019288531724146377059, 0.10358846582242359622,
	0.31467894133703169906, 0.57182680776660722348, 0.57180165488865133529,
	0.14722311196992814158, -0.29365404073655874425, -0.21648093400514297112,
	0.14953397556537778935, 0.16708131276325740451, -0.092331884150846280604,
	-0.10675224665982848559, 0.064887216211905442819, 0.057051247738536884121,
	-0.044526141902982324716, -0.023733210395860001033, 0.026670705926470590300,
	0.0062621679543057074852, -0.013051480946612001773, 0.00011863003385811746573,
	0.0049433436054667381307, -0.0011187326669924970728, -0.0013405962983361066295,
	0.00062846568296514571256, 0.00021358156191034068840, -0.00019864855231174794858,
	-1.5359171235347246751e-7, 0.000037412378807400381811, -0.0000085206025374466952039,
	-0.0000033326344788858218888, 0.0000017687129836276154559, -7.6916326898851761460e-8,
	-1.1760987670282316985e-7, 3.0688358630451748009e-8, -2.5079344549485982672e-9,
}

var coeffDB19 = []float64{
	0.0011086697631817105711, 0.014281098450764397374, 0.081278113265459550653,
	0.26438843174089678467, 0.52443637746465491534, 0.60170454912753789489,
	0.26089495265103882929, -0.22809139421548264637, -0.28583863175582624185,
	0.074652269708103266368, 0.21234974330627848881, -0.033518541902302878682,
	-0.14278569503873657498, 0.027584350625628668750, 0.086906755555812232488,
	-0.026501236250123040899, -0.045674226277230908056, 0.021623767409585047130,
	0.019375549889176127646, -0.013988388678535141633, -0.0058669222810121747266,
	0.0070407473671052431530, 0.00076895435925754835597, -0.0026875518007015820040,
	0.00034180865345859577657, 0.00073580252050543520703, -0.00026067613567862800573,
	-0.00012460079173415877534, 0.000087112704672199229654, 0.0000051059504870738860530,
	-0.000016640176297154944546, 0.0000030109643162965263397, 0.0000015319314766911930639,
	-6.8627556577691427019e-7, 1.4470882987978445421e-8, 4.6369377757826042234e-8,
	-1.1164020670358258164e-8, 8.6668488389976193503e-10,
}

var coeffDB20 = []float64{
	0.00077995361366684632159, 0.010549394624950398325, 0.063423780459081514976,
	0.21994211355139704501, 0.47269618531090169637, 0.61049323893859382016,
	0.36150229873933106292, -0.13921208801148387258, -0.32678680043403496740,
	-0.016727088309077007575, 0.22829105081991632297, 0.039850246457771202198,
	-0.15545875070726795593, -0.024716827338613584016, 0.10229171917444255789,
	0.0056322468573074355070, -0.061722899624680459733, 0.0058746818118118264913,
	0.032294299530769581759, -0.0087893249239015613488, -0.013810526137151920078,
	0.0067216273022594568353, 0.0044205423870457909631, -0.0035814942596096227776,
	-0.00083156217282255691925, 0.0013925596193231363239, -0.000053497598439976950518,
	-0.00038510474869921760607, 0.00010153288973670290508, 0.000067742808283777295580,
	-0.000037105861833947128642, -0.0000043761438621839968104, 0.0000072412482876736201028,
	-0.0000010119940100188861503, -6.8470795970005568942e-7, 2.6339242262700010841e-7,
	2.0143220235505126943e-10, -1.8148432482996959732e-8, 4.0561270555518327661e-9,
	-2.9988364896193195664e-10,
}

var coeffDB21 = []float64{
	0.00054882250985268370868, 0.0077766390523547837543, 0.049247771538177274914,
	0.18135962544038151563, 0.41968794493936277309, 0.60150609493500389756,
	0.44459045192760034036, -0.035722919617255290459, -0.33566408953052950948,
	-0.11239707156845098135, 0.21156452768087239238, 0.11523329843968710420,
	-0.13994042493254722492, -0.081775942980863828874, 0.096600390323724220702,
	0.045723405749228792393, -0.064977504893732320633, -0.018653859202118515341,
	0.039726835427850441752, 0.0033577563903381108425, -0.020892053677979079488,
	0.0024034709208054347624, 0.0089888243819719118753, -0.0028913343485889012474,
	-0.0029583740389328312808, 0.0017166070406306241385, 0.00063941850051203021464,
	-0.00069067111708210165073, -0.000031964062776804371937, 0.00019366465041650806153,
	-0.000036355202500863383094, -0.000034996659849874479540, 0.000015354825092760492831,
	0.0000027903305398144870461, -0.0000030900171645456991972, 3.1660954423670305566e-7,
	2.9921366304648527944e-7, -1.0004008790305973320e-7, -2.2540149746733301316e-9,
	7.0580335412311218590e-9, -1.4719541976503652652e-9, 1.0388055710237065530e-10,
}

var coeffDB22 = []float64{
	0.00038626323149109821585, 0.0057218546313345391208, 0.038069937236411084948,
	0.14836754089011142850, 0.36772868344603747886, 0.57843273100952442714,
	0.50790109062216390184, 0.073724501183630151656, -0.31272658042829619180,
	-0.20056840610488709393, 0.16409318810676648186, 0.17997318799289130373,
	-0.097110798409114709693, -0.13176813768668341075, 0.068076314392732215567,
	0.084557376366826075034, -0.051364254297444132457, -0.046530811827506713479,
	0.036970846620698020576, 0.020586707627565360441, -0.023480001344493188686,
	-0.0062137828493646584991, 0.012564725218343374069, 0.00030013739850764359512,
	-0.0054556919861567170766, 0.0010442607391860253234, 0.0018270104956572790801,
	-0.00077069098812311962329, -0.00042378739983918007995, 0.00032860941421367873420,
	0.000043458999045320033790, -0.000094052236348157604218, 0.000011374349662125931727,
	0.000017373756957561893562, -0.0000061667293164675783722, -0.0000015651791319951601593,
	0.0000012951820573188775739, -8.7798798733612862769e-8, -1.2833362287517544178e-7,
	3.7612287493373623662e-8, 1.6801714049229888856e-9, -2.7296231466329760834e-9,
	5.3359388216674899052e-10, -3.6021134843395547038e-11,
}

var coeffDB23 = []float64{
	0.00027190419412828884142, 0.0042027488931838335384, 0.029310003657884115147,
	0.12051553178397193363, 0.31845081385286523634, 0.54493114787352042827,
	0.55101851724191939135, 0.18139262536384001363, -0.26139214803064411189,
	-0.27140209860784305566, 0.092125407082418052606, 0.22357365824204023171,
	-0.033037447094289378750, -0.16401132153187592502, 0.020283074575649299749,
	0.11229704361810728870, -0.021126212356227241007, -0.070207391574901109462,
	0.021765856834499975608, 0.038495332522569199011, -0.018523513650156159798,
	-0.017537101003035845379, 0.012751943931528286462, 0.0060318406500241628163,
	-0.0070753192737061528142, -0.0011348654733562516913, 0.0031228764498181449974,
	-0.00024650140051635120319, -0.0010612312288866513211, 0.00031942049270990115037,
	0.00025676245200787372056, -0.00015002185034903409677, -0.000033788948341209034343,
	0.000044260712031092460776, -0.0000026352078892491862372, -0.0000083478755678546255444,
	0.0000023975695468402400574, 8.1475748347794477781e-7, -5.3390054052094211546e-7,
	1.8530917856339650194e-8, 5.4175491795392787365e-8, -1.3999354954379988451e-8,
	-9.4728859018120505352e-10, 1.0504464536965434041e-9, -1.9324051113134175422e-10,
	1.2502033023510409414e-11,
}

var coeffDB24 = []float64{
	0.00019143580094755136950, 0.0030820817149054944362, 0.022482339949716410724,
	0.097262235833625196638, 0.27290891606772632687, 0.50437104083992499198,
	0.57493922109554199685, 0.28098555323371188334, -0.18727140688515623770,
	-0.31794307899936273755, 0.0047766136843447281880, 0.23923738878031085520,
	0.042528729641483832581, -0.17117535137034688969, -0.038777173577920016202,
	0.12101630346922423623, 0.020980113709144815350, -0.082161654208001667023,
	-0.0045784362418192216380, 0.051301620039980879156, -0.0049447094281256282998,
	-0.028213107094901890981, 0.0076617218816465858973, 0.013049970871085735831,
	-0.0062914353700181877807, -0.0047465687863231138005, 0.0037360461782825233452,
	0.0011537649368394815049, -0.0016964568189748243943, -0.000044161848561415200634,
	0.00058612705931831099337, -0.00011812332379695547406, -0.00014600798177626168389,
	0.000065593886393056340853, 0.000021832414604665583634, -0.000020228882926126976829,
	1.3411577508091147193e-8, 0.0000039011003385977026104, -8.9802531439384077241e-7,
	-4.0325077568799716241e-7, 2.1663396532785746392e-7, -5.0576454197925003085e-10,
	-2.2557403881760861074e-8, 5.1577767896719996390e-9, 4.7483758242562311181e-10,
	-4.0246586445843797743e-10, 6.9918011576382309741e-11, -4.3427825038037102473e-12,
}

var coeffDB25 = []float64{
	0.00013480297934701889946, 0.0022569595918547795201, 0.017186741254040155338,
	0.078035862872132675598, 0.23169350788602181999, 0.45968341514609459379,
	0.58163689674605778335, 0.36788507480294669844, -0.097174640964638142761,
	-0.33647307964174613096, -0.087587614587654661402, 0.22453781974510171295,
	0.11815528671995986046, -0.15056021375057963095, -0.098508615289960221537,
	0.10663380501847795288, 0.066752164494018606669, -0.077084111056574193562,
	-0.037173962861122508876, 0.053617909398779499606, 0.015542605929102291640,
	-0.034042320460653340993, -0.0030798367948470366616, 0.018922804476627628411,
	-0.0019894257822027364943, -0.0088607026180463683990, 0.0027269362587384957399,
	0.0033227077739731917801, -0.0018424842902033312808, -0.00089997742374629504911,
	0.00087725819367482748435, 0.00011532124404663004565, -0.00030988009909846979895,
	0.000035437145232760590053, 0.000079046400039655282551, -0.000027330481199600417464,
	-0.000012771952931997838041, 0.0000089906613930625889054, 5.2328277081530764180e-7,
	-0.0000017792013326536345626, 3.2120375188625190949e-7, 1.9228067901423716013e-7,
	-8.6569417322785071634e-8, -2.6115985561117708643e-9, 9.2792244800813723723e-9,
	-1.8804157550621555372e-9, -2.2284749102281688993e-10, 1.5359015701626571970e-10,
	-2.5276251634656448110e-11, 1.5096920828239108679e-12,
}

var coeffDB26 = []float64{
	0.000094937957507105921178, 0.0016505202335329882470, 0.013097554292558500821,
	0.062274744025149604842, 0.19503943871677009942, 0.41329296227835636861,
	0.57366904303422226032, 0.43915831178916623219, 0.0017740767809866857278,
	-0.32638459369178002164, -0.17483996128939250427, 0.18129183231112269607,
	0.18275540958967237465, -0.10432390028592704391, -0.14797719327525449358,
	0.069823186113292365138, 0.10648240524980863032, -0.053448561681483191495,
	-0.068654759604035915255, 0.042232185796372035412, 0.038535715971111864258,
	-0.031378110363067754842, -0.017760903568358183541, 0.020734920179963824759,
	0.0058295805553188879719, -0.011785497906193028937, -0.00052873839926268144392,
	0.0056019472394238048532, -0.00093905825047382896462, -0.0021455302815676209803,
	0.00083834880565436160464, 0.00061613822045743441937, -0.00043195570742618074667,
	-0.00010605747482838038900, 0.00015747952386074935905, -0.0000052777954930378689763,
	-0.000041096739963914778163, 0.000010742215408721950313, 0.0000070000786829649867349,
	-0.0000038874001618567951876, -4.6504632206402626392e-7, 7.9392106337099520884e-7,
	-1.0790042375786714119e-7, -8.9044663701685907691e-8, 3.4077956212907300087e-8,
	2.1693282598503231070e-9, -3.7760104785323243282e-9, 6.7800472458286366683e-10,
	1.0023031910465269135e-10, -5.8404081853411714685e-11, 9.1305100163717962439e-12,
	-5.2518712242444350378e-13,
}

var coeffDB27 = []float64{
	0.000066871313854319317349, 0.0012055312316732132343, 0.0099525887808766197719,
	0.049452599982904880043, 0.16292202750239332064, 0.36711021412538982264,
	0.55384986099048004876, 0.49340612267799899793, 0.10284085506182291127,
	-0.28971680331459484632, -0.24826458190326056678, 0.11482301951778535763,
	0.22727328841417082653, -0.038786418631802310624, -0.17803174095900858211,
	0.015799397460240484312, 0.13119797171715532897, -0.014062751555808765370,
	-0.091022906529565917982, 0.017311018265493710891, 0.057969405734717988147,
	-0.018512493561998077105, -0.032739066631020871455, 0.016146966922395666823,
	0.015665595648924578730, -0.011577186458976281401, -0.0058620963454629259730,
	0.0068566356096848806753, 0.0013426268773036796091, -0.0033328544695200061628,
	0.00014575296259317285871, 0.0013011774502441351391, -0.00034183512269154276119,
	-0.00038790185741013276044, 0.00020197198796903268571, 0.000076600583870685768767,
	-0.000077111455177975842084, -0.0000035174836149074453918, 0.000020634426477368853185,
	-0.0000039011640706384255282, -0.0000036575009081871049970, 0.0000016343696247256378354,
	3.0508806862519990942e-7, -3.4724681473943892694e-7, 3.2865589680551595310e-8,
	4.0262550528669086372e-8, -1.3213322739900565588e-8, -1.3094656068569551513e-9,
	1.5216149847785217408e-9, -2.4155269280111306605e-10, -4.3749862242936543951e-11,
	2.2136620880676624852e-11, -3.2957901224765858071e-12, 1.8281883528824249336e-13,
}

var coeffDB28 = []float64{
	0.000047108077750140511011, 0.00087949851598438702736, 0.0075426503776468591772,
	0.039092608115405344261, 0.13513791425364104508, 0.32256336128552242573,
	0.52499823163033555623, 0.53051629344148580753, 0.20017614404598443804,
	-0.23049895404758252573, -0.30132780953264178169, 0.032857879163387104685,
	0.24580815137375955358, 0.036906885315711272053, -0.18287733073298491669,
	-0.046838233744551676165, 0.13462756791022608775, 0.034478631275099705247,
	-0.097685355805652441750, -0.017341922831305899088, 0.067747895501909339562,
	0.0034480189555409511376, -0.043333368616086283939, 0.0044317329100629883205,
	0.024688060010151865863, -0.0068155497645523096393, -0.012063591968218490058,
	0.0058388166277489448645, 0.0047848631124542417180, -0.0037254612470742547992,
	-0.0013603738456396924366, 0.0018759986682027956262, 0.00014156723931404642576,
	-0.00074867495591146299913, 0.00011546560636589212520, 0.00022957909822334562024,
	-0.000089039014900444880995, -0.000049077134161902508583, 0.000036414012110508027812,
	0.0000046386649813942946540, -0.000010043260413334226018, 0.0000012479003175748341461,
	0.0000018403637345177691917, -6.6702154799548925887e-7, -1.7574611732098427799e-7,
	1.4906600135353621710e-7, -8.2623873156265569660e-9, -1.7841386908757100772e-8,
	5.0440470563834364446e-9, 6.9445403289462269530e-10, -6.0770412472290102248e-10,
	8.4922200110563821055e-11, 1.8673672637833904190e-11, -8.3654904712588007993e-12,
	1.1888505334059015208e-12, -6.3677723547148573356e-14,
}

var coeffDB29 = []float64{
	0.000033189662798415247618, 0.00064095168030444345408, 0.0057021265177733754348,
	0.030773580221408376767, 0.11137011695174053048, 0.28065345597098293770,
	0.48975880476219931436, 0.55137443275837519512, 0.28910523833582916346,
	-0.15402873445990005425, -0.33004094891758805203, -0.055706800072940857815,
	0.23610523615302594160, 0.11241917487318837648, -0.16087798859418773608,
	-0.10784594993872142011, 0.11447229589381825797, 0.083220747162449757903,
	-0.085125492615635502328, -0.055027489525325723209, 0.063479164584211866336,
	0.030531543272704136466, -0.045187981277788345160, -0.012917142554266794630,
	0.029470431871747641110, 0.0026483273076781679155, -0.017041224573606689692,
	0.0017378803327205111644, 0.0084697254935607522878, -0.0025508071277894726591,
	-0.0034737989896811006306, 0.0018771209257236501332, 0.0010870539422260629667,
	-0.0010007783270856805411, -0.00020007113630767798083, 0.00041112834547427670334,
	-0.000022920180412144998974, -0.00012930448400807206092, 0.000036450260685627749677,
	0.000029133447501690412185, -0.000016573283953066162899, -0.0000035936448040251876381,
	0.0000047506092464525528502, -3.0290545920528182865e-7, -8.9757017506362807345e-7,
	2.6338983869976965539e-7, 9.3871974110958630265e-8, -6.2861569220107861668e-8,
	1.0765919066191961374e-9, 7.7689788547700622389e-9, -1.8939953861719841478e-9,
	-3.4268008632630890018e-10, 2.4070994535093429624e-10, -2.9405892507645325829e-11,
	-7.8325097336278170324e-12, 3.1527624133703104238e-12, -4.2856548700683441019e-13,
	2.2191913115883029609e-14,
}

var coeffDB30 = []float64{
	0.000023386161727314214715, 0.00046663795042855093367, 0.0043007971650480695100,
	0.024130832671588378952, 0.091238304067015706793, 0.24202067094021409945,
	0.45048782185331783670, 0.55757223291283643041, 0.36624268337162797931,
	-0.066183670775937315019, -0.33296697502085560692, -0.14196851333008293102,
	0.19946212158066430324, 0.17782987324483673613, -0.11455821943270778149,
	-0.15723681795999381269, 0.072778658970364426999, 0.12274774604500937787,
	-0.053806465458257076760, -0.087658690036383660480, 0.043801664671417732503,
	0.056712365744735694926, -0.035673397496759609658, -0.032263758919352208160,
	0.027078619595294182722, 0.015287960769857395461, -0.018399743868117341187,
	-0.0052968596661310866292, 0.010915631658304889275, 0.00061967175649772443836,
	-0.0055307301481920032889, 0.00084338458666209339821, 0.0023245200940600993044,
	-0.00086092769681104238797, -0.00076787825043809186980, 0.00050509482390334677963,
	0.00017248258423517097255, -0.00021617183011696338043, -0.0000085483054675840709948,
	0.000069820083708083278511, -0.000013397168632939716293, -0.000016361524787254264887,
	0.0000072521455358904690157, 0.0000023275490984936865096, -0.0000021872676769961664167,
	1.0994743385262033043e-8, 4.2616623260115724465e-7, -1.0004146823545008989e-7,
	-4.7643799651394533577e-8, 2.6054427549776254319e-8, 5.5533978613970539830e-10,
	-3.3311056804675782459e-9, 6.9848626918321825842e-10, 1.6136229782709043606e-10,
	-9.4613879972768021209e-11, 1.0001051313931711927e-11, 3.2394286385322861144e-12,
	-1.1852375921015823283e-12, 1.5439975708476200460e-13, -7.7379426309544057087e-15,
}

var coeffDB31 = []float64{
	0.000016480133864561407481, 0.00033941220377699566992, 0.0032368840686277212218,
	0.018853691612985912692, 0.074336093011647886979, 0.20701287448523532862,
	0.40919220003742785639, 0.55113984091427549836, 0.42946880820613729554,
	0.027169212497369464223, -0.31095511831950751869, -0.21797848552356335217,
	0.14017828876527326817, 0.22496671147373709337, -0.049926349160468239770,
	-0.18696236089571544944, 0.015436988429488934097, 0.14508950093199319815,
	-0.0081398322734692368635, -0.10761277332349563267, 0.010941297452364969257,
	0.075353611743281406955, -0.014880026618104822027, -0.048619075464854330035,
	0.016154171565985911136, 0.028047619366756169069, -0.014276275277763519433,
	-0.013900552939266528808, 0.010517639487371840891, 0.0055161635733109925666,
	-0.0065208523758746125533, -0.0014282642232189098914, 0.0033930667767159319284,
	-0.000063979011060146004929, -0.0014590417419851609431, 0.00034313982969047344381,
	0.00049988161756372226149, -0.00023965834694029496153, -0.00012434116172502286694,
	0.00010895843504167668827, 0.000015013357274445329971, -0.000036312551578600861643,
	0.0000040345202351842788398, 0.0000087953013426929877654, -0.0000030351423658915096301,
	-0.0000013690602309429407821, 9.8100154220443715740e-7, 5.3272506569749154270e-8,
	-1.9759251291702062482e-7, 3.6168265173310048052e-8, 2.3283097138214096443e-8,
	-1.0615296021502523065e-8, -6.4743116879598613987e-10, 1.4085681510251774271e-9,
	-2.5240439541533533062e-10, -7.3489300324862639048e-11, 3.6921088088711294116e-11,
	-3.3270089671259799299e-12, -1.3243349172439631639e-12, 4.4454670962919321633e-13,
	-5.5594420505790143376e-14, 2.6993828797626656473e-15,
}

var coeffDB32 = []float64{
	0.000011614633021350148856, 0.00024665669063809033527, 0.0024312619195722661008,
	0.014681046381419135635, 0.060257499120335370817, 0.17575078363943889882,
	0.36750962859734963620, 0.53431791934095383229, 0.47780916373394840336,
	0.12063053826561782695, -0.26669818147667555355, -0.27742158155842721533,
	0.064713354805516238310, 0.24831064235688017361, 0.024662444839697404417,
	-0.19210234470854689843, -0.048995117184671738534, 0.14523207947528664608,
	0.044404908199939740226, -0.10945611311608938310, -0.029627872508447704912,
	0.080874140638483957441, 0.014106151516106607729, -0.056926314062478435505,
	-0.0023802644649325738344, 0.037051457923544680104, -0.0041459076608272187815,
	-0.021662822836391193476, 0.0061675273106856751126, 0.011017400715406881165,
	-0.0054115682572757912086, -0.0046492167511844115287, 0.0036272246406878649601,
	0.0014689551004684677725, -0.0019647405558217782542, -0.00022116787295790979163,
	0.00086730585184505553439, -0.00010245373106073961869, -0.00030596544238269117505,
	0.00010539154617398281147, 0.000081036783291348383898, -0.000052598092826843227826,
	-0.000012940457794055127240, 0.000018242684019806912206, -6.3617815322602549534e-7,
	-0.0000045583095762644231351, 0.0000012028890363216209903, 7.5600476255959478194e-7,
	-4.2859706931514572554e-7, -5.0033618687482302937e-8, 8.9659663119577283770e-8,
	-1.2199243594833730931e-8, -1.1043830217226489796e-8, 4.2504223119805929837e-9,
	4.3843877999404743696e-10, -5.8810914626346056289e-10, 8.9047237962216054905e-11,
	3.2632707413329078760e-11, -1.4309187651692023202e-11, 1.0756106535010621152e-12,
	5.3614822296118016381e-13, -1.6638004894334023699e-13, 2.0007153038105249544e-14,
	-9.4210191395350784213e-16,
}

var coeffDB33 = []float64{
	0.0000081863583141750919399, 0.00017910161537027914794, 0.0018227094351640842081,
	0.011395943374581609258, 0.048614666531716195084, 0.14818631318005280818,
	0.32671813011770757839, 0.50937617251493965522, 0.51125477058326746554,
	0.20958235071305542165, -0.20420262239854210496, -0.31599741076656025619,
	-0.019278339436952759156, 0.24542061211927911142, 0.099851558680338156981,
	-0.17142809905185932793, -0.11084413311671079108, 0.12196785640373461494,
	0.094788088050615958893, -0.091146968351331489131, -0.070302485054056159215,
	0.070191143940996532550, 0.045734561893896677431, -0.053471251335822289194,
	-0.025248582977476499293, 0.038687060760244964817, 0.010703265820019549427,
	-0.025728761754732973361, -0.0021677586173536073248, 0.015316954115857665483,
	-0.0015942887824146047686, -0.0079535403870579392405, 0.0023890624081659085759,
	0.0034808009534057119994, -0.0018607182144557959121, -0.0012043092576046588769,
	0.0010743806963512913551, 0.00027273058473369372117, -0.00049083290075903514745,
	0.0000043931662517661857551, 0.00017804318982512453518, -0.000041604385162737093062,
	-0.000049295644234173018343, 0.000024233353988168903656, 0.0000090708057578284538002,
	-0.0000088661213667577361692, -3.6075161028797716312e-7, 0.0000022883712761415273055,
	-4.4269234079528701480e-7, -3.9857912919859440769e-7, 1.8224433325710534375e-7,
	3.3779727037308543775e-8, -3.9878381985188807228e-8, 3.6728635768381813405e-9,
	5.1112118573474538395e-9, -1.6713926772519324952e-9, -2.4964021052461936481e-10,
	2.4268331023056823099e-10, -3.0495744539458634304e-11, -1.4202368598899367924e-11,
	5.5094147207655245488e-12, -3.3434812189532787660e-13, -2.1524883868333026185e-13,
	6.2147402471743983156e-14, -7.1965105453633224140e-15, 3.2893736784163063686e-16,
}

var coeffDB34 = []float64{
	0.0000057705106327302856275, 0.00012994762006795300378, 0.0013640613900590499982,
	0.0088198894038849788032, 0.039048841351785941389, 0.12415248211137680820,
	0.28776505923371456293, 0.47847874627937106215, 0.53055509965646317731,
	0.29036632950727495105, -0.12824684217443716729, -0.33152530150838694177,
	-0.10389191551564047183, 0.21690722018742759506, 0.16660175041220744373,
	-0.12733735822380115628, -0.16092492717786680630, 0.077991846937948107383,
	0.13412596027113612848, -0.054482968064139046366, -0.10294759699281408523,
	0.043576094649631297264, 0.073185235436795605555, -0.037012838417862449604,
	-0.047438559645277762472, 0.030739746573959344599, 0.027228350756354196101,
	-0.023671737922826364850, -0.013143980016657160861, 0.016409374199865192521,
	0.0047136492609998099059, -0.010045506708361519174, -0.00061947488451538728390,
	0.0053349507687599360322, -0.00076921279750678369760, -0.0023994539435370558639,
	0.00085899598743636619554, 0.00087519990640786887326, -0.00055273557621441979755,
	-0.00023267321402335316354, 0.00026507723975580578198, 0.000026600500184534419030,
	-0.000099146977707801346036, 0.000013531172272496495813, 0.000028449514196978073765,
	-0.000010576574942579506238, -0.0000057108265109983039383, 0.0000041698717585470283983,
	4.9797181014213077481e-7, -0.0000011163065348170084286, 1.4481957083331851271e-7,
	2.0259906666678592167e-7, -7.5267017404125894112e-8, -1.9903465015317369159e-8,
	1.7404233329360680765e-8, -8.6657442613687222159e-10, -2.3165019469954827516e-9,
	6.4463782103234023131e-10, 1.3004103186094152489e-10, -9.9047745376324090155e-11,
	1.0042087354617698648e-11, 6.0801253540001672541e-12, -2.1078791089153015463e-12,
	9.7994511582115977279e-14, 8.5791940517997331798e-14, -2.3170837039064084811e-14,
	2.5873383819356995558e-15, -1.1489447544805901282e-16,
}

var coeffDB35 = []float64{
	0.0000040679340611485590267, 0.000094214694755767406316, 0.0010191226803750981093,
	0.0068072928843191320120, 0.031236288511490714531, 0.10340445586147837899,
	0.25130737899449331285, 0.44359273922403543782, 0.53700842750916610287,
	0.36034564051804732787, -0.043883881873934041113, -0.32382286491211612121,
	-0.18178697676672783258, 0.16604135749078091954, 0.21729928932108929777,
	-0.065262871310677538922, -0.19191958929859395288, 0.019309544666018350919,
	0.15529248039623711442, -0.0047526808341113504453, -0.12058552264339355451,
	0.0047342291726419487633, 0.089913547570729544179, -0.0093185589499039248379,
	-0.063356037440443466121, 0.013228549585036555245, 0.041254693064705092127,
	-0.014366839784220071821, -0.024169497801660267403, 0.012766456715656744194,
	0.012289436008118710862, -0.0095777978992357099981, -0.0050859916492334298818,
	0.0061377545867405210896, 0.0014280887940707621074, -0.0033576443809223832296,
	0.0000076159694351727365468, 0.0015496374697023629756, -0.00033466921642508549616,
	-0.00058648103189918175322, 0.00026483288199612890393, 0.00017000122836612490436,
	-0.00013658830722611616026, -0.000029769959628485097439, 0.000053041431229133102225,
	-0.0000024370015268277898610, -0.000015724420772702816937, 0.0000043080478617167311914,
	0.0000033533458628713098894, -0.0000018959296176931532885, -3.9039317332873061667e-7,
	5.3023686169047609171e-7, -3.7003083782051245380e-8, -9.9903969445349007558e-8,
	3.0081886507190669282e-8, 1.0849027337899348253e-8, -7.4581165528930376312e-9,
	5.8979513103843615755e-11, 1.0308233454854333838e-9, -2.4335455737516729362e-10,
	-6.4079382565018890184e-11, 4.0005366272537445107e-11, -3.1256393571085575406e-12,
	-2.5670654761550814492e-12, 8.0150885336879009219e-13, -2.5979543288938480843e-14,
	-3.3977208567962674320e-14, 8.6240374347200892027e-15, -9.2980125293241854209e-16,
	4.0146287123334886543e-17,
}

var coeffDB36 = []float64{
	0.0000028679251827559463346, 0.000068260286785463586917, 0.00076021510996684882859,
	0.0052402973774098843662, 0.024890565644827964849, 0.085652092595264090839,
	0.21775695309790081496, 0.40643369770825534674, 0.53226689526072869148,
	0.41787533560096978636, 0.043975197529348629939, -0.29442103958911457111,
	-0.24680703697812552705, 0.098114204163114770505, 0.24653727760897421105,
	0.0072785150957922290097, -0.19933720560864961986, -0.045861400746392716391,
	0.15410623662764288418, 0.050276180073538428620, -0.11880375431013563168,
	-0.039880853575513175841, 0.091156782258016544063, 0.025038721449568489899,
	-0.068209016636817511249, -0.011319100316817427944, 0.048513083547809085386,
	0.0014249726617653916031, -0.031980720677639696545, 0.0039840401987170048574,
	0.019063594780625359329, -0.0056578132450588183804, -0.0099902634732813723480,
	0.0050229891066658290047, 0.0044134848353505752519, -0.0034845414454048833112,
	-0.0015030740662966437495, 0.0019907937718517372704, 0.00027768127957120260682,
	-0.00094634038232611019646, 0.000086145657589927020326, 0.00036935072849675105026,
	-0.00011551188958435270968, -0.00011318994680846656717, 0.000066947411969305902571,
	0.000023751066836608607772, -0.000027313908246543379129, -0.0000011834710599856159428,
	0.0000083722181981607884326, -0.0000015861457824345774955, -0.0000018708116028591807138,
	8.3114212797077785282e-7, 2.5484235225565778312e-7, -2.4553776584342326991e-7,
	2.7532490733395122541e-9, 4.7990434654509920099e-8, -1.1560936888170084068e-8,
	-5.6127843433277913975e-9, 3.1388416957824240184e-9, 1.0908155537137518110e-10,
	-4.5125457785632496344e-10, 8.9624182038596119871e-11, 3.0374290981125352218e-11,
	-1.5997166892613571432e-11, 8.8768462872173742135e-13, 1.0709693571140170024e-12,
	-3.0292850269748772689e-13, 5.5422631826398042352e-15, 1.3380713862991058960e-14,
	-3.2046285434017498604e-15, 3.3399719848186932131e-16, -1.4032741753731906175e-17,
}

var coeffDB37 = []float64{
	0.0000020220608624983921218, 0.000049423437506281320047, 0.00056624183770667240138,
	0.0040241403682572867707, 0.019762286153879591532, 0.070584825977181608320,
	0.18732633186206494480, 0.36844097240030614094, 0.51816704085562288731,
	0.46220755366160571455, 0.13087896323302017261, -0.24618042976108341329,
	-0.29437591526266177228, 0.019671500452359389771, 0.25152325436026869334,
	0.081806028387218623390, -0.18196229177860800074, -0.10845171382330178456,
	0.12992964695985375278, 0.10178029683881417975, -0.096607540616684390309,
	-0.082330211906557408674, 0.075047619948360179336, 0.059567410871529952454,
	-0.059256815632658970952, -0.038253829479384248820, 0.045807944151268332466,
	0.020972800592597548833, -0.033523584064100969944, -0.0088334938904102323941,
	0.022618651544599473566, 0.0016904723834844237437, -0.013763981962894784339,
	0.0015193057788333992185, 0.0073877574528555836401, -0.0022480531870038247061,
	-0.0033945232764083986020, 0.0018168713438014235255, 0.0012639342581174771826,
	-0.0011114848653186301973, -0.00032807884708801984194, 0.00054905327733736312302,
	0.000015344390231955032111, -0.00022089440324554938525, 0.000043367261259456952149,
	0.000070551387820654650758, -0.000030986629276199300524, -0.000016391624961605830992,
	0.000013543277184167818107, 0.0000018499450031155903908, -0.0000043099415565970923890,
	4.8547313969964116818e-7, 0.0000010021213992971776298, -3.4949486034457276459e-7,
	-1.5098853886715835535e-7, 1.1090312322164393900e-7, 5.3506575154614342906e-9,
	-2.2521938367248057754e-8, 4.2244857063624192681e-9, 2.7939744659539826598e-9,
	-1.2972050014694351399e-9, -1.0314111290969749657e-10, 1.9461648940823150213e-10,
	-3.2033982441232413680e-11, -1.3984157155376414880e-11, 6.3349554409739132496e-12,
	-2.0963631942348005416e-13, -4.4216124098721053673e-13, 1.1380528309214396825e-13,
	-4.5188896074637263945e-16, -5.2430256918842058323e-15, 1.1890123875082528799e-15,
	-1.1992803358528795550e-16, 4.9066150649352036949e-18,
}

var coeffDB38 = []float64{
	0.0000014257766416741316721, 0.000035762519942640230127, 0.00042117026647271164322,
	0.0030830881192537517743, 0.015637249347572156173, 0.057889943612859256497,
	0.16007199356411069735, 0.33077578141101465115, 0.49659117531171809766,
	0.49335607851710079757, 0.21305057135557851383, -0.18286766770833589080,
	-0.32167563780899786285, -0.062266506047824322266, 0.23212596383535310850,
	0.14998511961871701996, -0.14179568597305962167, -0.15991256515824436183,
	0.085638121556151057416, 0.14141473407338268009, -0.056586458630727381457,
	-0.11473117071074437524, 0.043095895433047642881, 0.087204398262039750119,
	-0.036605103402874295674, -0.061766208708413159936, 0.031989877531537806308,
	0.040054981105115948210, -0.026891493880894514386, -0.023114134020549316809,
	0.020904645255655243402, 0.011290497278685964843, -0.014701882065398682137,
	-0.0041313066560310892741, 0.0092147850321971805120, 0.00056257157484035320057,
	-0.0050713145092183480939, 0.00071698218210640192578, 0.0024006977818909731839,
	-0.00084486266655377750091, -0.00094246140772273779640, 0.00058107597505328636620,
	0.00028176392503806707460, -0.00030310204607266119936, -0.000045556826966684202747,
	0.00012620433501661707054, -0.000011554091038337171926, -0.000041751416485403977973,
	0.000013341761499213503825, 0.000010373591840455997956, -0.0000064567304284696191604,
	-0.0000015508443501186025759, 0.0000021499602699396652078, -8.4870875860725930719e-8,
	-5.1877337388741444260e-7, 1.3963775455083554812e-7, 8.4003510468959655269e-8,
	-4.8847579374592867621e-8, -5.4242748002872985111e-9, 1.0347045392748584809e-8,
	-1.4363294877951357069e-9, -1.3491977539834488219e-9, 5.2611325573575984945e-10,
	6.7323364901893086857e-11, -8.2782565225381347273e-11, 1.1016929345994545512e-11,
	6.2915373170395085816e-12, -2.4847892375636428570e-12, 2.6264965040652520705e-14,
	1.8086612362745305823e-13, -4.2498178195714630070e-14, -4.5633971621273731091e-16,
	2.0450996767889889078e-15, -4.4053070424834613424e-16, 4.3045968395587900163e-17,
	-1.7161524510887441887e-18,
}
