package wavelet

// Least-asymmetric Daubechies (symlet) scaling filters. Order N has 2N taps.

var coeffSym2 = []float64{
	0.48296291314453414337, 0.83651630373780790558, 0.22414386804201338103,
	-0.12940952255126038117,
}

var coeffSym3 = []float64{
	0.33267055295008261600, 0.80689150931109257649, 0.45987750211849157010,
	-0.13501102001025458870, -0.085441273882026661693, 0.035226291885709536603,
}

var coeffSym4 = []float64{
	0.032223100604051467872, -0.012603967262031303754, -0.099219543576633532585,
	0.29785779560530605140, 0.80373875180513208088, 0.49761866763277498998,
	-0.029635527646002491764, -0.075765714789502213228,
}

var coeffSym5 = []float64{
	0.019538882735249826776, -0.021101834024689041001, -0.17532808990805622424,
	0.016602105764510848133, 0.63397896345679206372, 0.72340769040404079207,
	0.19939753397685559690, -0.039134249302313843624, 0.029519490925706261250,
	0.027333068344998768818,
}

var coeffSym6 = []float64{
	0.015404109327044824299, 0.0034907120842221625153, -0.11799011114852002540,
	-0.048311742585698054971, 0.49105594192797373304, 0.78764114102865099607,
	0.33792942172816583271, -0.072637522786376583464, -0.021060292512370847992,
	0.044724901770781384663, 0.0017677118642540077410, -0.0078007083250323804142,
}

var coeffSym7 = []float64{
	0.0026818145682601470291, -0.0010473848886797380865, -0.012636303403240566583,
	0.030515513165877885745, 0.067892693501220564905, -0.049552834937042832301,
	0.017441255086835706851, 0.53610191709056923066, 0.76776431700488293117,
	0.28862963175064787470, -0.14004724044293365414, -0.10780823770328971255,
	0.0040102448715223951678, 0.010268176708464816231,
}

var coeffSym8 = []float64{
	-0.0033824159510050025955, -0.00054213233180001068935, 0.031695087811525991431,
	0.0076074873249766081919, -0.14329423835127266284, -0.061273359067811077843,
	0.48135965125905339159, 0.77718575169962802862, 0.36444189483617893676,
	-0.051945838107881800736, -0.027219029917103486322, 0.049137179673730286787,
	0.0038087520138944894631, -0.014952258337062199118, -0.00030292051472413308126,
	0.0018899503327676891843,
}

var coeffSym9 = []float64{
	0.0010694900329086119159, -0.00047315449868004354219, -0.010264064027633120485,
	0.0088592674934002666972, 0.062077789302885747570, -0.018233770779395505570,
	-0.19155083129728433495, 0.035272488035271042689, 0.61733844914093415132,
	0.71789708276441240466, 0.23876091460730516626, -0.054568958430833351097,
	0.00058346274612498183102, 0.030224878858275188135, -0.011528210207679186143,
	-0.013271967781817133806, 0.00061978088898550708094, 0.0014009155259146562313,
}

var coeffSym10 = []float64{
	-0.00045932942100465204019, 0.000057036083618495006815, 0.0045931735853117919475,
	-0.00080435893201645129606, -0.020354939812311110745, 0.0057649120335811496720,
	0.049994972077375156277, -0.031990056882428113921, -0.035536740473819585816,
	0.38382676106707632626, 0.76951003702109793678, 0.47169066693844291000,
	-0.070880535783231572286, -0.15949427888491060946, 0.011609893903711318064,
	0.045927239231091508585, -0.0014653825813046105136, -0.0086412992770221502610,
	0.000095632670722852730785, 0.00077015980911445982258,
}

var coeffSym11 = []float64{
	0.00017172195069934810022, -0.000038795655736148036444, -0.0017343662672978377571,
	0.00058835273539698249049, 0.0065124956747715201177, -0.0098579348287892133984,
	-0.024080841595863579247, 0.037037415978858185356, 0.069976799610732932392,
	-0.022832651022562261516, 0.097198394458905522497, 0.57202297801007579283,
	0.73034354908838958118, 0.23768990904925751889, -0.20465479449578829373,
	-0.14460234370531189732, 0.035266759564464619833, 0.043000190681551327196,
	-0.0020034719001089792928, -0.0063896036664546650645, 0.00011053509764269030636,
	0.00048926361026190296826,
}

var coeffSym12 = []float64{
	-0.000065109696215342014579, 0.0000088033059019019614991, 0.00056892982517721583475,
	-0.00067155935748132926344, -0.0028480452824278825430, 0.0052235507877018761313,
	0.0099155472237717851837, -0.016254902129573773183, -0.0042960788428441605397,
	0.089283990483694649029, 0.086496196255599163684, 0.0062551265520905674832,
	0.24865185681313453311, 0.68666176501188675165, 0.59854950190309109019,
	0.017031808832149919707, -0.27576787457001576872, -0.11139617317282178580,
	0.049356783861013635631, 0.035717100498265334907, -0.0034965614223838318572,
	-0.0050606650710195114212, 0.000041635118647086445701, 0.00030793544575292319786,
}

var coeffSym13 = []float64{
	0.000061758809589442732293, -0.000017390600888515381266, -0.00083174953286635837646,
	0.00032429846113210286531, 0.0052703522029594332853, -0.0035426500479364335184,
	-0.025194980348846676483, 0.012057010053140647765, 0.083993006257157503080,
	-0.015473359402987228271, -0.19018392712546640605, 0.049751780444280392472,
	0.61066489769974432599, 0.71371439869011612372, 0.25417805206352060322,
	-0.065906284125073446079, -0.023128381052293773621, 0.029705256636500788073,
	-0.011811360065302329353, -0.019159662629413107587, 0.0044791193406368945844,
	0.0066354939959666843861, -0.00041190880687381724010, -0.0010598894106106519333,
	0.000021901744588682628074, 0.000077779122320167886006,
}

var coeffSym14 = []float64{
	-0.000025879090265402584853, 0.000011210865808903233976, 0.00039843567297607206895,
	-0.000062865424814745763199, -0.0025794417259337627865, 0.00036647657365998118849,
	0.010037693717674817748, -0.0027537747912247890195, -0.029196217764050975437,
	0.0042805204990007521896, 0.037433088362823581851, -0.057634498351410969801,
	-0.035318112115107519099, 0.39320152196203943454, 0.75997624196118915431,
	0.47533576263434447384, -0.058111823317658579680, -0.15999741114651990909,
	0.025898587531053821739, 0.069827616361821187815, -0.0023650488367366589838,
	-0.019439314263628175600, 0.0010131419871843176067, 0.0045326774719463365693,
	-0.000073214213566891338752, -0.00060576018246644026532, 0.000019329016965548985887,
	0.000044618977991484562207,
}

var coeffSym15 = []float64{
	0.0000096078026780650696705, -0.0000040327008808304846837, -0.00013413267058582072010,
	0.00010412625936638323294, 0.00096041233606923095078, -0.00083754315715969966793,
	-0.0042824932807317993548, 0.0040263248964928159576, 0.013487430005269807161,
	-0.011577192093680682130, -0.023691639875555496058, 0.043321058976487785142,
	0.053368173594607670178, -0.057250560782973502757, 0.071017561557036690603,
	0.55106788218029633621, 0.73855639854060627806, 0.28981123665551916459,
	-0.16749617172412666661, -0.14494336856230164702, 0.036699916761272942797,
	0.045229736421298855190, -0.014305720141127206491, -0.014965958108017974166,
	0.0032563700272969397107, 0.0035889593561297923413, -0.00035109254838216260249,
	-0.00049286094213835767582, 0.000012160802219051704783, 0.000028972788109085629595,
}

var coeffSym16 = []float64{
	0.0000062300067012376467794, -0.0000031135564076138704063, -0.00010943147929558312142,
	0.000028078582128206922584, 0.00085235471080655208172, -0.00010844562230766216155,
	-0.0038809122526122202687, 0.00071821197882543153599, 0.012666731659876958147,
	-0.0031265171722736301936, -0.031051202843642749966, 0.0048692744048145422419,
	0.032333091610582347104, -0.066983049070619103663, -0.034574228417699193605,
	0.39712293362039822268, 0.75652498787638460804, 0.47534280601234711274,
	-0.054040601387440806409, -0.15959219218539579553, 0.030721139063299641474,
	0.078037852903548303817, -0.0035102750683370912526, -0.024952758046315126251,
	0.0013598447424801484670, 0.0069377611308113712907, -0.00022211647621031347911,
	-0.0013387206066936438646, 0.000036565924833303028728, 0.00016545679579123956976,
	-0.0000053964831793134873649, -0.000010797982104330864640,
}

var coeffSym17 = []float64{
	0.0000039419040485571909096, 9.3217807442087187625e-7, -0.000062545362022752137574,
	0.0000054989475586354987344, 0.00050849638773226698356, -0.00014930827601429613645,
	-0.0027120467435131365207, 0.0012720489310451828239, 0.011102075333169176858,
	-0.0053106041365083655539, -0.035403615707696441739, 0.015678538598903843064,
	0.10047277994683801330, 0.00073539183819806950538, -0.15517447203131441230,
	0.098191252923289849471, 0.62860468248012929763, 0.70015413835933563506,
	0.22728804217771374263, -0.11090901863118378187, -0.063476990117317872978,
	0.020286911677355323417, -0.010103434917491686129, -0.021326751651644745662,
	0.0076729385731618595796, 0.011428170160637408694, -0.0017994958077789432003,
	-0.0035677159467917313207, 0.00018990410496274724286, 0.00069254490915381021879,
	-0.0000025016401652069626105, -0.000079381803231754545488, -9.7739390768505144693e-7,
	0.0000041331083700208642043,
}

var coeffSym18 = []float64{
	-0.0000015131530692320484723, 7.8472980558485727327e-7, 0.000029557437620876690015,
	-0.0000098588160300381688276, -0.00026583011024198103201, 0.000047416145182283679654,
	0.0014280863270799421854, -0.00018877623940057062157, -0.0052397896830139738503,
	0.0010877847895682567048, 0.015012356344216409824, -0.0032607441999778556393,
	-0.031712684731699469959, 0.0062779445541322596638, 0.028529597038742297613,
	-0.073799207290885934419, -0.032480573291504846298, 0.40148386056768733979,
	0.75362914009993880297, 0.47396905989574695564, -0.052029158980420069239,
	-0.15993814866769704407, 0.033995667103542070977, 0.084219929970075870152,
	-0.0050770851604169897075, -0.030325091089143648288, 0.0016429863972087338068,
	0.0095021643909096052339, -0.00041152110920582621996, -0.0023138718144868686575,
	0.000070212734585996360615, 0.00039616840637938814384, -0.000014020992577002793302,
	-0.000045246757874515305837, 0.0000013549157617851244941, 0.0000026126125564557022575,
}

var coeffSym19 = []float64{
	5.1586012044951607836e-7, -7.9055494517209039465e-7, -0.000011584131889603045132,
	0.000011354691995909785927, 0.00011764550918019295826, -0.000057323326969762628819,
	-0.00066142637319217123378, 0.00015084082072056786564, 0.0021321423390726130024,
	-0.0011548501279503265428, -0.0049072484551931857214, 0.0087986066308166409282,
	0.017016039487952383369, -0.022279717449167648309, -0.048702080695884335328,
	0.00013916918586315751875, -0.0066628699539766491299, -0.093364528676060620366,
	0.080955519172152913709, 0.56375171211308504277, 0.72903538038190386725,
	0.28501077735446095054, -0.15000710007470324946, -0.10141045299577056223,
	0.098477273117500580144, 0.086238240575423922111, -0.014254565757115802967,
	-0.025663050885956495745, 0.0049897313509010644564, 0.0082913337426829644631,
	-0.00056519563046003146264, -0.0016072797768088410231, 0.00016949633697465291609,
	0.00027753133547093991192, -0.000017745806832946561774, -0.000026654121257404010984,
	0.0000028545100367819932577, 0.0000018626509142614588062,
}

var coeffSym20 = []float64{
	3.7107398881247158039e-7, -1.0591894779592668994e-7, -0.0000074105281964234795756,
	0.0000032599697745913347542, 0.000074041560078387444746, -0.000034404435210777467017,
	-0.00048219168873559756899, 0.00017787895612217386562, 0.0022042358388957608073,
	-0.00051973908940573784643, -0.0073415207385550301726, 0.00063685013201781640893,
	0.017178014348096834402, -0.00058381649748104307609, -0.023828370985009961117,
	0.021713817488297517746, 0.038480369265442425573, -0.078506537717397231981,
	-0.045064012663187078152, 0.38880972674743932391, 0.75076849937677280983,
	0.48921340230041707394, -0.034586294668528096263, -0.16094569215658373257,
	0.021739091268457156461, 0.074237266082630779061, -0.013724323884731470133,
	-0.036634031309489646379, 0.0019295091031494796251, 0.012092171388602248518,
	-0.00043955266589380665557, -0.0031712295247563111427, 0.00026150838907546974567,
	0.00073173196862821239902, -0.000060734130898300090251, -0.00012640898689012162498,
	0.0000057328341517342786350, 0.000013272108723752227129, -1.7991782558260714358e-7,
	-6.3031994356700043485e-7,
}
