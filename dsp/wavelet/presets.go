package wavelet

import (
	"fmt"
	"strings"
)

// Preset identifies a named standard filter bank.
type Preset int

// Presets. Dn is the n-th order Daubechies filter with 2n taps, Symn the
// least-asymmetric Symlet with 2n taps, Coifn the Coiflet with 6n taps,
// Biorr.d the spline biorthogonal pair with reconstruction order r and
// decomposition order d, FKn the Fejer-Korovkin filter with n taps and
// Legendren the Legendre filter with 2n taps.
const (
	PresetHaar Preset = iota // Haar, identical to D1
	PresetD1
	PresetD2
	PresetD3
	PresetD4
	PresetD5
	PresetD6
	PresetD7
	PresetD8
	PresetD9
	PresetD10
	PresetD11
	PresetD12
	PresetD13
	PresetD14
	PresetD15
	PresetD16
	PresetD17
	PresetD18
	PresetD19
	PresetD20
	PresetD21
	PresetD22
	PresetD23
	PresetD24
	PresetD25
	PresetD26
	PresetD27
	PresetD28
	PresetD29
	PresetD30
	PresetD31
	PresetD32
	PresetD33
	PresetD34
	PresetD35
	PresetD36
	PresetD37
	PresetD38
	PresetSym1
	PresetSym2
	PresetSym3
	PresetSym4
	PresetSym5
	PresetSym6
	PresetSym7
	PresetSym8
	PresetSym9
	PresetSym10
	PresetSym11
	PresetSym12
	PresetSym13
	PresetSym14
	PresetSym15
	PresetSym16
	PresetSym17
	PresetSym18
	PresetSym19
	PresetSym20
	PresetCoif1
	PresetCoif2
	PresetCoif3
	PresetCoif4
	PresetCoif5
	PresetBior11
	PresetBior13
	PresetBior15
	PresetBior22
	PresetBior24
	PresetBior26
	PresetBior28
	PresetBior31
	PresetBior33
	PresetBior35
	PresetBior37
	PresetCDF53  // Cohen-Daubechies-Feauveau 5/3, same taps as Bior2.2
	PresetCDF97  // Cohen-Daubechies-Feauveau 9/7
	PresetFK4
	PresetFK6
	PresetFK8
	PresetFK14
	PresetFK22
	PresetLegendre1 // Haar
	PresetLegendre2
	PresetLegendre3
	PresetLegendre4
	PresetLegendre5
	PresetLegendre6
	PresetLegendre7
	PresetLegendre8
	PresetLegendre9
	PresetBSpline100 // same taps as Bior1.1
	PresetBSpline103
	PresetBSpline105
	PresetMeyer      // discrete Meyer, 102 taps
	PresetKravchenko // Meyer-type with the atomic function up(x), 102 taps

	presetCount // sentinel
)

var presetNames = [presetCount]string{
	"Haar", "D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9", "D10", "D11",
	"D12", "D13", "D14", "D15", "D16", "D17", "D18", "D19", "D20", "D21", "D22",
	"D23", "D24", "D25", "D26", "D27", "D28", "D29", "D30", "D31", "D32", "D33",
	"D34", "D35", "D36", "D37", "D38", "Sym1", "Sym2", "Sym3", "Sym4", "Sym5",
	"Sym6", "Sym7", "Sym8", "Sym9", "Sym10", "Sym11", "Sym12", "Sym13", "Sym14",
	"Sym15", "Sym16", "Sym17", "Sym18", "Sym19", "Sym20", "Coif1", "Coif2",
	"Coif3", "Coif4", "Coif5", "Bior1.1", "Bior1.3", "Bior1.5", "Bior2.2",
	"Bior2.4", "Bior2.6", "Bior2.8", "Bior3.1", "Bior3.3", "Bior3.5", "Bior3.7",
	"CDF5/3", "CDF9/7", "FK4", "FK6", "FK8", "FK14", "FK22", "Legendre1",
	"Legendre2", "Legendre3", "Legendre4", "Legendre5", "Legendre6", "Legendre7",
	"Legendre8", "Legendre9", "BSpline1-0-0", "BSpline1-0-3", "BSpline1-0-5",
	"Meyer", "Kravchenko",
}

type presetKind uint8

const (
	kindOrthogonal presetKind = iota
	kindBiorthogonal
	// kindLegendre is built like kindOrthogonal but the lowpass is not
	// power complementary.
	kindLegendre
)

type presetEntry struct {
	kind presetKind
	lo   []float64
	hi   []float64
}

var presetTable = [presetCount]presetEntry{
	PresetHaar:   {kind: kindOrthogonal, lo: coeffDB1},
	PresetD1:     {kind: kindOrthogonal, lo: coeffDB1},
	PresetD2:     {kind: kindOrthogonal, lo: coeffDB2},
	PresetD3:     {kind: kindOrthogonal, lo: coeffDB3},
	PresetD4:     {kind: kindOrthogonal, lo: coeffDB4},
	PresetD5:     {kind: kindOrthogonal, lo: coeffDB5},
	PresetD6:     {kind: kindOrthogonal, lo: coeffDB6},
	PresetD7:     {kind: kindOrthogonal, lo: coeffDB7},
	PresetD8:     {kind: kindOrthogonal, lo: coeffDB8},
	PresetD9:     {kind: kindOrthogonal, lo: coeffDB9},
	PresetD10:    {kind: kindOrthogonal, lo: coeffDB10},
	PresetD11:    {kind: kindOrthogonal, lo: coeffDB11},
	PresetD12:    {kind: kindOrthogonal, lo: coeffDB12},
	PresetD13:    {kind: kindOrthogonal, lo: coeffDB13},
	PresetD14:    {kind: kindOrthogonal, lo: coeffDB14},
	PresetD15:    {kind: kindOrthogonal, lo: coeffDB15},
	PresetD16:    {kind: kindOrthogonal, lo: coeffDB16},
	PresetD17:    {kind: kindOrthogonal, lo: coeffDB17},
	PresetD18:    {kind: kindOrthogonal, lo: coeffDB18},
	PresetD19:    {kind: kindOrthogonal, lo: coeffDB19},
	PresetD20:    {kind: kindOrthogonal, lo: coeffDB20},
	PresetD21:    {kind: kindOrthogonal, lo: coeffDB21},
	PresetD22:    {kind: kindOrthogonal, lo: coeffDB22},
	PresetD23:    {kind: kindOrthogonal, lo: coeffDB23},
	PresetD24:    {kind: kindOrthogonal, lo: coeffDB24},
	PresetD25:    {kind: kindOrthogonal, lo: coeffDB25},
	PresetD26:    {kind: kindOrthogonal, lo: coeffDB26},
	PresetD27:    {kind: kindOrthogonal, lo: coeffDB27},
	PresetD28:    {kind: kindOrthogonal, lo: coeffDB28},
	PresetD29:    {kind: kindOrthogonal, lo: coeffDB29},
	PresetD30:    {kind: kindOrthogonal, lo: coeffDB30},
	PresetD31:    {kind: kindOrthogonal, lo: coeffDB31},
	PresetD32:    {kind: kindOrthogonal, lo: coeffDB32},
	PresetD33:    {kind: kindOrthogonal, lo: coeffDB33},
	PresetD34:    {kind: kindOrthogonal, lo: coeffDB34},
	PresetD35:    {kind: kindOrthogonal, lo: coeffDB35},
	PresetD36:    {kind: kindOrthogonal, lo: coeffDB36},
	PresetD37:    {kind: kindOrthogonal, lo: coeffDB37},
	PresetD38:    {kind: kindOrthogonal, lo: coeffDB38},
	PresetSym1:   {kind: kindOrthogonal, lo: coeffDB1},
	PresetSym2:   {kind: kindOrthogonal, lo: coeffSym2},
	PresetSym3:   {kind: kindOrthogonal, lo: coeffSym3},
	PresetSym4:   {kind: kindOrthogonal, lo: coeffSym4},
	PresetSym5:   {kind: kindOrthogonal, lo: coeffSym5},
	PresetSym6:   {kind: kindOrthogonal, lo: coeffSym6},
	PresetSym7:   {kind: kindOrthogonal, lo: coeffSym7},
	PresetSym8:   {kind: kindOrthogonal, lo: coeffSym8},
	PresetSym9:   {kind: kindOrthogonal, lo: coeffSym9},
	PresetSym10:  {kind: kindOrthogonal, lo: coeffSym10},
	PresetSym11:  {kind: kindOrthogonal, lo: coeffSym11},
	PresetSym12:  {kind: kindOrthogonal, lo: coeffSym12},
	PresetSym13:  {kind: kindOrthogonal, lo: coeffSym13},
	PresetSym14:  {kind: kindOrthogonal, lo: coeffSym14},
	PresetSym15:  {kind: kindOrthogonal, lo: coeffSym15},
	PresetSym16:  {kind: kindOrthogonal, lo: coeffSym16},
	PresetSym17:  {kind: kindOrthogonal, lo: coeffSym17},
	PresetSym18:  {kind: kindOrthogonal, lo: coeffSym18},
	PresetSym19:  {kind: kindOrthogonal, lo: coeffSym19},
	PresetSym20:  {kind: kindOrthogonal, lo: coeffSym20},
	PresetCoif1:  {kind: kindOrthogonal, lo: coeffCoif1},
	PresetCoif2:  {kind: kindOrthogonal, lo: coeffCoif2},
	PresetCoif3:  {kind: kindOrthogonal, lo: coeffCoif3},
	PresetCoif4:  {kind: kindOrthogonal, lo: coeffCoif4},
	PresetCoif5:  {kind: kindOrthogonal, lo: coeffCoif5},
	PresetBior11: {kind: kindBiorthogonal, lo: coeffBior11Lo, hi: coeffBior11Hi},
	PresetBior13: {kind: kindBiorthogonal, lo: coeffBior13Lo, hi: coeffBior13Hi},
	PresetBior15: {kind: kindBiorthogonal, lo: coeffBior15Lo, hi: coeffBior15Hi},
	PresetBior22: {kind: kindBiorthogonal, lo: coeffBior22Lo, hi: coeffBior22Hi},
	PresetBior24: {kind: kindBiorthogonal, lo: coeffBior24Lo, hi: coeffBior24Hi},
	PresetBior26: {kind: kindBiorthogonal, lo: coeffBior26Lo, hi: coeffBior26Hi},
	PresetBior28: {kind: kindBiorthogonal, lo: coeffBior28Lo, hi: coeffBior28Hi},
	PresetBior31: {kind: kindBiorthogonal, lo: coeffBior31Lo, hi: coeffBior31Hi},
	PresetBior33: {kind: kindBiorthogonal, lo: coeffBior33Lo, hi: coeffBior33Hi},
	PresetBior35: {kind: kindBiorthogonal, lo: coeffBior35Lo, hi: coeffBior35Hi},
	PresetBior37: {kind: kindBiorthogonal, lo: coeffBior37Lo, hi: coeffBior37Hi},
	PresetCDF53:  {kind: kindBiorthogonal, lo: coeffBior22Lo, hi: coeffBior22Hi},
	PresetCDF97:  {kind: kindBiorthogonal, lo: coeffCDF97Lo, hi: coeffCDF97Hi},
	PresetFK4:    {kind: kindOrthogonal, lo: coeffFK4},
	PresetFK6:    {kind: kindOrthogonal, lo: coeffFK6},
	PresetFK8:    {kind: kindOrthogonal, lo: coeffFK8},
	PresetFK14:   {kind: kindOrthogonal, lo: coeffFK14},
	PresetFK22:   {kind: kindOrthogonal, lo: coeffFK22},

	PresetLegendre1: {kind: kindOrthogonal, lo: coeffDB1},
	PresetLegendre2: {kind: kindLegendre, lo: coeffLegendre2},
	PresetLegendre3: {kind: kindLegendre, lo: coeffLegendre3},
	PresetLegendre4: {kind: kindLegendre, lo: coeffLegendre4},
	PresetLegendre5: {kind: kindLegendre, lo: coeffLegendre5},
	PresetLegendre6: {kind: kindLegendre, lo: coeffLegendre6},
	PresetLegendre7: {kind: kindLegendre, lo: coeffLegendre7},
	PresetLegendre8: {kind: kindLegendre, lo: coeffLegendre8},
	PresetLegendre9: {kind: kindLegendre, lo: coeffLegendre9},

	PresetBSpline100: {kind: kindBiorthogonal, lo: coeffBior11Lo, hi: coeffBior11Hi},
	PresetBSpline103: {kind: kindBiorthogonal, lo: coeffBSpline103Lo, hi: coeffBSpline103Hi},
	PresetBSpline105: {kind: kindBiorthogonal, lo: coeffBSpline105Lo, hi: coeffBSpline105Hi},

	PresetMeyer:      {kind: kindOrthogonal, lo: coeffMeyer},
	PresetKravchenko: {kind: kindOrthogonal, lo: coeffKravchenko},
}

// String returns the name of the preset.
func (p Preset) String() string {
	if p.Valid() {
		return presetNames[p]
	}

	return fmt.Sprintf("Preset(%d)", p)
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	return p >= 0 && p < presetCount
}

// Orthogonal reports whether the preset has an orthonormal lowpass, in which
// case the transform preserves energy.
func (p Preset) Orthogonal() bool {
	return p.Valid() && presetTable[p].kind == kindOrthogonal
}

// PerfectReconstruction reports whether Backward inverts Forward for the
// preset. It is false only for the Legendre filters of order 2 and up.
func (p Preset) PerfectReconstruction() bool {
	return p.Valid() && presetTable[p].kind != kindLegendre
}

// FilterSet returns the filter quadruple for the preset.
func (p Preset) FilterSet() (FilterSet, error) {
	if !p.Valid() {
		return FilterSet{}, fmt.Errorf("%w: %d", ErrInvalidPreset, p)
	}

	e := presetTable[p]
	switch e.kind {
	case kindBiorthogonal:
		return NewBiorthogonal(e.lo, e.hi)
	default:
		return NewOrthogonal(e.lo)
	}
}

// MustFilterSet is like [Preset.FilterSet] but panics on an invalid preset.
func (p Preset) MustFilterSet() FilterSet {
	f, err := p.FilterSet()
	if err != nil {
		panic(err)
	}

	return f
}

// Presets returns all known presets in declaration order.
func Presets() []Preset {
	out := make([]Preset, presetCount)
	for i := range out {
		out[i] = Preset(i)
	}

	return out
}

// ParsePreset looks up a preset by name. Matching ignores case and the
// separators '.', '/', '-' and '_', so "bior22" and "bspline103" are
// accepted.
func ParsePreset(name string) (Preset, error) {
	key := normalizePresetName(name)
	for i, n := range presetNames {
		if normalizePresetName(n) == key {
			return Preset(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPresetID, name)
}

func normalizePresetName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.NewReplacer(".", "", "/", "", "-", "", "_", "").Replace(s)
}
