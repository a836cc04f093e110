// Command wavinfo prints properties of the wavelet filter presets.
//
// Usage:
//
//	wavinfo [flags]
//
// Without -preset it prints info for all presets.
//
// Examples:
//
//	wavinfo -preset D4
//	wavinfo -preset Haar,Bior2.2,CDF9/7 -levels 6
//	wavinfo -n 4096 -normalized
//	wavinfo -preset Sym8 -taps
//	wavinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

const minResponseSize = 256

func main() {
	presetFlag := flag.String("preset", "", "comma-separated preset names (default: all)")
	list := flag.Bool("list", false, "list available preset names")
	n := flag.Int("n", 1024, "test signal length in samples")
	levels := flag.Int("levels", 5, "decomposition levels for the round-trip test")
	normalized := flag.Bool("normalized", false, "scale each step by 1/sqrt(2)")
	taps := flag.Bool("taps", false, "print the four filter sequences of each preset")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter length, power complementarity and round-trip error\n")
		fmt.Fprintf(os.Stderr, "of wavelet presets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -preset D4,Sym8\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -n 4096 -levels 8\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -preset CDF9/7 -taps\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	presets := resolvePresets(*presetFlag)
	if len(presets) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching presets\n")
		os.Exit(1)
	}

	if *n < 1 || *levels < 1 {
		fmt.Fprintf(os.Stderr, "error: -n and -levels must be positive\n")
		os.Exit(1)
	}

	if *taps {
		printTaps(presets)
		return
	}

	opts := []wavelet.Option{wavelet.WithLevels(*levels), wavelet.WithNormalized(*normalized)}
	printAnalysis(presets, *n, opts)
}

func printList() {
	for _, p := range wavelet.Presets() {
		kind := "biorthogonal"
		switch {
		case p.Orthogonal():
			kind = "orthogonal"
		case !p.PerfectReconstruction():
			kind = "approximate"
		}

		fmt.Printf("%s\t%s\n", p, kind)
	}
}

func resolvePresets(arg string) []wavelet.Preset {
	if strings.TrimSpace(arg) == "" {
		return wavelet.Presets()
	}

	var result []wavelet.Preset

	for _, name := range strings.Split(arg, ",") {
		p, err := wavelet.ParsePreset(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}

		result = append(result, p)
	}

	return result
}

type analysis struct {
	taps       int
	dcGain     float64
	pcError    float64
	roundTrip  float64
	activeLvls int
}

func analyze(p wavelet.Preset, signal []float64, opts []wavelet.Option) (analysis, error) {
	fs, err := p.FilterSet()
	if err != nil {
		return analysis{}, err
	}

	size := minResponseSize
	for size < 2*fs.Len() {
		size *= 2
	}

	resp, err := fs.Response(size)
	if err != nil {
		return analysis{}, err
	}

	t, err := wavelet.New(fs, opts...)
	if err != nil {
		return analysis{}, err
	}

	y := t.Backward(t.Forward(signal))

	diff := make([]float64, len(signal))
	vecmath.ScaleBlock(diff, y, -1)
	vecmath.AddBlockInPlace(diff, signal)

	return analysis{
		taps:       fs.Len(),
		dcGain:     vecmath.Sum(fs.AnalysisLow()),
		pcError:    resp.PowerComplementaryError(),
		roundTrip:  vecmath.MaxAbs(diff),
		activeLvls: t.ActiveLevels(len(signal)),
	}, nil
}

func printAnalysis(presets []wavelet.Preset, n int, opts []wavelet.Option) {
	rng := rand.New(rand.NewSource(1))

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = 2*rng.Float64() - 1
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Preset\tTaps\tDC Gain\tPC Error\tLevels\tRound Trip\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	if _, err := fmt.Fprintf(tw, "------\t----\t-------\t--------\t------\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, p := range presets {
		a, err := analyze(p, signal, opts)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", p, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.12f\t%.3e\t%d\t%.3e\n",
			p,
			a.taps,
			a.dcGain/math.Sqrt2,
			a.pcError,
			a.activeLvls,
			a.roundTrip,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printTaps(presets []wavelet.Preset) {
	for _, p := range presets {
		fs, err := p.FilterSet()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", p, err)
			continue
		}

		fmt.Printf("%s\n", p)

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(tw, "k\tAnalysis Low\tAnalysis High\tSynthesis Low\tSynthesis High\n")

		seqs := [][]float64{fs.AnalysisLow(), fs.AnalysisHigh(), fs.SynthesisLow(), fs.SynthesisHigh()}
		for k := range fs.Len() {
			_, _ = fmt.Fprintf(tw, "%d", k)

			for _, s := range seqs {
				if k < len(s) {
					_, _ = fmt.Fprintf(tw, "\t% .15f", s[k])
				} else {
					_, _ = fmt.Fprint(tw, "\t")
				}
			}

			_, _ = fmt.Fprintln(tw)
		}

		if err := tw.Flush(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
			return
		}

		fmt.Println()
	}
}
