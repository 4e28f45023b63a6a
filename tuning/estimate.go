// Package tuning estimates the reference A4 frequency that best
// explains a set of observed note frequencies as equal-tempered
// pitches.
package tuning

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notefreq/notefreq/pitch"
)

// Options controls the grid search. The loss function is periodic
// every 100 cents, so a half range of 50 cents around the initial
// guess already covers every distinguishable reference; a wider search
// would only revisit equivalent candidates.
type Options struct {
	InitialGuessHz float64 `json:"initial_guess_hz"`
	MaxErrCents    float64 `json:"max_err_cents"`    // final candidate spacing bound
	HalfRangeCents float64 `json:"half_range_cents"` // search radius around the guess
	NestedGrids    bool    `json:"nested_grids"`     // coarse-then-fine refinement
}

// DefaultOptions returns the standard search: 440 Hz starting point,
// 1-cent precision, nested grids enabled.
func DefaultOptions() Options {
	return Options{
		InitialGuessHz: 440,
		MaxErrCents:    1,
		HalfRangeCents: 50,
		NestedGrids:    true,
	}
}

// EstimateA4 finds the reference A4 frequency minimizing the total
// absolute cents deviation between the observed frequencies and their
// nearest equal-tempered notes. An empty input returns the initial
// guess unchanged, as do non-positive MaxErrCents or HalfRangeCents,
// which describe a search with nothing to try.
//
// Candidates are spaced at most MaxErrCents apart. When more than 20
// candidates would be needed and NestedGrids is set, a first pass runs
// at 10x coarser spacing and a second pass searches a 10x smaller
// range around the interim best, bounding the total number of loss
// evaluations roughly logarithmically in the requested precision.
func EstimateA4(noteFreqs []float64, opts Options) float64 {
	if len(noteFreqs) == 0 || opts.MaxErrCents <= 0 || opts.HalfRangeCents <= 0 {
		return opts.InitialGuessHz
	}
	return estimate(noteFreqs, opts.InitialGuessHz, opts.MaxErrCents, opts.HalfRangeCents, opts.NestedGrids)
}

func estimate(noteFreqs []float64, guessHz, maxErrCents, halfRangeCents float64, nested bool) float64 {
	nCands := int(math.Ceil(2 * halfRangeCents / maxErrCents))
	if nCands < 1 {
		return guessHz
	}

	if nCands > 20 && nested {
		interim := estimate(noteFreqs, guessHz, maxErrCents*10, halfRangeCents, true)
		return estimate(noteFreqs, interim, maxErrCents, halfRangeCents/10, true)
	}

	// Center candidates within their grid cells so a degenerate grid
	// of width 1 does not collapse onto the initial guess.
	spacing := 2 * halfRangeCents / float64(nCands)
	candidates := make([]float64, nCands)
	for k := range candidates {
		offsetCents := (float64(k)+0.5)*spacing - halfRangeCents
		candidates[k] = guessHz * math.Exp2(offsetCents/1200)
	}

	return gridSearch(noteFreqs, candidates)
}

// gridSearch returns the candidate with the lowest total absolute
// cents deviation. Ties go to the first (lowest offset) candidate.
func gridSearch(noteFreqs, candidates []float64) float64 {
	loss := make([]float64, len(candidates))
	dev := make([]float64, len(noteFreqs))

	for i, cand := range candidates {
		for j, f := range noteFreqs {
			dev[j] = math.Abs(pitch.CentsOffset(f, cand))
		}
		loss[i] = floats.Sum(dev)
	}

	return candidates[floats.MinIdx(loss)]
}

// MeanAbsCents reports the mean absolute cents deviation of the
// frequencies under a given reference, a fit diagnostic for an
// estimate produced by EstimateA4.
func MeanAbsCents(noteFreqs []float64, refA4Hz float64) float64 {
	if len(noteFreqs) == 0 {
		return 0
	}
	dev := make([]float64, len(noteFreqs))
	for i, f := range noteFreqs {
		dev[i] = math.Abs(pitch.CentsOffset(f, refA4Hz))
	}
	return stat.Mean(dev, nil)
}
