// SPDX-License-Identifier: MIT
// Package describe: equal-width histograms.

package describe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bin count used by callers that do not choose one.
const DefaultBins = 10

// Bin is one histogram cell [Lower, Upper); the last bin is closed.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram splits [min, max] of xs into bins equal-width cells. A constant
// sample yields a single cell holding every value.
//
// Errors: ErrEmpty, ErrNonFinite, ErrInvalidArgument for bins < 1.
func Histogram(xs []float64, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("Histogram: bins=%d: %w", bins, ErrInvalidArgument)
	}
	sorted, err := sortedCopy("Histogram", xs)
	if err != nil {
		return nil, err
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(sorted)}}, nil
	}

	// gonum counts into [d_i, d_{i+1}); nudging the last divider up closes
	// the final bin on the maximum.
	width := (hi - lo) / float64(bins)
	dividers := make([]float64, bins+1)
	for i := range dividers {
		dividers[i] = lo + float64(i)*width
	}
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]Bin, bins)
	for i := range out {
		upper := dividers[i+1]
		if i == bins-1 {
			upper = hi
		}
		out[i] = Bin{Lower: dividers[i], Upper: upper, Count: int(counts[i])}
	}

	return out, nil
}
