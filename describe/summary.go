// SPDX-License-Identifier: MIT
// Package describe: single-sample summary.

package describe

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is the descriptive profile of one sample.
//
// Variance and StdDev are sample statistics (n−1 denominator); they are NaN
// for a single observation. PopVariance and PopStdDev use n.
type Summary struct {
	N           int       `json:"n"`
	Sum         float64   `json:"sum"`
	Mean        float64   `json:"mean"`
	Median      float64   `json:"median"`
	Modes       []float64 `json:"modes"`
	ModeCount   int       `json:"modeCount"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Range       float64   `json:"range"`
	Q1          float64   `json:"q1"`
	Q3          float64   `json:"q3"`
	IQR         float64   `json:"iqr"`
	Variance    float64   `json:"variance"`
	StdDev      float64   `json:"stdDev"`
	PopVariance float64   `json:"popVariance"`
	PopStdDev   float64   `json:"popStdDev"`
	// StdErr is the standard error of the mean, StdDev/√N.
	StdErr float64 `json:"stdErr"`
}

// Summarize profiles xs. The input is not modified.
//
// Errors: ErrEmpty, ErrNonFinite.
func Summarize(xs []float64) (Summary, error) {
	sorted, err := sortedCopy("Summarize", xs)
	if err != nil {
		return Summary{}, err
	}
	n := len(sorted)

	s := Summary{
		N:           n,
		Min:         sorted[0],
		Max:         sorted[n-1],
		Mean:        stat.Mean(sorted, nil),
		PopVariance: stat.PopVariance(sorted, nil),
		Median:      quantileSorted(sorted, 0.5),
		Q1:          quantileSorted(sorted, 0.25),
		Q3:          quantileSorted(sorted, 0.75),
	}
	for _, v := range sorted {
		s.Sum += v
	}
	s.Range = s.Max - s.Min
	s.IQR = s.Q3 - s.Q1
	s.PopStdDev = math.Sqrt(s.PopVariance)
	if n > 1 {
		s.Variance = stat.Variance(sorted, nil)
		s.StdDev = math.Sqrt(s.Variance)
		s.StdErr = s.StdDev / math.Sqrt(float64(n))
	} else {
		s.Variance, s.StdDev, s.StdErr = math.NaN(), math.NaN(), math.NaN()
	}
	s.Modes, s.ModeCount = modesSorted(sorted)

	return s, nil
}

// Modes returns every value that reaches the highest frequency, ascending,
// together with that frequency. When all values are distinct every value is
// returned with count 1.
func Modes(xs []float64) ([]float64, int, error) {
	sorted, err := sortedCopy("Modes", xs)
	if err != nil {
		return nil, 0, err
	}
	modes, count := modesSorted(sorted)

	return modes, count, nil
}

// Quantile returns the q-th sample quantile with linear interpolation
// between order statistics (Hyndman-Fan type 7): h = (n−1)·q.
//
// Errors: ErrEmpty, ErrNonFinite, ErrInvalidArgument for q ∉ [0,1].
func Quantile(xs []float64, q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("Quantile: q=%g: %w", q, ErrInvalidArgument)
	}
	sorted, err := sortedCopy("Quantile", xs)
	if err != nil {
		return 0, err
	}

	return quantileSorted(sorted, q), nil
}

// quantileSorted is the type-7 quantile of an ascending, non-empty sample.
func quantileSorted(sorted []float64, q float64) float64 {
	h := float64(len(sorted)-1) * q
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// modesSorted scans runs of equal values in an ascending sample.
func modesSorted(sorted []float64) ([]float64, int) {
	best := 0
	var modes []float64
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		switch run := j - i; {
		case run > best:
			best = run
			modes = append(modes[:0], sorted[i])
		case run == best:
			modes = append(modes, sorted[i])
		}
		i = j
	}

	return modes, best
}

// sortedCopy validates xs and returns an ascending copy.
func sortedCopy(op string, xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	out := make([]float64, len(xs))
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: index %d: %w", op, i, ErrNonFinite)
		}
		out[i] = v
	}
	sort.Float64s(out)

	return out, nil
}
