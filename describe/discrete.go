// SPDX-License-Identifier: MIT
// Package describe: moments of a discrete random variable.

package describe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ProbabilityTolerance is the allowed deviation of Σp from 1.
const ProbabilityTolerance = 1e-9

// Expectation holds E[X], Var[X] and SD[X] of a discrete random variable.
type Expectation struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stdDev"`
}

// DiscreteRV returns the moments of X taking values[i] with probability probs[i].
//
// Errors: ErrEmpty, ErrLengthMismatch, ErrNonFinite, ErrInvalidProbabilities
// (a negative or non-finite probability, or |Σp − 1| > ProbabilityTolerance).
func DiscreteRV(values, probs []float64) (Expectation, error) {
	if len(values) != len(probs) {
		return Expectation{}, fmt.Errorf("DiscreteRV: %d values, %d probabilities: %w",
			len(values), len(probs), ErrLengthMismatch)
	}
	if len(values) == 0 {
		return Expectation{}, fmt.Errorf("DiscreteRV: %w", ErrEmpty)
	}
	var total float64
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return Expectation{}, fmt.Errorf("DiscreteRV: p[%d]=%g: %w", i, p, ErrInvalidProbabilities)
		}
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return Expectation{}, fmt.Errorf("DiscreteRV: x[%d]: %w", i, ErrNonFinite)
		}
		total += p
	}
	if math.Abs(total-1) > ProbabilityTolerance {
		return Expectation{}, fmt.Errorf("DiscreteRV: Σp=%g: %w", total, ErrInvalidProbabilities)
	}

	// Weighted population moments; gonum normalizes by Σw.
	mean := stat.Mean(values, probs)
	variance := stat.PopVariance(values, probs)

	return Expectation{Mean: mean, Variance: variance, StdDev: math.Sqrt(variance)}, nil
}
