// SPDX-License-Identifier: MIT
// Package describe: paired samples.

package describe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Correlation returns Pearson's r of the paired samples x and y. A constant
// sample has no defined correlation and yields NaN.
//
// Errors: ErrEmpty, ErrLengthMismatch, ErrNonFinite.
func Correlation(x, y []float64) (float64, error) {
	if err := checkPaired("Correlation", x, y); err != nil {
		return 0, err
	}

	return stat.Correlation(x, y, nil), nil
}

// Covariance returns the sample covariance (n−1 denominator) of x and y.
//
// Errors: ErrEmpty, ErrLengthMismatch, ErrNonFinite.
func Covariance(x, y []float64) (float64, error) {
	if err := checkPaired("Covariance", x, y); err != nil {
		return 0, err
	}

	return stat.Covariance(x, y, nil), nil
}

// checkPaired rejects samples of unequal or zero length and any NaN or ±Inf.
func checkPaired(op string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w", op, len(x), len(y), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return fmt.Errorf("%s: index %d: %w", op, i, ErrNonFinite)
		}
	}

	return nil
}
