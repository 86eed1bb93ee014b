// SPDX-License-Identifier: MIT
// Package regression: two-variable regression.

package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstat/matrix"
)

// SimpleResult summarizes y = a + b·x.
type SimpleResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	// R is Pearson's correlation coefficient, signed like the slope.
	R        float64 `json:"r"`
	RSquared float64 `json:"rSquared"`
	Fit      *Result `json:"fit"`
}

// Simple regresses y on a single predictor x through Fit.
//
// Errors: matrix.ErrDimensionMismatch when len(x) != len(y), plus every Fit error.
func Simple(x, y []float64, opts ...Option) (*SimpleResult, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("Simple: len(x)=%d, len(y)=%d: %w", len(x), len(y), matrix.ErrDimensionMismatch)
	}
	rows := make([][]float64, len(x))
	for i := range x {
		rows[i] = []float64{x[i], y[i]}
	}
	fit, err := Fit(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("Simple: %w", err)
	}

	r := math.Sqrt(math.Max(0, fit.RSquared))
	if fit.Coefficients[1] < 0 {
		r = -r
	}

	return &SimpleResult{
		Slope:     fit.Coefficients[1],
		Intercept: fit.Coefficients[0],
		R:         r,
		RSquared:  fit.RSquared,
		Fit:       fit,
	}, nil
}

// FitOLS is Fit with default options.
func FitOLS(rows [][]float64) (*Result, error) {
	return Fit(rows)
}
