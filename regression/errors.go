// SPDX-License-Identifier: MIT
// Package regression: sentinel error set.
//
// Numeric failures from the linear algebra (matrix.ErrSingular for collinear
// predictors, matrix.ErrDimensionMismatch for ragged rows) are propagated
// wrapped and match with errors.Is as well.

package regression

import "errors"

var (
	// ErrEmptyInput is returned for a table without rows.
	ErrEmptyInput = errors.New("regression: no observations")

	// ErrTooFewColumns is returned when rows lack a predictor or the response.
	ErrTooFewColumns = errors.New("regression: need at least one predictor and a response column")

	// ErrInsufficientData is returned when observations do not exceed the
	// parameter count (n ≤ p), leaving no residual degrees of freedom.
	ErrInsufficientData = errors.New("regression: insufficient data")

	// ErrZeroVariance is returned when the response is constant (SST = 0),
	// so R² is undefined.
	ErrZeroVariance = errors.New("regression: response has zero variance")

	// ErrNameCount is returned when variable names do not match the column count.
	ErrNameCount = errors.New("regression: variable name count does not match columns")

	// ErrUnknownMethod is returned by ParseMethod for an unsupported name.
	ErrUnknownMethod = errors.New("regression: unknown method")
)
