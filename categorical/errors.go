// SPDX-License-Identifier: MIT
// Package categorical: sentinel error set.

package categorical

import "errors"

var (
	// ErrEmptyTable is returned for tables or label lists without cells.
	ErrEmptyTable = errors.New("categorical: empty table")

	// ErrRaggedTable is returned when contingency rows differ in length or
	// observed and expected counts differ in length.
	ErrRaggedTable = errors.New("categorical: ragged table")

	// ErrNegativeCount is returned for a negative or non-finite count.
	ErrNegativeCount = errors.New("categorical: negative or non-finite count")

	// ErrZeroExpected is returned when an expected count is zero, which
	// leaves the chi-square statistic undefined.
	ErrZeroExpected = errors.New("categorical: zero expected count")

	// ErrTooFewCategories is returned when a test has no degrees of freedom.
	ErrTooFewCategories = errors.New("categorical: need at least two categories")
)
