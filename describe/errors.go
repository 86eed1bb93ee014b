// SPDX-License-Identifier: MIT
// Package describe: sentinel error set.

package describe

import "errors"

var (
	// ErrEmpty is returned for a sample without values.
	ErrEmpty = errors.New("describe: empty sample")

	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("describe: length mismatch")

	// ErrInvalidProbabilities is returned when probabilities are negative,
	// non-finite or do not sum to 1.
	ErrInvalidProbabilities = errors.New("describe: invalid probabilities")

	// ErrTooFewGroups is returned by OneWayANOVA for fewer than two groups, or
	// when there are no within-group degrees of freedom.
	ErrTooFewGroups = errors.New("describe: need at least two groups")

	// ErrInvalidArgument is returned for out-of-range arguments (q ∉ [0,1], bins < 1).
	ErrInvalidArgument = errors.New("describe: invalid argument")

	// ErrNonFinite is returned when a sample holds NaN or ±Inf.
	ErrNonFinite = errors.New("describe: NaN or Inf in sample")
)
