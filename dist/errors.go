// SPDX-License-Identifier: MIT
// Package dist: sentinel error set.

package dist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a distribution parameter or probability
	// outside its domain (σ ≤ 0, p ∉ [0,1], df ≤ 0, non-integer trials, ...).
	ErrInvalidParameter = errors.New("dist: invalid parameter")

	// ErrUnknownDistribution is returned by Lookup for an unsupported name.
	ErrUnknownDistribution = errors.New("dist: unknown distribution")
)

// paramErrorf formats a parameter failure for the given operation tag and
// wraps ErrInvalidParameter.
func paramErrorf(tag, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

// positiveFinite reports whether v is a finite value > 0.
func positiveFinite(v float64) bool {
	return v > 0 && !isNonFinite(v)
}
