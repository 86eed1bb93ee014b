// SPDX-License-Identifier: MIT
// Package matrix: functional options and numeric policy defaults.
//
// Purpose:
//   - Keep every tunable numeric threshold in one place (single source of truth).
//   - Let callers override thresholds per call through ...Option without
//     changing package-level state.
//
// Policy:
//   - Option constructors panic only on nonsensical values (programmer error):
//     negative, NaN or Inf tolerances.
//   - Kernels read the resolved Options once at entry; loops never re-read them.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the smallest pivot magnitude accepted by
	// Inverse and Solve after partial pivoting; anything below is ErrSingular.
	DefaultPivotTolerance = 1e-10

	// DefaultEpsilon is the tolerance used by structural comparisons.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// PivotTolerance reports the resolved pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Epsilon reports the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithPivotTolerance sets the minimum accepted pivot magnitude for Inverse and Solve.
// A zero tolerance only rejects exact zero pivots.
//
// Panics when tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithEpsilon sets the tolerance used by structural checks such as IsIdentity.
//
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on ingestion (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
