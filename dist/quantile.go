// SPDX-License-Identifier: MIT
// Package dist: numeric inversion of CDFs.

package dist

import "math"

const (
	// QuantileMaxIter caps the bisection steps of every Quantile method.
	QuantileMaxIter = 200

	// QuantileTolerance is the relative bracket width at which bisection stops.
	QuantileTolerance = 1e-12

	// maxBracketDoublings bounds the bracket search; 2^1100 exceeds MaxFloat64.
	maxBracketDoublings = 1100
)

// checkProbability validates p ∈ [0,1] for the Quantile of dist name.
func checkProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return paramErrorf(name+".Quantile", "p must be in [0,1], got %g", p)
	}

	return nil
}

// bisectQuantile returns x with cdf(x) ≈ p for a non-decreasing cdf.
//
// Implementation:
//   - Stage 1: grow [lo, hi] by doubling its width until cdf(hi) ≥ p and,
//     when the support is unbounded below, cdf(lo) ≤ p.
//   - Stage 2: bisection, at most QuantileMaxIter halvings, stopping when the
//     bracket is narrower than QuantileTolerance·max(1,|x|).
func bisectQuantile(cdf func(float64) float64, p, lo, hi float64, boundedBelow bool) float64 {
	width := hi - lo
	for i := 0; cdf(hi) < p && i < maxBracketDoublings; i++ {
		lo = hi
		width *= 2
		hi = lo + width
		if math.IsInf(hi, 1) {
			return hi
		}
	}
	if !boundedBelow {
		width = hi - lo
		for i := 0; cdf(lo) > p && i < maxBracketDoublings; i++ {
			hi = lo
			width *= 2
			lo = hi - width
			if math.IsInf(lo, -1) {
				return lo
			}
		}
	}

	var mid float64
	for i := 0; i < QuantileMaxIter; i++ {
		mid = lo + (hi-lo)/2
		if cdf(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= QuantileTolerance*math.Max(1, math.Abs(mid)) {
			break
		}
	}

	return lo + (hi-lo)/2
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
