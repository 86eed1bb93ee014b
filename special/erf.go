// SPDX-License-Identifier: MIT
// Package special: error function.

package special

import "math"

// Abramowitz & Stegun 7.1.26 coefficients.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

// Erf returns the error function of x by the Abramowitz-Stegun 7.1.26
// approximation, |error| ≤ 1.5e-7.
//
// Behavior highlights:
//   - Odd: Erf(-x) == -Erf(x).
//   - Erf(0) == 0 exactly (the raw polynomial leaves a 1e-9 residue there).
//   - Erf(±Inf) == ±1, Erf(NaN) == NaN.
func Erf(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x == 0:
		return 0
	}
	sign := 1.0
	if x < 0 {
		sign, x = -1.0, -x
	}
	if math.IsInf(x, 1) {
		return sign
	}

	t := 1.0 / (1.0 + erfP*x)
	poly := t * (erfA1 + t*(erfA2+t*(erfA3+t*(erfA4+t*erfA5))))

	return sign * (1.0 - poly*math.Exp(-x*x))
}

// Erfc returns 1 - Erf(x).
func Erfc(x float64) float64 {
	return 1.0 - Erf(x)
}
