// SPDX-License-Identifier: MIT

// Package special implements the special functions shared by the
// distribution routines of lvstat.
//
// The package offers:
//
//   - Erf/Erfc by the Abramowitz-Stegun 7.1.26 rational approximation
//     (max absolute error about 1.5e-7), with Erf(0) == 0 exactly.
//   - Gamma and LogGamma by the Lanczos approximation (g = 7, nine
//     coefficients), with the reflection formula below 1/2.
//   - Beta, LogBeta and the regularized incomplete beta RegIncBeta,
//     evaluated by a continued fraction (modified Lentz).
//   - Counting helpers: Factorial, Permutations, Choose and their log forms.
//   - Simpson, a composite Simpson's rule integrator.
//
// Functions follow IEEE conventions instead of returning errors: arguments
// outside the domain yield NaN, poles yield ±Inf.
package special
