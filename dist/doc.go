// SPDX-License-Identifier: MIT

// Package dist implements the probability distributions used across lvstat:
// Normal, Binomial, Poisson, Student's t, Chi-square and F.
//
// Every distribution is an immutable value built by a validating constructor
// (NewNormal, NewBinomial, ...). Invalid parameters are reported with
// ErrInvalidParameter instead of producing NaN results downstream.
//
// Methods by family:
//
//	Normal     PDF CDF Survival Between Quantile Mean Variance
//	Binomial   PMF CDF Survival Mean Variance
//	Poisson    PMF CDF Survival Mean Variance
//	StudentT   PDF CDF Survival Quantile
//	ChiSquare  PDF CDF Survival Quantile
//	F          PDF CDF Survival Quantile
//
// Algorithms:
//
//   - Normal CDF uses special.Erf (Abramowitz-Stegun, |error| ≤ 1.5e-7).
//   - Student's t and F CDFs go through the regularized incomplete beta.
//   - The Chi-square CDF and Survival integrate one tail of the density with
//     composite Simpson's rule on ChiSquareIntervals subintervals, over a
//     window around the mass and after a change of variables that removes
//     the singularity at zero.
//   - Quantiles invert the CDF by bracketed bisection.
//
// The plain function facades (NormalCDF, StudentTCDF, ...) validate, build the
// value and evaluate in one call. Lookup builds any distribution by name from
// a parameter map, for callers that pick the family at run time.
package dist
