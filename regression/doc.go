// SPDX-License-Identifier: MIT

// Package regression fits ordinary least squares models through the normal
// equations and reports the usual inference table.
//
// Input is a table with one observation per row; every column but the last
// is a predictor and the last column is the response. An intercept column is
// always added, so a table with c columns estimates p = c parameters and needs
// more than p rows.
//
// Two solvers are available through WithMethod:
//
//   - Uncentered (default): β = (XᵗX)⁻¹Xᵗy with X = [1 | predictors].
//   - Centered: the slopes solve (XcᵗXc)β = Xcᵗyc on mean-centered columns and
//     the intercept is recovered as ȳ − Σ βⱼ·x̄ⱼ. Centering improves the
//     conditioning when predictors sit far from zero.
//
// Both produce the same estimates in exact arithmetic. Standard errors come
// from the diagonal of MSE·(XᵗX)⁻¹ and two-sided p-values from Student's t
// with n − p degrees of freedom.
package regression
