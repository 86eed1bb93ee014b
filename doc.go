// SPDX-License-Identifier: MIT

// Package lvstat is a statistical numerics toolkit: dense linear algebra,
// ordinary least squares with full inference, and the common probability
// distributions, exposed as Go packages, a JSON API and a CLI.
//
// Packages:
//
//	matrix/       — Dense matrices, multiply, transpose, Gauss-Jordan inverse, solve
//	regression/   — OLS via normal equations: coefficients, SE, t, p, R², adjusted R², F
//	special/      — erf, Lanczos gamma, beta, regularized incomplete beta, counting
//	dist/         — Normal, Binomial, Poisson, Student t, Chi-square, F
//	describe/     — summaries, quantiles, histogram, correlation, one-way ANOVA
//	categorical/  — frequency tables and chi-square tests
//	tabular/      — CSV import and export of numeric tables
//	internal/web  — HTTP API with zap logging and Prometheus metrics
//	cmd/lvstat    — cobra CLI (serve, regress, dist, describe, invert)
//
// Library packages never log and never panic on user input: failures are
// sentinel errors wrapped with the failing operation, matched with errors.Is.
package lvstat
