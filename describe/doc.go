// SPDX-License-Identifier: MIT

// Package describe computes descriptive statistics for one sample, pairs of
// samples and groups of samples, plus the moments of a discrete random
// variable.
//
// Moments and correlation are delegated to gonum.org/v1/gonum/stat; the
// package adds the pieces gonum leaves to callers: type-7 quantiles, all-mode
// reporting, equal-width histograms and one-way ANOVA.
package describe
