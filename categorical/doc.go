// SPDX-License-Identifier: MIT

// Package categorical analyses counts of categories: frequency tables,
// the chi-square goodness-of-fit test and the chi-square test of independence
// on contingency tables. P-values come from dist.ChiSquare.
package categorical
