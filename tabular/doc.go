// SPDX-License-Identifier: MIT

// Package tabular reads and writes numeric tables as CSV: a header line of
// variable names followed by one observation per line. Table.Rows has the
// shape regression.Fit expects (the last column is the response).
//
// Parsing is strict: a cell that is not a number is reported with its line
// and column instead of being coerced to zero.
package tabular
