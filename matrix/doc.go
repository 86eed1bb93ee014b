// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels used by the
// statistical routines of lvstat.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Transpose, Mul and MatVec with a flat-slice fast-path for *Dense.
//   - Inverse by Gauss-Jordan elimination with partial pivoting, and Solve
//     for a single right-hand side by Gaussian elimination.
//   - Column statistics (ColumnMeans, CenterColumns) consumed by regression.
//   - Slice-in/slice-out facades (InvertMatrix, MultiplyMatrices) for callers
//     that hold plain [][]float64 tables.
//
// Every kernel validates its inputs through validators.go and returns the
// sentinels from errors.go, wrapped with the operation name. Inputs are never
// mutated; each call allocates its result.
//
// Matrices here are small (rows and columns entered by a person), so the
// kernels favour determinism and clear loop orders over blocking or SIMD.
package matrix
