// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels on any Matrix
// implementation: multiplication, transpose, matrix-vector product, inverse
// and linear solve. All functions perform strict fail-fast validation and
// return wrapped sentinels on dimension or numeric failures.
//
// Notes:
//   - *Dense operands unlock flat-slice fast-paths; other implementations go
//     through At/Set with full error propagation.
//   - Inverse and Solve copy their inputs into private work buffers; callers'
//     matrices are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: *Dense × *Dense uses i→k→j over the flat buffers;
//     otherwise a fixed i→j→k loop through At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			base := i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		var acc float64
		for i := 0; i < rows; i++ {
			acc = ZeroSum
			base := i * cols
			for j := 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var (
		mv  float64
		err error
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Inverse returns A⁻¹ by Gauss-Jordan elimination on the augmented block [A | I]
// with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare; resolve the pivot tolerance from opts.
//   - Stage 2: copy A into a work buffer and start the right block at I.
//   - Stage 3: for every column p, pick the row r ≥ p with the largest |a[r,p]|,
//     swap rows r and p in both blocks, fail with ErrSingular when that
//     magnitude is below the tolerance, normalize row p, and eliminate column p
//     from every other row.
//   - Stage 4: the right block now holds A⁻¹.
//
// Behavior highlights:
//   - Pivot choice bounds the growth of rounding error; ties keep the lowest row.
//   - A row of zeros or linearly dependent rows always yields ErrSingular.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	a, err := flatCopy(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	b := inv.data

	var (
		p, r, j  int
		best, av float64
		factor   float64
		pivotRow int
	)
	for p = 0; p < n; p++ {
		// Partial pivoting: largest magnitude in column p among rows p..n-1.
		pivotRow = p
		best = math.Abs(a[p*n+p])
		for r = p + 1; r < n; r++ {
			if av = math.Abs(a[r*n+p]); av > best {
				best, pivotRow = av, r
			}
		}
		if best < o.pivotTol || best == 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d pivot %.3g: %w", p, best, ErrSingular))
		}
		if pivotRow != p {
			swapRows(a, n, p, pivotRow)
			swapRows(b, n, p, pivotRow)
		}

		// Normalize the pivot row.
		factor = 1.0 / a[p*n+p]
		for j = 0; j < n; j++ {
			a[p*n+j] *= factor
			b[p*n+j] *= factor
		}
		a[p*n+p] = 1.0 // exact, avoids a rounding residue on the diagonal

		// Eliminate column p from every other row.
		for r = 0; r < n; r++ {
			if r == p {
				continue
			}
			factor = a[r*n+p]
			if factor == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[r*n+j] -= factor * a[p*n+j]
				b[r*n+j] -= factor * b[p*n+j]
			}
			a[r*n+p] = 0.0
		}
	}

	return inv, nil
}

// Solve returns x such that A·x = b by Gaussian elimination with partial
// pivoting followed by back substitution.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n), ErrSingular.
// Complexity: Time O(n^3), Space O(n^2).
func Solve(m Matrix, rhs []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(rhs, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	a, err := flatCopy(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	b := make([]float64, n)
	copy(b, rhs)

	var (
		p, r, j  int
		best, av float64
		pivotRow int
		factor   float64
	)
	// Forward elimination to upper-triangular form.
	for p = 0; p < n; p++ {
		pivotRow = p
		best = math.Abs(a[p*n+p])
		for r = p + 1; r < n; r++ {
			if av = math.Abs(a[r*n+p]); av > best {
				best, pivotRow = av, r
			}
		}
		if best < o.pivotTol || best == 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d pivot %.3g: %w", p, best, ErrSingular))
		}
		if pivotRow != p {
			swapRows(a, n, p, pivotRow)
			b[p], b[pivotRow] = b[pivotRow], b[p]
		}
		for r = p + 1; r < n; r++ {
			factor = a[r*n+p] / a[p*n+p]
			if factor == 0 {
				continue
			}
			for j = p; j < n; j++ {
				a[r*n+j] -= factor * a[p*n+j]
			}
			b[r] -= factor * b[p]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	var sum float64
	for r = n - 1; r >= 0; r-- {
		sum = b[r]
		for j = r + 1; j < n; j++ {
			sum -= a[r*n+j] * x[j]
		}
		x[r] = sum / a[r*n+r]
	}

	return x, nil
}

// flatCopy returns a private row-major copy of m.
func flatCopy(m Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)

		return out, nil
	}
	var (
		v   float64
		err error
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// swapRows exchanges rows i and k of a row-major buffer with n columns.
func swapRows(buf []float64, n, i, k int) {
	ri, rk := buf[i*n:(i+1)*n], buf[k*n:(k+1)*n]
	for j := 0; j < n; j++ {
		ri[j], rk[j] = rk[j], ri[j]
	}
}
