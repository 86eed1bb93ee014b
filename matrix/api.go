// SPDX-License-Identifier: MIT
// Package matrix: slice-level facades.
//
// Purpose:
//   - Offer the [][]float64 surface used by callers that never hold a Matrix
//     (HTTP handlers, the CLI, other languages through JSON).
//   - Every facade copies in, runs the kernel, and copies out.

package matrix

// ToRows copies any Matrix into a freshly allocated [][]float64.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.RawRows(), nil
	}
	data, err := flatCopy(m)
	if err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = data[i*c : (i+1)*c : (i+1)*c]
	}

	return out, nil
}

// InvertMatrix returns the inverse of a square table.
//
// Errors: ErrBadShape, ErrDimensionMismatch (ragged or non-square), ErrNaNInf, ErrSingular.
func InvertMatrix(rows [][]float64, opts ...Option) ([][]float64, error) {
	a, err := NewFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf("InvertMatrix", err)
	}
	inv, err := Inverse(a, opts...)
	if err != nil {
		return nil, matrixErrorf("InvertMatrix", err)
	}

	return ToRows(inv)
}

// MultiplyMatrices returns a×b for two rectangular tables.
//
// Errors: ErrBadShape, ErrDimensionMismatch, ErrNaNInf.
func MultiplyMatrices(a, b [][]float64) ([][]float64, error) {
	ma, err := NewFromRows(a)
	if err != nil {
		return nil, matrixErrorf("MultiplyMatrices", err)
	}
	mb, err := NewFromRows(b)
	if err != nil {
		return nil, matrixErrorf("MultiplyMatrices", err)
	}
	prod, err := Mul(ma, mb)
	if err != nil {
		return nil, matrixErrorf("MultiplyMatrices", err)
	}

	return ToRows(prod)
}
