// SPDX-License-Identifier: MIT
// Package matrix: column statistics used by the centered regression.

package matrix

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
)

// ColumnMeans returns the arithmetic mean of every column of X.
// Time: O(r*c). Space: O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				sums[j] += d.data[base+j]
			}
		}
	} else {
		var (
			v   float64
			err error
		)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				sums[j] += v
			}
		}
	}

	for j := range sums {
		sums[j] /= float64(r)
	}

	return sums, nil
}

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
//
// AI-Hints: feed the means back into the intercept recovery of a centered fit.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
			out.data[i*c+j] = v - means[j]
		}
	}

	return out, means, nil
}
