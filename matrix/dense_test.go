// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 1, 3.5))
	assert.Equal(t, 3.5, MustAt(t, m, 1, 1))

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestNewFromRows(t *testing.T) {
	t.Run("copies input", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m := MustFromRows(t, src)
		src[0][0] = 99
		assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.RawRows())
	})
	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewFromRows(nil)
		assert.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = matrix.NewFromRows([][]float64{{}})
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	})
	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.NewFromRows([][]float64{{1, math.NaN()}})
		assert.ErrorIs(t, err, matrix.ErrNaNInf)

		m, err := matrix.NewFromRows([][]float64{{1, math.Inf(-1)}}, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		assert.True(t, math.IsInf(MustAt(t, m, 0, 1), -1))
	})
}

func TestDense_RowColClone(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)

	_, err = m.Col(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "clone must not alias the original")
}

func TestDense_String(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0.5}, {-2, 3}})
	assert.Equal(t, "[1, 0.5]\n[-2, 3]\n", m.String())
}

func TestNewColumn(t *testing.T) {
	c, err := matrix.NewColumn([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 1, c.Cols())

	_, err = matrix.NewColumn(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
