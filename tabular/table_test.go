// SPDX-License-Identifier: MIT
package tabular_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvstat/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := "x1, x2 ,y\n1,2,3\n\n4, 5,6.5\n"
	tab, err := tabular.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "y"}, tab.Names)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6.5}}, tab.Rows)

	y, err := tab.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6.5}, y)

	_, err = tab.Column("z")
	assert.ErrorIs(t, err, tabular.ErrUnknownColumn)
}

func TestRead_NotNumeric(t *testing.T) {
	_, err := tabular.Read(strings.NewReader("a,b\n1,2\n3,abc\n"))
	require.ErrorIs(t, err, tabular.ErrNotNumeric)

	var pe *tabular.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "b", pe.Column)
	assert.Equal(t, "abc", pe.Value)
}

func TestRead_Errors(t *testing.T) {
	_, err := tabular.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, tabular.ErrNoHeader)

	_, err = tabular.Read(strings.NewReader("a,b\n"))
	assert.ErrorIs(t, err, tabular.ErrNoRows)

	_, err = tabular.Read(strings.NewReader("a,b\n1,2,3\n"))
	assert.ErrorIs(t, err, tabular.ErrFieldCount)
}

func TestReadMatrix(t *testing.T) {
	rows, err := tabular.ReadMatrix(strings.NewReader("4,7\n2,6\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 7}, {2, 6}}, rows)

	_, err = tabular.ReadMatrix(strings.NewReader("1,x\n"))
	var pe *tabular.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "2", pe.Column)

	_, err = tabular.ReadMatrix(strings.NewReader(""))
	assert.ErrorIs(t, err, tabular.ErrNoRows)
}

func TestWrite_RoundTrip(t *testing.T) {
	in := &tabular.Table{
		Names: []string{"x", "y"},
		Rows:  [][]float64{{0.1, 1e-7}, {-3, 12345.678}},
	}
	var buf bytes.Buffer
	require.NoError(t, tabular.Write(&buf, in))
	assert.Equal(t, "x,y\n0.1,1e-07\n-3,12345.678\n", buf.String())

	out, err := tabular.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	bad := &tabular.Table{Names: []string{"x"}, Rows: [][]float64{{1, 2}}}
	assert.ErrorIs(t, tabular.Write(&bytes.Buffer{}, bad), tabular.ErrFieldCount)
}
