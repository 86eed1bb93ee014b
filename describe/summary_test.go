// SPDX-License-Identifier: MIT
package describe_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/describe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSummarize(t *testing.T) {
	xs := []float64{7, 1, 3, 3, 9, 4, 7, 2}
	s, err := describe.Summarize(xs)
	require.NoError(t, err)

	assert.Equal(t, 8, s.N)
	assert.Equal(t, 36.0, s.Sum)
	assert.Equal(t, 4.5, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 8.0, s.Range)
	assert.Equal(t, 3.5, s.Median)
	assert.Equal(t, 2.75, s.Q1) // h = 1.75 → 2 + 0.75·(3−2)
	assert.Equal(t, 7.0, s.Q3)  // h = 5.25 → 7 + 0.25·(7−7)
	assert.Equal(t, 4.25, s.IQR)
	assert.Equal(t, []float64{3, 7}, s.Modes)
	assert.Equal(t, 2, s.ModeCount)
	assert.InDelta(t, stat.Variance(xs, nil), s.Variance, 1e-12)
	assert.InDelta(t, stat.PopStdDev(xs, nil), s.PopStdDev, 1e-12)
	assert.InDelta(t, s.StdDev/math.Sqrt(8), s.StdErr, 1e-15)

	assert.Equal(t, []float64{7, 1, 3, 3, 9, 4, 7, 2}, xs, "input must not be reordered")
}

func TestSummarize_Single(t *testing.T) {
	s, err := describe.Summarize([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Median)
	assert.Zero(t, s.PopVariance)
	assert.True(t, math.IsNaN(s.Variance))
}

func TestSummarize_Errors(t *testing.T) {
	_, err := describe.Summarize(nil)
	assert.ErrorIs(t, err, describe.ErrEmpty)
	_, err = describe.Summarize([]float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, describe.ErrNonFinite)
}

func TestQuantile_Type7(t *testing.T) {
	xs := []float64{10, 20, 30, 40, 50}
	for q, want := range map[float64]float64{0: 10, 0.1: 14, 0.5: 30, 0.9: 46, 1: 50} {
		got, err := describe.Quantile(xs, q)
		require.NoError(t, err)
		assert.InDeltaf(t, want, got, 1e-12, "q=%g", q)
	}
	_, err := describe.Quantile(xs, 1.5)
	assert.ErrorIs(t, err, describe.ErrInvalidArgument)
}

func TestModes(t *testing.T) {
	modes, count, err := describe.Modes([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, modes)
	assert.Equal(t, 1, count)

	modes, count, err = describe.Modes([]float64{4, 4, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, modes)
	assert.Equal(t, 3, count)
}

func TestHistogram(t *testing.T) {
	bins, err := describe.Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	require.NoError(t, err)
	require.Len(t, bins, 5)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 11, total)
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 3, bins[4].Count, "last bin is closed on the maximum")
	assert.Equal(t, 0.0, bins[0].Lower)
	assert.Equal(t, 10.0, bins[4].Upper)

	one, err := describe.Histogram([]float64{3, 3, 3}, describe.DefaultBins)
	require.NoError(t, err)
	assert.Equal(t, []describe.Bin{{Lower: 3, Upper: 3, Count: 3}}, one)

	_, err = describe.Histogram([]float64{1}, 0)
	assert.ErrorIs(t, err, describe.ErrInvalidArgument)
}

func TestCorrelation(t *testing.T) {
	r, err := describe.Correlation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	r, err = describe.Correlation([]float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)

	_, err = describe.Correlation([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, describe.ErrLengthMismatch)

	c, err := describe.Covariance([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-12)
}

func TestPaired_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := describe.Covariance([]float64{1, 2, bad}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, describe.ErrNonFinite)
		_, err = describe.Covariance([]float64{1, 2, 3}, []float64{bad, 2, 3})
		assert.ErrorIs(t, err, describe.ErrNonFinite)
		_, err = describe.Correlation([]float64{1, bad, 3}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, describe.ErrNonFinite)
	}

	_, err := describe.Covariance(nil, nil)
	assert.ErrorIs(t, err, describe.ErrEmpty)
	_, err = describe.Covariance([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, describe.ErrLengthMismatch)
}
