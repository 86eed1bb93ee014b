// SPDX-License-Identifier: MIT
package dist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormal_CDFAtMeanIsHalf(t *testing.T) {
	for _, ms := range [][2]float64{{0, 1}, {3.5, 0.2}, {-100, 42}} {
		v, err := dist.NormalCDF(ms[0], ms[0], ms[1])
		require.NoError(t, err)
		assert.Equal(t, 0.5, v)
	}
}

func TestNormal_AgainstGonum(t *testing.T) {
	n, err := dist.NewNormal(1.5, 2)
	require.NoError(t, err)
	ref := distuv.Normal{Mu: 1.5, Sigma: 2}

	for x := -8.0; x <= 10; x += 0.25 {
		assert.InDeltaf(t, ref.Prob(x), n.PDF(x), 1e-14, "pdf x=%g", x)
		assert.InDeltaf(t, ref.CDF(x), n.CDF(x), 2e-7, "cdf x=%g", x)
		assert.InDeltaf(t, ref.Survival(x), n.Survival(x), 2e-7, "sf x=%g", x)
	}
	assert.Equal(t, 1.5, n.Mean())
	assert.Equal(t, 4.0, n.Variance())
}

func TestNormal_Monotone(t *testing.T) {
	n := dist.StandardNormal()
	prev := 0.0
	for x := -10.0; x <= 10; x += 0.01 {
		cur := n.CDF(x)
		require.GreaterOrEqualf(t, cur, prev, "x=%g", x)
		prev = cur
	}
}

func TestNormal_Between(t *testing.T) {
	n := dist.StandardNormal()
	assert.InDelta(t, 0.6826894921, n.Between(-1, 1), 2e-7)
	assert.Equal(t, n.Between(-1, 1), n.Between(1, -1))
}

func TestNormal_Quantile(t *testing.T) {
	n, err := dist.NewNormal(10, 3)
	require.NoError(t, err)

	for _, p := range []float64{1e-6, 0.025, 0.3, 0.5, 0.9, 0.975} {
		q, err := n.Quantile(p)
		require.NoError(t, err)
		assert.InDeltaf(t, p, n.CDF(q), 1e-10, "p=%g", p)
		if p >= 0.025 {
			// The erf approximation error moves deep-tail quantiles noticeably.
			assert.InDeltaf(t, distuv.Normal{Mu: 10, Sigma: 3}.Quantile(p), q, 1e-5, "p=%g", p)
		}
	}

	q, err := n.Quantile(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q, -1))
	q, err = n.Quantile(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q, 1))

	_, err = n.Quantile(1.2)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
	_, err = n.Quantile(math.NaN())
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
}

func TestNormal_InvalidParameters(t *testing.T) {
	for _, ms := range [][2]float64{{0, 0}, {0, -1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := dist.NewNormal(ms[0], ms[1])
		assert.ErrorIs(t, err, dist.ErrInvalidParameter)
	}
	_, err := dist.NormalPDF(0, 0, 0)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
}
