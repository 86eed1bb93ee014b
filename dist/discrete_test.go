// SPDX-License-Identifier: MIT
package dist_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvstat/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomial_PMFSumsToOne(t *testing.T) {
	cases := []struct {
		n int
		p float64
	}{
		{0, 0.3}, {1, 0.5}, {10, 0.1}, {50, 0.5}, {200, 0.97}, {1500, 0.4}, {20, 0}, {20, 1},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d,p=%g", tc.n, tc.p), func(t *testing.T) {
			sum := 0.0
			for k := 0; k <= tc.n; k++ {
				v, err := dist.BinomialPMF(k, tc.n, tc.p)
				require.NoError(t, err)
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-6)
		})
	}
}

func TestBinomial_AgainstGonum(t *testing.T) {
	for _, tc := range []struct {
		n int
		p float64
	}{{12, 0.35}, {400, 0.02}, {1200, 0.5}} {
		b, err := dist.NewBinomial(tc.n, tc.p)
		require.NoError(t, err)
		ref := distuv.Binomial{N: float64(tc.n), P: tc.p}
		for k := 0; k <= tc.n; k += 1 + tc.n/40 {
			x := float64(k)
			assert.InDeltaf(t, ref.Prob(x), b.PMF(x), 1e-12, "pmf n=%d k=%d", tc.n, k)
			assert.InDeltaf(t, ref.CDF(x), b.CDF(x), 1e-10, "cdf n=%d k=%d", tc.n, k)
			assert.InDeltaf(t, 1-ref.CDF(x), b.Survival(x), 1e-10, "sf n=%d k=%d", tc.n, k)
		}
	}
}

func TestBinomial_EdgesAndMoments(t *testing.T) {
	b, err := dist.NewBinomial(10, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 252.0/1024, b.PMF(5), 1e-15)
	assert.Zero(t, b.PMF(2.5))
	assert.Zero(t, b.PMF(-1))
	assert.Zero(t, b.PMF(11))
	assert.Zero(t, b.CDF(-0.5))
	assert.Equal(t, 1.0, b.CDF(10))
	assert.Equal(t, b.CDF(4), b.CDF(4.9))
	assert.Equal(t, 5.0, b.Mean())
	assert.Equal(t, 2.5, b.Variance())

	_, err = dist.NewBinomial(-1, 0.5)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
	_, err = dist.BinomialCDF(1, 3, 1.5)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
}

func TestPoisson_KnownValue(t *testing.T) {
	v, err := dist.PoissonPMF(5, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.1755, v, 1e-3)
	assert.InDelta(t, 0.17546736976785068, v, 1e-14)
}

func TestPoisson_AgainstGonum(t *testing.T) {
	for _, lambda := range []float64{0.2, 3, 45, 800} {
		p, err := dist.NewPoisson(lambda)
		require.NoError(t, err)
		ref := distuv.Poisson{Lambda: lambda}
		top := int(lambda*3) + 10
		for k := 0; k <= top; k += 1 + top/50 {
			x := float64(k)
			assert.InDeltaf(t, ref.Prob(x), p.PMF(x), 1e-12, "pmf λ=%g k=%d", lambda, k)
			assert.InDeltaf(t, ref.CDF(x), p.CDF(x), 1e-10, "cdf λ=%g k=%d", lambda, k)
		}
	}
}

func TestPoisson_Edges(t *testing.T) {
	p, err := dist.NewPoisson(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.PMF(0))
	assert.Zero(t, p.PMF(1))
	assert.Equal(t, 1.0, p.CDF(0))

	p, err = dist.NewPoisson(2)
	require.NoError(t, err)
	assert.Zero(t, p.PMF(1.5))
	assert.InDelta(t, 1.0, p.CDF(1e6), 1e-15)
	assert.Equal(t, 1-p.CDF(3), p.Survival(3))

	_, err = dist.NewPoisson(-0.1)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
}
