// SPDX-License-Identifier: MIT
package dist_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestStudentT_AgainstGonum(t *testing.T) {
	for _, df := range []float64{0.5, 1, 2.5, 7, 30, 300} {
		s, err := dist.NewStudentT(df)
		require.NoError(t, err)
		ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		t.Run(fmt.Sprintf("df=%g", df), func(t *testing.T) {
			for x := -6.0; x <= 6; x += 0.5 {
				assert.InDeltaf(t, ref.Prob(x), s.PDF(x), 1e-12, "pdf x=%g", x)
				assert.InDeltaf(t, ref.CDF(x), s.CDF(x), 1e-10, "cdf x=%g", x)
				assert.InDeltaf(t, ref.Survival(x), s.Survival(x), 1e-10, "sf x=%g", x)
			}
		})
	}
}

func TestStudentT_ApproachesNormal(t *testing.T) {
	n := dist.StandardNormal()
	for x := -4.0; x <= 4; x += 0.1 {
		tv, err := dist.StudentTCDF(x, 1000)
		require.NoError(t, err)
		assert.InDeltaf(t, n.CDF(x), tv, 1e-2, "x=%g", x)
	}
}

func TestStudentT_Symmetry(t *testing.T) {
	s, err := dist.NewStudentT(4)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.CDF(0))
	assert.InDelta(t, 1.0, s.CDF(-1.7)+s.CDF(1.7), 1e-15)
	assert.InDelta(t, 2*s.Survival(2.1), s.TwoSided(-2.1), 1e-15)
	assert.Equal(t, 1.0, s.TwoSided(0))
}

func TestStudentT_Quantile(t *testing.T) {
	s, err := dist.NewStudentT(10)
	require.NoError(t, err)
	// Two-sided 95% critical value.
	q, err := s.Quantile(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 2.228138851986274, q, 1e-9)

	lo, err := s.Quantile(0.025)
	require.NoError(t, err)
	assert.InDelta(t, -q, lo, 1e-9)
}

func TestChiSquare_AgainstGonum(t *testing.T) {
	for _, df := range []float64{0.3, 1, 1.5, 2, 3, 4.5, 10, 57} {
		c, err := dist.NewChiSquare(df)
		require.NoError(t, err)
		ref := distuv.ChiSquared{K: df}
		t.Run(fmt.Sprintf("df=%g", df), func(t *testing.T) {
			for x := 0.05; x <= 3*df+20; x += (3*df + 20) / 37 {
				assert.InDeltaf(t, ref.Prob(x), c.PDF(x), 1e-12, "pdf x=%g", x)
				assert.InDeltaf(t, ref.CDF(x), c.CDF(x), 1e-6, "cdf x=%g", x)
				assert.InDeltaf(t, ref.Survival(x), c.Survival(x), 1e-6, "sf x=%g", x)
			}
		})
	}
}

func TestChiSquare_LargeDF(t *testing.T) {
	for _, df := range []float64{1e4, 1e5, 1e6, 1e7} {
		c, err := dist.NewChiSquare(df)
		require.NoError(t, err)
		ref := distuv.ChiSquared{K: df}
		sd := math.Sqrt(2 * df)
		t.Run(fmt.Sprintf("df=%g", df), func(t *testing.T) {
			for z := -6.0; z <= 6; z += 0.5 {
				x := df + z*sd
				assert.InDeltaf(t, ref.CDF(x), c.CDF(x), 1e-6, "cdf x=%g", x)
				assert.InDeltaf(t, ref.Survival(x), c.Survival(x), 1e-6, "sf x=%g", x)
			}
		})
	}

	c, err := dist.NewChiSquare(1e5)
	require.NoError(t, err)
	assert.InDelta(t, distuv.ChiSquared{K: 1e5}.CDF(99000), c.CDF(99000), 1e-6)

	c, err = dist.NewChiSquare(1e7)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.CDF(1.01e7), 1e-12)
	assert.InDelta(t, 0.5, c.CDF(1e7), 1e-3)
}

func TestChiSquare_MonotoneLargeDF(t *testing.T) {
	const df = 1e7
	c, err := dist.NewChiSquare(df)
	require.NoError(t, err)
	sd := math.Sqrt(2 * df)
	prev := 0.0
	for x := df - 8*sd; x <= df+8*sd; x += sd / 20 {
		cur := c.CDF(x)
		require.GreaterOrEqualf(t, cur, prev-1e-7, "x=%g", x)
		prev = cur
	}
	assert.InDelta(t, 1.0, prev, 1e-9)
}

func TestChiSquare_SmallUpperTail(t *testing.T) {
	cases := []struct{ df, x float64 }{
		{0.5, 40},
		{1, 60},
		{3, 100},
		{10, 80},
		{57, 200},
		{1e4, 1.1e4},
	}
	for _, tc := range cases {
		c, err := dist.NewChiSquare(tc.df)
		require.NoError(t, err)
		want := distuv.ChiSquared{K: tc.df}.Survival(tc.x)
		got := c.Survival(tc.x)
		require.Positivef(t, got, "df=%g x=%g", tc.df, tc.x)
		assert.InEpsilonf(t, want, got, 1e-6, "df=%g x=%g", tc.df, tc.x)
	}

	// The lower tail keeps relative precision too.
	c, err := dist.NewChiSquare(50)
	require.NoError(t, err)
	assert.InEpsilon(t, distuv.ChiSquared{K: 50}.CDF(5), c.CDF(5), 1e-6)
}

func TestChiSquare_Edges(t *testing.T) {
	c, err := dist.NewChiSquare(3)
	require.NoError(t, err)
	assert.Zero(t, c.CDF(0))
	assert.Zero(t, c.CDF(-1))
	assert.Zero(t, c.PDF(-1))
	assert.Zero(t, c.PDF(0))
	assert.Equal(t, 1.0, c.CDF(math.Inf(1)))
	assert.InDelta(t, 1.0, c.CDF(1e9), 1e-9)

	one, err := dist.NewChiSquare(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(one.PDF(0), 1))

	two, err := dist.NewChiSquare(2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, two.PDF(0))
	// χ²(2) is Exponential(½): CDF = 1 − e^(−x/2).
	assert.InDelta(t, 1-math.Exp(-1.5), two.CDF(3), 1e-10)

	_, err = dist.ChiSquareCDF(1, 0)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
}

func TestChiSquare_Monotone(t *testing.T) {
	c, err := dist.NewChiSquare(5)
	require.NoError(t, err)
	prev := 0.0
	for x := 0.0; x <= 80; x += 0.1 {
		cur := c.CDF(x)
		require.GreaterOrEqualf(t, cur, prev-1e-12, "x=%g", x)
		prev = cur
	}
}

func TestChiSquare_Quantile(t *testing.T) {
	c, err := dist.NewChiSquare(1)
	require.NoError(t, err)
	q, err := c.Quantile(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 3.841458820694124, q, 1e-5)

	q, err = c.Quantile(0)
	require.NoError(t, err)
	assert.Zero(t, q)
}

func TestF_AgainstGonum(t *testing.T) {
	for _, d := range [][2]float64{{1, 1}, {2, 7}, {5, 2}, {10, 30}, {3.5, 120}} {
		f, err := dist.NewF(d[0], d[1])
		require.NoError(t, err)
		ref := distuv.F{D1: d[0], D2: d[1]}
		t.Run(fmt.Sprintf("d1=%g,d2=%g", d[0], d[1]), func(t *testing.T) {
			for x := 0.05; x <= 8; x += 0.25 {
				assert.InDeltaf(t, ref.Prob(x), f.PDF(x), 1e-12, "pdf x=%g", x)
				assert.InDeltaf(t, ref.CDF(x), f.CDF(x), 1e-10, "cdf x=%g", x)
				assert.InDeltaf(t, ref.Survival(x), f.Survival(x), 1e-10, "sf x=%g", x)
			}
		})
	}
}

func TestF_EdgesAndQuantile(t *testing.T) {
	f, err := dist.NewF(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.PDF(0))
	assert.Zero(t, f.CDF(0))
	assert.Equal(t, 1.0, f.Survival(-3))

	q, err := f.Quantile(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.95, f.CDF(q), 1e-10)
	assert.InDelta(t, 4.102821015130399, q, 1e-8)

	_, err = dist.NewF(1, 0)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
	_, err = dist.FCDF(1, -2, 3)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)
}
