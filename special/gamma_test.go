// SPDX-License-Identifier: MIT
package special_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/special"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mathext"
)

func TestGamma_Integers(t *testing.T) {
	want := 1.0
	for n := 1; n <= 20; n++ {
		assert.InEpsilonf(t, want, special.Gamma(float64(n)), 1e-12, "Γ(%d)", n)
		want *= float64(n)
	}
}

func TestGamma_AgainstStdlib(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1.5, 2.25, 3.7, 10.5, 33.3, 120.2, 170.5, -0.5, -1.5, -2.7} {
		assert.InEpsilonf(t, math.Gamma(x), special.Gamma(x), 1e-10, "x=%g", x)
	}
	assert.InDelta(t, math.Sqrt(math.Pi), special.Gamma(0.5), 1e-14)
}

func TestGamma_SpecialCases(t *testing.T) {
	assert.True(t, math.IsInf(special.Gamma(0), 1))
	assert.True(t, math.IsInf(special.Gamma(math.Copysign(0, -1)), -1))
	assert.True(t, math.IsNaN(special.Gamma(-3)))
	assert.True(t, math.IsNaN(special.Gamma(math.Inf(-1))))
	assert.True(t, math.IsInf(special.Gamma(200), 1))
}

func TestLogGamma_AgainstStdlib(t *testing.T) {
	for _, x := range []float64{0.01, 0.5, 1, 2, 7.5, 171.7, 1e3, 1e6, -0.5, -4.25} {
		want, _ := math.Lgamma(x)
		assert.InDeltaf(t, want, special.LogGamma(x), 1e-10*math.Max(1, math.Abs(want)), "x=%g", x)
	}
	assert.True(t, math.IsInf(special.LogGamma(-2), 1))
}

func TestBeta(t *testing.T) {
	for _, ab := range [][2]float64{{1, 1}, {0.5, 0.5}, {2, 3}, {10, 0.3}, {40, 50}} {
		assert.InEpsilon(t, mathext.Beta(ab[0], ab[1]), special.Beta(ab[0], ab[1]), 1e-11)
		assert.InDelta(t, mathext.Lbeta(ab[0], ab[1]), special.LogBeta(ab[0], ab[1]), 1e-11)
	}
	assert.True(t, math.IsNaN(special.Beta(0, 1)))
}
