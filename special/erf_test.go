// SPDX-License-Identifier: MIT
package special_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvstat/special"
	"github.com/stretchr/testify/assert"
)

func TestErf_ZeroIsExact(t *testing.T) {
	assert.Equal(t, 0.0, special.Erf(0))
	assert.Equal(t, 1.0, special.Erfc(0))
}

func TestErf_AgainstStdlib(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.125 {
		assert.InDeltaf(t, math.Erf(x), special.Erf(x), 1.5e-7, "x=%g", x)
	}
}

func TestErf_OddAndBounded(t *testing.T) {
	for _, x := range []float64{1e-8, 0.3, 1, 2.5, 7, 40} {
		assert.Equal(t, -special.Erf(x), special.Erf(-x))
		assert.LessOrEqual(t, special.Erf(x), 1.0)
	}
	assert.Equal(t, 1.0, special.Erf(math.Inf(1)))
	assert.Equal(t, -1.0, special.Erf(math.Inf(-1)))
	assert.True(t, math.IsNaN(special.Erf(math.NaN())))
}

func TestErf_Monotone(t *testing.T) {
	prev := special.Erf(-6)
	for x := -6.0; x <= 6.0; x += 0.01 {
		cur := special.Erf(x)
		assert.GreaterOrEqualf(t, cur, prev, "x=%g", x)
		prev = cur
	}
}
