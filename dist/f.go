// SPDX-License-Identifier: MIT
// Package dist: Fisher-Snedecor F(d1, d2).

package dist

import (
	"math"

	"github.com/katalvlaran/lvstat/special"
)

// F is the F distribution with d1 numerator and d2 denominator degrees of freedom.
type F struct {
	d1, d2 float64
}

// NewF validates df1 > 0 and df2 > 0 (finite).
func NewF(df1, df2 float64) (F, error) {
	if !positiveFinite(df1) {
		return F{}, paramErrorf("NewF", "df1 must be > 0, got %g", df1)
	}
	if !positiveFinite(df2) {
		return F{}, paramErrorf("NewF", "df2 must be > 0, got %g", df2)
	}

	return F{d1: df1, d2: df2}, nil
}

// Name implements Distribution.
func (F) Name() string { return NameF }

// DF returns (d1, d2).
func (f F) DF() (float64, float64) { return f.d1, f.d2 }

// PDF returns √((d1·x)^d1·d2^d2 / (d1·x+d2)^(d1+d2)) / (x·B(d1/2, d2/2)),
// evaluated in log space. At x = 0 the density is +Inf for d1 < 2, 1 for
// d1 = 2 and 0 above.
func (f F) PDF(x float64) float64 {
	switch {
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case f.d1 < 2:
			return math.Inf(1)
		case f.d1 == 2:
			return 1
		default:
			return 0
		}
	}
	d1x := f.d1 * x
	lp := 0.5*(f.d1*math.Log(d1x)+f.d2*math.Log(f.d2)-(f.d1+f.d2)*math.Log(d1x+f.d2)) -
		math.Log(x) - special.LogBeta(f.d1/2, f.d2/2)

	return math.Exp(lp)
}

// Density implements Distribution.
func (f F) Density(x float64) float64 { return f.PDF(x) }

// CDF returns I_x(d1/2, d2/2) with x = d1·v/(d1·v+d2).
func (f F) CDF(v float64) float64 {
	switch {
	case !(v > 0):
		return 0
	case math.IsInf(v, 1):
		return 1
	}

	return special.RegIncBeta(f.d1/2, f.d2/2, f.d1*v/(f.d1*v+f.d2))
}

// Survival returns P(X > v) = I_y(d2/2, d1/2), y = d2/(d1·v+d2), which keeps
// precision in the upper tail where p-values live.
func (f F) Survival(v float64) float64 {
	switch {
	case !(v > 0):
		return 1
	case math.IsInf(v, 1):
		return 0
	}

	return special.RegIncBeta(f.d2/2, f.d1/2, f.d2/(f.d1*v+f.d2))
}

// Quantile returns v with CDF(v) = p; p = 0 maps to 0 and p = 1 to +Inf.
func (f F) Quantile(p float64) (float64, error) {
	if err := checkProbability(NameF, p); err != nil {
		return 0, err
	}
	switch p {
	case 0:
		return 0, nil
	case 1:
		return math.Inf(1), nil
	}

	return bisectQuantile(f.CDF, p, 0, 1, true), nil
}
