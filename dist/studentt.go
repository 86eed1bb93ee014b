// SPDX-License-Identifier: MIT
// Package dist: Student's t(ν).

package dist

import (
	"math"

	"github.com/katalvlaran/lvstat/special"
)

// StudentT is the standard Student's t distribution with ν degrees of freedom.
type StudentT struct {
	df float64
}

// NewStudentT validates df > 0 (finite).
func NewStudentT(df float64) (StudentT, error) {
	if !positiveFinite(df) {
		return StudentT{}, paramErrorf("NewStudentT", "df must be > 0, got %g", df)
	}

	return StudentT{df: df}, nil
}

// Name implements Distribution.
func (StudentT) Name() string { return NameStudentT }

// DF returns ν.
func (s StudentT) DF() float64 { return s.df }

// PDF returns Γ((ν+1)/2) / (√(νπ)·Γ(ν/2)) · (1 + t²/ν)^(−(ν+1)/2),
// with the gamma ratio taken in log space.
func (s StudentT) PDF(t float64) float64 {
	if math.IsInf(t, 0) {
		return 0
	}
	nu := s.df
	lg := special.LogGamma((nu+1)/2) - special.LogGamma(nu/2) - 0.5*math.Log(nu*math.Pi)

	return math.Exp(lg - (nu+1)/2*math.Log1p(t*t/nu))
}

// Density implements Distribution.
func (s StudentT) Density(x float64) float64 { return s.PDF(x) }

// tail returns P(T > |t|) = ½·I_x(ν/2, ½), x = ν/(ν+t²).
func (s StudentT) tail(t float64) float64 {
	if math.IsInf(t, 0) {
		return 0
	}

	return 0.5 * special.RegIncBeta(s.df/2, 0.5, s.df/(s.df+t*t))
}

// CDF returns 1 − ½·I_x(ν/2, ½) for t ≥ 0 and the mirrored value below zero.
func (s StudentT) CDF(t float64) float64 {
	if t >= 0 {
		return 1 - s.tail(t)
	}

	return s.tail(t)
}

// Survival returns P(T > t).
func (s StudentT) Survival(t float64) float64 {
	if t >= 0 {
		return s.tail(t)
	}

	return 1 - s.tail(t)
}

// TwoSided returns P(|T| ≥ |t|), the two-sided p-value of a t statistic.
func (s StudentT) TwoSided(t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}

	return math.Min(1, 2*s.tail(t))
}

// Quantile returns t with CDF(t) = p. p = 0 and p = 1 map to ∓Inf.
func (s StudentT) Quantile(p float64) (float64, error) {
	if err := checkProbability(NameStudentT, p); err != nil {
		return 0, err
	}
	switch {
	case p == 0:
		return math.Inf(-1), nil
	case p == 1:
		return math.Inf(1), nil
	case p == 0.5:
		return 0, nil
	case p < 0.5:
		// Symmetric about zero; invert the upper half for precision.
		return -bisectQuantile(s.CDF, 1-p, 0, 1, true), nil
	}

	return bisectQuantile(s.CDF, p, 0, 1, true), nil
}
