// SPDX-License-Identifier: MIT
// Package dist: Chi-square(k).
//
// CDF and Survival integrate the density by composite Simpson's rule. The
// density behaves like t^(k/2−1) at zero, infinite for k < 2 and with an
// unbounded derivative for non-even k, so the integral is rewritten before
// Simpson sees it:
//   - k ≥ 2: t = s², integrand 2s·f(s²) ∝ s^(k−1)·e^(−s²/2).
//   - k < 2: t = s^(2/k), integrand (2/k)·C·e^(−s^(2/k)/2), bounded and smooth.
//
// Only a window around the mass is integrated, so the Simpson step stays
// small next to the width of the density at any k. In s = √t the
// log-integrand is concave for k ≥ 2; a tail window spans chiTailSpan local
// decay lengths and the central window at most chiWindow. The upper tail for
// k < 2 is integrated in v = ln t instead.

package dist

import (
	"math"

	"github.com/katalvlaran/lvstat/special"
)

// ChiSquareIntervals is the Simpson subinterval count of each χ² tail integral.
const ChiSquareIntervals = 1000

const (
	// chiWindow bounds an integration window in s = √t.
	chiWindow = 8
	// chiTailSpan is a tail window in local decay lengths.
	chiTailSpan = 32
)

// ChiSquare is the χ² distribution with k degrees of freedom.
type ChiSquare struct {
	df float64
	// logC is ln of the normalizer 1/(2^(k/2)·Γ(k/2)).
	logC float64
}

// NewChiSquare validates df > 0 (finite).
func NewChiSquare(df float64) (ChiSquare, error) {
	if !positiveFinite(df) {
		return ChiSquare{}, paramErrorf("NewChiSquare", "df must be > 0, got %g", df)
	}

	return ChiSquare{df: df, logC: -(df/2)*math.Ln2 - special.LogGamma(df/2)}, nil
}

// Name implements Distribution.
func (ChiSquare) Name() string { return NameChiSquare }

// DF returns k.
func (c ChiSquare) DF() float64 { return c.df }

// Mean returns k.
func (c ChiSquare) Mean() float64 { return c.df }

// Variance returns 2k.
func (c ChiSquare) Variance() float64 { return 2 * c.df }

// PDF returns x^(k/2−1)·e^(−x/2) / (2^(k/2)·Γ(k/2)) for x > 0.
// At x = 0 the density is +Inf for k < 2, ½ for k = 2 and 0 above.
func (c ChiSquare) PDF(x float64) float64 {
	switch {
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case c.df < 2:
			return math.Inf(1)
		case c.df == 2:
			return 0.5
		default:
			return 0
		}
	}

	return math.Exp(c.logC + (c.df/2-1)*math.Log(x) - x/2)
}

// Density implements Distribution.
func (c ChiSquare) Density(x float64) float64 { return c.PDF(x) }

// CDF returns P(X ≤ x), clamped to [0, 1]. Below the split point the lower
// tail is integrated; above it the CDF is 1 minus the upper tail.
func (c ChiSquare) CDF(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	if x <= c.split() {
		return clamp01(c.lowerTail(x))
	}

	return clamp01(1 - c.upperTail(x))
}

// Survival returns P(X > x). Above the split point the upper tail is
// integrated directly, so p-values far below machine epsilon keep their
// relative precision.
func (c ChiSquare) Survival(x float64) float64 {
	if !(x > 0) {
		return 1
	}
	if math.IsInf(x, 1) {
		return 0
	}
	if x <= c.split() {
		return clamp01(1 - c.lowerTail(x))
	}

	return clamp01(c.upperTail(x))
}

// split is the mode of the integrand for k ≥ 2 (s = √(k−1), t = k−1) and
// the mean k otherwise.
func (c ChiSquare) split() float64 {
	if c.df >= 2 {
		return c.df - 1
	}

	return c.df
}

// windowSpan is the integration span next to a point where the log integrand
// falls at rate r: chiTailSpan decay lengths, never more than chiWindow.
func windowSpan(r float64) float64 {
	if r <= 0 {
		return chiWindow
	}

	return math.Min(chiWindow, chiTailSpan/r)
}

// lowerTail integrates the density over (0, x], x at most split().
func (c ChiSquare) lowerTail(x float64) float64 {
	if c.df >= 2 {
		k := c.df
		t := math.Sqrt(x)
		r := (k-1)/t - t
		a := math.Max(0, t-windowSpan(r))

		return special.Simpson(c.sqrtIntegrand, a, t, ChiSquareIntervals)
	}

	e := 2 / c.df
	scale := e * math.Exp(c.logC)
	integrand := func(s float64) float64 {
		return scale * math.Exp(-math.Pow(s, e)/2)
	}

	return special.Simpson(integrand, 0, math.Pow(x, c.df/2), ChiSquareIntervals)
}

// upperTail integrates the density over (x, ∞), x at least split().
func (c ChiSquare) upperTail(x float64) float64 {
	if c.df >= 2 {
		k := c.df
		t := math.Sqrt(x)
		r := t - (k-1)/t

		return special.Simpson(c.sqrtIntegrand, t, t+windowSpan(r), ChiSquareIntervals)
	}

	// u = e^v: the density beyond x is log-convex in u but log-concave and
	// smooth in v. u^(k/2−1) ≤ x^(k/2−1) bounds the mass past x+4·chiTailSpan
	// by 2·f(x)·e^(−2·chiTailSpan).
	half := c.df / 2
	integrand := func(v float64) float64 {
		return math.Exp(c.logC + half*v - math.Exp(v)/2)
	}

	return special.Simpson(integrand, math.Log(x), math.Log(x+4*chiTailSpan), ChiSquareIntervals)
}

// sqrtIntegrand is 2s·f(s²) for k ≥ 2.
func (c ChiSquare) sqrtIntegrand(s float64) float64 {
	if s == 0 {
		return 0
	}

	return math.Exp(math.Ln2 + c.logC + (c.df-1)*math.Log(s) - s*s/2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Quantile returns x with CDF(x) = p; p = 0 maps to 0 and p = 1 to +Inf.
func (c ChiSquare) Quantile(p float64) (float64, error) {
	if err := checkProbability(NameChiSquare, p); err != nil {
		return 0, err
	}
	switch p {
	case 0:
		return 0, nil
	case 1:
		return math.Inf(1), nil
	}

	return bisectQuantile(c.CDF, p, 0, math.Max(1, c.df), true), nil
}
