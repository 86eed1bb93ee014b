// SPDX-License-Identifier: MIT
// Package dist: Normal(μ, σ).

package dist

import (
	"math"

	"github.com/katalvlaran/lvstat/special"
)

// Normal is the normal distribution N(μ, σ²).
type Normal struct {
	mu, sigma float64
}

// NewNormal validates mean (finite) and sd (finite, > 0).
func NewNormal(mean, sd float64) (Normal, error) {
	if isNonFinite(mean) {
		return Normal{}, paramErrorf("NewNormal", "mean must be finite, got %g", mean)
	}
	if !positiveFinite(sd) {
		return Normal{}, paramErrorf("NewNormal", "sd must be > 0, got %g", sd)
	}

	return Normal{mu: mean, sigma: sd}, nil
}

// StandardNormal returns N(0, 1).
func StandardNormal() Normal { return Normal{mu: 0, sigma: 1} }

// Name implements Distribution.
func (Normal) Name() string { return NameNormal }

// Mean returns μ.
func (n Normal) Mean() float64 { return n.mu }

// Variance returns σ².
func (n Normal) Variance() float64 { return n.sigma * n.sigma }

// StdDev returns σ.
func (n Normal) StdDev() float64 { return n.sigma }

// PDF returns the density exp(−z²/2)/(σ√(2π)), z = (x−μ)/σ.
func (n Normal) PDF(x float64) float64 {
	z := (x - n.mu) / n.sigma

	return math.Exp(-0.5*z*z) / (n.sigma * math.Sqrt(2*math.Pi))
}

// Density implements Distribution.
func (n Normal) Density(x float64) float64 { return n.PDF(x) }

// CDF returns 0.5·(1 + erf((x−μ)/(σ√2))). CDF(μ) is exactly 0.5.
func (n Normal) CDF(x float64) float64 {
	return 0.5 * (1 + special.Erf((x-n.mu)/(n.sigma*math.Sqrt2)))
}

// Survival returns P(X > x).
func (n Normal) Survival(x float64) float64 {
	return 0.5 * (1 - special.Erf((x-n.mu)/(n.sigma*math.Sqrt2)))
}

// Between returns P(a ≤ X ≤ b); the bounds may be given in either order.
func (n Normal) Between(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}

	return math.Max(0, n.CDF(b)-n.CDF(a))
}

// Quantile returns x with CDF(x) = p. p = 0 and p = 1 map to ∓Inf.
func (n Normal) Quantile(p float64) (float64, error) {
	if err := checkProbability(NameNormal, p); err != nil {
		return 0, err
	}
	switch p {
	case 0:
		return math.Inf(-1), nil
	case 1:
		return math.Inf(1), nil
	case 0.5:
		return n.mu, nil
	}

	return bisectQuantile(n.CDF, p, n.mu-n.sigma, n.mu+n.sigma, false), nil
}
