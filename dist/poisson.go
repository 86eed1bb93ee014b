// SPDX-License-Identifier: MIT
// Package dist: Poisson(λ).

package dist

import (
	"math"

	"github.com/katalvlaran/lvstat/special"
)

const (
	// poissonLogLambda is the rate above which e^(−λ) is too small to seed
	// the iterative recurrence, so terms are built in log space.
	poissonLogLambda = 500

	// poissonIterMaxK bounds the iterative PMF recurrence length.
	poissonIterMaxK = 10000
)

// Poisson counts events at rate λ per interval.
type Poisson struct {
	lambda float64
}

// NewPoisson validates λ ≥ 0 (finite).
func NewPoisson(lambda float64) (Poisson, error) {
	if isNonFinite(lambda) || lambda < 0 {
		return Poisson{}, paramErrorf("NewPoisson", "lambda must be >= 0, got %g", lambda)
	}

	return Poisson{lambda: lambda}, nil
}

// Name implements Distribution.
func (Poisson) Name() string { return NamePoisson }

// Mean returns λ.
func (p Poisson) Mean() float64 { return p.lambda }

// Variance returns λ.
func (p Poisson) Variance() float64 { return p.lambda }

// PMF returns e^(−λ)·λᵏ/k!.
//
// Small rates use the recurrence term_i = term_{i−1}·λ/i from e^(−λ); large
// rates or counts use exp(k·ln λ − λ − ln k!).
func (p Poisson) PMF(k float64) float64 {
	if k < 0 || k != math.Floor(k) || math.IsInf(k, 1) {
		return 0
	}
	if p.lambda == 0 {
		if k == 0 {
			return 1
		}

		return 0
	}
	if p.lambda > poissonLogLambda || k > poissonIterMaxK {
		return math.Exp(k*math.Log(p.lambda) - p.lambda - special.LogGamma(k+1))
	}

	term := math.Exp(-p.lambda)
	for i := 1; i <= int(k); i++ {
		term *= p.lambda / float64(i)
	}

	return term
}

// Density implements Distribution.
func (p Poisson) Density(x float64) float64 { return p.PMF(x) }

// CDF returns P(X ≤ x) as the running sum of PMF terms up to ⌊x⌋.
func (p Poisson) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if p.lambda == 0 || math.IsInf(x, 1) {
		return 1
	}
	k := int(math.Min(math.Floor(x), math.MaxInt32))

	sum := 0.0
	if p.lambda <= poissonLogLambda {
		term := math.Exp(-p.lambda)
		sum = term
		for i := 1; i <= k; i++ {
			term *= p.lambda / float64(i)
			sum += term
			if float64(i) > p.lambda && term < sum*1e-17 {
				break
			}
		}

		return math.Min(1, sum)
	}

	logLambda := math.Log(p.lambda)
	logTerm := -p.lambda
	sum = math.Exp(logTerm)
	for i := 1; i <= k; i++ {
		logTerm += logLambda - math.Log(float64(i))
		term := math.Exp(logTerm)
		sum += term
		if float64(i) > p.lambda && term < sum*1e-17 {
			break
		}
	}

	return math.Min(1, sum)
}

// Survival returns P(X > x).
func (p Poisson) Survival(x float64) float64 {
	return math.Max(0, 1-p.CDF(x))
}
