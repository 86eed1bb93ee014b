// SPDX-License-Identifier: MIT
// Package dist: Binomial(n, p).

package dist

import (
	"math"

	"github.com/katalvlaran/lvstat/special"
)

// Binomial counts successes in n independent trials with success probability p.
//
// Discrete methods take float64 arguments: PMF of a non-integer is 0, CDF and
// Survival floor their argument.
type Binomial struct {
	n int
	p float64
}

// NewBinomial validates n ≥ 0 and p ∈ [0,1].
func NewBinomial(n int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, paramErrorf("NewBinomial", "trials must be >= 0, got %d", n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Binomial{}, paramErrorf("NewBinomial", "p must be in [0,1], got %g", p)
	}

	return Binomial{n: n, p: p}, nil
}

// Name implements Distribution.
func (Binomial) Name() string { return NameBinomial }

// Trials returns n.
func (b Binomial) Trials() int { return b.n }

// Mean returns np.
func (b Binomial) Mean() float64 { return float64(b.n) * b.p }

// Variance returns np(1−p).
func (b Binomial) Variance() float64 { return float64(b.n) * b.p * (1 - b.p) }

// PMF returns C(n,k)·pᵏ·(1−p)ⁿ⁻ᵏ.
//
// The coefficient comes from special.Choose; when it overflows or the direct
// product underflows the term is evaluated in log space instead.
func (b Binomial) PMF(k float64) float64 {
	if k < 0 || k > float64(b.n) || k != math.Floor(k) {
		return 0
	}
	ki := int(k)

	switch b.p {
	case 0:
		if ki == 0 {
			return 1
		}

		return 0
	case 1:
		if ki == b.n {
			return 1
		}

		return 0
	}

	c := special.Choose(b.n, ki)
	if !math.IsInf(c, 1) {
		direct := c * math.Pow(b.p, k) * math.Pow(1-b.p, float64(b.n-ki))
		if direct > 0 && !math.IsInf(direct, 0) {
			return direct
		}
	}

	return math.Exp(special.LogChoose(b.n, ki) + k*math.Log(b.p) + float64(b.n-ki)*math.Log1p(-b.p))
}

// Density implements Distribution.
func (b Binomial) Density(x float64) float64 { return b.PMF(x) }

// CDF returns P(X ≤ x) as the running sum of the PMF from 0 to ⌊x⌋.
func (b Binomial) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x >= float64(b.n) {
		return 1
	}

	return b.sumPMF(0, int(math.Floor(x)))
}

// Survival returns P(X > x), summed over the upper tail.
func (b Binomial) Survival(x float64) float64 {
	if x < 0 {
		return 1
	}
	if x >= float64(b.n) {
		return 0
	}

	return b.sumPMF(int(math.Floor(x))+1, b.n)
}

// sumPMF returns Σ PMF(i) for i in [from, to], 0 ≤ from ≤ to ≤ n.
// Consecutive terms follow PMF(i+1) = PMF(i)·(n−i)/(i+1)·p/(1−p), carried in
// log space so a tiny first term does not flush the whole sum to zero.
func (b Binomial) sumPMF(from, to int) float64 {
	switch b.p {
	case 0:
		if from == 0 {
			return 1
		}

		return 0
	case 1:
		if to == b.n {
			return 1
		}

		return 0
	}

	logOdds := math.Log(b.p) - math.Log1p(-b.p)
	logTerm := special.LogChoose(b.n, from) + float64(from)*math.Log(b.p) + float64(b.n-from)*math.Log1p(-b.p)
	sum := 0.0
	for i := from; i <= to; i++ {
		sum += math.Exp(logTerm)
		logTerm += math.Log(float64(b.n-i)/float64(i+1)) + logOdds
	}

	return math.Min(1, sum)
}
