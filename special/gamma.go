// SPDX-License-Identifier: MIT
// Package special: gamma family.
//
// One Lanczos approximation backs Gamma, LogGamma and everything built on
// them; there is no second gamma implementation in lvstat.

package special

import "math"

// lanczosG is the Lanczos shift g.
const lanczosG = 7

// lanczosCoef holds the nine Lanczos coefficients for g = 7.
var lanczosCoef = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// halfLog2Pi is ln(2π)/2.
var halfLog2Pi = 0.5 * math.Log(2*math.Pi)

// gammaOverflow is the largest x for which Γ(x) is finite in float64.
const gammaOverflow = 171.61447887182298

// lanczosSeries returns A(z) = c0 + Σ ci/(z+i) for the shifted argument z = x-1.
func lanczosSeries(z float64) float64 {
	a := lanczosCoef[0]
	for i := 1; i < len(lanczosCoef); i++ {
		a += lanczosCoef[i] / (z + float64(i))
	}

	return a
}

// Gamma returns Γ(x).
//
// Implementation:
//   - x < 0.5: reflection Γ(x) = π / (sin(πx)·Γ(1-x)).
//   - otherwise: Lanczos √(2π)·t^(z+½)·e^(−t)·A(z), z = x-1, t = z+g+½;
//     the power is split in two halves so it does not overflow before e^(−t)
//     scales it back.
//
// Special cases: Γ(+0) = +Inf, Γ(−0) = −Inf, Γ(negative integer) = NaN,
// Γ(−Inf) = NaN, Γ(+Inf) = +Inf, Γ(x > 171.6...) = +Inf.
func Gamma(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return math.NaN()
	case math.IsInf(x, 1) || x > gammaOverflow:
		return math.Inf(1)
	case x == 0:
		if math.Signbit(x) {
			return math.Inf(-1)
		}

		return math.Inf(1)
	case x < 0 && x == math.Floor(x):
		return math.NaN()
	}

	if x < 0.5 {
		return math.Pi / (math.Sin(math.Pi*x) * Gamma(1-x))
	}
	z := x - 1
	t := z + lanczosG + 0.5
	half := math.Pow(t, (z+0.5)/2)

	return math.Sqrt(2*math.Pi) * half * math.Exp(-t) * half * lanczosSeries(z)
}

// LogGamma returns ln|Γ(x)|, finite for arguments where Gamma overflows.
// Poles (0 and negative integers) return +Inf.
func LogGamma(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 0):
		return math.Inf(1)
	case x <= 0 && x == math.Floor(x):
		return math.Inf(1)
	}

	if x < 0.5 {
		// ln|Γ(x)| = ln(π/|sin(πx)|) − ln Γ(1−x)
		return math.Log(math.Pi/math.Abs(math.Sin(math.Pi*x))) - LogGamma(1-x)
	}
	z := x - 1
	t := z + lanczosG + 0.5

	return halfLog2Pi + (z+0.5)*math.Log(t) - t + math.Log(lanczosSeries(z))
}

// Beta returns B(a, b) = Γ(a)Γ(b)/Γ(a+b) for a, b > 0; NaN otherwise.
func Beta(a, b float64) float64 {
	if !(a > 0) || !(b > 0) {
		return math.NaN()
	}

	return math.Exp(LogBeta(a, b))
}

// LogBeta returns ln B(a, b) for a, b > 0; NaN otherwise.
func LogBeta(a, b float64) float64 {
	if !(a > 0) || !(b > 0) {
		return math.NaN()
	}

	return LogGamma(a) + LogGamma(b) - LogGamma(a+b)
}
