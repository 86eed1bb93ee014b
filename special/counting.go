// SPDX-License-Identifier: MIT
// Package special: counting helpers (factorials, permutations, combinations).

package special

import "math"

// maxExactFactorial is the largest n with a finite n! in float64.
const maxExactFactorial = 170

// Factorial returns n! as float64. Negative n yields NaN, n > 170 yields +Inf.
func Factorial(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n > maxExactFactorial:
		return math.Inf(1)
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

// LogFactorial returns ln(n!). Negative n yields NaN.
func LogFactorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n < 2 {
		return 0
	}

	return LogGamma(float64(n) + 1)
}

// Permutations returns nPr = n!/(n−r)!, the ordered selections of r out of n.
// Returns 0 when r < 0 or r > n, NaN when n < 0.
func Permutations(n, r int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if r < 0 || r > n {
		return 0
	}
	p := 1.0
	for i := n - r + 1; i <= n; i++ {
		p *= float64(i)
	}

	return p
}

// Choose returns the binomial coefficient C(n, k).
//
// The product runs over the smaller of k and n−k, multiplying and dividing
// alternately so intermediate values stay near the running result. Each step
// yields an integer in exact arithmetic; the result is rounded accordingly
// while it is exactly representable. Overflow yields +Inf.
// Returns 0 when k < 0 or k > n, NaN when n < 0.
func Choose(n, k int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
		if c < 1<<53 {
			c = math.Round(c)
		}
	}

	return c
}

// LogChoose returns ln C(n, k); -Inf when the coefficient is 0.
func LogChoose(n, k int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if k < 0 || k > n {
		return math.Inf(-1)
	}

	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}
