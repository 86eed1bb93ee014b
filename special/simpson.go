// SPDX-License-Identifier: MIT
// Package special: numerical quadrature.

package special

import "math"

// Simpson integrates f over [a, b] with the composite Simpson's rule on n
// subintervals. n below 2 is raised to 2 and an odd n is rounded up.
//
// Weights follow the 1, 4, 2, 4, ..., 2, 4, 1 pattern; the result is
// h/3 times the weighted sum. a == b yields 0; a > b yields the negated
// integral over [b, a].
// Complexity: n+1 evaluations of f.
func Simpson(f func(float64) float64, a, b float64, n int) float64 {
	if a == b {
		return 0
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	if n < 2 {
		n = 2
	}
	if n%2 == 1 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}

	return sum * h / 3
}
