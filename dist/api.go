// SPDX-License-Identifier: MIT
// Package dist: one-call function facades.
//
// Each facade validates its parameters, builds the distribution value and
// evaluates it. Invalid parameters return ErrInvalidParameter, never NaN.

package dist

// NormalPDF returns the N(mean, sd²) density at x.
func NormalPDF(x, mean, sd float64) (float64, error) {
	n, err := NewNormal(mean, sd)
	if err != nil {
		return 0, err
	}

	return n.PDF(x), nil
}

// NormalCDF returns P(X ≤ x) for X ~ N(mean, sd²).
func NormalCDF(x, mean, sd float64) (float64, error) {
	n, err := NewNormal(mean, sd)
	if err != nil {
		return 0, err
	}

	return n.CDF(x), nil
}

// BinomialPMF returns P(X = k) for X ~ Binomial(n, p).
func BinomialPMF(k, n int, p float64) (float64, error) {
	b, err := NewBinomial(n, p)
	if err != nil {
		return 0, err
	}

	return b.PMF(float64(k)), nil
}

// BinomialCDF returns P(X ≤ k) for X ~ Binomial(n, p).
func BinomialCDF(k, n int, p float64) (float64, error) {
	b, err := NewBinomial(n, p)
	if err != nil {
		return 0, err
	}

	return b.CDF(float64(k)), nil
}

// PoissonPMF returns P(X = k) for X ~ Poisson(lambda).
func PoissonPMF(k int, lambda float64) (float64, error) {
	p, err := NewPoisson(lambda)
	if err != nil {
		return 0, err
	}

	return p.PMF(float64(k)), nil
}

// PoissonCDF returns P(X ≤ k) for X ~ Poisson(lambda).
func PoissonCDF(k int, lambda float64) (float64, error) {
	p, err := NewPoisson(lambda)
	if err != nil {
		return 0, err
	}

	return p.CDF(float64(k)), nil
}

// StudentTPDF returns the t(df) density at t.
func StudentTPDF(t, df float64) (float64, error) {
	s, err := NewStudentT(df)
	if err != nil {
		return 0, err
	}

	return s.PDF(t), nil
}

// StudentTCDF returns P(T ≤ t) for T ~ t(df).
func StudentTCDF(t, df float64) (float64, error) {
	s, err := NewStudentT(df)
	if err != nil {
		return 0, err
	}

	return s.CDF(t), nil
}

// ChiSquarePDF returns the χ²(df) density at x.
func ChiSquarePDF(x, df float64) (float64, error) {
	c, err := NewChiSquare(df)
	if err != nil {
		return 0, err
	}

	return c.PDF(x), nil
}

// ChiSquareCDF returns P(X ≤ x) for X ~ χ²(df).
func ChiSquareCDF(x, df float64) (float64, error) {
	c, err := NewChiSquare(df)
	if err != nil {
		return 0, err
	}

	return c.CDF(x), nil
}

// FPDF returns the F(df1, df2) density at x.
func FPDF(x, df1, df2 float64) (float64, error) {
	f, err := NewF(df1, df2)
	if err != nil {
		return 0, err
	}

	return f.PDF(x), nil
}

// FCDF returns P(X ≤ x) for X ~ F(df1, df2).
func FCDF(x, df1, df2 float64) (float64, error) {
	f, err := NewF(df1, df2)
	if err != nil {
		return 0, err
	}

	return f.CDF(x), nil
}
