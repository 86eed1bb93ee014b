// SPDX-License-Identifier: MIT
// Package regression: fitted model and derived statistics.

package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstat/dist"
	"github.com/katalvlaran/lvstat/matrix"
)

// InterceptTerm labels the intercept in coefficient tables.
const InterceptTerm = "(Intercept)"

// Result is a fitted OLS model. Coefficient-indexed slices are parallel and
// start with the intercept.
type Result struct {
	Coefficients     []float64 `json:"coefficients"`
	StandardErrors   []float64 `json:"standardErrors"`
	TValues          []float64 `json:"tValues"`
	PValues          []float64 `json:"pValues"`
	RSquared         float64   `json:"rSquared"`
	AdjustedRSquared float64   `json:"adjustedRSquared"`

	Fitted    []float64 `json:"fitted,omitempty"`
	Residuals []float64 `json:"residuals,omitempty"`

	MSE float64 `json:"mse"`
	SSR float64 `json:"ssr"` // residual sum of squares
	SST float64 `json:"sst"` // total sum of squares about ȳ

	Observations int    `json:"observations"`
	Parameters   int    `json:"parameters"`
	DF           int    `json:"df"` // n − p
	Method       Method `json:"method"`

	// Terms labels Coefficients; Response labels the last column.
	Terms    []string `json:"terms,omitempty"`
	Response string   `json:"response,omitempty"`
}

// Coefficient is one row of the inference table.
type Coefficient struct {
	Term     string  `json:"term"`
	Estimate float64 `json:"estimate"`
	StdErr   float64 `json:"stdErr"`
	T        float64 `json:"t"`
	P        float64 `json:"p"`
}

// Table returns the coefficient table in column order.
func (r *Result) Table() []Coefficient {
	out := make([]Coefficient, len(r.Coefficients))
	for i := range r.Coefficients {
		out[i] = Coefficient{
			Term:     r.term(i),
			Estimate: r.Coefficients[i],
			StdErr:   r.StandardErrors[i],
			T:        r.TValues[i],
			P:        r.PValues[i],
		}
	}

	return out
}

func (r *Result) term(i int) string {
	if i < len(r.Terms) {
		return r.Terms[i]
	}
	if i == 0 {
		return InterceptTerm
	}

	return fmt.Sprintf("x%d", i)
}

// Predict returns β₀ + Σ βⱼ·xⱼ for one row of predictor values.
//
// Errors: matrix.ErrDimensionMismatch when len(x) != Parameters−1.
func (r *Result) Predict(x []float64) (float64, error) {
	if len(x) != len(r.Coefficients)-1 {
		return 0, fmt.Errorf("Predict: got %d predictors, want %d: %w",
			len(x), len(r.Coefficients)-1, matrix.ErrDimensionMismatch)
	}
	y := r.Coefficients[0]
	for j, v := range x {
		y += r.Coefficients[j+1] * v
	}

	return y, nil
}

// FTest is the overall significance test of a fit: all slopes zero.
type FTest struct {
	F      float64 `json:"f"`
	DF1    int     `json:"df1"`
	DF2    int     `json:"df2"`
	PValue float64 `json:"pValue"`
}

// FStatistic returns F = ((SST−SSR)/(p−1)) / (SSR/(n−p)) with its upper-tail
// p-value from F(p−1, n−p). A perfect fit (SSR = 0) gives F = +Inf, p = 0.
func (r *Result) FStatistic() (FTest, error) {
	df1, df2 := r.Parameters-1, r.DF
	fd, err := dist.NewF(float64(df1), float64(df2))
	if err != nil {
		return FTest{}, fmt.Errorf("FStatistic: %w", err)
	}
	ft := FTest{DF1: df1, DF2: df2}
	if r.SSR == 0 {
		ft.F = math.Inf(1)
		ft.PValue = 0

		return ft, nil
	}
	ft.F = ((r.SST - r.SSR) / float64(df1)) / (r.SSR / float64(df2))
	ft.PValue = fd.Survival(ft.F)

	return ft, nil
}
