// SPDX-License-Identifier: MIT
// Package categorical: chi-square tests.

package categorical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstat/dist"
)

// GoodnessOfFitResult reports Σ (O−E)²/E against χ²(k−1).
type GoodnessOfFitResult struct {
	ChiSquare float64   `json:"chiSquare"`
	DF        int       `json:"df"`
	PValue    float64   `json:"pValue"`
	Expected  []float64 `json:"expected"`
}

// GoodnessOfFit tests observed counts against expected counts. A nil
// expected slice means a uniform split of the observed total; otherwise the
// expected counts are rescaled to the observed total, so proportions work too.
//
// Errors: ErrEmptyTable, ErrTooFewCategories, ErrRaggedTable,
// ErrNegativeCount, ErrZeroExpected.
func GoodnessOfFit(observed, expected []float64) (GoodnessOfFitResult, error) {
	const op = "GoodnessOfFit"
	k := len(observed)
	if k == 0 {
		return GoodnessOfFitResult{}, fmt.Errorf("%s: %w", op, ErrEmptyTable)
	}
	if k < 2 {
		return GoodnessOfFitResult{}, fmt.Errorf("%s: %w", op, ErrTooFewCategories)
	}
	if expected != nil && len(expected) != k {
		return GoodnessOfFitResult{}, fmt.Errorf("%s: %d observed, %d expected: %w", op, k, len(expected), ErrRaggedTable)
	}
	total, err := sumCounts(op, observed)
	if err != nil {
		return GoodnessOfFitResult{}, err
	}

	exp := make([]float64, k)
	if expected == nil {
		for i := range exp {
			exp[i] = total / float64(k)
		}
	} else {
		expTotal, err := sumCounts(op, expected)
		if err != nil {
			return GoodnessOfFitResult{}, err
		}
		if expTotal == 0 {
			return GoodnessOfFitResult{}, fmt.Errorf("%s: %w", op, ErrZeroExpected)
		}
		for i, e := range expected {
			exp[i] = e * total / expTotal
		}
	}

	stat, err := chiSquareSum(op, observed, exp)
	if err != nil {
		return GoodnessOfFitResult{}, err
	}
	res := GoodnessOfFitResult{ChiSquare: stat, DF: k - 1, Expected: exp}
	if res.PValue, err = upperTail(res.ChiSquare, res.DF); err != nil {
		return GoodnessOfFitResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// IndependenceResult reports the chi-square test of independence.
type IndependenceResult struct {
	ChiSquare float64     `json:"chiSquare"`
	DF        int         `json:"df"`
	PValue    float64     `json:"pValue"`
	CramersV  float64     `json:"cramersV"`
	Expected  [][]float64 `json:"expected"`
}

// Independence tests whether the row and column variables of an r×c
// contingency table are independent. Expected counts are row·col/total,
// df = (r−1)(c−1), and Cramér's V = √(χ²/(N·(min(r,c)−1))).
//
// Errors: ErrEmptyTable, ErrRaggedTable, ErrNegativeCount,
// ErrTooFewCategories (r or c below 2), ErrZeroExpected (an empty row or column).
func Independence(table [][]float64) (IndependenceResult, error) {
	const op = "Independence"
	r := len(table)
	if r == 0 || len(table[0]) == 0 {
		return IndependenceResult{}, fmt.Errorf("%s: %w", op, ErrEmptyTable)
	}
	c := len(table[0])
	for i, row := range table {
		if len(row) != c {
			return IndependenceResult{}, fmt.Errorf("%s: row %d has %d cells, want %d: %w", op, i, len(row), c, ErrRaggedTable)
		}
	}
	if r < 2 || c < 2 {
		return IndependenceResult{}, fmt.Errorf("%s: %dx%d table: %w", op, r, c, ErrTooFewCategories)
	}

	rowSums := make([]float64, r)
	colSums := make([]float64, c)
	var total float64
	for i, row := range table {
		s, err := sumCounts(op, row)
		if err != nil {
			return IndependenceResult{}, err
		}
		rowSums[i] = s
		total += s
		for j, v := range row {
			colSums[j] += v
		}
	}

	res := IndependenceResult{DF: (r - 1) * (c - 1), Expected: make([][]float64, r)}
	for i, row := range table {
		res.Expected[i] = make([]float64, c)
		for j := range row {
			if total > 0 {
				res.Expected[i][j] = rowSums[i] * colSums[j] / total
			}
		}
		part, err := chiSquareSum(op, row, res.Expected[i])
		if err != nil {
			return IndependenceResult{}, err
		}
		res.ChiSquare += part
	}

	var err error
	if res.PValue, err = upperTail(res.ChiSquare, res.DF); err != nil {
		return IndependenceResult{}, fmt.Errorf("%s: %w", op, err)
	}
	res.CramersV = math.Sqrt(res.ChiSquare / (total * float64(min(r, c)-1)))

	return res, nil
}

// sumCounts validates counts and returns their sum.
func sumCounts(op string, counts []float64) (float64, error) {
	var s float64
	for i, v := range counts {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, fmt.Errorf("%s: cell %d = %g: %w", op, i, v, ErrNegativeCount)
		}
		s += v
	}

	return s, nil
}

// chiSquareSum returns Σ (O−E)²/E.
func chiSquareSum(op string, observed, expected []float64) (float64, error) {
	var s float64
	for i, o := range observed {
		e := expected[i]
		if e == 0 {
			return 0, fmt.Errorf("%s: cell %d: %w", op, i, ErrZeroExpected)
		}
		s += (o - e) * (o - e) / e
	}

	return s, nil
}

// upperTail returns P(χ²(df) > x).
func upperTail(x float64, df int) (float64, error) {
	cs, err := dist.NewChiSquare(float64(df))
	if err != nil {
		return 0, err
	}

	return cs.Survival(x), nil
}
