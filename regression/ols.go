// SPDX-License-Identifier: MIT
// Package regression: ordinary least squares through the normal equations.

package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstat/dist"
	"github.com/katalvlaran/lvstat/matrix"
)

const opFit = "Fit"

func fitErrorf(err error) error {
	return fmt.Errorf("%s: %w", opFit, err)
}

// Fit estimates y = β₀ + β₁x₁ + … + βₖxₖ by OLS. Each row holds k predictor
// values followed by the response.
//
// Implementation:
//   - Stage 1: validate the table; build the predictor block and y.
//   - Stage 2: scale every predictor column to unit root mean square, solve
//     the normal equations with the selected Method and undo the scaling on
//     β and the diagonal of (XᵗX)⁻¹ kept for the standard errors.
//   - Stage 3: fitted values, residuals, SST, SSR, R², adjusted R².
//   - Stage 4: MSE = SSR/(n−p), SEᵢ = √(MSE·[(XᵗX)⁻¹]ᵢᵢ), tᵢ = βᵢ/SEᵢ and
//     pᵢ = 2·(1 − T_{n−p}(|tᵢ|)).
//
// Behavior highlights:
//   - A zero standard error yields t = ±Inf and p = 0, or t = 0 and p = 1 when
//     the coefficient itself is 0.
//
// Errors: ErrEmptyInput, ErrTooFewColumns, ErrInsufficientData (n ≤ p),
// ErrZeroVariance, ErrNameCount, matrix.ErrDimensionMismatch (ragged rows),
// matrix.ErrNaNInf, matrix.ErrSingular (collinear predictors).
func Fit(rows [][]float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation.
	if len(rows) == 0 {
		return nil, fitErrorf(ErrEmptyInput)
	}
	cols := len(rows[0])
	if cols < 2 {
		return nil, fitErrorf(ErrTooFewColumns)
	}
	data, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fitErrorf(err)
	}
	n, p := len(rows), cols
	if n <= p {
		return nil, fitErrorf(fmt.Errorf("%d observations for %d parameters: %w", n, p, ErrInsufficientData))
	}
	if o.names != nil && len(o.names) != cols {
		return nil, fitErrorf(fmt.Errorf("%d names for %d columns: %w", len(o.names), cols, ErrNameCount))
	}

	y, err := data.Col(cols - 1)
	if err != nil {
		return nil, fitErrorf(err)
	}

	// Stage 2: coefficients and diag((XᵗX)⁻¹) on unit-scale predictors.
	scaled, scales, err := equilibrate(data, o.method)
	if err != nil {
		return nil, fitErrorf(err)
	}
	var beta, diag []float64
	switch o.method {
	case Centered:
		beta, diag, err = solveCentered(scaled, y, o.pivotTol)
	default:
		beta, diag, err = solveUncentered(scaled, y, o.pivotTol)
	}
	if err != nil {
		return nil, fitErrorf(err)
	}
	for j, sj := range scales {
		beta[j+1] /= sj
		diag[j+1] /= sj * sj
	}

	res := &Result{
		Coefficients: beta,
		Observations: n,
		Parameters:   p,
		DF:           n - p,
		Method:       o.method,
	}
	if o.names != nil {
		res.Terms = append([]string{InterceptTerm}, o.names[:cols-1]...)
		res.Response = o.names[cols-1]
	}

	// Stage 3: goodness of fit.
	res.Fitted = make([]float64, n)
	res.Residuals = make([]float64, n)
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	var row []float64
	for i := 0; i < n; i++ {
		row = rows[i]
		yHat := beta[0]
		for j := 0; j < p-1; j++ {
			yHat += beta[j+1] * row[j]
		}
		res.Fitted[i] = yHat
		res.Residuals[i] = y[i] - yHat
		res.SSR += res.Residuals[i] * res.Residuals[i]
		res.SST += (y[i] - yMean) * (y[i] - yMean)
	}
	if res.SST == 0 {
		return nil, fitErrorf(ErrZeroVariance)
	}
	res.RSquared = 1 - res.SSR/res.SST
	res.AdjustedRSquared = 1 - (res.SSR/float64(n-p))/(res.SST/float64(n-1))

	// Stage 4: inference.
	res.MSE = res.SSR / float64(n-p)
	tdist, err := dist.NewStudentT(float64(n - p))
	if err != nil {
		return nil, fitErrorf(err)
	}
	res.StandardErrors = make([]float64, p)
	res.TValues = make([]float64, p)
	res.PValues = make([]float64, p)
	for i := 0; i < p; i++ {
		se := math.Sqrt(math.Max(0, res.MSE*diag[i]))
		res.StandardErrors[i] = se
		res.TValues[i] = tValue(beta[i], se)
		res.PValues[i] = tdist.TwoSided(res.TValues[i])
	}

	return res, nil
}

// tValue returns b/se with the zero-SE conventions of Fit.
func tValue(b, se float64) float64 {
	if se > 0 {
		return b / se
	}
	if b == 0 {
		return 0
	}

	return math.Copysign(math.Inf(1), b)
}

// equilibrate divides each predictor column by its root mean square, taken
// about the column mean for Centered. The response column is left alone.
// Returns the scaled table and the divisors; a zero column keeps divisor 1.
func equilibrate(data *matrix.Dense, m Method) (*matrix.Dense, []float64, error) {
	rows := data.RawRows()
	n, k := len(rows), data.Cols()-1
	scales := make([]float64, k)
	for j := 0; j < k; j++ {
		var mean float64
		if m == Centered {
			for i := 0; i < n; i++ {
				mean += rows[i][j]
			}
			mean /= float64(n)
		}
		var ss float64
		for i := 0; i < n; i++ {
			d := rows[i][j] - mean
			ss += d * d
		}
		sj := math.Sqrt(ss / float64(n))
		if !(sj > 0) || math.IsInf(sj, 0) {
			sj = 1
		}
		scales[j] = sj
		for i := 0; i < n; i++ {
			rows[i][j] /= sj
		}
	}
	scaled, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return scaled, scales, nil
}

// designMatrix returns X = [1 | predictors] for a table whose last column is y.
func designMatrix(data *matrix.Dense) (*matrix.Dense, error) {
	n, p := data.Rows(), data.Cols()
	X, err := matrix.NewDense(n, p)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		if err = X.Set(i, 0, 1); err != nil {
			return nil, err
		}
		for j := 0; j < p-1; j++ {
			if v, err = data.At(i, j); err != nil {
				return nil, err
			}
			if err = X.Set(i, j+1, v); err != nil {
				return nil, err
			}
		}
	}

	return X, nil
}

// solveUncentered returns β = (XᵗX)⁻¹Xᵗy and diag((XᵗX)⁻¹).
func solveUncentered(data *matrix.Dense, y []float64, tol float64) ([]float64, []float64, error) {
	X, err := designMatrix(data)
	if err != nil {
		return nil, nil, err
	}
	Xt, err := matrix.Transpose(X)
	if err != nil {
		return nil, nil, err
	}
	XtX, err := matrix.Mul(Xt, X)
	if err != nil {
		return nil, nil, err
	}
	inv, err := matrix.Inverse(XtX, matrix.WithPivotTolerance(tol))
	if err != nil {
		return nil, nil, err
	}
	Xty, err := matrix.MatVec(Xt, y)
	if err != nil {
		return nil, nil, err
	}
	beta, err := matrix.MatVec(inv, Xty)
	if err != nil {
		return nil, nil, err
	}

	diag, err := diagonal(inv)
	if err != nil {
		return nil, nil, err
	}

	return beta, diag, nil
}

// solveCentered solves (XcᵗXc)β = Xcᵗyc for the slopes with matrix.Solve and
// recovers β₀ = ȳ − Σ βⱼ·x̄ⱼ. The intercept variance factor is
// 1/n + x̄ᵗ(XcᵗXc)⁻¹x̄; slope factors are the diagonal of (XcᵗXc)⁻¹.
func solveCentered(data *matrix.Dense, y []float64, tol float64) ([]float64, []float64, error) {
	centered, means, err := matrix.CenterColumns(data)
	if err != nil {
		return nil, nil, err
	}
	n, k := data.Rows(), data.Cols()-1

	// Split the centered table into Xc (n×k) and yc.
	Xc, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, nil, err
	}
	yc := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if v, err = centered.At(i, j); err != nil {
				return nil, nil, err
			}
			if err = Xc.Set(i, j, v); err != nil {
				return nil, nil, err
			}
		}
		if yc[i], err = centered.At(i, k); err != nil {
			return nil, nil, err
		}
	}

	Xt, err := matrix.Transpose(Xc)
	if err != nil {
		return nil, nil, err
	}
	A, err := matrix.Mul(Xt, Xc)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.MatVec(Xt, yc)
	if err != nil {
		return nil, nil, err
	}
	slopes, err := matrix.Solve(A, b, matrix.WithPivotTolerance(tol))
	if err != nil {
		return nil, nil, err
	}
	invA, err := matrix.Inverse(A, matrix.WithPivotTolerance(tol))
	if err != nil {
		return nil, nil, err
	}

	xMeans := means[:k]
	beta := make([]float64, k+1)
	var yMean float64
	for _, yi := range y {
		yMean += yi
	}
	yMean /= float64(n)
	beta[0] = yMean
	for j := 0; j < k; j++ {
		beta[j+1] = slopes[j]
		beta[0] -= slopes[j] * xMeans[j]
	}

	slopeDiag, err := diagonal(invA)
	if err != nil {
		return nil, nil, err
	}
	invMean, err := matrix.MatVec(invA, xMeans)
	if err != nil {
		return nil, nil, err
	}
	c00 := 1 / float64(n)
	for j := 0; j < k; j++ {
		c00 += xMeans[j] * invMean[j]
	}

	return beta, append([]float64{c00}, slopeDiag...), nil
}

// diagonal copies the main diagonal of a square matrix.
func diagonal(m matrix.Matrix) ([]float64, error) {
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, i); err != nil {
			return nil, err
		}
	}

	return out, nil
}
