// SPDX-License-Identifier: MIT
// Package describe: one-way analysis of variance.

package describe

import (
	"fmt"

	"github.com/katalvlaran/lvstat/dist"
	"gonum.org/v1/gonum/stat"
)

// ANOVA is the one-way analysis of variance table.
type ANOVA struct {
	SSB    float64   `json:"ssb"` // between-group sum of squares
	SSW    float64   `json:"ssw"` // within-group sum of squares
	DFB    int       `json:"dfb"` // k − 1
	DFW    int       `json:"dfw"` // N − k
	MSB    float64   `json:"msb"`
	MSW    float64   `json:"msw"`
	F      float64   `json:"f"`
	PValue float64   `json:"pValue"`
	Means  []float64 `json:"means"`
	Grand  float64   `json:"grandMean"`
}

// OneWayANOVA tests whether the group means are equal.
//
// F = MSB/MSW with p = P(F(k−1, N−k) > F). When every group is constant but
// the means differ, F = +Inf and p = 0; when nothing varies at all F is NaN.
//
// Errors: ErrTooFewGroups (k < 2 or N ≤ k), ErrEmpty (an empty group), ErrNonFinite.
func OneWayANOVA(groups [][]float64) (ANOVA, error) {
	k := len(groups)
	if k < 2 {
		return ANOVA{}, fmt.Errorf("OneWayANOVA: %d groups: %w", k, ErrTooFewGroups)
	}

	var (
		total int
		sum   float64
		a     = ANOVA{Means: make([]float64, k)}
	)
	for g, xs := range groups {
		if _, err := sortedCopy(fmt.Sprintf("OneWayANOVA: group %d", g), xs); err != nil {
			return ANOVA{}, err
		}
		a.Means[g] = stat.Mean(xs, nil)
		total += len(xs)
		for _, v := range xs {
			sum += v
		}
	}
	if total <= k {
		return ANOVA{}, fmt.Errorf("OneWayANOVA: %d observations in %d groups: %w", total, k, ErrTooFewGroups)
	}
	a.Grand = sum / float64(total)

	for g, xs := range groups {
		d := a.Means[g] - a.Grand
		a.SSB += float64(len(xs)) * d * d
		for _, v := range xs {
			a.SSW += (v - a.Means[g]) * (v - a.Means[g])
		}
	}
	a.DFB, a.DFW = k-1, total-k
	a.MSB = a.SSB / float64(a.DFB)
	a.MSW = a.SSW / float64(a.DFW)
	a.F = a.MSB / a.MSW

	fd, err := dist.NewF(float64(a.DFB), float64(a.DFW))
	if err != nil {
		return ANOVA{}, fmt.Errorf("OneWayANOVA: %w", err)
	}
	a.PValue = fd.Survival(a.F)

	return a, nil
}
