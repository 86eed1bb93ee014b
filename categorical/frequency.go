// SPDX-License-Identifier: MIT
// Package categorical: frequency tables.

package categorical

import "fmt"

// Frequency is one row of a frequency table.
type Frequency struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Relative float64 `json:"relative"`
}

// Frequencies counts labels in order of first appearance.
//
// Errors: ErrEmptyTable for no labels.
func Frequencies(labels []string) ([]Frequency, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("Frequencies: %w", ErrEmptyTable)
	}
	index := make(map[string]int, len(labels))
	var out []Frequency
	for _, l := range labels {
		i, ok := index[l]
		if !ok {
			i = len(out)
			index[l] = i
			out = append(out, Frequency{Label: l})
		}
		out[i].Count++
	}
	n := float64(len(labels))
	for i := range out {
		out[i].Relative = float64(out[i].Count) / n
	}

	return out, nil
}
