// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvstat/matrix"
)

// ExampleInverse inverts a diagonal matrix and prints it.
func ExampleInverse() {
	a, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 4}})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleInverse_singular shows how a singular input is reported.
func ExampleInverse_singular() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(a)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// true
}

// ExampleMultiplyMatrices multiplies two plain tables.
func ExampleMultiplyMatrices() {
	c, _ := matrix.MultiplyMatrices(
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{5}, {6}},
	)
	fmt.Println(c)
	// Output:
	// [[17] [39]]
}
