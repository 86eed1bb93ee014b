// SPDX-License-Identifier: MIT
package describe_test

import (
	"fmt"

	"github.com/katalvlaran/lvstat/describe"
)

func ExampleSummarize() {
	s, err := describe.Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("mean=%g median=%g modes=%v sd(pop)=%g\n", s.Mean, s.Median, s.Modes, s.PopStdDev)
	// Output:
	// mean=5 median=4.5 modes=[4] sd(pop)=2
}

func ExampleOneWayANOVA() {
	a, err := describe.OneWayANOVA([][]float64{
		{6, 8, 4, 5, 3, 4},
		{8, 12, 9, 11, 6, 8},
		{13, 9, 11, 8, 7, 12},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("F(%d,%d)=%.3f\n", a.DFB, a.DFW, a.F)
	// Output:
	// F(2,15)=9.265
}
