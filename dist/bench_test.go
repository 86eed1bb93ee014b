// SPDX-License-Identifier: MIT
package dist_test

import (
	"testing"

	"github.com/katalvlaran/lvstat/dist"
)

var sinkF float64

func BenchmarkChiSquareCDF(b *testing.B) {
	c, _ := dist.NewChiSquare(7)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = c.CDF(9.3)
	}
}

func BenchmarkStudentTCDF(b *testing.B) {
	s, _ := dist.NewStudentT(23)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = s.CDF(1.96)
	}
}

func BenchmarkBinomialCDF(b *testing.B) {
	bn, _ := dist.NewBinomial(1000, 0.3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = bn.CDF(310)
	}
}
