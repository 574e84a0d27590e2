// SPDX-License-Identifier: MIT

// Package spqr_test provides benchmarks for the factorization entry point,
// using deterministic random fill.
package spqr_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spqr/coo"
	"github.com/katalvlaran/spqr/spqr"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{50, 100, 200}

// benchDensity keeps the fill comparable across sizes.
const benchDensity = 0.05

// sink to defeat dead-code elimination
var sinkF *spqr.Factorization

func BenchmarkFactorize(b *testing.B) {
	ctx, err := spqr.NewContext()
	if err != nil {
		b.Fatal(err)
	}
	defer ctx.Close()

	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, rErr := coo.Random(n, n, benchDensity, 1337)
			if rErr != nil {
				b.Fatal(rErr)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, fErr := ctx.Factorize(a)
				if fErr != nil {
					b.Fatal(fErr)
				}
				sinkF = f
			}
		})
	}
}
