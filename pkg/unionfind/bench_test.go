package unionfind_test

import (
	"fmt"
	"testing"

	"github.com/FrenchMajesty/connectivity/pkg/pairs"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
)

func benchmarkWorkload(b *testing.B, v unionfind.Variant, n int, work []pairs.Pair) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		uf, err := unionfind.New(v, n)
		if err != nil {
			b.Fatal(err)
		}
		for _, p := range work {
			ok, err := uf.Connected(p.P, p.Q)
			if err != nil {
				b.Fatal(err)
			}
			if !ok {
				if err := uf.Union(p.P, p.Q); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
}

func BenchmarkRandom(b *testing.B) {
	for _, n := range []int{1_000, 10_000} {
		work := pairs.Random(n, 2*n, 1)
		for _, v := range unionfind.Variants() {
			b.Run(fmt.Sprintf("%s/n=%d", v, n), func(b *testing.B) {
				benchmarkWorkload(b, v, n, work)
			})
		}
	}
}

func BenchmarkChain(b *testing.B) {
	const n = 5_000
	work := pairs.Chain(n)
	for _, v := range unionfind.Variants() {
		b.Run(string(v), func(b *testing.B) {
			benchmarkWorkload(b, v, n, work)
		})
	}
}

// Only the weighted variant is fast enough for a million sites.
func BenchmarkWeightedLarge(b *testing.B) {
	const n = 1_000_000
	work := pairs.Random(n, 2*n, 1)
	benchmarkWorkload(b, unionfind.WeightedVariant, n, work)
}
