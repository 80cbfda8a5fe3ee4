package connectivity

import (
	"context"
	"fmt"
	"time"

	"github.com/FrenchMajesty/connectivity/pkg/pairs"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
)

// MaxBenchPairs bounds the workload Bench will generate.
const MaxBenchPairs = 1 << 26

// BenchResult is the timing of one variant over a shared workload.
type BenchResult struct {
	Variant    unionfind.Variant `json:"variant"`
	Components int               `json:"components"`
	Elapsed    time.Duration     `json:"elapsed_ns"`
}

// Bench runs the same random workload of count pairs over n sites against
// every variant in vs. All variants must end with the same component count;
// a mismatch is returned as an error alongside the results gathered so far.
func Bench(ctx context.Context, vs []unionfind.Variant, n, count int, seed uint64) ([]BenchResult, error) {
	if count < 0 || count > MaxBenchPairs {
		return nil, fmt.Errorf("%w: pair count %d not in [0, %d]", unionfind.ErrInvalidArgument, count, MaxBenchPairs)
	}
	work := pairs.Random(n, count, seed)

	results := make([]BenchResult, 0, len(vs))
	for _, v := range vs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		uf, err := unionfind.New(v, n)
		if err != nil {
			return results, fmt.Errorf("failed to create %s structure: %w", v, err)
		}

		start := time.Now()
		for _, p := range work {
			if _, err := join(uf, p); err != nil {
				return results, fmt.Errorf("%s: pair %v: %w", v, p, err)
			}
		}
		results = append(results, BenchResult{
			Variant:    v,
			Components: uf.Count(),
			Elapsed:    time.Since(start),
		})

		if first := results[0]; first.Components != uf.Count() {
			return results, fmt.Errorf("%s ended with %d components but %s ended with %d",
				v, uf.Count(), first.Variant, first.Components)
		}
	}
	return results, nil
}
