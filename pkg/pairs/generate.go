package pairs

import "math/rand/v2"

// Random returns count pairs drawn uniformly from [0, n). The same seed always
// yields the same pairs. It returns nil when n is not positive.
func Random(n, count int, seed uint64) []Pair {
	if n <= 0 || count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Pair, count)
	for i := range out {
		out[i] = Pair{P: rng.IntN(n), Q: rng.IntN(n)}
	}
	return out
}

// Chain returns (0,1), (1,2), ..., (n-2,n-1). Unweighted quick-union turns
// this sequence into a single path of depth n-1.
func Chain(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, n-1)
	for i := range out {
		out[i] = Pair{P: i, Q: i + 1}
	}
	return out
}
