package testutil

import (
	"testing"

	"github.com/FrenchMajesty/connectivity/pkg/pairs"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
)

// NewAll creates one structure of every variant over n sites.
func NewAll(tb testing.TB, n int) map[unionfind.Variant]unionfind.UnionFind {
	tb.Helper()

	all := make(map[unionfind.Variant]unionfind.UnionFind)
	for _, v := range unionfind.Variants() {
		uf, err := unionfind.New(v, n)
		if err != nil {
			tb.Fatalf("New(%s, %d) failed: %v", v, n, err)
		}
		all[v] = uf
	}
	return all
}

// MustUnion applies every pair to uf, failing the test on the first error.
func MustUnion(tb testing.TB, uf unionfind.UnionFind, ps ...pairs.Pair) {
	tb.Helper()

	for _, p := range ps {
		if err := uf.Union(p.P, p.Q); err != nil {
			tb.Fatalf("Union(%d, %d) failed: %v", p.P, p.Q, err)
		}
	}
}

// MustConnected returns Connected(p, q), failing the test on error.
func MustConnected(tb testing.TB, uf unionfind.UnionFind, p, q int) bool {
	tb.Helper()

	ok, err := uf.Connected(p, q)
	if err != nil {
		tb.Fatalf("Connected(%d, %d) failed: %v", p, q, err)
	}
	return ok
}

// MustFind returns Find(p), failing the test on error.
func MustFind(tb testing.TB, uf unionfind.UnionFind, p int) int {
	tb.Helper()

	id, err := uf.Find(p)
	if err != nil {
		tb.Fatalf("Find(%d) failed: %v", p, err)
	}
	return id
}
