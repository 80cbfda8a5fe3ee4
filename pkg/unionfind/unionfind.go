// Package unionfind implements the dynamic connectivity abstraction over sites
// 0..N-1 in three interchangeable variants: quick-find, quick-union, and
// weighted quick-union with path compression.
//
// None of the variants is safe for concurrent use. Wrap one with Synchronized
// when several goroutines must share it.
package unionfind

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a structure is created with N <= 0.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a site lies outside [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// UnionFind is the contract shared by every variant.
type UnionFind interface {
	// Find returns the representative of the component containing p.
	Find(p int) (int, error)
	// Connected reports whether p and q are in the same component.
	Connected(p, q int) (bool, error)
	// Union merges the components containing p and q. It is a no-op when they
	// are already connected.
	Union(p, q int) error
	// Count returns the number of components.
	Count() int
	// Size returns the number of sites.
	Size() int
}

// Variant names an implementation of UnionFind.
type Variant string

const (
	QuickFindVariant  Variant = "quick-find"
	QuickUnionVariant Variant = "quick-union"
	WeightedVariant   Variant = "weighted"
)

// MaxSites is the largest N any variant accepts. The weighted variant keeps
// two int slices of length N, so this bounds a structure at about 1 GiB.
const MaxSites = 1 << 26

// DefaultVariant is used when no variant is configured.
const DefaultVariant = WeightedVariant

// Variants returns every known variant, cheapest union last.
func Variants() []Variant {
	return []Variant{QuickFindVariant, QuickUnionVariant, WeightedVariant}
}

// ParseVariant maps a variant name to a Variant. Matching is case-insensitive.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Variants() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, name)
}

// New creates a structure of the given variant over n sites.
func New(v Variant, n int) (UnionFind, error) {
	var (
		uf  UnionFind
		err error
	)
	switch v {
	case QuickFindVariant:
		uf, err = NewQuickFind(n)
	case QuickUnionVariant:
		uf, err = NewQuickUnion(n)
	case WeightedVariant:
		uf, err = NewWeightedQuickUnion(n)
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, string(v))
	}
	if err != nil {
		// Avoid handing back a typed nil pointer inside the interface.
		return nil, err
	}
	return uf, nil
}

func checkSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: number of sites must be positive, got %d", ErrInvalidArgument, n)
	}
	if n > MaxSites {
		return fmt.Errorf("%w: number of sites %d exceeds %d", ErrInvalidArgument, n, MaxSites)
	}
	return nil
}

func checkSite(p, n int) error {
	if p < 0 || p >= n {
		return fmt.Errorf("%w: site %d not in [0, %d)", ErrIndexOutOfRange, p, n)
	}
	return nil
}

// identity returns the slice 0, 1, ..., n-1.
func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
