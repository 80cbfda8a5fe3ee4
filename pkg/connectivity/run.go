// Package connectivity drives a union-find structure from a connection stream:
// every pair not yet connected is joined and reported, and the number of
// components left at the end is returned.
package connectivity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/FrenchMajesty/connectivity/pkg/pairs"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
	"github.com/google/uuid"
)

// Result summarizes a run.
type Result struct {
	// RunID identifies the run in logs and report file names.
	RunID string `json:"run_id"`

	Variant unionfind.Variant `json:"variant"`

	// Sites is N, read from the stream header.
	Sites int `json:"sites"`

	// Pairs is the number of pairs read.
	Pairs int `json:"pairs"`

	// Joined is the number of pairs that merged two components.
	Joined int `json:"joined"`

	// Components is the final Count() of the structure.
	Components int `json:"components"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Run reads a connection stream from r and feeds it through a structure of
// cfg.Variant. onJoin, if not nil, is called for every pair that merged two
// components. Cancellation of ctx is checked between pairs.
func Run(ctx context.Context, cfg Config, r io.Reader, onJoin func(pairs.Pair)) (*Result, error) {
	cfg.applyDefaults()

	start := time.Now()
	res := &Result{
		RunID:   uuid.New().String(),
		Variant: cfg.Variant,
	}

	rd := pairs.NewReader(r)
	n, err := rd.Sites()
	if err != nil {
		return nil, fmt.Errorf("failed to read site count: %w", err)
	}
	res.Sites = n

	uf, err := unionfind.New(cfg.Variant, n)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s structure: %w", cfg.Variant, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read pair %d: %w", res.Pairs+1, err)
		}
		res.Pairs++

		joined, err := join(uf, p)
		if err != nil {
			return nil, fmt.Errorf("pair %d (%v): %w", res.Pairs, p, err)
		}
		if !joined {
			continue
		}

		res.Joined++
		cfg.Logger("%s", p)
		if onJoin != nil {
			onJoin(p)
		}
	}

	res.Components = uf.Count()
	res.Elapsed = time.Since(start)
	cfg.Logger("%d components", res.Components)

	return res, nil
}

// RunFile opens cfg.Input and runs it.
func RunFile(ctx context.Context, cfg Config, onJoin func(pairs.Pair)) (*Result, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file configured")
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Run(ctx, cfg, f, onJoin)
}

// join unions p when its sites are not yet connected and reports whether it did.
func join(uf unionfind.UnionFind, p pairs.Pair) (bool, error) {
	connected, err := uf.Connected(p.P, p.Q)
	if err != nil {
		return false, err
	}
	if connected {
		return false, nil
	}
	if err := uf.Union(p.P, p.Q); err != nil {
		return false, err
	}
	return true, nil
}
