package rng

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/rnglib/rng/pkg/random"
	"github.com/rnglib/rng/pkg/weighted"
	"golang.org/x/sync/errgroup"
)

// BatchOptions configures GenerateMany.
type BatchOptions struct {
	Count   int
	Short   bool
	Full    bool   // "First Last" from the Normal profile; Short is ignored
	Seed    uint64 // 0 picks a random seed
	Workers int    // <= 0 uses GOMAXPROCS
}

// GenerateMany builds opts.Count names concurrently. Name i draws from its own
// source seeded with Seed+i, so a fixed seed yields the same slice whatever
// the scheduling.
func GenerateMany(ctx context.Context, g *Generator, opts BatchOptions) ([]string, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", opts.Count)
	}
	profile := weighted.Normal
	if opts.Short {
		profile = weighted.Short
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	names := make([]string, opts.Count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := random.NewSeeded(seed + uint64(i))
			var name string
			var err error
			if opts.Full {
				name, err = g.FullName(src)
			} else {
				name, err = g.Generate(profile, src)
			}
			if err != nil {
				return err
			}
			names[i] = name
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}
