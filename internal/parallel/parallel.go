// Package parallel provides chunked parallel execution over index ranges.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrently running chunks.
	MinChunkSize int  // Minimum items per chunk to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// WithWorkers returns a copy of cfg using n workers. n ≤ 0 keeps the current count.
func (cfg Config) WithWorkers(n int) Config {
	if n > 0 {
		cfg.NumWorkers = n
		cfg.Enabled = n > 1
	}
	return cfg
}

// For calls f(lo, hi) over contiguous chunks covering [0, n).
//
// Chunks run sequentially when parallelism is disabled or n is below
// MinChunkSize. Once ctx is done no further chunks are started and the
// context error is returned.
func For(ctx context.Context, n int, f func(lo, hi int), cfg Config) error {
	if n <= 0 {
		return ctx.Err()
	}

	workers := max(cfg.NumWorkers, 1)
	if !cfg.Enabled || workers == 1 || n < cfg.MinChunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		f(0, n)
		return nil
	}

	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunkSize {
		if gctx.Err() != nil {
			break
		}
		lo, hi := lo, min(lo+chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
