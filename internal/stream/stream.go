// Package stream implements a bounded fan-out/fan-in helper: a thin
// wrapper that submits many independent documents to a worker pool and
// calls the re-entrant core for each. No core data structure is ever
// shared across goroutines.
package stream

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tone-format/tone-go/internal/codec"
	"github.com/tone-format/tone-go/internal/valuetree"
)

// EncodeAll encodes each value in values independently, using up to
// concurrency goroutines. Results preserve the input order; the first
// error encountered cancels the remaining work and is returned.
func EncodeAll(ctx context.Context, values []valuetree.Value, opts codec.EncodeOptions, concurrency int) ([]string, error) {
	results := make([]string, len(values))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := codec.Encode(v, opts)
			if err != nil {
				return err
			}
			results[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DecodeAll decodes each text in texts independently, using up to
// concurrency goroutines. Results preserve the input order; the first
// error encountered cancels the remaining work and is returned.
func DecodeAll(ctx context.Context, texts []string, opts codec.DecodeOptions, concurrency int) ([]valuetree.Value, error) {
	results := make([]valuetree.Value, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, t := range texts {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := codec.Decode(t, opts)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
