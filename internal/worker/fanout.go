// Package worker provides bounded concurrent fan-out for batches of
// external-provider calls.
package worker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxInFlight bounds concurrent calls against one provider.
	DefaultMaxInFlight = 4

	DefaultItemTimeout  = 3 * time.Second
	DefaultBatchTimeout = 12 * time.Second
)

// Options tune a fan-out batch. Zero values fall back to the defaults.
type Options struct {
	MaxInFlight  int
	ItemTimeout  time.Duration
	BatchTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxInFlight < 1 {
		o.MaxInFlight = DefaultMaxInFlight
	}
	if o.ItemTimeout <= 0 {
		o.ItemTimeout = DefaultItemTimeout
	}
	if o.BatchTimeout <= 0 {
		o.BatchTimeout = DefaultBatchTimeout
	}
	return o
}

// Result carries one item's outcome. Err is set when the call failed or its
// deadline expired; the batch itself never fails.
type Result[V any] struct {
	Value V
	Err   error
}

// Collect runs fn for every key with at most MaxInFlight calls in flight and
// associates results back by key, regardless of completion order. Slow items
// are cut off individually; the whole batch is bounded by BatchTimeout.
// Partial results are returned as-is: a missing or errored key means that
// item resolved nothing.
func Collect[K comparable, V any](ctx context.Context, keys []K, opts Options, fn func(context.Context, K) (V, error)) map[K]Result[V] {
	opts = opts.withDefaults()

	batchCtx, cancel := context.WithTimeout(ctx, opts.BatchTimeout)
	defer cancel()

	results := make([]Result[V], len(keys))
	g, gctx := errgroup.WithContext(batchCtx)
	g.SetLimit(opts.MaxInFlight)

	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			itemCtx, itemCancel := context.WithTimeout(gctx, opts.ItemTimeout)
			defer itemCancel()

			v, err := fn(itemCtx, key)
			results[i] = Result[V]{Value: v, Err: err}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors

	out := make(map[K]Result[V], len(keys))
	for i, key := range keys {
		out[key] = results[i]
	}
	return out
}
