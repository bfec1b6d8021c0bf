// Package bgworker runs batches of independent work on a bounded worker pool.
package bgworker

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-numeric/logger"
)

// DefaultWorkerCount is used when a caller asks for fewer than one worker.
const DefaultWorkerCount = 4

// Map calls fn for every input on a pool of at most workers goroutines and
// returns the outputs in input order. The pool lives only for the duration
// of the call.
//
// fn cannot fail; callers that need per-item errors carry them in O so that
// one bad input does not cancel the rest of the batch.
func Map[I, O any](
	ctx context.Context,
	workers int,
	inputs []I,
	fn func(ctx context.Context, index int, input I) O,
) ([]O, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, nil
	}

	if workers < 1 {
		workers = DefaultWorkerCount
	}

	logger.Get(ctx).Debug("starting worker pool", "workers", workers, "tasks", len(inputs))

	pool := pond.NewResultPool[O](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for i, input := range inputs {
		group.Submit(func() O {
			return fn(ctx, i, input)
		})
	}

	return group.Wait()
}
