package algofwt

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TransformBatch applies plan in place to every sequence in seqs, running at
// most workers transforms at a time. workers <= 0 uses GOMAXPROCS.
//
// Each sequence is handled by exactly one goroutine, so the sequences must
// not overlap. The first failure cancels the remaining work; the returned
// error identifies the failing sequence and wraps the Plan error or
// ctx.Err().
func TransformBatch[T Number](ctx context.Context, plan *Plan[T], seqs [][]T, inverse bool, workers int) error {
	if plan == nil {
		return fmt.Errorf("%w: nil plan", ErrNilSlice)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	stopped := false

	for i, seq := range seqs {
		if gctx.Err() != nil {
			stopped = true

			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if err := plan.Transform(seq, seq, inverse); err != nil {
				return fmt.Errorf("sequence %d: %w", i, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Every scheduled goroutine finished, but the loop left sequences
	// unscheduled after ctx was cancelled.
	if stopped {
		return ctx.Err()
	}

	return nil
}
