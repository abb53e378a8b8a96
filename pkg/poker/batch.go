package poker

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
	"holdem-evaluator/pkg/deck"
	"runtime"
)

// EvaluateAll evaluates many independent pools using up to workers goroutines.
// Results are stored by index, so the output does not depend on scheduling.
// The first error cancels the remaining work.
func EvaluateAll(ctx context.Context, pools [][]deck.Card, workers int) ([]EvaluatedHand, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]EvaluatedHand, len(pools))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, pool := range pools {
		i, pool := i, pool
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			hand, err := Evaluate(pool)
			if err != nil {
				return fmt.Errorf("pool %d: %w", i, err)
			}

			results[i] = hand
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
