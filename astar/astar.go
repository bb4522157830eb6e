package astar

import (
	"context"

	"github.com/katalvlaran/gridpath/gridmap"
	"golang.org/x/sync/errgroup"
)

// Find runs A* from start to goal on g and returns the Result.
//
// Returns:
//
//   - Result.Found == true with the full start…goal path and its cost, or
//   - Result.Found == false (nil Path) when the goal is unreachable, blocked,
//     or out of bounds. This is NoPathFound, not an error.
//     A start on an obstacle or out of bounds is treated the same way.
//   - err only for a nil grid or invalid options.
//
// Each call allocates its own ledger; nothing is retained between calls,
// so repeated calls with identical arguments return identical paths.
func Find(g *gridmap.Grid, start, goal gridmap.Cell, opts ...Option) (Result, error) {
	s, err := NewSearch(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}

// FindAll searches from start to every goal concurrently, at most
// Options.Workers at a time. results[i] corresponds to goals[i].
// Cancelling ctx stops scheduling further searches; searches already
// running finish, and ctx.Err() is returned.
func FindAll(ctx context.Context, g *gridmap.Grid, start gridmap.Cell, goals []gridmap.Cell, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(goals))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	for i, goal := range goals {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r, err := Find(g, start, goal, WithHeuristic(cfg.Heuristic))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
