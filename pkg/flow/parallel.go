package flow

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run pairs a chain with the starting Context it executes against.
type Run struct {
	Chain   Chain
	Context Context
}

// RunAll executes the given runs concurrently, one goroutine per run, and
// returns the final Context of each in input order. Runs must not share a
// session: a Context is single-flight, and concurrent driver calls on one
// page interleave unpredictably. Sharing an Items store across runs is
// fine.
//
// The first run to fail cancels the group context, so sibling runs stop at
// their next step boundary with a cancellation failure. The returned error
// is the first failure, or nil when every run succeeded. All results are
// populated either way.
func RunAll(ctx context.Context, runs ...Run) ([]Context, error) {
	results := make([]Context, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	for i := range runs {
		g.Go(func() error {
			results[i] = runs[i].Chain.Run(gctx, runs[i].Context)
			if f := results[i].Failure(); f != nil {
				return f
			}
			return nil
		})
	}
	err := g.Wait()
	return results, err
}
