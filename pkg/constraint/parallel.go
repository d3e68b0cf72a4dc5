// Package constraint provides the backtracking search engine.
// This file implements parallel search by splitting the first search
// variable's domain values across a bounded worker pool.
package constraint

import (
	"context"
	"runtime"
	"sync"

	"github.com/solverforge/constraint/internal/parallel"
)

// SolveParallel enumerates satisfying assignments using multiple workers.
//
// The top-level domain values of the first search variable are distributed
// across workers; each worker runs an independent sequential backtracking
// subtree. Subtrees are fully independent given a fixed first-variable
// value, so no cross-worker coordination is needed beyond collecting the
// per-value batches. Batches are concatenated in domain order, which makes
// the result sequence identical to Solve's — parallelism changes wall
// clock, never observable output.
//
// This requires what the Constraint contract already demands: predicates
// are pure and payloads are read-only, so sharing the problem across
// workers needs no synchronization.
//
// Parameters:
//   - ctx: cancellation; on cancellation the merged partial result is
//     returned together with ctx.Err()
//   - numWorkers: number of parallel workers (0 = runtime.NumCPU())
//   - maxSolutions: maximum solutions to return (0 = all)
func (s *Solver) SolveParallel(ctx context.Context, numWorkers, maxSolutions int) ([]Solution, error) {
	plan := s.buildPlan()
	solutions := make([]Solution, 0)

	if !plan.viable() {
		return solutions, nil
	}
	if len(plan.order) == 0 {
		solutions = append(solutions, newSolution(nil, nil))
		return solutions, nil
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	firstValues := plan.order[0].domain.values
	batches := make([][]Solution, len(firstValues))

	pool := parallel.NewWorkerPool(numWorkers)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i, value := range firstValues {
		// Per-iteration copies: with the go directive lowered below 1.22
		// for the local toolchain, range variables are shared across
		// iterations and must be captured explicitly.
		i, value := i, value
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()

			// Each worker owns its searcher; the plan is shared read-only.
			sr := newSearcher(plan)
			sr.trial[0] = value
			if !sr.checksPass(0) {
				return
			}

			// A per-subtree limit of maxSolutions is safe: the ordered
			// merge never takes more than maxSolutions from any prefix.
			batch := make([]Solution, 0)
			_ = sr.run(ctx, 1, &batch, maxSolutions)
			batches[i] = batch
		})
		if err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()

	for _, batch := range batches {
		for _, sol := range batch {
			solutions = append(solutions, sol)
			if maxSolutions > 0 && len(solutions) >= maxSolutions {
				return solutions, ctx.Err()
			}
		}
	}
	return solutions, ctx.Err()
}
