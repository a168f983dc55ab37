package hybridastar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent search submitted to SolveBatch.
type Job struct {
	Problem Problem
	Config  Config
}

// JobResult is the outcome of one Job. Err follows the Solve contract.
type JobResult struct {
	Result Result
	Err    error
}

// SolveBatch runs each job as an independent search, at most
// NumberOfWorkers at a time, and returns the outcomes in job order.
// Every search owns its frontier and closed set; validity checkers and goal
// predicates shared between jobs must be safe for concurrent use.
// Cancelling ctx cancels all searches still running.
func SolveBatch(ctx context.Context, jobs []Job, options ...Option) []JobResult {
	searchOptions := applyOptions(options)
	results := make([]JobResult, len(jobs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			result, err := Solve(groupCtx, job.Problem, job.Config, options...)
			results[i] = JobResult{Result: result, Err: err}
			return nil
		})
	}
	_ = group.Wait()
	return results
}
