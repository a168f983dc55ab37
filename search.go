package hybridastar

import "context"

// Solve runs the search to completion on the calling goroutine.
//
// The returned error is nil on success, one of ErrNoStart, ErrTooManyStarts,
// ErrExhausted or ErrCancelled when the search ends without reaching the
// goal, or wraps ErrInvalidConfig when the search could not be set up.
// The termination signal and ctx are polled once per iteration and never
// written.
func Solve(
	ctx context.Context,
	problem Problem,
	config Config,
	options ...Option,
) (Result, error) {
	stepper, err := NewStepper(problem, config, options...)
	if err != nil {
		return Result{}, err
	}
	for !stepper.Done() {
		stepper.Step(ctx)
	}
	return stepper.Result()
}
