package hybridastar

import "errors"

var (
	// ErrNoStart is returned when the problem supplies no start pose.
	ErrNoStart = errors.New("no start pose")

	// ErrTooManyStarts is returned when more than one start pose is supplied.
	ErrTooManyStarts = errors.New("too many start poses")

	// ErrExhausted is returned when the open frontier empties before a goal
	// pose is reached.
	ErrExhausted = errors.New("no path found")

	// ErrCancelled is returned when the termination signal or the context
	// stops the search.
	ErrCancelled = errors.New("search cancelled")

	// ErrInvalidConfig wraps configuration and problem validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSearchRunning is returned by Stepper.Result before the search ends.
	ErrSearchRunning = errors.New("search still running")
)
