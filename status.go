package hybridastar

// Status is the state of the search state machine.
//
//	Initializing -> Searching -> {Succeeded, Exhausted, Cancelled}
//	Initializing -> {NoStart, TooManyStarts}
type Status int

const (
	StatusInitializing Status = iota
	StatusSearching
	StatusSucceeded
	StatusNoStart
	StatusTooManyStarts
	StatusExhausted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusSearching:
		return "searching"
	case StatusSucceeded:
		return "succeeded"
	case StatusNoStart:
		return "no start"
	case StatusTooManyStarts:
		return "too many starts"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can happen.
func (s Status) IsTerminal() bool {
	return s >= StatusSucceeded
}

// Err returns the sentinel error of a failed terminal status, nil otherwise.
func (s Status) Err() error {
	switch s {
	case StatusNoStart:
		return ErrNoStart
	case StatusTooManyStarts:
		return ErrTooManyStarts
	case StatusExhausted:
		return ErrExhausted
	case StatusCancelled:
		return ErrCancelled
	case StatusInitializing, StatusSearching:
		return ErrSearchRunning
	default:
		return nil
	}
}
