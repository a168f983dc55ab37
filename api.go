package hybridastar

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/pdrpinto/hybridastar/observability"
)

// ValidityChecker reports whether a pose is free of obstacles and inside the
// map. It is called once per generated candidate and must not have side
// effects. When searches run concurrently it must be safe for concurrent use.
type ValidityChecker interface {
	IsValid(pose Pose) bool
}

// ValidityFunc adapts a function to ValidityChecker.
type ValidityFunc func(pose Pose) bool

func (f ValidityFunc) IsValid(pose Pose) bool { return f(pose) }

// GoalPredicate decides whether a pose is inside the goal region.
type GoalPredicate interface {
	IsGoal(pose Pose) bool
}

// GoalFunc adapts a function to GoalPredicate.
type GoalFunc func(pose Pose) bool

func (f GoalFunc) IsGoal(pose Pose) bool { return f(pose) }

// Goal pairs the membership test with the pose the heuristic measures toward.
type Goal struct {
	Target    Pose
	Predicate GoalPredicate
}

// GoalRegion accepts any pose whose position lies within radius of target,
// whatever its heading.
func GoalRegion(target Pose, radius float64) Goal {
	return Goal{
		Target: target,
		Predicate: GoalFunc(func(pose Pose) bool {
			return pose.DistanceTo(target) <= radius
		}),
	}
}

// TerminationSignal is polled once per search iteration. The search only
// reads it; the caller owns whatever state backs it.
type TerminationSignal interface {
	Terminated() bool
}

// TerminationFunc adapts a function to TerminationSignal.
type TerminationFunc func() bool

func (f TerminationFunc) Terminated() bool { return f() }

// FlagSignal is a caller-owned flag. Set it from any goroutine to stop the search.
type FlagSignal struct {
	flag atomic.Bool
}

func (s *FlagSignal) Set()             { s.flag.Store(true) }
func (s *FlagSignal) Terminated() bool { return s.flag.Load() }

// ContextSignal terminates once ctx is done.
func ContextSignal(ctx context.Context) TerminationSignal {
	return TerminationFunc(func() bool { return ctx.Err() != nil })
}

// StartPoseSource supplies candidate start poses. Only a single start is
// supported; zero or several fail the search before it begins.
type StartPoseSource interface {
	StartPoses() []Pose
}

// Starts is a fixed list of start poses.
type Starts []Pose

func (s Starts) StartPoses() []Pose { return s }

// Problem groups the collaborators of one search. Termination may be nil,
// in which case only the context stops the search.
type Problem struct {
	Starts      StartPoseSource
	Validity    ValidityChecker
	Goal        Goal
	Termination TerminationSignal
}

// Result contains the outcome of a search.
type Result struct {
	Status Status
	Path   []Pose
	Cost   float64

	// Approximate is set when Path is the closest partial path found before
	// the search was cancelled or exhausted.
	Approximate bool

	Expansions int
	Discarded  int
	Closed     int
	SearchID   string
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return r.Status == StatusSucceeded }

// Options defines parameters that are not part of the search configuration.
type Options struct {
	NumberOfWorkers int
	Observer        observability.Observer
	Heuristic       Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SolveBatch runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithObserver sends search events to observer.
func WithObserver(observer observability.Observer) Option {
	return func(options *Options) { options.Observer = observer }
}

// WithHeuristic replaces the Euclidean heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Observer:        observability.NoOpObserver{},
		Heuristic:       Euclidean,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Observer == nil {
		searchOptions.Observer = observability.NoOpObserver{}
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Euclidean
	}
	return searchOptions
}
