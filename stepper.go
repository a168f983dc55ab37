package hybridastar

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pdrpinto/hybridastar/observability"
)

const (
	EventSearchStart    observability.EventType = "search.start"
	EventSearchExpand   observability.EventType = "search.expand"
	EventSearchComplete observability.EventType = "search.complete"
	EventSearchFailed   observability.EventType = "search.failed"
)

// StepSnapshot exposes the state of the search after one Step.
type StepSnapshot struct {
	Status Status

	// Current is the node closed by this step, when HasCurrent is set.
	Current    Pose
	HasCurrent bool

	// Successors are the candidates pushed onto the frontier by this step.
	Successors []Pose

	// Discarded counts popped duplicates skipped during this step.
	Discarded int

	OpenCount   int
	ClosedCount int
	Expansions  int
	StepIndex   int
	Done        bool
}

// Stepper runs the search state machine one transition or expansion at a
// time. It is not safe for concurrent use.
type Stepper struct {
	id          string
	problem     Problem
	goal        Goal
	primitives  MotionPrimitiveSet
	discretizer Discretizer
	heuristic   Heuristic
	observer    observability.Observer
	exactOnly   bool

	status   Status
	open     *OpenFrontier
	closed   *ClosedSet
	best     *PathNode
	goalNode *PathNode

	stepCount  int
	expansions int
	discarded  int
	started    time.Time
}

// NewStepper validates config and problem and returns a stepper in the
// initializing state. No search work happens until the first Step.
func NewStepper(problem Problem, config Config, options ...Option) (*Stepper, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if problem.Validity == nil {
		return nil, fmt.Errorf("%w: validity checker is required", ErrInvalidConfig)
	}
	if problem.Goal.Predicate == nil {
		return nil, fmt.Errorf("%w: goal predicate is required", ErrInvalidConfig)
	}
	opts := applyOptions(options)

	return &Stepper{
		id:          uuid.NewString(),
		problem:     problem,
		goal:        problem.Goal,
		primitives:  config.MotionPrimitives(),
		discretizer: config.Discretizer(),
		heuristic:   opts.Heuristic,
		observer:    opts.Observer,
		exactOnly:   config.ExactOnly,
		status:      StatusInitializing,
	}, nil
}

// ID identifies the search in events and results.
func (s *Stepper) ID() string { return s.id }

func (s *Stepper) Status() Status { return s.status }

func (s *Stepper) Done() bool { return s.status.IsTerminal() }

// Step performs the next transition: initialization on the first call, then
// one node expansion per call. Popped duplicates do not end a step.
func (s *Stepper) Step(ctx context.Context) StepSnapshot {
	if s.Done() {
		return s.snapshot()
	}
	s.stepCount++
	if s.status == StatusInitializing {
		s.initialize(ctx)
		return s.snapshot()
	}

	discardedBefore := s.discarded
	for {
		if s.terminated(ctx) {
			s.finish(ctx, StatusCancelled)
			break
		}
		if s.open.IsEmpty() {
			s.finish(ctx, StatusExhausted)
			break
		}

		node := s.open.PopBest()
		key := s.discretizer.Discretize(node.Pose())
		if s.closed.Contains(key) {
			s.discarded++
			continue
		}
		s.closed.Add(key)
		s.trackBest(node)

		if s.goal.Predicate.IsGoal(node.Pose()) {
			s.goalNode = node
			s.finish(ctx, StatusSucceeded)
			snapshot := s.snapshot()
			snapshot.Current, snapshot.HasCurrent = node.Pose(), true
			snapshot.Discarded = s.discarded - discardedBefore
			return snapshot
		}

		successors := s.expand(node)
		s.expansions++
		s.emit(ctx, EventSearchExpand, observability.LevelVerbose, map[string]any{
			"x":          node.Pose().X,
			"y":          node.Pose().Y,
			"heading":    node.Pose().Heading,
			"cost":       node.AccumulatedCost(),
			"successors": len(successors),
			"open":       s.open.Len(),
		})

		snapshot := s.snapshot()
		snapshot.Current, snapshot.HasCurrent = node.Pose(), true
		snapshot.Successors = successors
		snapshot.Discarded = s.discarded - discardedBefore
		return snapshot
	}

	snapshot := s.snapshot()
	snapshot.Discarded = s.discarded - discardedBefore
	return snapshot
}

func (s *Stepper) initialize(ctx context.Context) {
	s.started = time.Now()
	var starts []Pose
	if s.problem.Starts != nil {
		starts = s.problem.Starts.StartPoses()
	}
	switch {
	case len(starts) == 0:
		s.finish(ctx, StatusNoStart)
		return
	case len(starts) > 1:
		s.finish(ctx, StatusTooManyStarts)
		return
	}

	start := NewPose(starts[0].X, starts[0].Y, starts[0].Heading)
	s.open = NewOpenFrontier()
	s.closed = NewClosedSet()
	s.open.Insert(newRootNode(start, s.heuristic(start, s.goal.Target)))
	s.status = StatusSearching

	s.emit(ctx, EventSearchStart, observability.LevelInfo, map[string]any{
		"start_x":       start.X,
		"start_y":       start.Y,
		"start_heading": start.Heading,
		"goal_x":        s.goal.Target.X,
		"goal_y":        s.goal.Target.Y,
		"primitives":    len(s.primitives.HeadingDeltas),
		"step_length":   s.primitives.StepLength,
	})
}

// expand pushes every valid, not yet closed successor of node and returns
// their poses.
func (s *Stepper) expand(node *PathNode) []Pose {
	candidates := s.primitives.Successors(node.Pose())
	accepted := make([]Pose, 0, len(candidates))
	for _, candidate := range candidates {
		if !s.problem.Validity.IsValid(candidate) {
			continue
		}
		if s.closed.Contains(s.discretizer.Discretize(candidate)) {
			continue
		}
		child := node.Extend(candidate, s.primitives.StepLength, s.heuristic(candidate, s.goal.Target))
		s.open.Insert(child)
		accepted = append(accepted, candidate)
	}
	return accepted
}

func (s *Stepper) terminated(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	return s.problem.Termination != nil && s.problem.Termination.Terminated()
}

// trackBest remembers the closed node nearest to the goal for approximate
// results. Ties keep the earlier node.
func (s *Stepper) trackBest(node *PathNode) {
	if s.best == nil || node.HeuristicEstimate() < s.best.HeuristicEstimate() {
		s.best = node
	}
}

func (s *Stepper) finish(ctx context.Context, status Status) {
	s.status = status
	data := map[string]any{
		"status":     status.String(),
		"expansions": s.expansions,
		"discarded":  s.discarded,
		"elapsed":    time.Since(s.started).String(),
	}
	if s.closed != nil {
		data["closed"] = s.closed.Len()
	}
	if status == StatusSucceeded {
		data["cost"] = s.goalNode.AccumulatedCost()
		data["length"] = s.goalNode.Len()
		s.emit(ctx, EventSearchComplete, observability.LevelInfo, data)
		return
	}
	level := observability.LevelWarning
	if status == StatusNoStart || status == StatusTooManyStarts {
		level = observability.LevelError
	}
	s.emit(ctx, EventSearchFailed, level, data)
}

func (s *Stepper) emit(ctx context.Context, eventType observability.EventType, level observability.Level, data map[string]any) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    s.id,
		Data:      data,
	})
}

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Status:     s.status,
		Expansions: s.expansions,
		StepIndex:  s.stepCount,
		Done:       s.Done(),
	}
	if s.open != nil {
		snapshot.OpenCount = s.open.Len()
	}
	if s.closed != nil {
		snapshot.ClosedCount = s.closed.Len()
	}
	return snapshot
}

// ClosedKeys returns a copy of the closed set.
func (s *Stepper) ClosedKeys() []DiscretizationKey {
	if s.closed == nil {
		return nil
	}
	return s.closed.Keys()
}

// OpenPoses returns the terminal poses currently on the frontier.
func (s *Stepper) OpenPoses() []Pose {
	if s.open == nil {
		return nil
	}
	return s.open.Poses()
}

// Result reports the outcome once the search is done. Failed searches return
// the matching sentinel error; cancelled or exhausted searches may still
// carry an approximate path.
func (s *Stepper) Result() (Result, error) {
	result := Result{
		Status:     s.status,
		Expansions: s.expansions,
		Discarded:  s.discarded,
		SearchID:   s.id,
	}
	if s.closed != nil {
		result.Closed = s.closed.Len()
	}

	switch s.status {
	case StatusSucceeded:
		result.Path = ExtractPath(s.goalNode)
		result.Cost = s.goalNode.AccumulatedCost()
		return result, nil
	case StatusCancelled, StatusExhausted:
		if !s.exactOnly && s.best != nil && !math.IsInf(s.best.HeuristicEstimate(), 1) {
			result.Path = ExtractPath(s.best)
			result.Cost = s.best.AccumulatedCost()
			result.Approximate = true
		}
	}
	return result, s.status.Err()
}
