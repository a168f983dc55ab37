package hybridastar_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/hybridastar"
	"github.com/pdrpinto/hybridastar/observability"
)

func TestSolveBatch_MatchesSequentialSolve(t *testing.T) {
	cfg := hybridastar.DefaultConfig()
	var validityCalls atomic.Int64
	shared := hybridastar.ValidityFunc(func(p hybridastar.Pose) bool {
		validityCalls.Add(1)
		return walledBox(p)
	})

	goals := []hybridastar.Pose{
		hybridastar.NewPose(2, 0, 0),
		hybridastar.NewPose(3, 3, 0),
		hybridastar.NewPose(10, 0, 0),
		hybridastar.NewPose(8, -4, 0),
	}
	jobs := make([]hybridastar.Job, 0, len(goals)+1)
	for _, target := range goals {
		jobs = append(jobs, hybridastar.Job{
			Problem: hybridastar.Problem{
				Starts:   hybridastar.Starts{hybridastar.NewPose(0, 0, 0)},
				Validity: shared,
				Goal:     hybridastar.GoalRegion(target, 1),
			},
			Config: cfg,
		})
	}
	jobs = append(jobs, hybridastar.Job{
		Problem: hybridastar.Problem{Validity: shared, Goal: hybridastar.GoalRegion(goals[0], 1)},
		Config:  cfg,
	})

	recorder := observability.NewRecorder()
	results := hybridastar.SolveBatch(context.Background(), jobs, hybridastar.WithWorkers(3), hybridastar.WithObserver(recorder))

	require.Len(t, results, len(jobs))
	ids := map[string]bool{}
	for i, job := range jobs {
		want, wantErr := hybridastar.Solve(context.Background(), job.Problem, job.Config)
		got := results[i]
		assert.Equal(t, wantErr, got.Err, "job %d", i)
		if diff := cmp.Diff(want.Path, got.Result.Path); diff != "" {
			t.Errorf("job %d path mismatch (-sequential +batch):\n%s", i, diff)
		}
		assert.False(t, ids[got.Result.SearchID], "search IDs must be unique")
		ids[got.Result.SearchID] = true
	}
	assert.ErrorIs(t, results[len(jobs)-1].Err, hybridastar.ErrNoStart)
	assert.Len(t, recorder.OfType(hybridastar.EventSearchStart), len(goals))
	assert.Positive(t, validityCalls.Load())
}

func TestSolveBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs := []hybridastar.Job{
		{Problem: problem(hybridastar.NewPose(0, 0, 0), allValid, unreachableGoal()), Config: hybridastar.DefaultConfig()},
		{Problem: problem(hybridastar.NewPose(1, 0, 0), allValid, unreachableGoal()), Config: hybridastar.DefaultConfig()},
	}

	results := hybridastar.SolveBatch(ctx, jobs, hybridastar.WithWorkers(1))

	for _, result := range results {
		assert.ErrorIs(t, result.Err, hybridastar.ErrCancelled)
	}
}

func TestSolveBatch_InvalidJobDoesNotStopOthers(t *testing.T) {
	bad := hybridastar.DefaultConfig()
	bad.CellSize = -1
	goal := hybridastar.GoalRegion(hybridastar.NewPose(2, 0, 0), 1)
	jobs := []hybridastar.Job{
		{Problem: problem(hybridastar.NewPose(0, 0, 0), allValid, goal), Config: bad},
		{Problem: problem(hybridastar.NewPose(0, 0, 0), allValid, goal), Config: hybridastar.DefaultConfig()},
	}

	results := hybridastar.SolveBatch(context.Background(), jobs, hybridastar.WithWorkers(0))

	assert.ErrorIs(t, results[0].Err, hybridastar.ErrInvalidConfig)
	require.NoError(t, results[1].Err)
	assert.True(t, results[1].Result.Found())
}

func TestSolveBatch_Empty(t *testing.T) {
	assert.Empty(t, hybridastar.SolveBatch(context.Background(), nil))
}
