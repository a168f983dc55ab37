package hybridastar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/hybridastar"
)

func TestDefaultConfig(t *testing.T) {
	cfg := hybridastar.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, []float64{-math.Pi / 4, 0, math.Pi / 4}, cfg.HeadingDeltas)
	assert.Equal(t, math.Sqrt2, cfg.StepLength)
	assert.Equal(t, 1.0, cfg.CellSize)
	assert.Zero(t, cfg.HeadingBucketWidth)
	assert.False(t, cfg.ExactOnly)
}

func TestConfig_Merge(t *testing.T) {
	cfg := hybridastar.DefaultConfig()
	source := &hybridastar.Config{
		HeadingDeltas:      []float64{-math.Pi / 2, 0, math.Pi / 2},
		StepLength:         2,
		HeadingBucketWidth: math.Pi / 8,
		ExactOnly:          true,
	}

	cfg.Merge(source)

	assert.Equal(t, source.HeadingDeltas, cfg.HeadingDeltas)
	assert.Equal(t, 2.0, cfg.StepLength)
	assert.Equal(t, 1.0, cfg.CellSize, "zero cell size keeps the default")
	assert.Equal(t, math.Pi/8, cfg.HeadingBucketWidth)
	assert.True(t, cfg.ExactOnly)

	source.HeadingDeltas[0] = 42
	assert.Equal(t, -math.Pi/2, cfg.HeadingDeltas[0], "merge copies the deltas")
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := hybridastar.DefaultConfig()

	cfg.Merge(&hybridastar.Config{})

	assert.Equal(t, hybridastar.DefaultConfig(), cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*hybridastar.Config)
	}{
		{name: "no heading deltas", mutate: func(c *hybridastar.Config) { c.HeadingDeltas = nil }},
		{name: "nan heading delta", mutate: func(c *hybridastar.Config) { c.HeadingDeltas = []float64{math.NaN()} }},
		{name: "zero step length", mutate: func(c *hybridastar.Config) { c.StepLength = 0 }},
		{name: "negative step length", mutate: func(c *hybridastar.Config) { c.StepLength = -1 }},
		{name: "nan step length", mutate: func(c *hybridastar.Config) { c.StepLength = math.NaN() }},
		{name: "zero cell size", mutate: func(c *hybridastar.Config) { c.CellSize = 0 }},
		{name: "negative heading bucket", mutate: func(c *hybridastar.Config) { c.HeadingBucketWidth = -0.1 }},
		{name: "heading bucket over a turn", mutate: func(c *hybridastar.Config) { c.HeadingBucketWidth = 7 }},
		{name: "tiny cell size", mutate: func(c *hybridastar.Config) { c.CellSize = 1e-300 }},
		{name: "cell size below minimum", mutate: func(c *hybridastar.Config) { c.CellSize = hybridastar.MinCellSize / 2 }},
		{name: "too many heading buckets", mutate: func(c *hybridastar.Config) { c.HeadingBucketWidth = 1e-20 }},
		{name: "just over the bucket cap", mutate: func(c *hybridastar.Config) {
			c.HeadingBucketWidth = 2 * math.Pi / (hybridastar.MaxHeadingBuckets + 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := hybridastar.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), hybridastar.ErrInvalidConfig)
		})
	}
}

func TestConfig_Validate_Limits(t *testing.T) {
	cfg := hybridastar.DefaultConfig()
	cfg.CellSize = hybridastar.MinCellSize
	cfg.HeadingBucketWidth = 2 * math.Pi / hybridastar.MaxHeadingBuckets

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Derived(t *testing.T) {
	cfg := hybridastar.DefaultConfig()
	cfg.CellSize = 0.5
	cfg.HeadingBucketWidth = math.Pi / 4

	primitives := cfg.MotionPrimitives()
	primitives.HeadingDeltas[0] = 1
	assert.Equal(t, -math.Pi/4, cfg.HeadingDeltas[0], "primitive set owns its deltas")

	assert.Equal(t, hybridastar.Discretizer{CellSize: 0.5, HeadingBucketWidth: math.Pi / 4}, cfg.Discretizer())
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   hybridastar.Status
		text     string
		terminal bool
		err      error
	}{
		{hybridastar.StatusInitializing, "initializing", false, hybridastar.ErrSearchRunning},
		{hybridastar.StatusSearching, "searching", false, hybridastar.ErrSearchRunning},
		{hybridastar.StatusSucceeded, "succeeded", true, nil},
		{hybridastar.StatusNoStart, "no start", true, hybridastar.ErrNoStart},
		{hybridastar.StatusTooManyStarts, "too many starts", true, hybridastar.ErrTooManyStarts},
		{hybridastar.StatusExhausted, "exhausted", true, hybridastar.ErrExhausted},
		{hybridastar.StatusCancelled, "cancelled", true, hybridastar.ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.status.String())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.err, tt.status.Err())
		})
	}
}
