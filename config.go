package hybridastar

import (
	"fmt"
	"math"
)

const (
	// MinCellSize is the smallest accepted closed-set cell edge.
	MinCellSize = 1e-6
	// MaxHeadingBuckets caps the number of heading buckets per turn.
	MaxHeadingBuckets = 1 << 16
)

// Config holds the search parameters. Angles are in radians.
type Config struct {
	HeadingDeltas      []float64 `json:"heading_deltas,omitempty"`
	StepLength         float64   `json:"step_length,omitempty"`
	CellSize           float64   `json:"cell_size,omitempty"`
	HeadingBucketWidth float64   `json:"heading_bucket_width,omitempty"`

	// ExactOnly disables approximate paths on cancellation and exhaustion.
	ExactOnly bool `json:"exact_only,omitempty"`
}

// DefaultConfig uses the default motion primitives, a unit cell and a
// position-only closed set.
func DefaultConfig() Config {
	primitives := DefaultMotionPrimitives()
	return Config{
		HeadingDeltas: primitives.HeadingDeltas,
		StepLength:    primitives.StepLength,
		CellSize:      1,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if len(source.HeadingDeltas) > 0 {
		c.HeadingDeltas = append([]float64(nil), source.HeadingDeltas...)
	}
	if source.StepLength > 0 {
		c.StepLength = source.StepLength
	}
	if source.CellSize > 0 {
		c.CellSize = source.CellSize
	}
	if source.HeadingBucketWidth > 0 {
		c.HeadingBucketWidth = source.HeadingBucketWidth
	}
	if source.ExactOnly {
		c.ExactOnly = true
	}
}

// Validate reports the first unusable field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if len(c.HeadingDeltas) == 0 {
		return fmt.Errorf("%w: heading deltas must not be empty", ErrInvalidConfig)
	}
	for i, delta := range c.HeadingDeltas {
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			return fmt.Errorf("%w: heading delta %d is not finite", ErrInvalidConfig, i)
		}
	}
	if !(c.StepLength > 0) || math.IsInf(c.StepLength, 0) {
		return fmt.Errorf("%w: step length must be positive, got %v", ErrInvalidConfig, c.StepLength)
	}
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidConfig, c.CellSize)
	}
	if c.CellSize < MinCellSize {
		return fmt.Errorf("%w: cell size must be at least %v, got %v", ErrInvalidConfig, MinCellSize, c.CellSize)
	}
	if c.HeadingBucketWidth < 0 || math.IsNaN(c.HeadingBucketWidth) || c.HeadingBucketWidth > 2*math.Pi {
		return fmt.Errorf("%w: heading bucket width must be in [0, 2pi], got %v", ErrInvalidConfig, c.HeadingBucketWidth)
	}
	if c.HeadingBucketWidth > 0 && 2*math.Pi/c.HeadingBucketWidth > MaxHeadingBuckets {
		return fmt.Errorf("%w: heading bucket width %v gives more than %d buckets", ErrInvalidConfig, c.HeadingBucketWidth, MaxHeadingBuckets)
	}
	return nil
}

// MotionPrimitives returns the primitive set described by c.
func (c Config) MotionPrimitives() MotionPrimitiveSet {
	return MotionPrimitiveSet{
		HeadingDeltas: append([]float64(nil), c.HeadingDeltas...),
		StepLength:    c.StepLength,
	}
}

// Discretizer returns the closed-set quantization described by c.
func (c Config) Discretizer() Discretizer {
	return Discretizer{CellSize: c.CellSize, HeadingBucketWidth: c.HeadingBucketWidth}
}
