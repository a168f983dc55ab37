package hybridastar

import "math"

// MotionPrimitiveSet is the fixed set of single-step controls: each heading
// delta is applied and the vehicle then drives StepLength along the new
// heading.
type MotionPrimitiveSet struct {
	HeadingDeltas []float64
	StepLength    float64
}

// DefaultMotionPrimitives turns -45, 0 or +45 degrees and drives sqrt(2), so
// that a diagonal step still moves one grid cell on each axis.
func DefaultMotionPrimitives() MotionPrimitiveSet {
	return MotionPrimitiveSet{
		HeadingDeltas: []float64{-math.Pi / 4, 0, math.Pi / 4},
		StepLength:    math.Sqrt2,
	}
}

// Successors returns one candidate per heading delta, in delta order.
func (m MotionPrimitiveSet) Successors(current Pose) []Pose {
	successors := make([]Pose, 0, len(m.HeadingDeltas))
	for _, delta := range m.HeadingDeltas {
		successors = append(successors, current.Advance(delta, m.StepLength))
	}
	return successors
}
