package hybridastar

// Heuristic estimates the remaining cost from a pose to the goal target.
// It must not overestimate the true remaining cost.
type Heuristic func(from Pose, goal Pose) float64

// Euclidean is the straight-line distance between positions; heading is ignored.
func Euclidean(from Pose, goal Pose) float64 {
	return from.DistanceTo(goal)
}
