package hybridastar

// NewRootNodeForTest returns a start node at the origin with zero cost and
// zero heuristic.
func NewRootNodeForTest() *PathNode {
	return newRootNode(NewPose(0, 0, 0), 0)
}
