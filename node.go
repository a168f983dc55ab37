package hybridastar

// PathNode is one entry of the open frontier: the terminal pose of a path
// plus a link to the node it was expanded from. Children share their
// parent's prefix, so a node is never modified once created.
type PathNode struct {
	parent    *PathNode
	pose      Pose
	length    int
	cost      float64
	heuristic float64
}

func newRootNode(start Pose, heuristic float64) *PathNode {
	return &PathNode{pose: start, length: 1, heuristic: heuristic}
}

// Extend returns a child node ending at pose.
func (n *PathNode) Extend(pose Pose, stepCost, heuristic float64) *PathNode {
	return &PathNode{
		parent:    n,
		pose:      pose,
		length:    n.length + 1,
		cost:      n.cost + stepCost,
		heuristic: heuristic,
	}
}

// Pose returns the terminal pose.
func (n *PathNode) Pose() Pose { return n.pose }

// Parent returns the node this one was expanded from, nil for the start node.
func (n *PathNode) Parent() *PathNode { return n.parent }

// Len is the number of poses on the path, start included.
func (n *PathNode) Len() int { return n.length }

func (n *PathNode) AccumulatedCost() float64   { return n.cost }
func (n *PathNode) HeuristicEstimate() float64 { return n.heuristic }

// TotalEstimate is accumulated cost plus heuristic estimate.
func (n *PathNode) TotalEstimate() float64 { return n.cost + n.heuristic }

// Poses materializes the path from start to this node.
func (n *PathNode) Poses() []Pose { return ExtractPath(n) }

// ExtractPath walks the parent links of node and returns the poses in
// start-to-goal order. A nil node yields a nil path.
func ExtractPath(node *PathNode) []Pose {
	if node == nil {
		return nil
	}
	path := make([]Pose, node.length)
	for current, i := node, node.length-1; current != nil; current, i = current.parent, i-1 {
		path[i] = current.pose
	}
	return path
}
