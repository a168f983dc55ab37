package hybridastar

import "container/heap"

type PriorityQueueItem struct {
	Node     *PathNode
	Sequence uint64
}

// PriorityQueue orders items by total estimate, then accumulated cost,
// then insertion order.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if fa, fb := a.Node.TotalEstimate(), b.Node.TotalEstimate(); fa != fb {
		return fa < fb
	}
	if ga, gb := a.Node.AccumulatedCost(), b.Node.AccumulatedCost(); ga != gb {
		return ga < gb
	}
	return a.Sequence < b.Sequence
}
func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}

// OpenFrontier holds discovered but not yet expanded nodes.
type OpenFrontier struct {
	queue    PriorityQueue
	sequence uint64
}

func NewOpenFrontier() *OpenFrontier {
	frontier := &OpenFrontier{queue: make(PriorityQueue, 0)}
	heap.Init(&frontier.queue)
	return frontier
}

// Insert adds node in O(log n).
func (f *OpenFrontier) Insert(node *PathNode) {
	heap.Push(&f.queue, &PriorityQueueItem{Node: node, Sequence: f.sequence})
	f.sequence++
}

// PopBest removes and returns the best node. Calling it on an empty
// frontier panics; check IsEmpty first.
func (f *OpenFrontier) PopBest() *PathNode {
	if f.queue.Len() == 0 {
		panic("hybridastar: PopBest on empty frontier")
	}
	return heap.Pop(&f.queue).(*PriorityQueueItem).Node
}

func (f *OpenFrontier) IsEmpty() bool { return f.queue.Len() == 0 }
func (f *OpenFrontier) Len() int      { return f.queue.Len() }

// Poses returns the terminal poses of all queued nodes in heap order.
func (f *OpenFrontier) Poses() []Pose {
	poses := make([]Pose, 0, len(f.queue))
	for _, item := range f.queue {
		poses = append(poses, item.Node.Pose())
	}
	return poses
}
