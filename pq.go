package astar

// costEpsilon is the tolerance under which two total cost estimates are
// considered tied.
const costEpsilon = 1e-10

type PriorityQueueItem[NodeType comparable] struct {
	Node         NodeType
	GScore       float64
	HScore       float64
	FCost        float64
	Seq          uint64
	IndexInQueue int
}

// PriorityQueue orders items by FCost, then HScore, then insertion sequence.
type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }

func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if diff := a.FCost - b.FCost; diff < -costEpsilon || diff > costEpsilon {
		return a.FCost < b.FCost
	}
	if a.HScore != b.HScore {
		return a.HScore < b.HScore
	}
	return a.Seq < b.Seq
}

func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
