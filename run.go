package astar

import (
	"container/heap"
	"context"

	"github.com/pdrpinto/astar-maze/internal"
)

// run owns the frontier, closed set and node lookup of a single search.
// Search and Stepper both drive one.
type run[NodeType comparable] struct {
	ctx       context.Context
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]
	options   Options

	openSet    PriorityQueue[NodeType]
	openSetMap map[NodeType]*PriorityQueueItem[NodeType]
	closedSet  map[NodeType]bool
	cameFrom   map[NodeType]NodeType
	gScore     map[NodeType]float64
	seq        uint64
	expanded   int

	// Channels for communication, nil when expanding inline.
	expandCh chan ExpandTask[NodeType]
	relaxCh  chan RelaxProposal[NodeType]

	proposals []RelaxProposal[NodeType]
}

func newRun[NodeType comparable](
	ctx context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options Options,
) *run[NodeType] {
	r := &run[NodeType]{
		ctx:        ctx,
		graph:      graph,
		start:      startNode,
		goal:       goalNode,
		heuristic:  heuristic,
		options:    options,
		openSet:    make(PriorityQueue[NodeType], 0),
		openSetMap: make(map[NodeType]*PriorityQueueItem[NodeType]),
		closedSet:  make(map[NodeType]bool),
		cameFrom:   make(map[NodeType]NodeType),
		gScore:     map[NodeType]float64{startNode: 0},
	}
	heap.Init(&r.openSet)
	r.push(startNode, 0, heuristic(startNode, goalNode))

	if options.NumberOfWorkers > 0 {
		r.expandCh = make(chan ExpandTask[NodeType])
		r.relaxCh = make(chan RelaxProposal[NodeType])
		startWorkers(ctx, options.NumberOfWorkers, r.expandCh, r.relaxCh)
	}
	return r
}

func (r *run[NodeType]) push(node NodeType, g, h float64) {
	item := &PriorityQueueItem[NodeType]{
		Node:   node,
		GScore: g,
		HScore: h,
		FCost:  g + h,
		Seq:    r.seq,
	}
	r.seq++
	heap.Push(&r.openSet, item)
	r.openSetMap[node] = item
}

// next pops the best open item, skipping positions that are already closed.
func (r *run[NodeType]) next() (*PriorityQueueItem[NodeType], bool) {
	for r.openSet.Len() > 0 {
		item := heap.Pop(&r.openSet).(*PriorityQueueItem[NodeType])
		if r.openSetMap[item.Node] == item {
			delete(r.openSetMap, item.Node)
		}
		if !r.closedSet[item.Node] {
			return item, true
		}
	}
	return nil, false
}

func (r *run[NodeType]) exhausted() bool {
	return r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions
}

func (r *run[NodeType]) finalize(item *PriorityQueueItem[NodeType]) {
	r.closedSet[item.Node] = true
	r.expanded++
}

func (r *run[NodeType]) path(goal NodeType) []NodeType {
	return internal.ReconstructPath(r.cameFrom, goal, r.start)
}

// expand scores every neighbor of current and relaxes them in the order the
// graph returned them, whether or not a worker pool computed the scores.
func (r *run[NodeType]) expand(current *PriorityQueueItem[NodeType]) error {
	neighbors := r.graph.Neighbors(current.Node)
	if len(neighbors) == 0 {
		return nil
	}
	if cap(r.proposals) < len(neighbors) {
		r.proposals = make([]RelaxProposal[NodeType], len(neighbors))
	}
	r.proposals = r.proposals[:len(neighbors)]

	if r.expandCh == nil {
		for i, neighbor := range neighbors {
			r.proposals[i] = propose(r.task(current, i, neighbor))
		}
	} else {
		sent, received := 0, 0
		for received < len(neighbors) {
			var sendCh chan<- ExpandTask[NodeType]
			var task ExpandTask[NodeType]
			if sent < len(neighbors) {
				sendCh = r.expandCh
				task = r.task(current, sent, neighbors[sent])
			}
			select {
			case <-r.ctx.Done():
				return r.ctx.Err()
			case sendCh <- task:
				sent++
			case proposal := <-r.relaxCh:
				r.proposals[proposal.Index] = proposal
				received++
			}
		}
	}

	for _, proposal := range r.proposals {
		r.relax(proposal)
	}
	return nil
}

func (r *run[NodeType]) task(current *PriorityQueueItem[NodeType], index int, neighbor Neighbor[NodeType]) ExpandTask[NodeType] {
	return ExpandTask[NodeType]{
		Index:         index,
		FromNode:      current.Node,
		Neighbor:      neighbor,
		CurrentGScore: current.GScore,
		GoalNode:      r.goal,
		HeuristicFunc: r.heuristic,
	}
}

func (r *run[NodeType]) relax(proposal RelaxProposal[NodeType]) {
	if r.closedSet[proposal.ToNode] {
		return
	}
	if currentG, exists := r.gScore[proposal.ToNode]; exists && proposal.GScore >= currentG {
		return
	}
	r.gScore[proposal.ToNode] = proposal.GScore
	r.cameFrom[proposal.ToNode] = proposal.FromNode
	if item, inOpen := r.openSetMap[proposal.ToNode]; inOpen {
		item.GScore = proposal.GScore
		item.FCost = proposal.FCost
		heap.Fix(&r.openSet, item.IndexInQueue)
		return
	}
	r.push(proposal.ToNode, proposal.GScore, proposal.HScore)
}
