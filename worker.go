package astar

import "context"

// ExpandTask represents a request from the orchestrator to the workers.
type ExpandTask[NodeType comparable] struct {
	Index         int
	FromNode      NodeType
	Neighbor      Neighbor[NodeType]
	CurrentGScore float64
	GoalNode      NodeType
	HeuristicFunc Heuristic[NodeType]
}

// RelaxProposal is the worker's suggestion for updating a path
type RelaxProposal[NodeType comparable] struct {
	Index    int
	FromNode NodeType
	ToNode   NodeType
	GScore   float64
	HScore   float64
	FCost    float64
}

// propose scores a single neighbor. Workers and the inline path share it.
func propose[NodeType comparable](task ExpandTask[NodeType]) RelaxProposal[NodeType] {
	tentativeG := task.CurrentGScore + task.Neighbor.Cost
	h := task.HeuristicFunc(task.Neighbor.ID, task.GoalNode)
	return RelaxProposal[NodeType]{
		Index:    task.Index,
		FromNode: task.FromNode,
		ToNode:   task.Neighbor.ID,
		GScore:   tentativeG,
		HScore:   h,
		FCost:    tentativeG + h,
	}
}

// startWorkers launches count goroutines that turn tasks into proposals until
// ctx is done.
func startWorkers[NodeType comparable](
	ctx context.Context,
	count int,
	tasks <-chan ExpandTask[NodeType],
	proposals chan<- RelaxProposal[NodeType],
) {
	for i := 0; i < count; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-tasks:
					select {
					case proposals <- propose(task):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
}
