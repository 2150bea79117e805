package maze

import (
	"context"

	astar "github.com/pdrpinto/astar-maze"
)

// Solution is the outcome of solving a grid. Path is nil and Found is false
// when the end cell cannot be reached from the start cell.
type Solution struct {
	Path     []Position
	Cost     float64
	Expanded int
	Found    bool
}

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b Position) float64 {
	return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

// Heuristic returns the estimate Solve uses: the cost of the cheapest walk
// between two positions on an obstacle-free grid made entirely of the grid's
// lightest cell. It reduces to scaled Manhattan distance unless a diagonal
// step is cheaper than two orthogonal ones, where plain Manhattan would
// overestimate and cost optimality.
func (g *Grid) Heuristic() astar.Heuristic[Position] {
	o, d, w := g.costs.Orthogonal, g.costs.Diagonal, g.minWeight
	if d >= 2*o {
		return func(a, b Position) float64 { return w * o * Manhattan(a, b) }
	}
	return func(a, b Position) float64 {
		dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
		return w * (o*float64(dr+dc) + (d-2*o)*float64(min(dr, dc)))
	}
}

// graph adapts a Grid to astar.Graph.
type graph struct{ g *Grid }

func (a graph) Neighbors(p Position) []astar.Neighbor[Position] {
	positions := a.g.Neighbors(p)
	out := make([]astar.Neighbor[Position], 0, len(positions))
	for _, n := range positions {
		out = append(out, astar.Neighbor[Position]{ID: n, Cost: a.g.StepCost(p, n)})
	}
	return out
}

// Graph exposes the grid as an astar.Graph.
func (g *Grid) Graph() astar.Graph[Position] { return graph{g} }

// Solve finds a minimum-cost path from the grid's start to its end.
// An unreachable end is reported through Solution.Found, not as an error.
func Solve(ctx context.Context, g *Grid, opts ...astar.Option) (Solution, error) {
	if !g.IsTraversable(g.start) || !g.IsTraversable(g.end) {
		return Solution{}, nil
	}
	res, err := astar.Search(ctx, g.Graph(), g.start, g.end, g.Heuristic(), opts...)
	if err != nil {
		return Solution{Expanded: res.ExpandedNodes}, err
	}
	return Solution{
		Path:     res.Path,
		Cost:     res.TotalCost,
		Expanded: res.ExpandedNodes,
		Found:    res.Found,
	}, nil
}

// NewStepper returns a stepper over the grid from start to end.
func NewStepper(ctx context.Context, g *Grid, opts ...astar.Option) *astar.Stepper[Position] {
	return astar.NewStepper(ctx, g.Graph(), g.start, g.end, g.Heuristic(), opts...)
}
