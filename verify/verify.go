// Package verify checks solver output against the grid rules and against an
// independent shortest-path computation.
package verify

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pdrpinto/astar-maze/maze"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrEndpoints   = errors.New("path does not run from start to end")
	ErrIllegalStep = errors.New("illegal step")
)

// Path reports whether path starts at the grid's start, ends at its end and
// only takes steps the grid allows (traversable cells, no corner cutting).
func Path(g *maze.Grid, p []maze.Position) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if p[0] != g.Start() || p[len(p)-1] != g.End() {
		return fmt.Errorf("%w: %v..%v, want %v..%v", ErrEndpoints, p[0], p[len(p)-1], g.Start(), g.End())
	}
	for i := 1; i < len(p); i++ {
		if !slices.Contains(g.Neighbors(p[i-1]), p[i]) {
			return fmt.Errorf("%w %d: %v -> %v", ErrIllegalStep, i, p[i-1], p[i])
		}
	}
	return nil
}

// Cost sums StepCost over consecutive positions of p.
func Cost(g *maze.Grid, p []maze.Position) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += g.StepCost(p[i-1], p[i])
	}
	return total
}

// Graph builds a gonum weighted directed graph with one node per traversable
// cell (ID row*cols+col) and one edge per legal move.
func Graph(g *maze.Grid) *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if p := (maze.Position{Row: r, Col: c}); g.IsTraversable(p) {
				wg.AddNode(simple.Node(id(g, p)))
			}
		}
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := maze.Position{Row: r, Col: c}
			if !g.IsTraversable(p) {
				continue
			}
			for _, n := range g.Neighbors(p) {
				wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(id(g, p)), simple.Node(id(g, n)), g.StepCost(p, n)))
			}
		}
	}
	return wg
}

// Optimal runs Dijkstra from start to end. ok is false when the end cannot
// be reached.
func Optimal(g *maze.Grid) (cost float64, route []maze.Position, ok bool) {
	if !g.IsTraversable(g.Start()) || !g.IsTraversable(g.End()) {
		return math.Inf(1), nil, false
	}
	wg := Graph(g)
	shortest := path.DijkstraFrom(simple.Node(id(g, g.Start())), wg)
	nodes, cost := shortest.To(id(g, g.End()))
	if len(nodes) == 0 || math.IsInf(cost, 1) {
		return math.Inf(1), nil, false
	}
	route = make([]maze.Position, len(nodes))
	for i, n := range nodes {
		route[i] = position(g, n.ID())
	}
	return cost, route, true
}

// Optimality compares a solver result with the Dijkstra optimum. tolerance
// bounds the accepted floating point difference.
func Optimality(g *maze.Grid, sol maze.Solution, tolerance float64) error {
	want, _, reachable := Optimal(g)
	switch {
	case !reachable && sol.Found:
		return fmt.Errorf("solver found a path of cost %v on an unsolvable grid", sol.Cost)
	case reachable && !sol.Found:
		return fmt.Errorf("solver found no path, cheapest costs %v", want)
	case !reachable:
		return nil
	}
	if err := Path(g, sol.Path); err != nil {
		return err
	}
	if got := Cost(g, sol.Path); math.Abs(got-want) > tolerance {
		return fmt.Errorf("path costs %v, optimum is %v", got, want)
	}
	return nil
}

func id(g *maze.Grid, p maze.Position) int64 {
	return int64(p.Row*g.Cols() + p.Col)
}

func position(g *maze.Grid, id int64) maze.Position {
	return maze.Position{Row: int(id) / g.Cols(), Col: int(id) % g.Cols()}
}
