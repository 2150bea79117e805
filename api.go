package astar

import (
	"context"
	"errors"
)

// ErrExpansionLimit is returned when a search finalizes more nodes than the
// budget set with WithMaxExpansions allows.
var ErrExpansionLimit = errors.New("astar: expansion limit reached")

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
// Neighbors must return its result in a deterministic order.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search.
// Found is false with a nil error when the goal is unreachable.
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	// NumberOfWorkers is the size of the expansion worker pool.
	// Zero expands neighbors inline on the calling goroutine.
	NumberOfWorkers int
	// MaxExpansions bounds the number of finalized nodes. Zero means unbounded.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines should expand neighbors.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions caps how many nodes a search may finalize before giving up
// with ErrExpansionLimit.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 0 {
		searchOptions.NumberOfWorkers = 0
	}
	return searchOptions
}

// Search executes the A* search algorithm from startNode to goalNode.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	contextObject, cancel := context.WithCancel(contextObject)
	defer cancel()

	state := newRun(contextObject, graph, startNode, goalNode, heuristic, applyOptions(options))

	for {
		if err := contextObject.Err(); err != nil {
			return Result[NodeType]{ExpandedNodes: state.expanded}, err
		}

		currentItem, ok := state.next()
		if !ok {
			return Result[NodeType]{ExpandedNodes: state.expanded}, nil
		}
		if state.exhausted() {
			return Result[NodeType]{ExpandedNodes: state.expanded}, ErrExpansionLimit
		}
		state.finalize(currentItem)

		if currentItem.Node == goalNode {
			return Result[NodeType]{
				Path:          state.path(currentItem.Node),
				TotalCost:     currentItem.GScore,
				ExpandedNodes: state.expanded,
				Found:         true,
			}, nil
		}

		if err := state.expand(currentItem); err != nil {
			return Result[NodeType]{ExpandedNodes: state.expanded}, err
		}
	}
}
