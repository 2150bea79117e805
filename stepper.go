package astar

import (
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	TotalCost float64
	StepIndex int
}

// Stepper drives the same search as Search one node expansion at a time.
type Stepper[NodeType comparable] struct {
	cancel context.CancelFunc
	state  *run[NodeType]

	stepCount int
	done      bool
	found     bool
	current   NodeType
	path      []NodeType
	totalCost float64
}

// NewStepper creates a new stepper using the same expansion logic as Search.
// Close must be called to release the worker pool when one is configured.
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	ctx, cancel := context.WithCancel(parent)
	return &Stepper[NodeType]{
		cancel:  cancel,
		state:   newRun(ctx, graph, startNode, goalNode, heuristic, applyOptions(options)),
		current: startNode,
	}
}

// Close stops the workers
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Done reports whether the search has terminated.
func (s *Stepper[NodeType]) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search has terminated every further call returns the final snapshot.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.snapshot(), nil
	}
	if err := s.state.ctx.Err(); err != nil {
		s.done = true
		return s.snapshot(), err
	}

	currentItem, ok := s.state.next()
	if !ok {
		s.done = true
		return s.snapshot(), nil
	}
	if s.state.exhausted() {
		s.done = true
		return s.snapshot(), ErrExpansionLimit
	}

	s.stepCount++
	s.state.finalize(currentItem)
	s.current = currentItem.Node

	if currentItem.Node == s.state.goal {
		s.done = true
		s.found = true
		s.path = s.state.path(currentItem.Node)
		s.totalCost = currentItem.GScore
		return s.snapshot(), nil
	}

	if err := s.state.expand(currentItem); err != nil {
		s.done = true
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// Run steps until the search terminates and returns the equivalent Result.
func (s *Stepper[NodeType]) Run() (Result[NodeType], error) {
	for !s.done {
		if _, err := s.Step(); err != nil {
			return Result[NodeType]{ExpandedNodes: s.state.expanded}, err
		}
	}
	return Result[NodeType]{
		Path:          s.path,
		TotalCost:     s.totalCost,
		ExpandedNodes: s.state.expanded,
		Found:         s.found,
	}, nil
}

func (s *Stepper[NodeType]) snapshot() StepSnapshot[NodeType] {
	return StepSnapshot[NodeType]{
		Current:   s.current,
		Open:      s.openSetToBoolMap(),
		Closed:    copyBoolMap(s.state.closedSet),
		CameFrom:  copyCameFrom(s.state.cameFrom),
		Done:      s.done,
		Found:     s.found,
		Path:      append([]NodeType(nil), s.path...),
		TotalCost: s.totalCost,
		StepIndex: s.stepCount,
	}
}

func (s *Stepper[NodeType]) openSetToBoolMap() map[NodeType]bool {
	m := make(map[NodeType]bool, len(s.state.openSetMap))
	for k := range s.state.openSetMap {
		m[k] = true
	}
	return m
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCameFrom[T comparable](m map[T]T) map[T]T {
	if m == nil {
		return nil
	}
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
