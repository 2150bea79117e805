// Package astar provides a generic A* pathfinding implementation.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over node type. Frontier ties on total estimated cost
// are broken by the smaller heuristic estimate and then by insertion order, so
// a run over the same graph always yields the same path. Neighbor expansion can
// optionally be fanned out to a worker pool while a single orchestrator keeps
// ownership of the frontier; results are identical either way.
//
// The weighted grid model lives in the maze subpackage.
package astar
