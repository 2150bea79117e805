package maze

import (
	"maps"
	"math"
)

// Costs maps cell symbols to terrain weights and holds the base multipliers
// for orthogonal and diagonal steps.
type Costs struct {
	Weights    map[Symbol]float64
	Orthogonal float64
	Diagonal   float64
}

// DefaultCosts returns a fresh copy of the default cost configuration.
func DefaultCosts() Costs {
	return Costs{
		Weights: map[Symbol]float64{
			Start:      1,
			End:        1,
			Open:       1,
			Rough:      2,
			Difficult:  3,
			Extreme:    4,
			PathMarker: 1,
			Obstacle:   math.Inf(1),
		},
		Orthogonal: 1,
		Diagonal:   1.4,
	}
}

// weight returns the configured weight of s. Symbols absent from the table
// are impassable.
func (c Costs) weight(s Symbol) float64 {
	w, ok := c.Weights[s]
	if !ok {
		return math.Inf(1)
	}
	return w
}

func (c Costs) clone() Costs {
	c.Weights = maps.Clone(c.Weights)
	return c
}

func (c Costs) validate() error {
	if w, ok := c.Weights[Obstacle]; ok && !math.IsInf(w, 1) {
		return invalid(ErrInvalidWeight, -1, -1, "obstacle weight %v, must be +Inf", w)
	}
	for s, w := range c.Weights {
		if math.IsNaN(w) || w < 0 {
			return invalid(ErrInvalidWeight, -1, -1, "weight %v for %q", w, s)
		}
	}
	if !positiveFinite(c.Orthogonal) {
		return invalid(ErrInvalidWeight, -1, -1, "orthogonal multiplier %v", c.Orthogonal)
	}
	if !positiveFinite(c.Diagonal) {
		return invalid(ErrInvalidWeight, -1, -1, "diagonal multiplier %v", c.Diagonal)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Option configures grid construction.
type Option func(*Costs)

// WithCosts replaces the whole cost configuration.
func WithCosts(costs Costs) Option {
	return func(c *Costs) { *c = costs.clone() }
}

// WithCellWeights replaces the symbol weight table. Symbols missing from
// weights become impassable. Obstacle is always impassable.
func WithCellWeights(weights map[Symbol]float64) Option {
	return func(c *Costs) { c.Weights = maps.Clone(weights) }
}

// WithMoveCosts sets the orthogonal and diagonal step multipliers.
func WithMoveCosts(orthogonal, diagonal float64) Option {
	return func(c *Costs) {
		c.Orthogonal = orthogonal
		c.Diagonal = diagonal
	}
}
