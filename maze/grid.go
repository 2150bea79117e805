// Package maze models a weighted 2D grid of cell symbols and solves it with
// the astar search engine.
//
// A grid holds exactly one start (S) and one end (E) cell, open terrain in
// four weight tiers (0-3) and obstacles (#). Movement is 8-directional, but a
// diagonal step is only allowed when both cells sharing an edge with it are
// traversable, so paths never squeeze between two obstacles that touch at a
// corner.
package maze

import (
	"math"
	"strings"
)

// Grid is an immutable table of cell symbols together with its cost
// configuration. It is safe for concurrent readers.
type Grid struct {
	cells [][]Symbol
	rows  int
	cols  int
	start Position
	end   Position
	costs Costs

	// minWeight is the lightest finite weight of any cell, 0 if none.
	minWeight float64
}

// New validates cells and builds a Grid. Each cell must be a single-character
// symbol. Failures are reported as *ValidationError.
func New(cells [][]string, opts ...Option) (*Grid, error) {
	if err := checkShape(len(cells), func(i int) int { return len(cells[i]) }); err != nil {
		return nil, err
	}

	symbols := make([][]Symbol, len(cells))
	var unknown *ValidationError
	for r, row := range cells {
		symbols[r] = make([]Symbol, len(row))
		for c, token := range row {
			s, ok := ParseSymbol(token)
			if !ok && unknown == nil {
				unknown = invalid(ErrUnknownSymbol, r, c, "%q", token)
			}
			symbols[r][c] = s
		}
	}
	return build(symbols, unknown, opts)
}

// FromSymbols validates an already tokenized table. The table is copied.
func FromSymbols(cells [][]Symbol, opts ...Option) (*Grid, error) {
	if err := checkShape(len(cells), func(i int) int { return len(cells[i]) }); err != nil {
		return nil, err
	}

	symbols := make([][]Symbol, len(cells))
	var unknown *ValidationError
	for r, row := range cells {
		symbols[r] = append([]Symbol(nil), row...)
		for c, s := range row {
			if !s.Valid() && unknown == nil {
				unknown = invalid(ErrUnknownSymbol, r, c, "%q", string(rune(s)))
			}
		}
	}
	return build(symbols, unknown, opts)
}

func checkShape(rows int, rowLen func(int) int) error {
	if rows == 0 || rowLen(0) == 0 {
		return invalid(ErrEmptyGrid, -1, -1, "")
	}
	width := rowLen(0)
	for r := 1; r < rows; r++ {
		if got := rowLen(r); got != width {
			return invalid(ErrRaggedRows, r, -1, "got %d cells, want %d", got, width)
		}
	}
	return nil
}

// build finishes validation in the order start count, end count, unknown
// symbol, then cost configuration.
func build(symbols [][]Symbol, unknown *ValidationError, opts []Option) (*Grid, error) {
	g := &Grid{
		cells: symbols,
		rows:  len(symbols),
		cols:  len(symbols[0]),
	}

	starts, ends := 0, 0
	for r, row := range symbols {
		for c, s := range row {
			switch s {
			case Start:
				if starts == 0 {
					g.start = Position{r, c}
				}
				starts++
			case End:
				if ends == 0 {
					g.end = Position{r, c}
				}
				ends++
			}
		}
	}
	if starts != 1 {
		return nil, invalid(ErrStartCount, -1, -1, "found %d", starts)
	}
	if ends != 1 {
		return nil, invalid(ErrEndCount, -1, -1, "found %d", ends)
	}
	if unknown != nil {
		return nil, unknown
	}

	g.costs = DefaultCosts()
	for _, opt := range opts {
		opt(&g.costs)
	}
	if err := g.costs.validate(); err != nil {
		return nil, err
	}

	g.minWeight = math.Inf(1)
	for _, row := range symbols {
		for _, s := range row {
			if w := g.costs.weight(s); w < g.minWeight {
				g.minWeight = w
			}
		}
	}
	if math.IsInf(g.minWeight, 1) {
		g.minWeight = 0
	}
	return g, nil
}

func (g *Grid) Rows() int       { return g.rows }
func (g *Grid) Cols() int       { return g.cols }
func (g *Grid) Start() Position { return g.start }
func (g *Grid) End() Position   { return g.end }

// Costs returns a copy of the grid's cost configuration.
func (g *Grid) Costs() Costs { return g.costs.clone() }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the symbol at p. p must be in bounds.
func (g *Grid) At(p Position) Symbol { return g.cells[p.Row][p.Col] }

// Weight returns the terrain weight at p, +Inf when p is out of bounds.
func (g *Grid) Weight(p Position) float64 {
	if !g.InBounds(p) {
		return math.Inf(1)
	}
	return g.costs.weight(g.At(p))
}

// IsTraversable reports whether p is in bounds and not impassable.
func (g *Grid) IsTraversable(p Position) bool {
	return !math.IsInf(g.Weight(p), 1)
}

var (
	orthogonalMoves = []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalMoves   = []Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Neighbors returns the traversable positions adjacent to p: up, down, left,
// right, then up-left, up-right, down-left, down-right. A diagonal is only
// included when both orthogonal cells it passes between are traversable.
func (g *Grid) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 8)
	for _, d := range orthogonalMoves {
		if next := (Position{p.Row + d.Row, p.Col + d.Col}); g.IsTraversable(next) {
			neighbors = append(neighbors, next)
		}
	}
	for _, d := range diagonalMoves {
		next := Position{p.Row + d.Row, p.Col + d.Col}
		if !g.IsTraversable(next) {
			continue
		}
		if g.IsTraversable(Position{next.Row, p.Col}) && g.IsTraversable(Position{p.Row, next.Col}) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// StepCost is the cost of moving between adjacent positions a and b: the
// step multiplier times the mean weight of both cells. The result is +Inf if
// either cell is impassable. Non-adjacent input is not checked.
func (g *Grid) StepCost(a, b Position) float64 {
	base := g.costs.Orthogonal
	if abs(a.Row-b.Row) == 1 && abs(a.Col-b.Col) == 1 {
		base = g.costs.Diagonal
	}
	wa, wb := g.Weight(a), g.Weight(b)
	if math.IsInf(wa, 1) || math.IsInf(wb, 1) {
		return math.Inf(1)
	}
	return base * (wa + wb) / 2
}

// Cells returns a copy of the symbol table.
func (g *Grid) Cells() [][]Symbol {
	out := make([][]Symbol, g.rows)
	for r, row := range g.cells {
		out[r] = append([]Symbol(nil), row...)
	}
	return out
}

// MarkPath returns a copy of the symbol table with the interior of path
// (everything but its first and last position) replaced by PathMarker.
func (g *Grid) MarkPath(path []Position) [][]Symbol {
	marked := g.Cells()
	for i := 1; i < len(path)-1; i++ {
		if p := path[i]; g.InBounds(p) {
			marked[p.Row][p.Col] = PathMarker
		}
	}
	return marked
}

// String renders the grid as rows of space separated symbols.
func (g *Grid) String() string {
	return Format(g.cells)
}

// Format renders a symbol table as rows of space separated symbols.
func Format(cells [][]Symbol) string {
	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, s := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(byte(s))
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
