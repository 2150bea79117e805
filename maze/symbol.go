package maze

import "fmt"

// Symbol is the content of a single grid cell.
type Symbol byte

const (
	Start      Symbol = 'S'
	End        Symbol = 'E'
	Open       Symbol = '0' // terrain tier 0, cheapest
	Rough      Symbol = '1'
	Difficult  Symbol = '2'
	Extreme    Symbol = '3' // terrain tier 3, most expensive
	Obstacle   Symbol = '#'
	PathMarker Symbol = '*' // only written by MarkPath
)

// Symbols lists every recognized symbol.
var Symbols = []Symbol{Start, End, Open, Rough, Difficult, Extreme, Obstacle, PathMarker}

// Terrain returns the open-terrain symbol for tier 0..3.
func Terrain(tier int) Symbol {
	if tier < 0 || tier > 3 {
		panic(fmt.Sprintf("maze: terrain tier %d out of range", tier))
	}
	return Open + Symbol(tier)
}

// Valid reports whether s is a recognized symbol.
func (s Symbol) Valid() bool {
	switch s {
	case Start, End, Open, Rough, Difficult, Extreme, Obstacle, PathMarker:
		return true
	}
	return false
}

func (s Symbol) String() string { return string(rune(s)) }

// ParseSymbol converts a single-character token into a Symbol.
func ParseSymbol(token string) (Symbol, bool) {
	if len(token) != 1 {
		return 0, false
	}
	s := Symbol(token[0])
	return s, s.Valid()
}

// Position is a (row, column) grid coordinate.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
