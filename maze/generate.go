package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateConfig controls random grid generation. Zero fields take defaults.
type GenerateConfig struct {
	Rows, Cols int
	// Clusters is the number of random walks that scatter obstacles and rough terrain.
	Clusters int
	// Steps is the length of each walk.
	Steps int
	// Density is the probability that a visited cell becomes an obstacle.
	// A negative value disables obstacles.
	Density float64
	// Roughness is the probability that a visited cell that did not become an
	// obstacle becomes terrain tier 1 to 3. A negative value disables terrain.
	Roughness float64
	// Seed fixes the output; 0 seeds from the clock.
	Seed int64
}

func (cfg GenerateConfig) withDefaults() GenerateConfig {
	if cfg.Clusters <= 0 {
		cfg.Clusters = 8
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 200
	}
	switch {
	case cfg.Density == 0:
		cfg.Density = 0.25
	case cfg.Density < 0:
		cfg.Density = 0
	}
	switch {
	case cfg.Roughness == 0:
		cfg.Roughness = 0.3
	case cfg.Roughness < 0:
		cfg.Roughness = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// Generate builds a random grid: clustered obstacles and rough terrain laid
// down by random walks, with start and end at distinct random cells. The same
// non-zero seed always yields the same grid. The result may be unsolvable.
func Generate(cfg GenerateConfig, opts ...Option) (*Grid, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.Rows*cfg.Cols < 2 {
		return nil, fmt.Errorf("generate: %dx%d grid cannot hold a start and an end", cfg.Rows, cfg.Cols)
	}
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))

	cells := make([][]Symbol, cfg.Rows)
	for r := range cells {
		cells[r] = make([]Symbol, cfg.Cols)
		for c := range cells[r] {
			cells[r][c] = Open
		}
	}

	randomCell := func() Position { return Position{rng.Intn(cfg.Rows), rng.Intn(cfg.Cols)} }
	start, end := randomCell(), randomCell()
	for start == end {
		end = randomCell()
	}

	for i := 0; i < cfg.Clusters; i++ {
		p := randomCell()
		for s := 0; s < cfg.Steps; s++ {
			if p != start && p != end {
				switch roll := rng.Float64(); {
				case roll < cfg.Density:
					cells[p.Row][p.Col] = Obstacle
				case rng.Float64() < cfg.Roughness:
					cells[p.Row][p.Col] = Terrain(1 + rng.Intn(3))
				}
			}
			d := orthogonalMoves[rng.Intn(len(orthogonalMoves))]
			if next := (Position{p.Row + d.Row, p.Col + d.Col}); next.Row >= 0 && next.Row < cfg.Rows && next.Col >= 0 && next.Col < cfg.Cols {
				p = next
			}
		}
	}

	cells[start.Row][start.Col] = Start
	cells[end.Row][end.Col] = End
	return FromSymbols(cells, opts...)
}
