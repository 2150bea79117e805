// Command mazesolve loads or generates a weighted grid, finds its cheapest
// path and prints, exports or displays the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/maze"
	"github.com/pdrpinto/astar-maze/render"
	"github.com/pdrpinto/astar-maze/telemetry"
	"github.com/pdrpinto/astar-maze/verify"
)

type config struct {
	file          string
	generate      string
	seed          int64
	workers       int
	maxExpansions int
	orthogonal    float64
	diagonal      float64
	pngPath       string
	cellSize      int
	view          bool
	check         bool
	timeout       time.Duration
	verbose       bool
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.file, "f", "-", "grid file, - for stdin")
	flag.StringVar(&cfg.generate, "generate", "", "generate a random ROWSxCOLS grid instead of reading one")
	flag.Int64Var(&cfg.seed, "seed", 0, "generator seed, 0 for random")
	flag.IntVar(&cfg.workers, "workers", 0, "expansion worker goroutines, 0 expands inline")
	flag.IntVar(&cfg.maxExpansions, "max-expansions", 0, "give up after finalizing this many cells, 0 for no limit")
	flag.Float64Var(&cfg.orthogonal, "orthogonal", 1, "orthogonal step multiplier")
	flag.Float64Var(&cfg.diagonal, "diagonal", 1.4, "diagonal step multiplier")
	flag.StringVar(&cfg.pngPath, "png", "", "write the solved grid as PNG to this file")
	flag.IntVar(&cfg.cellSize, "cell", 24, "PNG pixels per cell")
	flag.BoolVar(&cfg.view, "view", false, "show the solved grid in the terminal")
	flag.BoolVar(&cfg.check, "verify", false, "check the result against Dijkstra")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "abort the search after this long, 0 for no limit")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	found, err := run(ctx, cfg, logger, os.Stdout)
	if err != nil {
		logger.Error("mazesolve failed", slog.Any("error", err))
		os.Exit(1)
	}
	if !found {
		os.Exit(2)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, out io.Writer) (bool, error) {
	g, err := loadGrid(cfg)
	if err != nil {
		return false, err
	}
	logger.Debug("grid loaded", slog.Int("rows", g.Rows()), slog.Int("cols", g.Cols()),
		slog.String("start", g.Start().String()), slog.String("end", g.End().String()))

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	solver := telemetry.NewSolver(nil, logger,
		astar.WithWorkers(cfg.workers),
		astar.WithMaxExpansions(cfg.maxExpansions),
	)
	sol, err := solver.Solve(ctx, g)
	if err != nil {
		return false, fmt.Errorf("solve: %w", err)
	}

	if cfg.check {
		if err := verify.Optimality(g, sol, 1e-9); err != nil {
			return false, fmt.Errorf("verify: %w", err)
		}
		logger.Info("result matches Dijkstra")
	}

	cells := g.Cells()
	status := "no path"
	if sol.Found {
		cells = g.MarkPath(sol.Path)
		status = fmt.Sprintf("cost %.2f, %d steps, %d cells expanded", sol.Cost, len(sol.Path)-1, sol.Expanded)
	}

	if cfg.pngPath != "" {
		if err := render.SavePNG(cfg.pngPath, cells, cfg.cellSize, render.DefaultPalette()); err != nil {
			return false, err
		}
		logger.Info("image written", slog.String("path", cfg.pngPath))
	}

	if cfg.view && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := view(cells, status); err != nil {
			return false, err
		}
		return sol.Found, nil
	}

	fmt.Fprintln(out, maze.Format(cells))
	fmt.Fprintln(out, status)
	return sol.Found, nil
}

func loadGrid(cfg config) (*maze.Grid, error) {
	opts := []maze.Option{maze.WithMoveCosts(cfg.orthogonal, cfg.diagonal)}
	if cfg.generate != "" {
		var rows, cols int
		if _, err := fmt.Sscanf(cfg.generate, "%dx%d", &rows, &cols); err != nil {
			return nil, fmt.Errorf("invalid -generate %q, want ROWSxCOLS: %w", cfg.generate, err)
		}
		return maze.Generate(maze.GenerateConfig{Rows: rows, Cols: cols, Seed: cfg.seed}, opts...)
	}
	if cfg.file == "-" {
		return maze.Parse(os.Stdin, opts...)
	}
	return maze.Load(cfg.file, opts...)
}

func view(cells [][]maze.Symbol, status string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	render.View(screen, cells, render.DefaultPalette(), status)
	return nil
}
