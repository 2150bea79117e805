// Package telemetry instruments grid solving with Prometheus metrics,
// OpenTelemetry spans and structured logs.
package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/maze"
)

const tracerName = "github.com/pdrpinto/astar-maze/telemetry"

// Solve outcomes used as the "outcome" label.
const (
	OutcomeFound     = "found"
	OutcomeNoPath    = "no_path"
	OutcomeLimit     = "limit"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Recorder holds the solver metrics.
type Recorder struct {
	solves     *prometheus.CounterVec
	duration   prometheus.Histogram
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
}

// NewRecorder registers the solver metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maze_solve_total",
			Help: "Total grid solves by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "maze_solve_duration_seconds",
			Help:    "Grid solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "maze_solve_expanded_nodes",
			Help:    "Nodes finalized per solve",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "maze_solve_path_length",
			Help:    "Positions per found path",
			Buckets: prometheus.ExponentialBuckets(2, 2, 12),
		}),
	}
}

// Observe records one finished solve.
func (r *Recorder) Observe(outcome string, sol maze.Solution, elapsed time.Duration) {
	r.solves.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
	r.expanded.Observe(float64(sol.Expanded))
	if sol.Found {
		r.pathLength.Observe(float64(len(sol.Path)))
	}
}

// Outcome classifies the result of maze.Solve.
func Outcome(sol maze.Solution, err error) string {
	switch {
	case err == nil && sol.Found:
		return OutcomeFound
	case err == nil:
		return OutcomeNoPath
	case errors.Is(err, astar.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// Solver wraps maze.Solve with a span, metrics and a log line per call.
// A nil Recorder or Logger disables that part.
type Solver struct {
	recorder *Recorder
	logger   *slog.Logger
	tracer   trace.Tracer
	options  []astar.Option
}

// NewSolver creates a Solver that passes options to every search.
func NewSolver(recorder *Recorder, logger *slog.Logger, options ...astar.Option) *Solver {
	return &Solver{
		recorder: recorder,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		options:  options,
	}
}

// Solve runs maze.Solve on g.
func (s *Solver) Solve(ctx context.Context, g *maze.Grid) (maze.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "maze.Solve",
		trace.WithAttributes(
			attribute.Int("maze.rows", g.Rows()),
			attribute.Int("maze.cols", g.Cols()),
			attribute.String("maze.start", g.Start().String()),
			attribute.String("maze.end", g.End().String()),
		),
	)
	defer span.End()

	started := time.Now()
	sol, err := maze.Solve(ctx, g, s.options...)
	elapsed := time.Since(started)
	outcome := Outcome(sol, err)

	span.SetAttributes(
		attribute.String("maze.outcome", outcome),
		attribute.Int("maze.expanded", sol.Expanded),
	)
	if sol.Found {
		span.SetAttributes(
			attribute.Float64("maze.cost", sol.Cost),
			attribute.Int("maze.path_length", len(sol.Path)),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if s.recorder != nil {
		s.recorder.Observe(outcome, sol, elapsed)
	}
	if s.logger != nil {
		attrs := []any{
			slog.String("outcome", outcome),
			slog.Int("rows", g.Rows()),
			slog.Int("cols", g.Cols()),
			slog.Int("expanded", sol.Expanded),
			slog.Duration("elapsed", elapsed),
		}
		if sol.Found {
			attrs = append(attrs, slog.Float64("cost", sol.Cost), slog.Int("path_length", len(sol.Path)))
		}
		if err != nil {
			s.logger.Warn("maze_solve_failed", append(attrs, slog.Any("error", err))...)
		} else {
			s.logger.Info("maze_solve", attrs...)
		}
	}
	return sol, err
}
