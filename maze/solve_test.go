package maze

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	astar "github.com/pdrpinto/astar-maze"
)

// bruteForce relaxes every edge until nothing changes and returns the cheapest
// cost from start to end, or +Inf when unreachable.
func bruteForce(g *Grid) float64 {
	dist := map[Position]float64{g.Start(): 0}
	for changed := true; changed; {
		changed = false
		for p, d := range dist {
			for _, n := range g.Neighbors(p) {
				nd := d + g.StepCost(p, n)
				if old, ok := dist[n]; !ok || nd < old-1e-12 {
					dist[n] = nd
					changed = true
				}
			}
		}
	}
	if d, ok := dist[g.End()]; ok {
		return d
	}
	return math.Inf(1)
}

func pathCost(g *Grid, path []Position) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += g.StepCost(path[i-1], path[i])
	}
	return total
}

func checkPath(t *testing.T, g *Grid, path []Position) {
	t.Helper()
	if path[0] != g.Start() || path[len(path)-1] != g.End() {
		t.Fatalf("path runs %v..%v, want %v..%v", path[0], path[len(path)-1], g.Start(), g.End())
	}
	for i := 1; i < len(path); i++ {
		found := false
		for _, n := range g.Neighbors(path[i-1]) {
			if n == path[i] {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("step %v -> %v is not a legal move", path[i-1], path[i])
		}
	}
}

func TestSolveSimple(t *testing.T) {
	g := mustNew(t, rows("S00", "##0", "00E"))
	sol, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if !sol.Found {
		t.Fatal("expected a path")
	}
	want := []Position{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	if !reflect.DeepEqual(sol.Path, want) {
		t.Errorf("path = %v, want %v", sol.Path, want)
	}
	if sol.Cost != 4 {
		t.Errorf("cost = %v, want 4", sol.Cost)
	}
}

func TestSolveNoSolution(t *testing.T) {
	for name, cells := range map[string][][]string{
		"wall":          rows("S00", "###", "00E"),
		"corner gap":    rows("S#", "#E"),
		"enclosed end":  rows("S000", "00##", "00#E"),
		"diagonal wall": rows("S0#0", "0#00", "#00E"),
	} {
		t.Run(name, func(t *testing.T) {
			g := mustNew(t, cells)
			sol, err := Solve(context.Background(), g)
			if err != nil {
				t.Fatal(err)
			}
			if sol.Found || sol.Path != nil {
				t.Errorf("expected no path, got %v", sol.Path)
			}
		})
	}
}

func TestSolveUsesDiagonals(t *testing.T) {
	g := mustNew(t, rows("S000", "0000", "0000", "000E"))
	sol, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	want := []Position{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if !reflect.DeepEqual(sol.Path, want) {
		t.Errorf("path = %v, want %v", sol.Path, want)
	}
	if math.Abs(sol.Cost-4.2) > 1e-9 {
		t.Errorf("cost = %v, want 4.2", sol.Cost)
	}
}

func TestSolveAvoidsHeavyTerrain(t *testing.T) {
	g := mustNew(t, rows(
		"S333E",
		"00000",
	))
	sol, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range sol.Path {
		if g.At(p) == Extreme {
			t.Fatalf("path %v crosses tier 3 terrain", sol.Path)
		}
	}
	if want := bruteForce(g); math.Abs(sol.Cost-want) > 1e-9 {
		t.Errorf("cost = %v, want %v", sol.Cost, want)
	}
}

func TestSolveMatchesBruteForce(t *testing.T) {
	fixed := [][][]string{
		rows("S0000", "##0#0", "00000", "0##E0"),
		rows("S100", "2#10", "0300", "000E"),
		rows("S0#", "0#0", "00E"),
	}
	for i, cells := range fixed {
		for _, opts := range [][]Option{nil, {WithCellWeights(customWeights)}, {WithMoveCosts(1, 2.5)}} {
			g := mustNew(t, cells, opts...)
			assertOptimal(t, g)
			if t.Failed() {
				t.Fatalf("fixed grid %d:\n%s", i, g)
			}
		}
	}

	for seed := int64(1); seed <= 40; seed++ {
		g, err := Generate(GenerateConfig{Rows: 7, Cols: 9, Clusters: 4, Steps: 30, Density: 0.3, Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		assertOptimal(t, g)
		if t.Failed() {
			t.Fatalf("seed %d:\n%s", seed, g)
		}
	}
}

func assertOptimal(t *testing.T, g *Grid) {
	t.Helper()
	sol, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	want := bruteForce(g)
	if math.IsInf(want, 1) {
		if sol.Found {
			t.Errorf("found path %v on an unsolvable grid", sol.Path)
		}
		return
	}
	if !sol.Found {
		t.Errorf("no path found, cheapest is %v", want)
		return
	}
	checkPath(t, g, sol.Path)
	if math.Abs(sol.Cost-want) > 1e-9 {
		t.Errorf("cost = %v, optimum = %v", sol.Cost, want)
	}
	if got := pathCost(g, sol.Path); math.Abs(got-sol.Cost) > 1e-9 {
		t.Errorf("reported cost %v, path sums to %v", sol.Cost, got)
	}
}

func TestSolveIdempotent(t *testing.T) {
	g := mustNew(t, rows("S0000", "##0#0", "00000", "0##E0"))
	first, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second run %+v differs from first %+v", second, first)
	}
}

func TestSolveImpassableEndpoint(t *testing.T) {
	g := mustNew(t, rows("S0E"), WithCellWeights(map[Symbol]float64{Start: 1, Open: 1}))
	sol, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Found {
		t.Error("end cell without a weight must be unreachable")
	}
}

func TestSolveExpansionLimit(t *testing.T) {
	g := mustNew(t, rows("S0000000", "00000000", "0000000E"))
	_, err := Solve(context.Background(), g, astar.WithMaxExpansions(2))
	if !errors.Is(err, astar.ErrExpansionLimit) {
		t.Errorf("err = %v, want ErrExpansionLimit", err)
	}
}

func TestStepperReachesSamePath(t *testing.T) {
	g := mustNew(t, rows("S0000", "##0#0", "00000", "0##E0"))
	want, err := Solve(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	stepper := NewStepper(context.Background(), g, astar.WithWorkers(2))
	defer stepper.Close()
	res, err := stepper.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Path, want.Path) || res.TotalCost != want.Cost {
		t.Errorf("stepper path %v (%v), solve path %v (%v)", res.Path, res.TotalCost, want.Path, want.Cost)
	}
}

func TestHeuristicAdmissible(t *testing.T) {
	g := mustNew(t, rows("S000", "0000", "0000", "000E"))
	h := g.Heuristic()
	if got := h(g.Start(), g.End()); got > 4.2+1e-9 {
		t.Errorf("estimate %v exceeds the true cost 4.2", got)
	}
	if got := Manhattan(Position{0, 0}, Position{2, 3}); got != 5 {
		t.Errorf("Manhattan = %v, want 5", got)
	}
}
