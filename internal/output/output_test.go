package output

import (
	"testing"

	"github.com/crossplay/xword/internal/grid"
	"github.com/crossplay/xword/internal/solver"
)

func TestFormatSolveResult(t *testing.T) {
	g := grid.NewGrid(2, 1)
	g.Set(0, 0, 'C')
	g.Set(1, 0, grid.Empty)

	r := solver.Result{
		Status: solver.StatusPartial, Grid: g,
		WordsPlaced: 1, TotalWords: 2,
		Metrics: solver.Metrics{ExecutionTimeSeconds: 0.5},
	}

	out := FormatSolveResult(r)
	if out.Status != "partial" {
		t.Fatalf("Status = %q, want partial", out.Status)
	}
	if out.Grid[0][0] != "C" || out.Grid[0][1] != "." {
		t.Fatalf("Grid = %v, want [C .]", out.Grid)
	}

	data, err := out.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("ToJSON() returned empty data")
	}
}

func TestEmptyGridWithNumbers(t *testing.T) {
	g := grid.NewGrid(3, 1)
	g.Set(0, 0, 'C')
	g.Set(1, 0, 'A')
	g.Set(2, 0, 'T')
	slots := []*grid.Slot{{Number: 1, Direction: grid.Across, X: 0, Y: 0, Length: 3}}

	out := emptyGridWithNumbers(g, slots)
	if out[0][0] != "1" {
		t.Fatalf("empty_grid[0][0] = %q, want 1", out[0][0])
	}
	if out[0][1] != "." || out[0][2] != "." {
		t.Fatalf("empty_grid non-start cells = %v, want all dots", out[0])
	}
}
