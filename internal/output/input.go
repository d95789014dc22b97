package output

import (
	"encoding/json"
	"fmt"

	"github.com/crossplay/xword/internal/grid"
	"github.com/crossplay/xword/internal/solver"
)

type clueInput struct {
	Number int    `json:"number"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Length int    `json:"length"`
	Clue   string `json:"clue"`
	Answer string `json:"answer,omitempty"`
}

type solveInput struct {
	Grid  []string `json:"grid"`
	Clues struct {
		Across []clueInput `json:"across"`
		Down   []clueInput `json:"down"`
	} `json:"clues"`
}

// ParseSolveInput decodes spec.md §6's Solving input: a grid of single
// characters (letters, space, or dot; space and dot both normalize to
// Empty) plus an across/down clue list.
func ParseSolveInput(data []byte) (solver.Input, error) {
	var raw solveInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return solver.Input{}, fmt.Errorf("decode solve input: %w", err)
	}
	if len(raw.Grid) == 0 {
		return solver.Input{}, fmt.Errorf("decode solve input: empty grid")
	}

	height := len(raw.Grid)
	width := len([]rune(raw.Grid[0]))
	g := grid.NewGrid(width, height)

	for y, row := range raw.Grid {
		cells := []rune(row)
		if len(cells) != width {
			return solver.Input{}, fmt.Errorf("decode solve input: row %d has %d cells, want %d", y, len(cells), width)
		}
		for x, c := range cells {
			switch c {
			case ' ', '.':
				g.Set(x, y, grid.Empty)
			default:
				g.Set(x, y, c)
			}
		}
	}

	in := solver.Input{Grid: g}
	for _, c := range raw.Clues.Across {
		in.Clues = append(in.Clues, toClue(c, grid.Across))
	}
	for _, c := range raw.Clues.Down {
		in.Clues = append(in.Clues, toClue(c, grid.Down))
	}
	return in, nil
}

func toClue(c clueInput, dir grid.Direction) solver.Clue {
	return solver.Clue{
		Number: c.Number, X: c.X, Y: c.Y, Length: c.Length,
		Direction: dir, Text: c.Clue, Answer: c.Answer,
	}
}
