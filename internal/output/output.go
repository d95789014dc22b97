// Package output formats solver and generator results into the exact
// JSON shapes external callers consume (spec.md §6).
package output

import (
	"encoding/json"
	"strconv"

	"github.com/crossplay/xword/internal/generator"
	"github.com/crossplay/xword/internal/grid"
	"github.com/crossplay/xword/internal/solver"
)

// ClueJSON is one entry of a Generation output clue list (spec.md §6).
type ClueJSON struct {
	Number int    `json:"number"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Length int    `json:"length"`
	Clue   string `json:"clue"`
	Answer string `json:"answer,omitempty"`
}

// SolveResult is spec.md §6's Solving output.
type SolveResult struct {
	Status      string         `json:"status"`
	Grid        [][]string     `json:"grid"`
	WordsPlaced int            `json:"words_placed"`
	TotalWords  int            `json:"total_words"`
	Metrics     solver.Metrics `json:"metrics"`
}

// FormatSolveResult converts a solver.Result to the wire shape.
func FormatSolveResult(r solver.Result) *SolveResult {
	return &SolveResult{
		Status:      string(r.Status),
		Grid:        gridToStrings(r.Grid),
		WordsPlaced: r.WordsPlaced,
		TotalWords:  r.TotalWords,
		Metrics:     r.Metrics,
	}
}

// ToJSON serializes a SolveResult.
func (s *SolveResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// GenerateResult is spec.md §6's Generation output.
type GenerateResult struct {
	Success   bool       `json:"success"`
	Grid      [][]string `json:"grid"`
	EmptyGrid [][]string `json:"empty_grid"`
	Clues     struct {
		Across []ClueJSON `json:"across"`
		Down   []ClueJSON `json:"down"`
	} `json:"clues"`
	Stats struct {
		WordCount  int     `json:"word_count"`
		Difficulty string  `json:"difficulty"`
		Size       int     `json:"size"`
		Density    float64 `json:"density"`
	} `json:"stats"`
}

// FormatGenerateResult converts a generator.Result plus the
// dictionary-derived clue text for each slot into the wire shape.
func FormatGenerateResult(res *generator.Result, difficulty generator.Difficulty, size int, clueFor func(word string) string) *GenerateResult {
	out := &GenerateResult{
		Success:   !res.Fallback,
		Grid:      gridToStrings(res.Grid),
		EmptyGrid: emptyGridWithNumbers(res.Grid, res.Slots),
	}
	out.Stats.WordCount = len(res.Slots)
	out.Stats.Difficulty = string(difficulty)
	out.Stats.Size = size
	out.Stats.Density = res.Density

	for _, s := range res.Slots {
		answer := slotAnswer(res.Grid, s)
		c := ClueJSON{Number: s.Number, X: s.X, Y: s.Y, Length: s.Length, Clue: clueFor(answer), Answer: answer}
		if s.Direction == grid.Across {
			out.Clues.Across = append(out.Clues.Across, c)
		} else {
			out.Clues.Down = append(out.Clues.Down, c)
		}
	}
	return out
}

// ToJSON serializes a GenerateResult.
func (g *GenerateResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

func slotAnswer(g *grid.Grid, s *grid.Slot) string {
	buf := make([]byte, s.Length)
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		buf[i] = byte(g.At(x, y))
	}
	return string(buf)
}

func gridToStrings(g *grid.Grid) [][]string {
	out := make([][]string, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = make([]string, g.Width)
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			if c == grid.Empty {
				out[y][x] = "."
			} else {
				out[y][x] = string(c)
			}
		}
	}
	return out
}

// emptyGridWithNumbers renders spec.md §6's Generation output
// empty_grid: slot-start cells carry their number as a string, every
// other non-Empty cell is '.' same as a black square would be.
func emptyGridWithNumbers(g *grid.Grid, slots []*grid.Slot) [][]string {
	numberAt := make(map[[2]int]int, len(slots))
	for _, s := range slots {
		numberAt[[2]int{s.X, s.Y}] = s.Number
	}

	out := make([][]string, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = make([]string, g.Width)
		for x := 0; x < g.Width; x++ {
			if n, ok := numberAt[[2]int{x, y}]; ok {
				out[y][x] = strconv.Itoa(n)
			} else {
				out[y][x] = "."
			}
		}
	}
	return out
}
