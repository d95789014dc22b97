// Package solver implements the shared candidate-generation substrate
// (spec.md §4.4) and the DFS, A*, and Hybrid search variants built on
// top of it (spec.md §4.5-§4.7).
package solver

import (
	"github.com/crossplay/xword/internal/dictionary"
	"github.com/crossplay/xword/internal/grid"
)

// Dictionary is the subset of *dictionary.Index the solver needs. Both
// *dictionary.Index and *dictionary.CachingIndex satisfy it.
type Dictionary interface {
	ByLength(length, max int) []dictionary.Candidate
	ByPattern(pattern string, clueTokens []string, max int) []dictionary.Candidate
	ByClue(clue string, minLen, maxLen, max int) []dictionary.Candidate
	ExactClueToWord(clue string) (*dictionary.Entry, bool)
	ClueForWord(word string) string
}

// Clue is one entry of the solving input's across/down list (spec.md
// §6 Solving input).
type Clue struct {
	Number    int
	X, Y      int
	Length    int
	Direction grid.Direction
	Text      string
	Answer    string
}

// Input is the solver's entry point payload: a grid plus its clue
// list (spec.md §4.4 Input).
type Input struct {
	Grid  *grid.Grid
	Clues []Clue
}

// Status is the outcome of a search (spec.md §4.4 step 8).
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
)

// Metrics accompanies every Result (spec.md §6 Solving output).
type Metrics struct {
	ExecutionTimeSeconds float64 `json:"execution_time_seconds"`
	PeakMemoryKB         float64 `json:"peak_memory_kb"`
	AvgMemoryKB          float64 `json:"avg_memory_kb"`
	MinMemoryKB          float64 `json:"min_memory_kb"`
	FallbackUsageCount   int     `json:"fallback_usage_count"`
	ModeSwitches         int     `json:"mode_switches,omitempty"`
}

// Result is the solver's output (spec.md §4.4 step 8, §6 Solving output).
type Result struct {
	Status      Status
	Grid        *grid.Grid
	WordsPlaced int
	TotalWords  int
	Metrics     Metrics
}

type cellPos struct{ X, Y int }
