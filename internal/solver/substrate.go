package solver

import (
	"sort"
	"strings"

	"github.com/crossplay/xword/internal/dictionary"
	"github.com/crossplay/xword/internal/grid"
)

const byClueInitialMax = 200
const byClueFallbackMax = 5000
const byLengthFallbackPool = 200

// slotState is one slot's working state across a search: its grid
// geometry and clue metadata plus the statically-generated candidate
// domain that forward checks filter against (spec.md §4.4 step 6's
// "current candidate list").
type slotState struct {
	Slot       *grid.Slot
	Candidates []string
}

// collectSlots implements spec.md §4.4 step 1. Unlike the generator
// side, a solving grid's slot geometry comes from the supplied clue
// list, not from re-scanning the grid for runs of non-Empty cells: a
// solving grid's Empty cells are blanks to fill, not black squares, so
// they cannot be used to infer where a slot starts or ends. Slots
// that are already fully filled are dropped.
//
// A clue whose length or offset doesn't fit the grid is malformed
// (spec.md §7 InvalidInput, §8 S6): it is dropped before it can reach
// a placement operation, counted toward the fallback ladder so
// callers' metrics and status reflect it, and reported separately so
// it still counts toward the total word count even though it can
// never be placed.
func collectSlots(in Input, m *runMetrics) (solvable []*grid.Slot, malformed int) {
	for _, c := range in.Clues {
		s := &grid.Slot{
			Number:    c.Number,
			Direction: c.Direction,
			X:         c.X,
			Y:         c.Y,
			Length:    c.Length,
			Clue:      c.Text,
			Answer:    c.Answer,
		}
		if !s.InBounds(in.Grid) {
			malformed++
			m.fallbackUsed++
			continue
		}
		if !grid.IsFilled(in.Grid, s) {
			solvable = append(solvable, s)
		}
	}
	return solvable, malformed
}

// generateCandidates implements spec.md §4.4 step 2: exact-clue match
// first, then the supplied answer if its dictionary clue agrees, then
// a by-clue query, falling back to the §4.4.1 ladder if all three
// produce nothing.
func generateCandidates(dict Dictionary, g *grid.Grid, s *grid.Slot, m *runMetrics) []string {
	pattern := grid.Pattern(g, s)
	seen := make(map[string]bool)
	var out []string

	add := func(word string) {
		word = strings.ToUpper(word)
		if len(word) != s.Length || !patternConsistent(pattern, word) || seen[word] {
			return
		}
		seen[word] = true
		out = append(out, word)
	}

	if s.Clue != "" {
		if e, ok := dict.ExactClueToWord(s.Clue); ok {
			add(e.Word)
		}
	}
	if s.Answer != "" && strings.EqualFold(dict.ClueForWord(s.Answer), s.Clue) {
		add(s.Answer)
	}
	if s.Clue != "" {
		for _, c := range dict.ByClue(s.Clue, s.Length, s.Length, byClueInitialMax) {
			add(c.Word)
		}
	}

	if len(out) == 0 {
		out = fallbackLadder(dict, s, pattern, m)
	}
	return out
}

// fallbackLadder implements spec.md §4.4.1: each level runs only if
// the prior one produced nothing, and the first level to produce a
// candidate stops the ladder.
func fallbackLadder(dict Dictionary, s *grid.Slot, pattern string, m *runMetrics) []string {
	// L1: spelling variants. The dictionary built from spec.md §6's
	// source format carries no variant-of relation between headwords,
	// so this level never has material to offer and is skipped.

	// L2: by-clue with a larger cap.
	if s.Clue != "" {
		words := filterAndDedup(dict.ByClue(s.Clue, s.Length, s.Length, byClueFallbackMax), pattern)
		if len(words) > 0 {
			m.fallbackUsed++
			return words
		}
	}

	// L3: by-pattern with the slot pattern and clue tokens.
	tokens := dictionary.Tokenize(s.Clue)
	if words := dict.ByPattern(pattern, tokens, byClueFallbackMax); len(words) > 0 {
		out := toWords(words)
		if len(out) > 0 {
			m.fallbackUsed++
			return out
		}
	}

	// L4: heuristic scoring over a large by-length pool, preferring
	// words consistent with the fixed positions (already-scored order
	// from the index stands in for the preference ranking).
	words := filterAndDedup(dict.ByLength(s.Length, byLengthFallbackPool), pattern)
	if len(words) > 0 {
		m.fallbackUsed++
	}
	return words
}

func filterAndDedup(cands []dictionary.Candidate, pattern string) []string {
	seen := make(map[string]bool, len(cands))
	var out []string
	for _, c := range cands {
		w := strings.ToUpper(c.Word)
		if patternConsistent(pattern, w) && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func toWords(cands []dictionary.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = strings.ToUpper(c.Word)
	}
	return out
}

// patternConsistent implements spec.md §4.4 step 4(a,b): length must
// match and every non-'.' position in pattern must equal word.
func patternConsistent(pattern, word string) bool {
	if len(pattern) != len(word) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '.' && pattern[i] != word[i] {
			return false
		}
	}
	return true
}

// placeWord implements spec.md §4.4 step 5 (place): writes only cells
// that were Empty, returning their positions for later removal.
func placeWord(g *grid.Grid, s *grid.Slot, word string) (*grid.Grid, []cellPos) {
	cur := g
	var written []cellPos
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		if cur.At(x, y) == grid.Empty {
			cur = cur.WithCellWritten(x, y, rune(word[i]))
			written = append(written, cellPos{X: x, Y: y})
		}
	}
	return cur, written
}

// removeWord implements spec.md §4.4 step 5 (remove): resets exactly
// the positions placeWord reported, preserving anything else. None of
// the search variants call this directly — copy-on-write snapshots
// make explicit undo unnecessary during backtracking, since continuing
// the candidate loop against the pre-placement grid already discards
// the placement. It exists to satisfy the place/remove round-trip
// contract (spec.md §8 R1) as a standalone operation, and is exercised
// directly by TestPlaceRemoveRoundTrip.
func removeWord(g *grid.Grid, written []cellPos) *grid.Grid {
	cur := g
	for _, p := range written {
		cur = cur.WithCellWritten(p.X, p.Y, grid.Empty)
	}
	return cur
}

// forwardCheck implements spec.md §4.4 step 6: after placing in just,
// every slot crossing it must still have a pattern-consistent
// candidate in its stored domain.
func forwardCheck(g *grid.Grid, gph *grid.Graph, states map[grid.Key]*slotState, just *grid.Slot) bool {
	for _, ck := range gph.Crossing(just.Key()) {
		cs, ok := states[ck]
		if !ok {
			continue
		}
		pattern := grid.Pattern(g, cs.Slot)
		ok := false
		for _, cand := range cs.Candidates {
			if patternConsistent(pattern, cand) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// buildSlotStates generates the initial candidate domain for every
// collected slot (spec.md §4.4 steps 1-2).
func buildSlotStates(dict Dictionary, g *grid.Grid, slots []*grid.Slot, m *runMetrics) map[grid.Key]*slotState {
	states := make(map[grid.Key]*slotState, len(slots))
	for _, s := range slots {
		states[s.Key()] = &slotState{Slot: s, Candidates: generateCandidates(dict, g, s, m)}
	}
	return states
}

// orderByMRVThenDegree sorts slots by ascending candidate count, then
// descending constraint degree, then slot number (spec.md §4.5
// Ordering; also used by A*/Hybrid's most-constrained-variable pick).
func orderByMRVThenDegree(slots []*grid.Slot, states map[grid.Key]*slotState, gph *grid.Graph) []*grid.Slot {
	out := append([]*grid.Slot(nil), slots...)
	sort.SliceStable(out, func(i, j int) bool {
		ci := len(states[out[i].Key()].Candidates)
		cj := len(states[out[j].Key()].Candidates)
		if ci != cj {
			return ci < cj
		}
		di := gph.Degree(out[i].Key())
		dj := gph.Degree(out[j].Key())
		if di != dj {
			return di > dj
		}
		return out[i].Number < out[j].Number
	})
	return out
}

func countFilled(g *grid.Grid, slots []*grid.Slot) int {
	n := 0
	for _, s := range slots {
		if grid.IsFilled(g, s) {
			n++
		}
	}
	return n
}
