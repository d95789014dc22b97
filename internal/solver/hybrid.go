package solver

import (
	"strings"

	"github.com/crossplay/xword/internal/grid"
)

// SolveHybrid implements spec.md §4.7: a bounded-beam A* phase commits
// a partially-filled state, then a guided DFS phase finishes the
// remaining slots with crossing-aware candidate rescoring.
func SolveHybrid(dict Dictionary, in Input) Result {
	m := newRunMetrics()
	slots, malformed := collectSlots(in, m)
	gph := grid.BuildGraph(slots)
	states := buildSlotStates(dict, in.Grid, slots, m)

	beamWidth := defaultBeamWidth
	expansionCap := len(slots) * 50
	if expansionCap > 1000 || expansionCap == 0 {
		expansionCap = 1000
	}

	start := &astarState{grid: in.Grid, filled: map[grid.Key]bool{}, g: 0}
	start.h = heuristic(start.grid, slots, gph, start.filled)

	phase1, committed := runAStar(dict, slots, gph, states, start, expansionCap, m, &beamWidth)
	if phase1.Status == StatusSuccess {
		phase1.TotalWords = len(slots) + malformed
		phase1.Metrics.ModeSwitches = 0
		if malformed > 0 {
			phase1.Status = StatusPartial
		}
		return phase1
	}

	m.modeSwitches = 1

	var remaining []*grid.Slot
	for _, s := range slots {
		if !committed.filled[s.Key()] {
			remaining = append(remaining, s)
		}
	}
	ordered := orderByMRVThenDegree(remaining, states, gph)

	h := &hybridRun{dict: dict, gph: gph, states: states, metrics: m, best: committed.grid}
	finalGrid, ok := h.solve(ordered, 0, committed.grid)
	if !ok {
		finalGrid = h.best
	}

	allSlots := append([]*grid.Slot(nil), slots...)
	status := statusFor(ok)
	if malformed > 0 {
		status = StatusPartial
	}
	return Result{
		Status:      status,
		Grid:        finalGrid,
		WordsPlaced: countFilled(finalGrid, allSlots),
		TotalWords:  len(allSlots) + malformed,
		Metrics:     m.finish(),
	}
}

type hybridRun struct {
	dict    Dictionary
	gph     *grid.Graph
	states  map[grid.Key]*slotState
	metrics *runMetrics
	best    *grid.Grid
	bestN   int
}

func (h *hybridRun) solve(order []*grid.Slot, k int, g *grid.Grid) (*grid.Grid, bool) {
	if k == len(order) {
		return g, true
	}
	s := order[k]
	st := h.states[s.Key()]
	pattern := grid.Pattern(g, s)

	ranked := rescoreForCrossings(h.dict, g, s, pattern, st.Candidates)

	for _, cand := range ranked {
		h.metrics.tick()
		placed, _ := placeWord(g, s, cand)
		if !forwardCheck(placed, h.gph, h.states, s) {
			continue
		}

		if n := countFilled(placed, order); n > h.bestN {
			h.bestN = n
			h.best = placed
		}

		if next, ok := h.solve(order, k+1, placed); ok {
			return next, true
		}
	}
	return g, false
}

// rescoreForCrossings implements spec.md §4.7 Phase 2 rescoring: +2
// per letter of cand that matches a letter already on the grid at a
// crossing position, +5 if cand is the slot's exact-clue match.
func rescoreForCrossings(dict Dictionary, g *grid.Grid, s *grid.Slot, pattern string, candidates []string) []string {
	exact := ""
	if s.Clue != "" {
		if e, ok := dict.ExactClueToWord(s.Clue); ok {
			exact = e.Word
		}
	}

	type scored struct {
		word  string
		score int
	}
	var ranked []scored
	for _, cand := range candidates {
		if !patternConsistent(pattern, cand) {
			continue
		}
		score := 0
		for i := 0; i < len(cand); i++ {
			if pattern[i] != '.' {
				score += 2
			}
		}
		if strings.EqualFold(cand, exact) {
			score += 5
		}
		ranked = append(ranked, scored{word: cand, score: score})
	}

	out := make([]string, len(ranked))
	for i := range ranked {
		best := i
		for j := i + 1; j < len(ranked); j++ {
			if ranked[j].score > ranked[best].score {
				best = j
			}
		}
		ranked[i], ranked[best] = ranked[best], ranked[i]
		out[i] = ranked[i].word
	}
	return out
}
