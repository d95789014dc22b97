package solver

import "github.com/crossplay/xword/internal/grid"

// SolveDFS implements spec.md §4.5: slots ordered once by ascending
// candidate count then descending constraint degree, recursive descent
// with a bounded forward check over the just-placed slot's crossings.
func SolveDFS(dict Dictionary, in Input) Result {
	m := newRunMetrics()

	slots, malformed := collectSlots(in, m)
	gph := grid.BuildGraph(slots)
	states := buildSlotStates(dict, in.Grid, slots, m)
	ordered := orderByMRVThenDegree(slots, states, gph)

	d := &dfsRun{dict: dict, gph: gph, states: states, metrics: m, best: in.Grid}
	finalGrid, ok := d.solve(ordered, 0, in.Grid)
	if !ok {
		finalGrid = d.best
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

type dfsRun struct {
	dict    Dictionary
	gph     *grid.Graph
	states  map[grid.Key]*slotState
	metrics *runMetrics
	best    *grid.Grid
	bestN   int
}

func (d *dfsRun) solve(order []*grid.Slot, k int, g *grid.Grid) (*grid.Grid, bool) {
	if k == len(order) {
		return g, true
	}
	s := order[k]
	st := d.states[s.Key()]
	pattern := grid.Pattern(g, s)

	for _, cand := range st.Candidates {
		d.metrics.tick()
		if !patternConsistent(pattern, cand) {
			continue
		}

		placed, written := placeWord(g, s, cand)
		if !forwardCheck(placed, d.gph, d.states, s) {
			continue
		}

		if n := countFilled(placed, order); n > d.bestN {
			d.bestN = n
			d.best = placed
		}

		if next, ok := d.solve(order, k+1, placed); ok {
			return next, true
		}

		// placed is a copy-on-write snapshot built from g; backtracking
		// is simply continuing the loop against the untouched g, no
		// explicit undo needed. written is unused here; removeWord is the
		// undo for callers that need one.
		_ = written
	}
	return g, false
}

func statusFor(success bool) Status {
	if success {
		return StatusSuccess
	}
	return StatusPartial
}
