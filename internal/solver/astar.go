package solver

import (
	"container/heap"
	"crypto/sha1"
	"fmt"

	"github.com/crossplay/xword/internal/grid"
)

const (
	cUnfilled            = 10
	cEmpty               = 1
	defaultAStarBudget   = 8000
	defaultBeamWidth     = 5
	hybridSwitchFraction = 0.7
)

// astarState is one node of the A* search (spec.md §4.6): an immutable
// grid snapshot, the set of slots already filled, and the g/h/f
// bookkeeping the open set orders on.
type astarState struct {
	grid   *grid.Grid
	filled map[grid.Key]bool
	g      int
	h      int
	seq    int // insertion order, breaks f ties deterministically
}

func (s *astarState) f() int { return s.g + s.h }

func stateHash(g *grid.Grid, filled map[grid.Key]bool) string {
	h := sha1.New()
	fmt.Fprint(h, g.String())
	keys := make([]grid.Key, 0, len(filled))
	for k := range filled {
		keys = append(keys, k)
	}
	fmt.Fprint(h, keys)
	return string(h.Sum(nil))
}

// heuristic implements spec.md §4.6's admissible lower bound.
func heuristic(g *grid.Grid, slots []*grid.Slot, gph *grid.Graph, filled map[grid.Key]bool) int {
	unfilled := 0
	emptyCells := 0
	degreeSum := 0
	seenEmpty := make(map[[2]int]bool)

	for _, s := range slots {
		if filled[s.Key()] {
			continue
		}
		unfilled++
		degreeSum += gph.Degree(s.Key())
		for i := 0; i < s.Length; i++ {
			x, y := s.Cell(i)
			if g.At(x, y) == grid.Empty && !seenEmpty[[2]int{x, y}] {
				seenEmpty[[2]int{x, y}] = true
				emptyCells++
			}
		}
	}

	h := unfilled*cUnfilled + emptyCells*cEmpty + degreeSum/2
	if h < 0 {
		h = 0
	}
	return h
}

type openSet []*astarState

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f() != o[j].f() {
		return o[i].f() < o[j].f()
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*astarState)) }
func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}

// pickNextSlot implements A*'s most-constrained-variable choice: fewest
// pattern-consistent candidates given the current snapshot, ties broken
// by highest constraint degree (spec.md §4.6 Expansion).
func pickNextSlot(g *grid.Grid, slots []*grid.Slot, states map[grid.Key]*slotState, gph *grid.Graph, filled map[grid.Key]bool) (*grid.Slot, []string) {
	var best *grid.Slot
	var bestCands []string
	bestCount := -1
	bestDegree := -1

	for _, s := range slots {
		if filled[s.Key()] {
			continue
		}
		pattern := grid.Pattern(g, s)
		var cands []string
		for _, c := range states[s.Key()].Candidates {
			if patternConsistent(pattern, c) {
				cands = append(cands, c)
			}
		}
		degree := gph.Degree(s.Key())
		if best == nil || len(cands) < bestCount || (len(cands) == bestCount && degree > bestDegree) {
			best, bestCands, bestCount, bestDegree = s, cands, len(cands), degree
		}
	}
	return best, bestCands
}

// SolveAStar implements spec.md §4.6 in full, aborting at budget and
// returning the best (maximum filled) state seen, marked partial.
func SolveAStar(dict Dictionary, in Input, budget int) Result {
	if budget <= 0 {
		budget = defaultAStarBudget
	}
	m := newRunMetrics()
	slots, malformed := collectSlots(in, m)
	gph := grid.BuildGraph(slots)
	states := buildSlotStates(dict, in.Grid, slots, m)

	start := &astarState{grid: in.Grid, filled: map[grid.Key]bool{}, g: 0}
	start.h = heuristic(start.grid, slots, gph, start.filled)

	result, _ := runAStar(dict, slots, gph, states, start, budget, m, nil)
	allSlots := append([]*grid.Slot(nil), slots...)
	result.TotalWords = len(allSlots) + malformed
	if malformed > 0 {
		result.Status = StatusPartial
	}
	return result
}

// runAStar drives the open set to success, budget exhaustion, or
// (when beamWidth is non-nil) a Hybrid-style early stop, returning the
// final Result plus the committed state for the Hybrid caller.
func runAStar(dict Dictionary, slots []*grid.Slot, gph *grid.Graph, states map[grid.Key]*slotState, start *astarState, budget int, m *runMetrics, beamWidth *int) (Result, *astarState) {
	open := &openSet{start}
	heap.Init(open)
	closed := make(map[string]bool)
	seq := 1

	best := start
	iterations := 0

	for open.Len() > 0 {
		if iterations >= budget {
			break
		}
		iterations++
		m.tick()

		cur := heap.Pop(open).(*astarState)
		key := stateHash(cur.grid, cur.filled)
		if closed[key] {
			continue
		}
		closed[key] = true

		if len(cur.filled) > len(best.filled) {
			best = cur
		}
		if len(cur.filled) == len(slots) {
			return Result{Status: StatusSuccess, Grid: cur.grid, WordsPlaced: len(cur.filled), Metrics: m.finish()}, cur
		}

		if beamWidth != nil {
			progress := float64(len(cur.filled)) / float64(len(slots))
			if progress > hybridSwitchFraction && open.Len() == 0 {
				return Result{Status: StatusPartial, Grid: cur.grid, WordsPlaced: len(cur.filled), Metrics: m.finish()}, cur
			}
		}

		slot, cands := pickNextSlot(cur.grid, slots, states, gph, cur.filled)
		if slot == nil || len(cands) == 0 {
			continue
		}

		for _, cand := range cands {
			placed, _ := placeWord(cur.grid, slot, cand)
			if !forwardCheck(placed, gph, states, slot) {
				continue
			}
			childFilled := make(map[grid.Key]bool, len(cur.filled)+1)
			for k := range cur.filled {
				childFilled[k] = true
			}
			childFilled[slot.Key()] = true

			child := &astarState{grid: placed, filled: childFilled, g: cur.g + 1, seq: seq}
			seq++
			child.h = heuristic(placed, slots, gph, childFilled)

			if closed[stateHash(child.grid, child.filled)] {
				continue
			}
			heap.Push(open, child)
		}

		if beamWidth != nil && open.Len() > *beamWidth {
			trimOpenSet(open, *beamWidth)
		}
	}

	return Result{Status: StatusPartial, Grid: best.grid, WordsPlaced: len(best.filled), Metrics: m.finish()}, best
}

// trimOpenSet implements Hybrid Phase 1's beam truncation: keep only
// the beamWidth lowest-f states.
func trimOpenSet(open *openSet, beamWidth int) {
	all := []*astarState(*open)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].f() < all[i].f() {
				all[i], all[j] = all[j], all[i]
			}
		}
	}
	if len(all) > beamWidth {
		all = all[:beamWidth]
	}
	*open = all
	heap.Init(open)
}
