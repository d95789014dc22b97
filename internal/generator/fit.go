package generator

import "github.com/crossplay/xword/internal/grid"

// placement is a candidate location found by enumerateLegalPlacements.
type placement struct {
	X, Y int
	Dir  grid.Direction
}

// fits implements spec.md §4.3's fit test for word at origin (x,y)
// direction dir on g. hasAnyPlaced is false only for the very first
// word on the grid, which is exempt from rule (e).
func fits(g *grid.Grid, word string, x, y int, dir grid.Direction, hasAnyPlaced bool) bool {
	l := len(word)
	dx, dy := 1, 0
	if dir == grid.Down {
		dx, dy = 0, 1
	}

	endX, endY := x+dx*(l-1), y+dy*(l-1)
	if !g.InBounds(x, y) || !g.InBounds(endX, endY) {
		return false
	}

	hasIntersection := false
	for i, r := range word {
		cx, cy := x+dx*i, y+dy*i
		cell := g.At(cx, cy)

		switch {
		case cell == grid.Empty:
			px, py, qx, qy := cx+dy, cy+dx, cx-dy, cy-dx
			if g.InBounds(px, py) && g.At(px, py) != grid.Empty {
				return false
			}
			if g.InBounds(qx, qy) && g.At(qx, qy) != grid.Empty {
				return false
			}
		case cell == r:
			hasIntersection = true
		default:
			return false
		}
	}

	beforeX, beforeY := x-dx, y-dy
	if g.InBounds(beforeX, beforeY) && g.At(beforeX, beforeY) != grid.Empty {
		return false
	}
	afterX, afterY := endX+dx, endY+dy
	if g.InBounds(afterX, afterY) && g.At(afterX, afterY) != grid.Empty {
		return false
	}

	if hasAnyPlaced && !hasIntersection {
		return false
	}
	return true
}

// enumerateLegalPlacements scans every origin and orientation on g for
// legal placements of word (spec.md §4.3 step 4).
func enumerateLegalPlacements(g *grid.Grid, word string) []placement {
	var out []placement
	for _, dir := range []grid.Direction{grid.Across, grid.Down} {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if fits(g, word, x, y, dir, true) {
					out = append(out, placement{X: x, Y: y, Dir: dir})
				}
			}
		}
	}
	return out
}

func place(g *grid.Grid, word string, p placement) *grid.Grid {
	dx, dy := 1, 0
	if p.Dir == grid.Down {
		dx, dy = 0, 1
	}
	cur := g
	for i, r := range word {
		cur = cur.WithCellWritten(p.X+dx*i, p.Y+dy*i, r)
	}
	return cur
}
