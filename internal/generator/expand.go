package generator

import (
	"math/rand"

	"github.com/crossplay/xword/internal/grid"
)

// expand implements spec.md §4.3 step 4: repeatedly place the
// best-fitting remaining pool word until a full pass places nothing,
// or the pass/iteration caps are hit. Returns the resulting grid and
// the number of words placed beyond the seed.
func expand(g *grid.Grid, pool []poolWord, used map[string]bool, cfg Config, rng *rand.Rand) (*grid.Grid, int) {
	main := make([]poolWord, 0, len(pool))
	for _, p := range pool {
		if !used[p.Word] {
			main = append(main, p)
		}
	}
	var retry []poolWord

	placedCount := 0
	totalIterations := 0
	centerX, centerY := g.Width/2, g.Height/2

	for totalIterations < cfg.MaxExpandPasses {
		totalIterations++
		madeProgress := false

		perPass := 0
		i := 0
		for i < len(main) && perPass < cfg.MaxPerPassCands {
			perPass++
			cand := main[i]
			i++

			if used[cand.Word] {
				continue
			}

			placements := enumerateLegalPlacements(g, cand.Word)
			if len(placements) == 0 {
				retry = append(retry, cand)
				continue
			}

			best := placements[0]
			bestPotential := placementPotential(g, cand, best, centerX, centerY)
			for _, p := range placements[1:] {
				pot := placementPotential(g, cand, p, centerX, centerY)
				if pot > bestPotential {
					bestPotential = pot
					best = p
				}
			}

			g = place(g, cand.Word, best)
			used[cand.Word] = true
			placedCount++
			madeProgress = true
		}

		main = main[i:]
		if len(main) == 0 {
			if len(retry) == 0 {
				break
			}
			main, retry = retry, nil
		}
		if !madeProgress && len(retry) == 0 {
			break
		}
	}

	return g, placedCount
}

// placementPotential implements spec.md §4.3 step 4's potential
// formula.
func placementPotential(g *grid.Grid, cand poolWord, p placement, centerX, centerY int) int {
	dx, dy := 1, 0
	if p.Dir == grid.Down {
		dx, dy = 0, 1
	}

	perpEmpty := 0
	reusedLetters := 0
	l := len(cand.Word)
	for i, r := range cand.Word {
		cx, cy := p.X+dx*i, p.Y+dy*i
		if g.At(cx, cy) != grid.Empty {
			reusedLetters++
			continue
		}
		px, py, qx, qy := cx+dy, cy+dx, cx-dy, cy-dx
		if g.InBounds(px, py) && g.At(px, py) == grid.Empty {
			perpEmpty++
		}
		if g.InBounds(qx, qy) && g.At(qx, qy) == grid.Empty {
			perpEmpty++
		}
	}

	endX, endY := p.X+dx*(l-1), p.Y+dy*(l-1)
	midX, midY := (p.X+endX)/2, (p.Y+endY)/2
	dist := abs(midX-centerX) + abs(midY-centerY)
	proximity := 0
	if d := 10 - dist; d > 0 {
		proximity = d / 2
	}

	return perpEmpty + proximity + 2*reusedLetters + cand.Score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
