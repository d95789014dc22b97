// Package generator implements the constructive crossword generator:
// seed placement, fit testing, best-fit expansion, and difficulty-band
// retries (spec.md §4.3).
package generator

import (
	"errors"
	"math/rand"

	"github.com/crossplay/xword/internal/dictionary"
	"github.com/crossplay/xword/internal/grid"
)

// Difficulty selects a target density band (spec.md §4.3 step 6).
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type densityBand struct{ min, max float64 }

var bands = map[Difficulty]densityBand{
	Easy:   {min: 0.35, max: 0.50},
	Medium: {min: 0.60, max: 0.69},
	Hard:   {min: 0.80, max: 1.00},
}

// ErrNoSeedAvailable is spec.md §7's NoSeedAvailable: the candidate
// pool has no fitting words for the requested size.
var ErrNoSeedAvailable = errors.New("no seed word available for requested grid size")

// Dictionary is the subset of *dictionary.Index the generator needs,
// named here so the generator can be tested against a fake and so
// internal/dictionary.CachingIndex (or any other decorator) can stand
// in for the plain index transparently.
type Dictionary interface {
	ByLength(length, max int) []dictionary.Candidate
}

// Config parameterizes a single generate() call (spec.md §4.3).
type Config struct {
	Width, Height int
	Difficulty    Difficulty
	Seed          int64

	// Tunables, zero uses the spec-documented default.
	OuterAttempts    int // default 10 (step 5)
	DensityRetries   int // default 15 (step 6)
	MaxExpandPasses  int // default 50 (step 4)
	MaxPerPassCands  int // default 100 (step 4)
	PoolWordsPerSize int // default 40

	// OnAttempt, if set, is called once per density-band retry
	// (spec.md §4.3 step 6) so a caller can drive a progress display.
	OnAttempt func()
}

func (c Config) withDefaults() Config {
	if c.OuterAttempts == 0 {
		c.OuterAttempts = 10
	}
	if c.DensityRetries == 0 {
		c.DensityRetries = 15
	}
	if c.MaxExpandPasses == 0 {
		c.MaxExpandPasses = 50
	}
	if c.MaxPerPassCands == 0 {
		c.MaxPerPassCands = 100
	}
	if c.PoolWordsPerSize == 0 {
		c.PoolWordsPerSize = 40
	}
	return c
}

// Result is the generator's output: a puzzle grid plus the bookkeeping
// the §6 Generation output and §8 properties need.
type Result struct {
	Grid      *grid.Grid
	Slots     []*grid.Slot
	WordCount int
	Density   float64
	Fallback  bool
}

// Generate runs the full algorithm of spec.md §4.3: builds a candidate
// pool, seeds and expands up to OuterAttempts times per attempt,
// retries up to DensityRetries times seeking the requested difficulty
// band, and falls back to the densest puzzle seen if no attempt lands
// in band.
func Generate(idx Dictionary, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	band, ok := bands[cfg.Difficulty]
	if !ok {
		band = bands[Medium]
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	var fallback *Result
	for attempt := 0; attempt < cfg.DensityRetries; attempt++ {
		if cfg.OnAttempt != nil {
			cfg.OnAttempt()
		}
		res, err := generateOnce(idx, cfg, rng)
		if err != nil {
			continue
		}
		if fallback == nil || res.Density > fallback.Density {
			fallback = res
		}
		if res.Density >= band.min && res.Density <= band.max {
			res.Slots = grid.EnumerateSlots(res.Grid)
			return res, nil
		}
	}

	if fallback == nil {
		return nil, ErrNoSeedAvailable
	}
	fallback.Fallback = true
	fallback.Slots = grid.EnumerateSlots(fallback.Grid)
	return fallback, nil
}

// generateOnce runs steps 1-5 of spec.md §4.3 once: build the pool,
// then try up to cfg.OuterAttempts seeds (and both orientations of
// each), keeping the attempt that places the most words.
func generateOnce(idx Dictionary, cfg Config, rng *rand.Rand) (*Result, error) {
	pool := buildPool(idx, cfg.Width, cfg.PoolWordsPerSize, rng)
	if len(pool) == 0 {
		return nil, ErrNoSeedAvailable
	}

	var best *Result
	tried := make(map[string]bool)

	for k := 0; k < cfg.OuterAttempts; k++ {
		seed, ok := pickSeedWord(pool, tried, rng, k == 0)
		if !ok {
			break
		}
		tried[seed.Word] = true

		for _, dir := range []grid.Direction{grid.Across, grid.Down} {
			g := placeSeedCentered(cfg.Width, cfg.Height, seed.Word, dir)
			if g == nil {
				continue
			}
			used := map[string]bool{seed.Word: true}
			expanded, count := expand(g, pool, used, cfg, rng)
			res := &Result{Grid: expanded, WordCount: count + 1, Density: expanded.Density()}
			if best == nil || res.WordCount > best.WordCount {
				best = res
			}
		}
	}

	if best == nil {
		return nil, ErrNoSeedAvailable
	}
	return best, nil
}

func placeSeedCentered(width, height int, word string, dir grid.Direction) *grid.Grid {
	g := grid.NewGrid(width, height)
	l := len(word)
	if l > width && dir == grid.Across {
		return nil
	}
	if l > height && dir == grid.Down {
		return nil
	}

	var x, y int
	if dir == grid.Across {
		x, y = (width-l)/2, height/2
	} else {
		x, y = width/2, (height-l)/2
	}

	for i, r := range word {
		cx, cy := x, y
		if dir == grid.Across {
			cx += i
		} else {
			cy += i
		}
		g.Set(cx, cy, r)
	}
	return g
}
