package generator

import (
	"math/rand"
	"strings"
)

// poolWord is one candidate drawn into the generator's working pool,
// carrying the dictionary score plus the rare-letter bonus applied at
// pool-build time (spec.md §4.3 step 1).
type poolWord struct {
	Word  string
	Score int
}

const rareLetterBonus = 5

var rareLetters = map[byte]bool{'Q': true, 'Z': true, 'X': true, 'J': true, 'K': true, 'V': true}

// buildPool mixes candidate words across several lengths near the
// requested width so both across and down slots of varying size have
// material to draw on (spec.md §4.3 step 1): W itself (unclamped),
// plus W-2, W+2, 0.7W and 1.3W each clamped to [3,12], deduplicated.
func buildPool(idx Dictionary, width, perSize int, rng *rand.Rand) []poolWord {
	lengths := candidateLengths(width)

	seen := make(map[string]bool)
	var pool []poolWord
	for _, l := range lengths {
		for _, c := range idx.ByLength(l, perSize) {
			w := strings.ToUpper(c.Word)
			if seen[w] {
				continue
			}
			seen[w] = true

			score := c.Score
			if rareLetters[w[0]] {
				score += rareLetterBonus
			}
			pool = append(pool, poolWord{Word: w, Score: score})
		}
	}

	// Jitter the sort so pools of equal-scoring words don't always
	// expand in the same dictionary order across generator runs.
	jitter := make(map[string]float64, len(pool))
	for _, p := range pool {
		jitter[p.Word] = rng.Float64()
	}
	sortPoolByScore(pool, jitter)

	return pool
}

func candidateLengths(width int) []int {
	clamp := func(n int) int {
		if n < 3 {
			return 3
		}
		if n > 12 {
			return 12
		}
		return n
	}

	raw := []int{
		width,
		clamp(width - 2),
		clamp(width + 2),
		clamp(int(float64(width) * 0.7)),
		clamp(int(float64(width) * 1.3)),
	}

	seen := make(map[int]bool)
	var out []int
	for _, l := range raw {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

func sortPoolByScore(pool []poolWord, jitter map[string]float64) {
	less := func(i, j int) bool {
		si := float64(pool[i].Score) + jitter[pool[i].Word]
		sj := float64(pool[j].Score) + jitter[pool[j].Word]
		return si > sj
	}
	insertionSort(pool, less)
}

func insertionSort(pool []poolWord, less func(i, j int) bool) {
	for i := 1; i < len(pool); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			pool[j], pool[j-1] = pool[j-1], pool[j]
		}
	}
}
