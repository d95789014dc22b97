package generator

import "math/rand"

const minWordsPerLetter = 3

// pickSeedWord selects the next seed word from pool, skipping words
// already in tried. The first pick (weighted=true) follows spec.md
// §4.3 step 2: partition the pool by first letter, weight-sample among
// letters with at least minWordsPerLetter candidates using the
// standard letter weights, then take that letter's highest-scoring
// word. Later picks (step 5's "varying the seed") simply advance to
// the next-highest-scoring untried candidate, since the rare-letter
// bonus is already folded into pool scores.
func pickSeedWord(pool []poolWord, tried map[string]bool, rng *rand.Rand, weighted bool) (poolWord, bool) {
	if !weighted {
		for _, p := range pool {
			if !tried[p.Word] {
				return p, true
			}
		}
		return poolWord{}, false
	}

	byLetter := make(map[byte][]poolWord)
	var letters []byte
	for _, p := range pool {
		if tried[p.Word] {
			continue
		}
		l := p.Word[0]
		if _, seen := byLetter[l]; !seen {
			letters = append(letters, l)
		}
		byLetter[l] = append(byLetter[l], p)
	}
	if len(letters) == 0 {
		return poolWord{}, false
	}

	var eligible []byte
	for _, l := range letters {
		if len(byLetter[l]) >= minWordsPerLetter {
			eligible = append(eligible, l)
		}
	}
	if len(eligible) == 0 {
		eligible = letters
	}

	total := 0.0
	for _, l := range eligible {
		total += weightFor(l)
	}
	r := rng.Float64() * total
	var chosen byte
	for _, l := range eligible {
		r -= weightFor(l)
		if r <= 0 {
			chosen = l
			break
		}
	}
	if chosen == 0 {
		chosen = eligible[len(eligible)-1]
	}

	bucket := byLetter[chosen]
	best := bucket[0]
	for _, p := range bucket[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best, true
}
