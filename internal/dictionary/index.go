package dictionary

import (
	"sort"
	"strings"
)

// Index is the process-wide, immutable-after-load candidate index
// (spec.md §3 ownership, §4.1).
type Index struct {
	byWord   map[string]*Entry
	byLength map[int][]*Entry
	byLetter map[byte][]*Entry
	trie     *trie
}

// NewIndex builds an Index from a flat list of already-filtered
// entries, computing each entry's placement score from the observed
// first-letter frequency across the whole set.
func NewIndex(entries []*Entry) *Index {
	idx := &Index{
		byWord:   make(map[string]*Entry, len(entries)),
		byLength: make(map[int][]*Entry),
		byLetter: make(map[byte][]*Entry),
		trie:     newTrie(),
	}

	letterCounts := make(map[byte]int)
	for _, e := range entries {
		letterCounts[e.Word[0]]++
	}
	total := float64(len(entries))

	for _, e := range entries {
		freqPct := 0.0
		if total > 0 {
			freqPct = 100 * float64(letterCounts[e.Word[0]]) / total
		}
		e.Score = PlacementScore(e.Word, freqPct)

		idx.byWord[e.Word] = e
		idx.byLength[len(e.Word)] = append(idx.byLength[len(e.Word)], e)
		idx.byLetter[e.Word[0]] = append(idx.byLetter[e.Word[0]], e)
		idx.trie.insert(e)
	}

	for _, bucket := range idx.byLength {
		sortEntriesByScore(bucket)
	}
	for _, bucket := range idx.byLetter {
		sortEntriesByScore(bucket)
	}

	return idx
}

// Size returns the number of loaded headwords.
func (idx *Index) Size() int {
	return len(idx.byWord)
}

// Lookup returns the entry for an exact uppercase headword, if any.
func (idx *Index) Lookup(word string) (*Entry, bool) {
	e, ok := idx.byWord[strings.ToUpper(word)]
	return e, ok
}

func sortEntriesByScore(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Word < entries[j].Word
	})
}

func toCandidates(entries []*Entry) []Candidate {
	out := make([]Candidate, len(entries))
	for i, e := range entries {
		out[i] = Candidate{Word: e.Word, Score: e.Score}
	}
	return out
}

// ByLength returns up to max entries of exact length L ordered by
// descending placement score. When max is smaller than the available
// total, results are diversified by first letter: the bucket is
// partitioned by first letter, ceil(max/#letters) highest-scoring
// entries are taken from each bucket, and any shortfall is backfilled
// with the globally highest-scoring remaining entries (spec.md
// §4.1(a)).
func (idx *Index) ByLength(length, max int) []Candidate {
	all := idx.byLength[length]
	if max <= 0 || len(all) <= max {
		return toCandidates(all)
	}

	byFirstLetter := make(map[byte][]*Entry)
	var letters []byte
	for _, e := range all {
		l := e.Word[0]
		if _, seen := byFirstLetter[l]; !seen {
			letters = append(letters, l)
		}
		byFirstLetter[l] = append(byFirstLetter[l], e)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	perBucket := (max + len(letters) - 1) / len(letters)
	taken := make(map[*Entry]bool, max)
	var result []*Entry
	for _, l := range letters {
		bucket := byFirstLetter[l]
		n := perBucket
		if n > len(bucket) {
			n = len(bucket)
		}
		for i := 0; i < n; i++ {
			result = append(result, bucket[i])
			taken[bucket[i]] = true
		}
	}

	if len(result) < max {
		for _, e := range all {
			if len(result) >= max {
				break
			}
			if !taken[e] {
				result = append(result, e)
				taken[e] = true
			}
		}
	}

	sortEntriesByScore(result)
	if len(result) > max {
		result = result[:max]
	}
	return toCandidates(result)
}

// ByPattern returns up to max entries whose headword matches pattern
// (length implied by len(pattern); '.' matches any letter) and, when
// clueTokens is non-empty, whose definition contains at least one
// token (spec.md §4.1(b)).
func (idx *Index) ByPattern(pattern string, clueTokens []string, max int) []Candidate {
	matches := idx.trie.match(strings.ToUpper(pattern))

	if len(clueTokens) > 0 {
		filtered := matches[:0:0]
		for _, e := range matches {
			if entryMatchesAnyToken(e, clueTokens) {
				filtered = append(filtered, e)
			}
		}
		matches = filtered
	}

	sortEntriesByScore(matches)
	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	return toCandidates(matches)
}

func entryMatchesAnyToken(e *Entry, tokens []string) bool {
	for _, m := range e.Meanings {
		def := strings.ToLower(m.Definition)
		for _, t := range tokens {
			if strings.Contains(def, t) {
				return true
			}
		}
	}
	return false
}

// ByClue tokenizes clue, scores every entry whose length is in
// [minLen,maxLen] against the tokens (spec.md §4.1(c)), keeps the
// best-scoring meaning per headword, drops non-positive relevance,
// and returns up to max entries by descending relevance.
func (idx *Index) ByClue(clue string, minLen, maxLen, max int) []Candidate {
	tokens := Tokenize(clue)
	if len(tokens) == 0 {
		return nil
	}

	type scored struct {
		entry     *Entry
		relevance int
	}
	var best []scored

	for length := minLen; length <= maxLen; length++ {
		for _, e := range idx.byLength[length] {
			bestRelevance := 0
			for _, m := range e.Meanings {
				if r := ClueRelevance(tokens, m); r > bestRelevance {
					bestRelevance = r
				}
			}
			if bestRelevance > 0 {
				best = append(best, scored{entry: e, relevance: bestRelevance})
			}
		}
	}

	sort.SliceStable(best, func(i, j int) bool {
		if best[i].relevance != best[j].relevance {
			return best[i].relevance > best[j].relevance
		}
		return best[i].entry.Word < best[j].entry.Word
	})

	if max > 0 && len(best) > max {
		best = best[:max]
	}

	out := make([]Candidate, len(best))
	for i, s := range best {
		out[i] = Candidate{Word: s.entry.Word, Score: s.relevance}
	}
	return out
}
