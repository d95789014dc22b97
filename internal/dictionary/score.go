package dictionary

import (
	"math"
	"strings"
)

// letterScores is the standard Scrabble-like per-letter value table
// (spec.md §4.1 Placement score; resolves the "two different
// letter-score tables" open question in spec.md §9 in favor of this
// single table).
var letterScores = map[rune]int{
	'E': 13, 'T': 12, 'A': 11, 'O': 10, 'I': 9, 'N': 8,
	'S': 7, 'H': 6, 'R': 5, 'D': 4, 'L': 3, 'C': 2,
	'U': 1, 'M': 1, 'W': 1, 'F': 1, 'G': 1, 'Y': 1,
	'P': 1, 'B': 1, 'V': 1, 'K': 1, 'J': 1, 'X': 1,
	'Q': 1, 'Z': 1,
}

func letterValue(r rune) int {
	return letterScores[r]
}

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// PlacementScore is the pure placement-quality score for word: the
// sum of per-letter values, +2 per interior vowel, -3 if the word's
// unique-letter count is below half its length, plus a rare-first-
// letter bonus of max(1, 10 - firstLetterFrequencyPct*0.5) floored,
// with the total clamped to at least 1 (spec.md §4.1).
func PlacementScore(word string, firstLetterFrequencyPct float64) int {
	runes := []rune(word)
	total := 0
	for _, r := range runes {
		total += letterValue(r)
	}

	for i, r := range runes {
		if i == 0 || i == len(runes)-1 {
			continue
		}
		if isVowel(r) {
			total += 2
		}
	}

	unique := make(map[rune]bool, len(runes))
	for _, r := range runes {
		unique[r] = true
	}
	if float64(len(unique)) < float64(len(runes))/2 {
		total -= 3
	}

	rarity := 10 - firstLetterFrequencyPct*0.5
	if rarity < 1 {
		rarity = 1
	}
	total += int(math.Floor(rarity))

	if total < 1 {
		total = 1
	}
	return total
}

// ClueRelevance scores meaning m against a set of already-tokenized,
// lower-cased clue tokens: 10 per token found in the definition, 5
// per token found in the example, +2 if the meaning is a noun
// (spec.md §4.1(c)).
func ClueRelevance(tokens []string, m Meaning) int {
	score := 0
	def := strings.ToLower(m.Definition)
	example := strings.ToLower(m.Example)

	for _, t := range tokens {
		if strings.Contains(def, t) {
			score += 10
		}
	}
	if example != "" {
		for _, t := range tokens {
			if strings.Contains(example, t) {
				score += 5
			}
		}
	}
	if strings.EqualFold(m.SpeechPart, "noun") {
		score += 2
	}
	return score
}
