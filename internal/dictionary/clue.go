package dictionary

import (
	"sort"
	"strings"
)

// ExactClueToWord returns the first entry, in alphabetical headword
// order for determinism, whose meaning definition equals clue
// case-insensitively (spec.md §4.1 Auxiliary exact-clue-lookup).
func (idx *Index) ExactClueToWord(clue string) (*Entry, bool) {
	words := make([]string, 0, len(idx.byWord))
	for w := range idx.byWord {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		e := idx.byWord[w]
		for _, m := range e.Meanings {
			if strings.EqualFold(m.Definition, clue) {
				return e, true
			}
		}
	}
	return nil, false
}

// ClueForWord returns the first meaning's definition for word, or a
// placeholder when the word is unknown or has no meanings (spec.md
// §4.1 Auxiliary clue-for-word).
func (idx *Index) ClueForWord(word string) string {
	e, ok := idx.Lookup(word)
	if !ok || len(e.Meanings) == 0 {
		return "(no clue available)"
	}
	return e.Meanings[0].Definition
}

// Mismatch describes a slot whose placed letters don't match the
// dictionary headword its clue names.
type Mismatch struct {
	Number    int
	Direction string
	Expected  string
	Got       string
}

// VerifySolution checks that every (word, clue) pair in filled
// actually names a dictionary entry whose definition is the given
// clue. This is a direct extension of ExactClueToWord/ClueForWord
// (both named by spec.md §4.1) rather than new dictionary semantics;
// it is not itself part of the solver contract. A pair whose clue
// equals no dictionary definition is not checked and yields no
// Mismatch.
func (idx *Index) VerifySolution(filled map[Key]string, clues map[Key]string) []Mismatch {
	var mismatches []Mismatch
	for k, word := range filled {
		clue, hasClue := clues[k]
		if !hasClue || clue == "" {
			continue
		}
		entry, ok := idx.ExactClueToWord(clue)
		if !ok {
			continue
		}
		if entry.Word != strings.ToUpper(word) {
			mismatches = append(mismatches, Mismatch{
				Number:    k.Number,
				Direction: k.Direction,
				Expected:  entry.Word,
				Got:       strings.ToUpper(word),
			})
		}
	}
	return mismatches
}

// Key identifies a slot by (number, direction-name) for the purposes
// of VerifySolution, decoupled from the grid package to avoid an
// import cycle; callers build it from a slot number and the
// direction's String() name ("across"/"down").
type Key struct {
	Number    int
	Direction string
}
