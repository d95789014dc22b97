package dictionary

import (
	"regexp"
	"strings"
)

// blacklist is the stopword/pronoun/short-function-word set a
// headword or clue token must not belong to (spec.md §3 DictionaryEntry
// invariant, §4.1(c) clue tokenization).
var blacklist = map[string]bool{
	"a": true, "i": true, "me": true, "my": true, "we": true, "us": true,
	"our": true, "you": true, "your": true, "he": true, "him": true,
	"his": true, "she": true, "her": true, "it": true, "its": true,
	"they": true, "them": true, "their": true, "this": true, "that": true,
	"these": true, "those": true, "am": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "being": true, "been": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "shall": true, "should": true,
	"may": true, "might": true, "must": true, "can": true, "could": true,
	"and": true, "but": true, "or": true, "nor": true, "for": true,
	"so": true, "yet": true, "as": true, "at": true, "by": true, "in": true,
	"of": true, "on": true, "to": true, "with": true, "from": true,
	"into": true, "about": true, "over": true, "the": true,
}

var tokenPattern = regexp.MustCompile(`[^\W_]+`)

// Tokenize splits clue on non-word characters, lower-cases the
// result, and drops stopword/blacklist tokens and tokens of length
// <= 1 (spec.md §4.1(c)).
func Tokenize(clue string) []string {
	words := tokenPattern.FindAllString(strings.ToLower(clue), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 1 || blacklist[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
