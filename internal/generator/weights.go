package generator

// letterWeights is the starting-letter weight table used for
// weighted-random seed-letter selection (spec.md §4.3 step 2). spec.md
// §9 leaves the concrete numbers unspecified and notes they are not
// load-bearing for correctness; this table is an invented
// approximation of English letter frequency (vowels and common
// consonants weighted higher, rare letters lower), not a value pinned
// from any source file. Letters absent here get the default weight.
var letterWeights = map[byte]float64{
	'a': 8.2, 'b': 1.5, 'c': 2.8, 'd': 4.3, 'e': 12.7,
	'f': 2.2, 'g': 2.0, 'h': 6.1, 'i': 7.0, 'j': 0.15,
	'k': 0.77, 'l': 4.0, 'm': 2.4, 'n': 6.7, 'o': 7.5,
	'p': 1.9, 'q': 0.1, 'r': 6.0, 's': 6.3, 't': 9.1,
	'u': 2.8, 'v': 0.98, 'w': 2.4, 'x': 0.15, 'y': 2.0,
	'z': 0.07,
}

const defaultLetterWeight = 1.0

func weightFor(letter byte) float64 {
	if w, ok := letterWeights[letter]; ok {
		return w
	}
	return defaultLetterWeight
}
