package dictionary

import "testing"

func buildTestIndex() *Index {
	entries := []*Entry{
		{Word: "CAT", Meanings: []Meaning{{Definition: "a small feline kept as a pet", SpeechPart: "noun"}}},
		{Word: "COT", Meanings: []Meaning{{Definition: "a small folding bed", SpeechPart: "noun"}}},
		{Word: "DOG", Meanings: []Meaning{{Definition: "a domesticated canine", SpeechPart: "noun"}}},
		{Word: "CAR", Meanings: []Meaning{{Definition: "a motor vehicle", SpeechPart: "noun"}}},
		{Word: "BAT", Meanings: []Meaning{{Definition: "a flying mammal", SpeechPart: "noun"}}},
	}
	return NewIndex(entries)
}

func TestIndex_Lookup(t *testing.T) {
	idx := buildTestIndex()
	if _, ok := idx.Lookup("cat"); !ok {
		t.Fatal("Lookup(cat) = not found, want found")
	}
	if _, ok := idx.Lookup("xyz"); ok {
		t.Fatal("Lookup(xyz) = found, want not found")
	}
}

func TestIndex_ByLength(t *testing.T) {
	idx := buildTestIndex()
	cands := idx.ByLength(3, 0)
	if len(cands) != 5 {
		t.Fatalf("ByLength(3, 0) returned %d candidates, want 5", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i-1].Score < cands[i].Score {
			t.Fatalf("ByLength results not sorted by descending score at index %d", i)
		}
	}
}

func TestIndex_ByLength_CappedDiversifiesByFirstLetter(t *testing.T) {
	idx := buildTestIndex()
	cands := idx.ByLength(3, 2)
	if len(cands) != 2 {
		t.Fatalf("ByLength(3, 2) returned %d candidates, want 2", len(cands))
	}
}

func TestIndex_ByPattern(t *testing.T) {
	idx := buildTestIndex()
	cands := idx.ByPattern("C.T", nil, 0)
	words := make(map[string]bool)
	for _, c := range cands {
		words[c.Word] = true
	}
	if !words["CAT"] || !words["COT"] {
		t.Fatalf("ByPattern(C.T) = %v, want CAT and COT", words)
	}
	if words["DOG"] || words["CAR"] {
		t.Fatalf("ByPattern(C.T) matched a non-conforming word: %v", words)
	}
}

func TestIndex_ByClue(t *testing.T) {
	idx := buildTestIndex()
	cands := idx.ByClue("small feline pet", 3, 3, 0)
	if len(cands) == 0 || cands[0].Word != "CAT" {
		t.Fatalf("ByClue(small feline pet) = %v, want CAT first", cands)
	}
}

func TestIndex_ByClue_NoTokensReturnsNil(t *testing.T) {
	idx := buildTestIndex()
	if got := idx.ByClue("a the to", 3, 3, 0); got != nil {
		t.Fatalf("ByClue with only stopwords = %v, want nil", got)
	}
}
