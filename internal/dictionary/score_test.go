package dictionary

import "testing"

func TestPlacementScore_ClampedToAtLeastOne(t *testing.T) {
	if got := PlacementScore("Q", 100); got < 1 {
		t.Errorf("PlacementScore() = %d, want >= 1", got)
	}
}

func TestPlacementScore_InteriorVowelBonus(t *testing.T) {
	withVowel := PlacementScore("CAT", 10)
	// Remove the interior vowel's contribution by comparing to a word
	// of identical letter-sum but no interior vowel isn't trivial to
	// construct; instead assert the documented shape directly.
	noBonusBase := letterValue('C') + letterValue('A') + letterValue('T')
	rarity := 10 - 10*0.5
	want := noBonusBase + 2 + int(rarity) // 'A' is interior and a vowel
	if withVowel != want {
		t.Errorf("PlacementScore(CAT) = %d, want %d", withVowel, want)
	}
}

func TestPlacementScore_RepeatedLetterPenalty(t *testing.T) {
	// "ABABA" has 2 unique letters over length 5: 2 < 5/2 triggers -3.
	got := PlacementScore("ABABA", 0)
	sum := letterValue('A')*3 + letterValue('B')*2
	// interior letters (indices 1..3): B,A,B -> B not vowel, A vowel(+2), B not vowel
	want := sum + 2 - 3 + 10 // rarity bonus floor(10-0)=10 at freq 0
	if got != want {
		t.Errorf("PlacementScore(ABABA) = %d, want %d", got, want)
	}
}

func TestClueRelevance(t *testing.T) {
	m := Meaning{Definition: "small feline kept as a pet", SpeechPart: "noun", Example: "the cat sat"}
	tokens := []string{"feline", "pet"}
	got := ClueRelevance(tokens, m)
	want := 10 + 10 + 2 // two definition matches, no example match, noun bonus
	if got != want {
		t.Errorf("ClueRelevance() = %d, want %d", got, want)
	}
}

func TestClueRelevance_ExampleMatch(t *testing.T) {
	m := Meaning{Definition: "irrelevant", SpeechPart: "verb", Example: "a quick brown fox"}
	got := ClueRelevance([]string{"fox"}, m)
	if got != 5 {
		t.Errorf("ClueRelevance() = %d, want 5", got)
	}
}
