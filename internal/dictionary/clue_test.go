package dictionary

import "testing"

func TestExactClueToWord(t *testing.T) {
	idx := buildTestIndex()
	e, ok := idx.ExactClueToWord("a small feline kept as a pet")
	if !ok || e.Word != "CAT" {
		t.Fatalf("ExactClueToWord() = %v, %v, want CAT, true", e, ok)
	}
	if _, ok := idx.ExactClueToWord("nonexistent clue"); ok {
		t.Fatal("ExactClueToWord(nonexistent clue) = found, want not found")
	}
}

func TestClueForWord(t *testing.T) {
	idx := buildTestIndex()
	if got := idx.ClueForWord("cat"); got != "a small feline kept as a pet" {
		t.Fatalf("ClueForWord(cat) = %q, want the definition", got)
	}
	if got := idx.ClueForWord("zzz"); got != "(no clue available)" {
		t.Fatalf("ClueForWord(zzz) = %q, want placeholder", got)
	}
}

func TestVerifySolution(t *testing.T) {
	idx := buildTestIndex()
	k := Key{Number: 1, Direction: "across"}
	filled := map[Key]string{k: "CAT"}
	clues := map[Key]string{k: "a small feline kept as a pet"}

	if mismatches := idx.VerifySolution(filled, clues); len(mismatches) != 0 {
		t.Fatalf("VerifySolution() = %v, want no mismatches", mismatches)
	}

	filled[k] = "DOG"
	mismatches := idx.VerifySolution(filled, clues)
	if len(mismatches) != 1 || mismatches[0].Expected != "CAT" || mismatches[0].Got != "DOG" {
		t.Fatalf("VerifySolution() = %v, want one CAT/DOG mismatch", mismatches)
	}
}
