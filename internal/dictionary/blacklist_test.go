package dictionary

import (
	"reflect"
	"testing"
)

func TestTokenize_DropsStopwordsAndShortTokens(t *testing.T) {
	got := Tokenize("a small feline kept as a pet, in the house")
	want := []string{"small", "feline", "kept", "pet", "house"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_EmptyClue(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestBlacklist_DoesNotCensorAnal(t *testing.T) {
	if blacklist["anal"] {
		t.Fatal(`blacklist["anal"] = true, want false: it is not a stopword`)
	}
}
