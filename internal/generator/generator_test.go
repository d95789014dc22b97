package generator

import (
	"testing"

	"github.com/crossplay/xword/internal/dictionary"
	"github.com/crossplay/xword/internal/grid"
)

type fakeDict struct {
	byLen map[int][]dictionary.Candidate
}

func (f *fakeDict) ByLength(length, max int) []dictionary.Candidate {
	words := f.byLen[length]
	if max > 0 && len(words) > max {
		words = words[:max]
	}
	return words
}

func newFakeDict() *fakeDict {
	return &fakeDict{byLen: map[int][]dictionary.Candidate{
		3: {{Word: "CAT", Score: 10}, {Word: "DOG", Score: 9}, {Word: "RAT", Score: 8}, {Word: "SUN", Score: 7}},
		4: {{Word: "COAT", Score: 12}, {Word: "GOAT", Score: 11}, {Word: "ROAD", Score: 10}},
		5: {{Word: "CRANE", Score: 15}, {Word: "TOAST", Score: 14}},
	}}
}

func TestPlaceSeedCentered(t *testing.T) {
	g := placeSeedCentered(7, 7, "CRANE", grid.Across)
	if g == nil {
		t.Fatal("expected a grid")
	}
	word := ""
	for x := 1; x <= 5; x++ {
		word += string(g.At(x, 3))
	}
	if word != "CRANE" {
		t.Fatalf("expected CRANE centered on row 3, got %q", word)
	}
}

func TestGenerateProducesNonEmptyGrid(t *testing.T) {
	idx := newFakeDict()
	res, err := Generate(idx, Config{Width: 5, Height: 5, Difficulty: Medium, Seed: 1})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Grid == nil {
		t.Fatal("expected a grid")
	}
	if res.WordCount < 1 {
		t.Fatalf("expected at least the seed word placed, got %d", res.WordCount)
	}
	if res.Density <= 0 {
		t.Fatalf("expected positive density, got %f", res.Density)
	}
}

func TestGenerateNoSeedAvailable(t *testing.T) {
	idx := &fakeDict{byLen: map[int][]dictionary.Candidate{}}
	_, err := Generate(idx, Config{Width: 5, Height: 5, Difficulty: Medium, Seed: 1})
	if err != ErrNoSeedAvailable {
		t.Fatalf("expected ErrNoSeedAvailable, got %v", err)
	}
}

// TestGenerate_Deterministic covers spec.md §8 P7: the same dictionary,
// config, and seed must reproduce the identical grid, word count, and
// density across separate calls.
func TestGenerate_Deterministic(t *testing.T) {
	idx := newFakeDict()
	cfg := Config{Width: 5, Height: 5, Difficulty: Medium, Seed: 42}

	res1, err := Generate(idx, cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	res2, err := Generate(idx, cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if res1.Grid.String() != res2.Grid.String() {
		t.Fatalf("expected identical grids for the same seed:\n%s\nvs\n%s", res1.Grid.String(), res2.Grid.String())
	}
	if res1.WordCount != res2.WordCount || res1.Density != res2.Density {
		t.Fatalf("expected identical word count/density for the same seed, got %d/%f vs %d/%f", res1.WordCount, res1.Density, res2.WordCount, res2.Density)
	}
}

// TestGenerateSlotsMatchPlacedGrid covers spec.md §8 R3: EnumerateSlots
// run against the generator's own output must agree with the slots it
// reports, and every reported slot must be fully filled.
func TestGenerateSlotsMatchPlacedGrid(t *testing.T) {
	idx := newFakeDict()
	res, err := Generate(idx, Config{Width: 5, Height: 5, Difficulty: Medium, Seed: 3})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for _, s := range res.Slots {
		if !grid.IsFilled(res.Grid, s) {
			t.Fatalf("slot %d %s is not fully filled in the generated grid", s.Number, s.Direction)
		}
	}

	reEnumerated := grid.EnumerateSlots(res.Grid)
	if len(reEnumerated) != len(res.Slots) {
		t.Fatalf("expected EnumerateSlots to agree with Result.Slots, got %d vs %d", len(reEnumerated), len(res.Slots))
	}
}
