package grid

import "testing"

func gridFromRows(rows []string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '.' {
				g.Set(x, y, Empty)
			} else {
				g.Set(x, y, c)
			}
		}
	}
	return g
}

func TestEnumerateSlots_CatCot(t *testing.T) {
	// CAT across row 0, COT down col 0, sharing 'C'.
	g := gridFromRows([]string{
		"CAT",
		"O..",
		"T..",
	})

	slots := EnumerateSlots(g)

	var across, down []*Slot
	for _, s := range slots {
		if s.Direction == Across {
			across = append(across, s)
		} else {
			down = append(down, s)
		}
	}

	if len(across) != 1 || across[0].Length != 3 || across[0].X != 0 || across[0].Y != 0 {
		t.Fatalf("unexpected across slots: %+v", across)
	}
	if len(down) != 1 || down[0].Length != 3 || down[0].X != 0 || down[0].Y != 0 {
		t.Fatalf("unexpected down slots: %+v", down)
	}
	if across[0].Number != down[0].Number {
		t.Errorf("across and down sharing a start cell must share a number: %d != %d", across[0].Number, down[0].Number)
	}
}

func TestEnumerateSlots_MinimumLengthTwo(t *testing.T) {
	g := gridFromRows([]string{
		"A.B",
		"...",
	})
	slots := EnumerateSlots(g)
	if len(slots) != 0 {
		t.Fatalf("single-cell runs must not produce slots, got %+v", slots)
	}
}

func TestEnumerateSlots_Numbering(t *testing.T) {
	g := gridFromRows([]string{
		"AB",
		"CD",
	})
	slots := EnumerateSlots(g)
	seen := map[int]bool{}
	for _, s := range slots {
		seen[s.Number] = true
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one numbered slot")
	}
	for n := 1; n <= len(seen); n++ {
		if !seen[n] {
			t.Errorf("numbering is not a contiguous first-seen sequence: missing %d", n)
		}
	}
}

func TestPattern(t *testing.T) {
	g := gridFromRows([]string{
		"CAT",
	})
	slots := EnumerateSlots(g)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	// Blank the middle cell after enumeration: a row reading "C.T" has
	// no run of two non-Empty cells, so it would enumerate no slot.
	g.Set(1, 0, Empty)
	if got := Pattern(g, slots[0]); got != "C.T" {
		t.Errorf("Pattern() = %q, want %q", got, "C.T")
	}
}

func TestIsFilled(t *testing.T) {
	g := gridFromRows([]string{"CAT"})
	slots := EnumerateSlots(g)
	if !IsFilled(g, slots[0]) {
		t.Error("fully lettered slot should report filled")
	}
	g2 := gridFromRows([]string{"CAT"})
	slots2 := EnumerateSlots(g2)
	g2.Set(1, 0, Empty)
	if IsFilled(g2, slots2[0]) {
		t.Error("slot with an Empty cell must not report filled")
	}
}
