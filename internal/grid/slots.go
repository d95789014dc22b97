package grid

// Slot is a maximal horizontal or vertical run of non-Empty cell
// positions of length >= 2, numbered by the standard crossword
// numbering rule (spec.md §3 Slot, §4.2).
type Slot struct {
	Number    int
	Direction Direction
	X, Y      int // origin
	Length    int

	// Clue text, optional expected answer, and optional answer-derived
	// metadata are solving-side attributes; left zero-value for slots
	// enumerated purely from a grid (generation side).
	Clue   string
	Answer string
}

// Key identifies a slot independent of its position, per the "value
// records keyed by (number, direction)" modeling note in spec.md §9.
type Key struct {
	Number    int
	Direction Direction
}

// Key returns s's identity key.
func (s *Slot) Key() Key {
	return Key{Number: s.Number, Direction: s.Direction}
}

// Cell returns the (x,y) of the i-th character of s.
func (s *Slot) Cell(i int) (int, int) {
	if s.Direction == Across {
		return s.X + i, s.Y
	}
	return s.X, s.Y + i
}

// InBounds reports whether every cell of s lies within g. A clue whose
// offset or length doesn't fit the grid (spec.md §7 InvalidInput) fails
// this check before it ever reaches a placement operation.
func (s *Slot) InBounds(g *Grid) bool {
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		if !g.InBounds(x, y) {
			return false
		}
	}
	return true
}

// EnumerateSlots scans g in row-major order and returns every Across
// and Down slot together with standard crossword numbering: a cell is
// a slot start for a direction when the cell behind it (west for
// Across, north for Down) is Empty or out of bounds and at least one
// cell ahead is non-Empty; numbers are assigned in first-seen order,
// shared between an Across and Down slot starting at the same cell
// (spec.md §4.2 steps 1-3).
func EnumerateSlots(g *Grid) []*Slot {
	numberAt := make(map[[2]int]int)
	next := 1

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == Empty {
				continue
			}
			startsAcross := (x == 0 || g.At(x-1, y) == Empty) && g.At(x+1, y) != Empty
			startsDown := (y == 0 || g.At(x, y-1) == Empty) && g.At(x, y+1) != Empty
			if startsAcross || startsDown {
				numberAt[[2]int{x, y}] = next
				next++
			}
		}
	}

	var slots []*Slot

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == Empty {
				continue
			}
			if x == 0 || g.At(x-1, y) == Empty {
				length := 0
				for g.At(x+length, y) != Empty {
					length++
				}
				if length >= 2 {
					slots = append(slots, &Slot{
						Number:    numberAt[[2]int{x, y}],
						Direction: Across,
						X:         x,
						Y:         y,
						Length:    length,
					})
				}
			}
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == Empty {
				continue
			}
			if y == 0 || g.At(x, y-1) == Empty {
				length := 0
				for g.At(x, y+length) != Empty {
					length++
				}
				if length >= 2 {
					slots = append(slots, &Slot{
						Number:    numberAt[[2]int{x, y}],
						Direction: Down,
						X:         x,
						Y:         y,
						Length:    length,
					})
				}
			}
		}
	}

	return slots
}

// Pattern returns the string of current cell contents along s, with
// Empty rendered as '.' (spec.md §4.4 step 3).
func Pattern(g *Grid, s *Slot) string {
	buf := make([]byte, s.Length)
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		c := g.At(x, y)
		if c == Empty {
			buf[i] = '.'
		} else {
			buf[i] = byte(c)
		}
	}
	return string(buf)
}

// IsFilled reports whether every cell along s is non-Empty (spec.md
// §4.4 step 7).
func IsFilled(g *Grid, s *Slot) bool {
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		if g.At(x, y) == Empty {
			return false
		}
	}
	return true
}
