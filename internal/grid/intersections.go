package grid

// Intersection ties a position in one slot to the matching position
// in a crossing slot (spec.md §3 Intersection).
type Intersection struct {
	A      Key
	AIndex int
	B      Key
	BIndex int
}

// Graph is the undirected intersection graph over a set of slots:
// an edge per cell shared between an Across slot and a Down slot.
// Slot constraint degree is the number of incident edges (spec.md
// §3 Intersection Graph, §4.2).
type Graph struct {
	slots     map[Key]*Slot
	edges     map[Key][]Intersection
	crossedBy map[Key][]Key
}

type posEntry struct {
	key   Key
	index int
}

// BuildGraph collects, for every cell, the at-most-two slots
// containing it, and adds an undirected edge between each such pair
// (spec.md §4.2).
func BuildGraph(slots []*Slot) *Graph {
	g := &Graph{
		slots:     make(map[Key]*Slot, len(slots)),
		edges:     make(map[Key][]Intersection),
		crossedBy: make(map[Key][]Key),
	}

	posToSlots := make(map[[2]int][]posEntry)
	for _, s := range slots {
		g.slots[s.Key()] = s
		for i := 0; i < s.Length; i++ {
			x, y := s.Cell(i)
			posToSlots[[2]int{x, y}] = append(posToSlots[[2]int{x, y}], posEntry{key: s.Key(), index: i})
		}
	}

	for _, entries := range posToSlots {
		if len(entries) != 2 {
			continue
		}
		a, b := entries[0], entries[1]
		edge := Intersection{A: a.key, AIndex: a.index, B: b.key, BIndex: b.index}
		g.edges[a.key] = append(g.edges[a.key], edge)
		g.edges[b.key] = append(g.edges[b.key], edge)
		g.crossedBy[a.key] = append(g.crossedBy[a.key], b.key)
		g.crossedBy[b.key] = append(g.crossedBy[b.key], a.key)
	}

	return g
}

// Slot returns the slot identified by k, or nil.
func (g *Graph) Slot(k Key) *Slot {
	return g.slots[k]
}

// Degree returns the number of slots crossing k.
func (g *Graph) Degree(k Key) int {
	return len(g.edges[k])
}

// Crossing returns the keys of every slot crossing k.
func (g *Graph) Crossing(k Key) []Key {
	return g.crossedBy[k]
}

// Intersections returns the edges incident to k.
func (g *Graph) Intersections(k Key) []Intersection {
	return g.edges[k]
}
