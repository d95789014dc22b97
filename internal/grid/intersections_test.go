package grid

import "testing"

func TestBuildGraph_CatCot(t *testing.T) {
	g := gridFromRows([]string{
		"CAT",
		"O..",
		"T..",
	})
	slots := EnumerateSlots(g)
	graph := BuildGraph(slots)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}

	across, down := slots[0], slots[1]
	if across.Direction != Across {
		across, down = slots[1], slots[0]
	}

	if graph.Degree(across.Key()) != 1 {
		t.Errorf("across slot degree = %d, want 1", graph.Degree(across.Key()))
	}
	crossing := graph.Crossing(across.Key())
	if len(crossing) != 1 || crossing[0] != down.Key() {
		t.Errorf("across slot should cross only the down slot, got %+v", crossing)
	}

	edges := graph.Intersections(across.Key())
	if len(edges) != 1 || edges[0].AIndex != 0 || edges[0].BIndex != 0 {
		t.Errorf("expected intersection at index 0 on both slots, got %+v", edges[0])
	}
}

func TestBuildGraph_NoCrossings(t *testing.T) {
	g := gridFromRows([]string{
		"AB",
	})
	slots := EnumerateSlots(g)
	graph := BuildGraph(slots)
	for _, s := range slots {
		if graph.Degree(s.Key()) != 0 {
			t.Errorf("isolated slot %+v should have degree 0, got %d", s, graph.Degree(s.Key()))
		}
	}
}
