package solver

import (
	"path/filepath"
	"testing"
)

func TestHistory_RecordAndSummarize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("OpenHistory() error = %v", err)
	}
	defer h.Close()

	success := Result{Status: StatusSuccess, WordsPlaced: 5, TotalWords: 5, Metrics: Metrics{ExecutionTimeSeconds: 0.1}}
	partial := Result{Status: StatusPartial, WordsPlaced: 3, TotalWords: 5, Metrics: Metrics{ExecutionTimeSeconds: 0.2}}

	if err := h.Record("dfs", success); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := h.Record("dfs", partial); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	summaries, err := h.Summarize()
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}
	s := summaries[0]
	if s.Variant != "dfs" || s.Runs != 2 {
		t.Fatalf("summary = %+v, want variant=dfs runs=2", s)
	}
	if s.SuccessRate != 0.5 {
		t.Fatalf("SuccessRate = %v, want 0.5", s.SuccessRate)
	}
}

func TestHistory_SummarizeEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("OpenHistory() error = %v", err)
	}
	defer h.Close()

	summaries, err := h.Summarize()
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("len(summaries) = %d, want 0", len(summaries))
	}
}
