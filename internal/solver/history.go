package solver

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// History is a local sqlite-backed run log for the stats CLI
// subcommand, using plain database/sql queries with '?' placeholders.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if necessary) a sqlite database at path
// and ensures its schema exists.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open metrics db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS run_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			status TEXT NOT NULL,
			words_placed INTEGER NOT NULL,
			total_words INTEGER NOT NULL,
			execution_time_seconds REAL NOT NULL,
			peak_memory_kb REAL NOT NULL,
			fallback_usage_count INTEGER NOT NULL,
			mode_switches INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("init metrics schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}

// Record appends one completed run to the history table.
func (h *History) Record(variant string, res Result) error {
	_, err := h.db.Exec(`
		INSERT INTO run_history
			(variant, status, words_placed, total_words, execution_time_seconds, peak_memory_kb, fallback_usage_count, mode_switches)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		variant, string(res.Status), res.WordsPlaced, res.TotalWords,
		res.Metrics.ExecutionTimeSeconds, res.Metrics.PeakMemoryKB,
		res.Metrics.FallbackUsageCount, res.Metrics.ModeSwitches,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Summary aggregates run_history for the stats CLI subcommand.
type Summary struct {
	Variant         string
	Runs            int
	SuccessRate     float64
	AvgExecSeconds  float64
	AvgWordsPlaced  float64
	TotalFallbacks  int
	TotalModeSwitch int
}

// Summarize groups run_history rows by variant.
func (h *History) Summarize() ([]Summary, error) {
	rows, err := h.db.Query(`
		SELECT variant,
		       COUNT(*),
		       AVG(CASE WHEN status = 'success' THEN 1.0 ELSE 0.0 END),
		       AVG(execution_time_seconds),
		       AVG(words_placed),
		       SUM(fallback_usage_count),
		       SUM(mode_switches)
		FROM run_history
		GROUP BY variant
		ORDER BY variant
	`)
	if err != nil {
		return nil, fmt.Errorf("summarize runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Variant, &s.Runs, &s.SuccessRate, &s.AvgExecSeconds, &s.AvgWordsPlaced, &s.TotalFallbacks, &s.TotalModeSwitch); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
