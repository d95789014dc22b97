// Package store persists generated puzzles and solve results, the
// same connection and schema-initialization idiom internal/db used
// for the multiplayer app's Postgres tables, repurposed here for the
// core domain's own records.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/google/uuid"

	"github.com/crossplay/xword/internal/generator"
	"github.com/crossplay/xword/internal/output"
	"github.com/crossplay/xword/internal/solver"
)

// PuzzleStore persists generated puzzles and recorded solve attempts.
type PuzzleStore struct {
	db *sql.DB
}

// NewPuzzleStore opens a connection pool against postgresURL and
// ensures the schema exists.
func NewPuzzleStore(postgresURL string) (*PuzzleStore, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := &PuzzleStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PuzzleStore) Close() error { return s.db.Close() }

func (s *PuzzleStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generated_puzzles (
		id VARCHAR(36) PRIMARY KEY,
		size INTEGER NOT NULL,
		difficulty VARCHAR(20) NOT NULL,
		density FLOAT NOT NULL,
		word_count INTEGER NOT NULL,
		fallback BOOLEAN NOT NULL,
		grid JSONB NOT NULL,
		clues JSONB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS solve_results (
		id VARCHAR(36) PRIMARY KEY,
		puzzle_id VARCHAR(36) REFERENCES generated_puzzles(id) ON DELETE SET NULL,
		status VARCHAR(20) NOT NULL,
		words_placed INTEGER NOT NULL,
		total_words INTEGER NOT NULL,
		metrics JSONB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_solve_results_puzzle_id ON solve_results(puzzle_id);
	`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SavePuzzle persists a generated puzzle and returns its assigned ID.
func (s *PuzzleStore) SavePuzzle(size int, difficulty generator.Difficulty, res *output.GenerateResult) (string, error) {
	id := uuid.NewString()

	grid, err := json.Marshal(res.Grid)
	if err != nil {
		return "", fmt.Errorf("marshal grid: %w", err)
	}
	clues, err := json.Marshal(res.Clues)
	if err != nil {
		return "", fmt.Errorf("marshal clues: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO generated_puzzles (id, size, difficulty, density, word_count, fallback, grid, clues)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, size, string(difficulty), res.Stats.Density, res.Stats.WordCount, !res.Success, grid, clues,
	)
	if err != nil {
		return "", fmt.Errorf("insert puzzle: %w", err)
	}
	return id, nil
}

// SaveSolveResult persists a completed solve attempt, optionally
// associated with a previously-saved puzzle.
func (s *PuzzleStore) SaveSolveResult(puzzleID string, res solver.Result) error {
	metrics, err := json.Marshal(res.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	var puzzleIDArg interface{}
	if puzzleID != "" {
		puzzleIDArg = puzzleID
	}

	_, err = s.db.Exec(
		`INSERT INTO solve_results (id, puzzle_id, status, words_placed, total_words, metrics)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), puzzleIDArg, string(res.Status), res.WordsPlaced, res.TotalWords, metrics,
	)
	if err != nil {
		return fmt.Errorf("insert solve result: %w", err)
	}
	return nil
}
