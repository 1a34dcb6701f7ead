package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/qbankops/qdedup/internal/priorities"
)

// RunRecord captures one completed pipeline run as stored in the runs table.
type RunRecord struct {
	// ID is a unique run identifier (UUID).
	ID string

	// SourceFile is the input path the run processed.
	SourceFile string

	// TotalPairs, Resolved, Skipped and Discarded mirror the resolver's
	// run statistics.
	TotalPairs int
	Resolved   int
	Skipped    int
	Discarded  int

	// TierCounts is the number of surviving selections per priority tier.
	TierCounts map[priorities.Tier]int

	StartedAt  time.Time
	FinishedAt time.Time
}

// Store implements the run-history store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite run-history backend at path.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		// Ensure directory exists
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordRun persists one completed run.
func (s *Store) RecordRun(ctx context.Context, run *RunRecord) error {
	if run == nil {
		return fmt.Errorf("run record is nil")
	}
	if run.ID == "" {
		return fmt.Errorf("run record has no ID")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, source_file, total_pairs, resolved, skipped, discarded,
			jee_advanced, jee_mains, ncert, plain_other,
			started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID, run.SourceFile,
		run.TotalPairs, run.Resolved, run.Skipped, run.Discarded,
		run.TierCounts[priorities.TierJEEAdvanced],
		run.TierCounts[priorities.TierJEEMains],
		run.TierCounts[priorities.TierNCERT],
		run.TierCounts[priorities.TierPlain],
		run.StartedAt.UTC(), run.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// GetRecentRuns returns up to limit runs, most recent first.
func (s *Store) GetRecentRuns(ctx context.Context, limit int) ([]*RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_file, total_pairs, resolved, skipped, discarded,
		       jee_advanced, jee_mains, ncert, plain_other,
		       started_at, finished_at
		FROM runs
		ORDER BY finished_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		run := &RunRecord{TierCounts: make(map[priorities.Tier]int)}
		var advanced, mains, ncert, plain int
		if err := rows.Scan(
			&run.ID, &run.SourceFile,
			&run.TotalPairs, &run.Resolved, &run.Skipped, &run.Discarded,
			&advanced, &mains, &ncert, &plain,
			&run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.TierCounts[priorities.TierJEEAdvanced] = advanced
		run.TierCounts[priorities.TierJEEMains] = mains
		run.TierCounts[priorities.TierNCERT] = ncert
		run.TierCounts[priorities.TierPlain] = plain
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
