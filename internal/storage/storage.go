// Package storage records completed pipeline runs for later inspection.
//
// Run history is a convenience, not part of the resolution contract: the
// pipeline treats recording failures as warnings and never aborts a run
// because history could not be written.
package storage

import (
	"context"

	"github.com/qbankops/qdedup/internal/storage/sqlite"
)

// RunRecord captures one completed pipeline run.
type RunRecord = sqlite.RunRecord

// RunStore defines the interface for run-history backends.
type RunStore interface {
	// RecordRun persists one completed run.
	RecordRun(ctx context.Context, run *RunRecord) error

	// GetRecentRuns returns up to limit runs, most recent first.
	GetRecentRuns(ctx context.Context, limit int) ([]*RunRecord, error)

	// Lifecycle
	Close() error
}

// Config holds run-history database configuration.
type Config struct {
	// Path is the SQLite database file path.
	// Default: ".qdedup/history.db"
	// Special value ":memory:" creates an in-memory database (useful for tests)
	Path string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Path: ".qdedup/history.db",
	}
}

// NewStore creates a new SQLite run-history backend.
// The ctx parameter is currently unused but kept for API consistency.
func NewStore(ctx context.Context, cfg *Config) (RunStore, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Path == "" {
		cfg.Path = ".qdedup/history.db"
	}
	return sqlite.New(cfg.Path)
}
