package config

import (
	"fmt"
	"os"
	"strconv"
)

// ResolutionConfig holds the file and run-history settings for the
// duplicate-resolution pipeline.
type ResolutionConfig struct {
	// InputPath is the source file used when none is given on the
	// command line.
	// Default: "Duplicate_Detection_Report.xlsx"
	InputPath string

	// OutputDir is where the three output artifacts are written.
	// Default: "." (current directory)
	OutputDir string

	// SelectionFile is the selection-results artifact filename.
	SelectionFile string

	// MappingFile is the priority-mapping artifact filename.
	MappingFile string

	// ReportFile is the consolidated-report artifact filename.
	ReportFile string

	// HistoryEnabled controls whether completed runs are recorded to the
	// run-history database. Recording failures never fail the run.
	// Default: true
	HistoryEnabled bool

	// HistoryPath is the SQLite database file for run history.
	// Default: ".qdedup/history.db"
	HistoryPath string
}

// DefaultResolutionConfig returns the default pipeline configuration.
// Artifact filenames match the original duplicate-detection report layout
// consumers already depend on.
func DefaultResolutionConfig() ResolutionConfig {
	return ResolutionConfig{
		InputPath:      "Duplicate_Detection_Report.xlsx",
		OutputDir:      ".",
		SelectionFile:  "final_selection_questions.csv",
		MappingFile:    "question_id_priority_mapping.csv",
		ReportFile:     "final_consolidated_question_report.csv",
		HistoryEnabled: true,
		HistoryPath:    ".qdedup/history.db",
	}
}

// LoadFromEnv returns the default configuration with any QDEDUP_*
// environment overrides applied.
//
// Supported variables:
//   - QDEDUP_INPUT: default source file path
//   - QDEDUP_OUTPUT_DIR: artifact output directory
//   - QDEDUP_HISTORY_DB: run-history database path
//   - QDEDUP_HISTORY: "true"/"false" to enable/disable run history
func LoadFromEnv() ResolutionConfig {
	cfg := DefaultResolutionConfig()

	if v := os.Getenv("QDEDUP_INPUT"); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv("QDEDUP_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("QDEDUP_HISTORY_DB"); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("QDEDUP_HISTORY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.HistoryEnabled = enabled
		}
	}

	return cfg
}

// Validate checks if the configuration has valid values.
func (c ResolutionConfig) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.SelectionFile == "" || c.MappingFile == "" || c.ReportFile == "" {
		return fmt.Errorf("artifact filenames must not be empty")
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		return fmt.Errorf("history database path must not be empty when history is enabled")
	}
	return nil
}
