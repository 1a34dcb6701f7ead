package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultResolutionConfig(t *testing.T) {
	cfg := DefaultResolutionConfig()

	assert.Equal(t, "Duplicate_Detection_Report.xlsx", cfg.InputPath)
	assert.Equal(t, "final_selection_questions.csv", cfg.SelectionFile)
	assert.Equal(t, "question_id_priority_mapping.csv", cfg.MappingFile)
	assert.Equal(t, "final_consolidated_question_report.csv", cfg.ReportFile)
	assert.True(t, cfg.HistoryEnabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("QDEDUP_INPUT", "batch.csv")
	t.Setenv("QDEDUP_OUTPUT_DIR", "/tmp/out")
	t.Setenv("QDEDUP_HISTORY_DB", "/tmp/history.db")
	t.Setenv("QDEDUP_HISTORY", "false")

	cfg := LoadFromEnv()

	assert.Equal(t, "batch.csv", cfg.InputPath)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "/tmp/history.db", cfg.HistoryPath)
	assert.False(t, cfg.HistoryEnabled)
}

func TestLoadFromEnv_InvalidBoolIgnored(t *testing.T) {
	t.Setenv("QDEDUP_HISTORY", "sometimes")

	cfg := LoadFromEnv()
	assert.True(t, cfg.HistoryEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ResolutionConfig)
		shouldErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *ResolutionConfig) {},
		},
		{
			name:      "empty input path",
			mutate:    func(c *ResolutionConfig) { c.InputPath = "" },
			shouldErr: true,
		},
		{
			name:      "empty output dir",
			mutate:    func(c *ResolutionConfig) { c.OutputDir = "" },
			shouldErr: true,
		},
		{
			name:      "empty artifact filename",
			mutate:    func(c *ResolutionConfig) { c.MappingFile = "" },
			shouldErr: true,
		},
		{
			name:      "history enabled without path",
			mutate:    func(c *ResolutionConfig) { c.HistoryPath = "" },
			shouldErr: true,
		},
		{
			name: "history disabled without path is fine",
			mutate: func(c *ResolutionConfig) {
				c.HistoryEnabled = false
				c.HistoryPath = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultResolutionConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
