package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbankops/qdedup/internal/priorities"
	"github.com/qbankops/qdedup/internal/resolve"
)

func sampleSelections() []resolve.Selection {
	return []resolve.Selection{
		{
			SelectedID:   "aaaaaaaaaaaaaaaaaaaaaaaa",
			RejectedID:   "bbbbbbbbbbbbbbbbbbbbbbbb",
			SelectedTier: priorities.TierJEEAdvanced,
			RejectedTier: priorities.TierNCERT,
			Chosen:       resolve.SideQuestion1,
		},
		{
			SelectedID:   "cccccccccccccccccccccccc",
			RejectedID:   "dddddddddddddddddddddddd",
			SelectedTier: priorities.TierJEEMains,
			RejectedTier: priorities.TierJEEMains,
			Chosen:       resolve.SideQuestion1,
		},
		{
			SelectedID:   "eeeeeeeeeeeeeeeeeeeeeeee",
			RejectedID:   "ffffffffffffffffffffffff",
			SelectedTier: priorities.TierJEEMains,
			RejectedTier: priorities.TierPlain,
			Chosen:       resolve.SideQuestion2,
		},
	}
}

func TestBuildMapping(t *testing.T) {
	mapping := BuildMapping(sampleSelections())

	require.Len(t, mapping, 3)
	assert.Equal(t, MappingEntry{
		QuestionID: "aaaaaaaaaaaaaaaaaaaaaaaa",
		Priority:   priorities.TierJEEAdvanced,
		Label:      "JEE Advanced",
	}, mapping[0])
	assert.Equal(t, MappingEntry{
		QuestionID: "cccccccccccccccccccccccc",
		Priority:   priorities.TierJEEMains,
		Label:      "JEE Mains",
	}, mapping[1])
}

func TestBuildMapping_Empty(t *testing.T) {
	assert.Empty(t, BuildMapping(nil))
}

func TestConsolidate(t *testing.T) {
	selections := sampleSelections()
	processedAt := time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC)

	rows := Consolidate(selections, processedAt)

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, selections[i], row.Selection)
		assert.Equal(t, "2026-08-27", row.ProcessingDate)
	}
	assert.Equal(t, "JEE Advanced", rows[0].Label)
	assert.Equal(t, "JEE Mains", rows[1].Label)
	assert.Equal(t, "JEE Mains", rows[2].Label)
}

func TestDistribution(t *testing.T) {
	dist := Distribution(sampleSelections())

	assert.Equal(t, []TierCount{
		{Tier: priorities.TierJEEAdvanced, Label: "JEE Advanced", Count: 1},
		{Tier: priorities.TierJEEMains, Label: "JEE Mains", Count: 2},
	}, dist)
}

func TestDistribution_OmitsEmptyTiers(t *testing.T) {
	dist := Distribution([]resolve.Selection{
		{SelectedID: "aaaaaaaaaaaaaaaaaaaaaaaa", SelectedTier: priorities.TierPlain},
	})

	require.Len(t, dist, 1)
	assert.Equal(t, priorities.TierPlain, dist[0].Tier)
	assert.Equal(t, "Plain/Other", dist[0].Label)
}

func TestDistribution_Empty(t *testing.T) {
	assert.Empty(t, Distribution(nil))
}
