// Package report derives the human-facing artifacts from resolver output:
// the per-identifier priority mapping, the consolidated report rows, and the
// per-tier distribution summary.
package report

import (
	"time"

	"github.com/qbankops/qdedup/internal/priorities"
	"github.com/qbankops/qdedup/internal/resolve"
)

// dateLayout is the processing-date format used in the consolidated report.
const dateLayout = "2006-01-02"

// MappingEntry pairs one selected question identifier with its priority tier
// and the tier's fixed display label.
type MappingEntry struct {
	QuestionID string
	Priority   priorities.Tier
	Label      string
}

// Row is a consolidated report row: one selection enriched with the tier
// label and the processing date.
type Row struct {
	Selection      resolve.Selection
	Label          string
	ProcessingDate string
}

// TierCount is one line of the priority distribution summary.
type TierCount struct {
	Tier  priorities.Tier
	Label string
	Count int
}

// BuildMapping produces one mapping entry per selection. Input is already
// unique by selected identifier, so the mapping is one-to-one with the
// selections and needs no further deduplication.
func BuildMapping(selections []resolve.Selection) []MappingEntry {
	mapping := make([]MappingEntry, 0, len(selections))
	for _, s := range selections {
		mapping = append(mapping, MappingEntry{
			QuestionID: s.SelectedID,
			Priority:   s.SelectedTier,
			Label:      s.SelectedTier.Label(),
		})
	}
	return mapping
}

// Consolidate copies each selection into a report row, attaching the tier
// label and the processing date. Inputs are not mutated.
func Consolidate(selections []resolve.Selection, processedAt time.Time) []Row {
	date := processedAt.Format(dateLayout)
	rows := make([]Row, 0, len(selections))
	for _, s := range selections {
		rows = append(rows, Row{
			Selection:      s,
			Label:          s.SelectedTier.Label(),
			ProcessingDate: date,
		})
	}
	return rows
}

// Distribution counts selections per tier, ascending by tier. Tiers with no
// selections are omitted.
func Distribution(selections []resolve.Selection) []TierCount {
	counts := make(map[priorities.Tier]int)
	for _, s := range selections {
		counts[s.SelectedTier]++
	}

	dist := make([]TierCount, 0, len(counts))
	for _, tier := range priorities.Tiers() {
		if counts[tier] == 0 {
			continue
		}
		dist = append(dist, TierCount{Tier: tier, Label: tier.Label(), Count: counts[tier]})
	}
	return dist
}
