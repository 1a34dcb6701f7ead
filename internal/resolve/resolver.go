// Package resolve decides which side of each flagged duplicate-question pair
// survives as canonical.
//
// Pairs arrive pre-identified by an upstream duplicate-detection export; this
// package performs no similarity analysis of its own. For every pair it
// extracts both identifiers, classifies both sides into priority tiers, and
// selects the more urgent side (ties keep question_1). The accumulated
// selections are then deduplicated across the whole batch so each selected
// identifier appears at most once, keeping the earliest pair that produced it.
package resolve

import (
	"github.com/qbankops/qdedup/internal/extract"
	"github.com/qbankops/qdedup/internal/priorities"
)

// Side identifies which half of a duplicate pair was selected.
type Side string

const (
	SideQuestion1 Side = "question_1"
	SideQuestion2 Side = "question_2"
)

// Pair is one flagged duplicate: two free-text question fields believed to
// describe the same underlying question. Fields are read-only input and may
// be empty.
type Pair struct {
	Question1 string
	Question2 string
}

// Selection records the resolver's decision for one pair: which question
// survives as canonical, which is rejected, and the tiers that drove the
// choice. Identity within a batch is SelectedID.
type Selection struct {
	SelectedID   string
	RejectedID   string
	SelectedTier priorities.Tier
	RejectedTier priorities.Tier
	Chosen       Side
}

// Stats provides counts from one resolution run.
type Stats struct {
	// TotalPairs is the number of input pairs processed.
	TotalPairs int

	// Resolved is the number of selections surviving deduplication.
	Resolved int

	// Skipped is the number of pairs dropped because one or both sides
	// carried no extractable identifier. Skips are not errors; the
	// original export routinely contains unparseable rows.
	Skipped int

	// Discarded is the number of later selections dropped because an
	// earlier pair already selected the same identifier.
	Discarded int
}

// Resolve processes the pair batch in input order and returns the
// deduplicated selections together with run statistics.
//
// Pairs missing an identifier on either side contribute no output and raise
// no error. When both tiers are equal, question_1 is selected. Deduplication
// is first-seen-wins by selected identifier: a later pair proposing an
// already-selected identifier is discarded entirely, even if its rejected
// identifier or tiers differ.
func Resolve(pairs []Pair) ([]Selection, Stats) {
	stats := Stats{TotalPairs: len(pairs)}

	candidates := make([]Selection, 0, len(pairs))
	for _, p := range pairs {
		id1 := extract.QuestionID(p.Question1)
		id2 := extract.QuestionID(p.Question2)
		if id1 == "" || id2 == "" {
			stats.Skipped++
			continue
		}

		tier1 := priorities.Classify(p.Question1)
		tier2 := priorities.Classify(p.Question2)

		// Ties keep question_1.
		if tier1 <= tier2 {
			candidates = append(candidates, Selection{
				SelectedID:   id1,
				RejectedID:   id2,
				SelectedTier: tier1,
				RejectedTier: tier2,
				Chosen:       SideQuestion1,
			})
		} else {
			candidates = append(candidates, Selection{
				SelectedID:   id2,
				RejectedID:   id1,
				SelectedTier: tier2,
				RejectedTier: tier1,
				Chosen:       SideQuestion2,
			})
		}
	}

	// Ordered first-occurrence dedup. The seen-set filter preserves input
	// order so the surviving entry for an identifier is always the one from
	// the earliest pair.
	seen := make(map[string]bool, len(candidates))
	selections := make([]Selection, 0, len(candidates))
	for _, s := range candidates {
		if seen[s.SelectedID] {
			stats.Discarded++
			continue
		}
		seen[s.SelectedID] = true
		selections = append(selections, s)
	}

	stats.Resolved = len(selections)
	return selections, stats
}
