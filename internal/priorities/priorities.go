// Package priorities classifies question text into an ordinal urgency tier.
//
// Tiers are totally ordered: lower values are more urgent. Tier 1 questions
// (JEE Advanced) always beat tier 3 questions (NCERT) when a duplicate pair
// is resolved. Classification is keyword-based and deterministic.
package priorities

import "strings"

// Tier is the ordinal urgency classification for a question.
// 1 is the most urgent, 4 the least.
type Tier int

const (
	TierJEEAdvanced Tier = 1
	TierJEEMains    Tier = 2
	TierNCERT       Tier = 3
	TierPlain       Tier = 4
)

// labels is the fixed tier-to-display-label table. It is initialized once
// and never mutated or reconfigured at runtime.
var labels = map[Tier]string{
	TierJEEAdvanced: "JEE Advanced",
	TierJEEMains:    "JEE Mains",
	TierNCERT:       "NCERT",
	TierPlain:       "Plain/Other",
}

// keywordGroups are tested in strict precedence order. The first group with
// any keyword contained in the text decides the tier; later groups are not
// consulted even if their keywords also appear.
var keywordGroups = []struct {
	tier     Tier
	keywords []string
}{
	{TierJEEAdvanced, []string{"jee advanced", "jee adv", "advanced"}},
	{TierJEEMains, []string{"jee main", "jee mains", "mains"}},
	{TierNCERT, []string{"ncert"}},
}

// Classify maps question text to a priority tier.
//
// Matching is case-insensitive substring containment, not scoring: text
// containing both a tier-1 and a tier-3 keyword classifies as tier 1.
// Empty text and text with no keywords fall through to TierPlain.
// Classification never fails.
func Classify(text string) Tier {
	if text == "" {
		return TierPlain
	}
	lower := strings.ToLower(text)
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.tier
			}
		}
	}
	return TierPlain
}

// Label returns the fixed display label for the tier, or the empty string
// for values outside 1-4.
func (t Tier) Label() string {
	return labels[t]
}

// Tiers returns all tiers in ascending order (most to least urgent).
func Tiers() []Tier {
	return []Tier{TierJEEAdvanced, TierJEEMains, TierNCERT, TierPlain}
}
