package priorities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tier
	}{
		{
			name: "jee advanced keyword",
			text: "Rotational dynamics problem - JEE Advanced 2019",
			want: TierJEEAdvanced,
		},
		{
			name: "jee adv abbreviation",
			text: "jee adv paper 2",
			want: TierJEEAdvanced,
		},
		{
			name: "bare advanced keyword",
			text: "Advanced level integration question",
			want: TierJEEAdvanced,
		},
		{
			name: "jee mains keyword",
			text: "Asked in JEE Mains January session",
			want: TierJEEMains,
		},
		{
			name: "bare mains keyword",
			text: "mains practice set",
			want: TierJEEMains,
		},
		{
			name: "ncert keyword",
			text: "NCERT Class 12 exercise 5.3",
			want: TierNCERT,
		},
		{
			name: "uppercase text classifies the same",
			text: "JEE ADVANCED MOCK TEST",
			want: TierJEEAdvanced,
		},
		{
			name: "no keywords falls through to plain",
			text: "A block slides down a frictionless incline",
			want: TierPlain,
		},
		{
			name: "empty text is plain",
			text: "",
			want: TierPlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Precedence is absolute: the first satisfied keyword group wins, regardless
// of how many later groups also match.
func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tier
	}{
		{
			name: "tier 1 beats tier 3",
			text: "JEE Advanced variant of NCERT example",
			want: TierJEEAdvanced,
		},
		{
			name: "tier 1 beats tier 2",
			text: "appeared in both jee mains and jee advanced",
			want: TierJEEAdvanced,
		},
		{
			name: "tier 2 beats tier 3",
			text: "NCERT-based question reused in JEE Mains",
			want: TierJEEMains,
		},
		{
			name: "all three present resolves to tier 1",
			text: "ncert mains advanced",
			want: TierJEEAdvanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestLabel_Bijection(t *testing.T) {
	want := map[Tier]string{
		TierJEEAdvanced: "JEE Advanced",
		TierJEEMains:    "JEE Mains",
		TierNCERT:       "NCERT",
		TierPlain:       "Plain/Other",
	}

	seen := make(map[string]bool)
	for _, tier := range Tiers() {
		label := tier.Label()
		assert.Equal(t, want[tier], label)
		assert.False(t, seen[label], "label %q assigned to more than one tier", label)
		seen[label] = true
	}
	assert.Len(t, seen, 4)
}

func TestTiers_Ascending(t *testing.T) {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		assert.Less(t, int(tiers[i-1]), int(tiers[i]))
	}
}

func TestLabel_UnknownTier(t *testing.T) {
	assert.Equal(t, "", Tier(0).Label())
	assert.Equal(t, "", Tier(5).Label())
}
