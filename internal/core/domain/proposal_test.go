package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposalDraftNormalize(t *testing.T) {
	draft := ProposalDraft{Title: "Improve onboarding"}
	assert.Equal(t, NewProposalID, draft.Normalize().ID)

	draft = ProposalDraft{ID: "  ", Title: "Improve onboarding"}
	assert.Equal(t, NewProposalID, draft.Normalize().ID)

	draft = ProposalDraft{ID: "p-1", Title: "Improve onboarding"}
	assert.Equal(t, "p-1", draft.Normalize().ID)
}

func TestClampSimilarity(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"above range", 150, 100},
		{"below range", -20, 0},
		{"in range", 42.5, 42.5},
		{"lower bound", 0, 0},
		{"upper bound", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSimilarity(tt.in))
		})
	}
}

func TestVoteValid(t *testing.T) {
	assert.True(t, Vote{Value: 1}.Valid())
	assert.True(t, Vote{Value: -1}.Valid())
	assert.False(t, Vote{Value: 0}.Valid())
	assert.False(t, Vote{Value: 2}.Valid())
}

func TestSuggestedProposalComplete(t *testing.T) {
	full := SuggestedProposal{Title: "t", Details: "d", Summary: "s"}
	assert.True(t, full.Complete())

	missing := SuggestedProposal{Title: "t", Summary: "s"}
	assert.False(t, missing.Complete())
}

func TestSuggestedSubmissionSubmittable(t *testing.T) {
	ok := SuggestedSubmission{Title: "t", Details: "d", Vote: 1}
	assert.True(t, ok.Submittable())

	assert.False(t, SuggestedSubmission{Title: "t", Details: "d", Vote: 0}.Submittable())
	assert.False(t, SuggestedSubmission{Title: "", Details: "d", Vote: 1}.Submittable())

	padded := SuggestedSubmission{Title: "  t  ", Details: " d ", Vote: -1}.Trimmed()
	assert.Equal(t, "t", padded.Title)
	assert.Equal(t, "d", padded.Details)
	assert.True(t, padded.Submittable())
}

func TestLocaleExplanations(t *testing.T) {
	assert.Equal(t, "Similar content based on shared keywords.", LocaleEnglish.KeywordMatchExplanation())
	assert.Equal(t, "No clear overlap identified.", LocaleEnglish.NoOverlapExplanation())

	assert.Equal(t, "Conținut similar identificat pe cuvinte cheie.", LocaleRomanian.KeywordMatchExplanation())
	assert.Equal(t, "Nu a fost identificată o suprapunere clară.", Locale("ro-RO").NoOverlapExplanation())

	assert.Equal(t, DefaultLocale, Locale("").OrDefault())
	assert.Equal(t, Locale("de"), Locale("de").OrDefault())
	// Unknown locales fall back to English strings.
	assert.Equal(t, LocaleEnglish.NoOverlapExplanation(), Locale("de").NoOverlapExplanation())
}
