package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaflux/ideaflux/internal/adapters/driven/storage/memory"
	"github.com/ideaflux/ideaflux/internal/core/domain"
)

func TestSubmitSuggestedPersistsProposalAndVote(t *testing.T) {
	store := memory.NewProposalStore()
	summaries := NewSummaryService(&fakeCompleter{}, domain.LocaleEnglish, store)
	svc := NewSubmissionService(store, summaries)

	entries := []domain.SuggestedSubmission{
		{Title: "Weekly demo day", Details: "Run a demo every Friday.", Summary: "Demos on Fridays.", Vote: 1},
	}

	created, err := svc.SubmitSuggested(context.Background(), "proj-1", "user@example.com", entries)
	require.NoError(t, err)
	require.Len(t, created, 1)

	assert.NotEmpty(t, created[0].ID)
	assert.Equal(t, "proj-1", created[0].ProjectID)
	assert.Equal(t, "Demos on Fridays.", created[0].Summary)

	stored, err := store.ListProposals(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	votes := store.Votes(created[0].ID)
	require.Len(t, votes, 1)
	assert.Equal(t, 1, votes[0].Value)
	assert.Equal(t, "user@example.com", votes[0].UserID)
}

func TestSubmitSuggestedGeneratesMissingSummary(t *testing.T) {
	store := memory.NewProposalStore()
	// Provider down: summary falls back to truncated details.
	summaries := NewSummaryService(&fakeCompleter{}, domain.LocaleEnglish, store)
	svc := NewSubmissionService(store, summaries)

	entries := []domain.SuggestedSubmission{
		{Title: "Add search", Details: "Full text search over proposals.", Vote: -1},
	}

	created, err := svc.SubmitSuggested(context.Background(), "proj-1", "u1", entries)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Full text search over proposals.", created[0].Summary)
}

func TestSubmitSuggestedFiltersInvalidEntries(t *testing.T) {
	store := memory.NewProposalStore()
	svc := NewSubmissionService(store, nil)

	entries := []domain.SuggestedSubmission{
		{Title: "", Details: "no title", Vote: 1},
		{Title: "no vote", Details: "d", Vote: 0},
		{Title: "  valid  ", Details: " d ", Vote: -1},
	}

	created, err := svc.SubmitSuggested(context.Background(), "proj-1", "u1", entries)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "valid", created[0].Title)
}

func TestSubmitSuggestedCapsAtThree(t *testing.T) {
	store := memory.NewProposalStore()
	svc := NewSubmissionService(store, nil)

	var entries []domain.SuggestedSubmission
	for i := 0; i < 5; i++ {
		entries = append(entries, domain.SuggestedSubmission{Title: "t", Details: "d", Summary: "s", Vote: 1})
	}

	created, err := svc.SubmitSuggested(context.Background(), "proj-1", "u1", entries)
	require.NoError(t, err)
	assert.Len(t, created, domain.MaxSuggestions)
}

func TestSubmitSuggestedRejectsEmptyBatch(t *testing.T) {
	svc := NewSubmissionService(memory.NewProposalStore(), nil)

	_, err := svc.SubmitSuggested(context.Background(), "proj-1", "u1", []domain.SuggestedSubmission{
		{Title: "", Details: "", Vote: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SubmitSuggested(context.Background(), "", "u1", []domain.SuggestedSubmission{
		{Title: "t", Details: "d", Vote: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitSuggestedWithoutStore(t *testing.T) {
	svc := NewSubmissionService(nil, nil)

	_, err := svc.SubmitSuggested(context.Background(), "proj-1", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
