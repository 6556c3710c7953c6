package cli

import (
	"context"

	"github.com/ideaflux/ideaflux/internal/adapters/driven/storage/memory"
	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// fakeSimilarityService returns canned matches.
type fakeSimilarityService struct {
	matches []domain.SimilarityMatch
}

func (f *fakeSimilarityService) Assess(_ context.Context, _ domain.ProjectContext, _ domain.ProposalDraft, _ []domain.Proposal) []domain.SimilarityMatch {
	return f.matches
}

// fakeSummaryService returns a canned summary.
type fakeSummaryService struct {
	summary string
	err     error
}

func (f *fakeSummaryService) Summarize(_ context.Context, _, _ string, _ domain.SummaryBudget) string {
	return f.summary
}

func (f *fakeSummaryService) ProposalSummary(_ context.Context, _, _ string) string {
	return f.summary
}

func (f *fakeSummaryService) SummarizeProject(_ context.Context, _ string) (string, error) {
	return f.summary, f.err
}

// fakeSuggestionService returns canned suggestions.
type fakeSuggestionService struct {
	suggestions []domain.SuggestedProposal
}

func (f *fakeSuggestionService) Suggest(_ context.Context, _ domain.ProjectContext, _ []domain.Proposal) []domain.SuggestedProposal {
	return f.suggestions
}

// fakeSubmissionService records the last submission.
type fakeSubmissionService struct {
	created []domain.Proposal
	err     error

	lastProjectID string
	lastUserID    string
	lastEntries   []domain.SuggestedSubmission
}

func (f *fakeSubmissionService) SubmitSuggested(_ context.Context, projectID, userID string, entries []domain.SuggestedSubmission) ([]domain.Proposal, error) {
	f.lastProjectID = projectID
	f.lastUserID = userID
	f.lastEntries = entries
	return f.created, f.err
}

// setupTestServices swaps the command dependencies with fakes backed by an
// in-memory store seeded with one project and two proposals. The returned
// cleanup restores the previous wiring.
func setupTestServices() func() {
	prevStore := proposalStore
	prevSimilarity := similarityService
	prevSummary := summaryService
	prevSuggestion := suggestionService
	prevSubmission := submissionService

	store := memory.NewProposalStore()
	store.SeedProject(domain.Project{
		ID:          "proj-1",
		Title:       "Team rituals",
		Description: "Ways to keep the team in sync.",
	})
	store.InsertProposal(context.Background(), &domain.Proposal{ //nolint:errcheck
		ID:        "p1",
		ProjectID: "proj-1",
		Title:     "Weekly demo day",
		Summary:   "Show work every Friday.",
	})
	store.InsertProposal(context.Background(), &domain.Proposal{ //nolint:errcheck
		ID:        "p2",
		ProjectID: "proj-1",
		Title:     "Dark mode",
	})

	proposalStore = store
	similarityService = &fakeSimilarityService{matches: []domain.SimilarityMatch{
		{ID: "p1", Similarity: 85, Explanation: "Both propose weekly demos."},
		{ID: "p2", Similarity: 0, Explanation: "No clear overlap identified."},
	}}
	summaryService = &fakeSummaryService{summary: "A short summary."}
	suggestionService = &fakeSuggestionService{suggestions: []domain.SuggestedProposal{
		{Title: "Retro roulette", Details: "## Plan", Summary: "Rotate retro formats."},
	}}
	submissionService = &fakeSubmissionService{created: []domain.Proposal{
		{ID: "new-1", ProjectID: "proj-1", Title: "Retro roulette"},
	}}

	return func() {
		proposalStore = prevStore
		similarityService = prevSimilarity
		summaryService = prevSummary
		suggestionService = prevSuggestion
		submissionService = prevSubmission
	}
}
