package mcp

import (
	"context"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// mockSimilarityService is a mock implementation of driving.SimilarityService.
type mockSimilarityService struct {
	matches []domain.SimilarityMatch

	lastProject  domain.ProjectContext
	lastDraft    domain.ProposalDraft
	lastExisting []domain.Proposal
}

func (m *mockSimilarityService) Assess(
	_ context.Context,
	project domain.ProjectContext,
	draft domain.ProposalDraft,
	existing []domain.Proposal,
) []domain.SimilarityMatch {
	m.lastProject = project
	m.lastDraft = draft
	m.lastExisting = existing
	return m.matches
}

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary string
	err     error

	lastTitle       string
	lastDescription string
	lastBudget      domain.SummaryBudget
}

func (m *mockSummaryService) Summarize(
	_ context.Context,
	title, description string,
	budget domain.SummaryBudget,
) string {
	m.lastTitle = title
	m.lastDescription = description
	m.lastBudget = budget
	return m.summary
}

func (m *mockSummaryService) ProposalSummary(_ context.Context, title, description string) string {
	m.lastTitle = title
	m.lastDescription = description
	return m.summary
}

func (m *mockSummaryService) SummarizeProject(_ context.Context, _ string) (string, error) {
	return m.summary, m.err
}

// mockSuggestionService is a mock implementation of driving.SuggestionService.
type mockSuggestionService struct {
	suggestions []domain.SuggestedProposal

	lastProject  domain.ProjectContext
	lastExisting []domain.Proposal
}

func (m *mockSuggestionService) Suggest(
	_ context.Context,
	project domain.ProjectContext,
	existing []domain.Proposal,
) []domain.SuggestedProposal {
	m.lastProject = project
	m.lastExisting = existing
	return m.suggestions
}

// testPorts returns a fully populated Ports with fresh mocks.
func testPorts() (*Ports, *mockSimilarityService, *mockSummaryService, *mockSuggestionService) {
	similarity := &mockSimilarityService{}
	summary := &mockSummaryService{}
	suggestion := &mockSuggestionService{}
	ports := &Ports{
		Similarity: similarity,
		Summary:    summary,
		Suggestion: suggestion,
	}
	return ports, similarity, summary, suggestion
}
