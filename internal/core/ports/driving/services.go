// Package driving provides interfaces for application entry points (primary/inbound ports).
package driving

import (
	"context"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// SimilarityService grades how similar a draft proposal is to each existing
// proposal in a project. It always returns exactly one match per existing
// proposal, in input order: AI judgements where the model produced usable
// output, deterministic lexical scores otherwise. Expected failures
// (no provider, malformed model output) never surface as errors.
type SimilarityService interface {
	Assess(ctx context.Context, project domain.ProjectContext, draft domain.ProposalDraft, existing []domain.Proposal) []domain.SimilarityMatch
}

// SummaryService condenses title/description pairs into bounded summaries.
// A non-empty source always yields a summary: AI-generated when a provider
// responds, truncated raw text otherwise.
type SummaryService interface {
	// Summarize produces a summary within the given budget.
	// Returns "" only when both title and description are blank.
	Summarize(ctx context.Context, title, description string, budget domain.SummaryBudget) string

	// ProposalSummary summarizes a proposal for card previews.
	ProposalSummary(ctx context.Context, title, description string) string

	// SummarizeProject generates and persists a summary for a stored
	// project. An existing summary is kept as-is.
	SummarizeProject(ctx context.Context, projectID string) (string, error)
}

// SuggestionService generates up to domain.MaxSuggestions new proposal
// candidates from project context. There is no fallback generation: when the
// model is unavailable or returns unusable output, the list is empty and the
// caller surfaces "no suggestions".
type SuggestionService interface {
	Suggest(ctx context.Context, project domain.ProjectContext, existing []domain.Proposal) []domain.SuggestedProposal
}

// SubmissionService persists accepted suggestions as real proposals with the
// submitter's initial vote.
type SubmissionService interface {
	SubmitSuggested(ctx context.Context, projectID, userID string, entries []domain.SuggestedSubmission) ([]domain.Proposal, error)
}
