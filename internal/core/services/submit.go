package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
	"github.com/ideaflux/ideaflux/internal/core/ports/driving"
	"github.com/ideaflux/ideaflux/internal/logger"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService persists accepted suggestions as proposals together
// with the submitter's initial vote. Missing summaries are generated on the
// way in.
type SubmissionService struct {
	store     driven.ProposalStore
	summaries driving.SummaryService
}

// NewSubmissionService creates a submission service. summaries may be nil,
// in which case proposals without a summary are stored without one.
func NewSubmissionService(store driven.ProposalStore, summaries driving.SummaryService) *SubmissionService {
	return &SubmissionService{
		store:     store,
		summaries: summaries,
	}
}

// SubmitSuggested validates, trims, and persists up to
// domain.MaxSuggestions entries. Invalid entries are filtered out, not
// fatal; zero valid entries is an error. Returns the created proposals.
func (s *SubmissionService) SubmitSuggested(ctx context.Context, projectID, userID string, entries []domain.SuggestedSubmission) ([]domain.Proposal, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if strings.TrimSpace(projectID) == "" || strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("project and user are required: %w", domain.ErrInvalidInput)
	}

	var prepared []domain.SuggestedSubmission
	for _, entry := range entries {
		entry = entry.Trimmed()
		if !entry.Submittable() {
			continue
		}
		prepared = append(prepared, entry)
		if len(prepared) == domain.MaxSuggestions {
			break
		}
	}
	if len(prepared) == 0 {
		return nil, fmt.Errorf("no submittable proposals: %w", domain.ErrInvalidInput)
	}

	created := make([]domain.Proposal, 0, len(prepared))
	for _, entry := range prepared {
		summary := entry.Summary
		if summary == "" && s.summaries != nil {
			summary = s.summaries.ProposalSummary(ctx, entry.Title, entry.Details)
		}

		proposal := domain.Proposal{
			ProjectID:   projectID,
			Title:       entry.Title,
			Description: entry.Details,
			Summary:     summary,
			AuthorID:    userID,
		}
		if err := s.store.InsertProposal(ctx, &proposal); err != nil {
			return created, fmt.Errorf("inserting proposal %q: %w", entry.Title, err)
		}

		vote := domain.Vote{ProposalID: proposal.ID, UserID: userID, Value: entry.Vote}
		if err := s.store.UpsertVote(ctx, vote); err != nil {
			return created, fmt.Errorf("recording vote for %q: %w", entry.Title, err)
		}

		logger.Debug("submitted suggested proposal %s (%q) with vote %+d", proposal.ID, entry.Title, entry.Vote)
		created = append(created, proposal)
	}

	return created, nil
}
