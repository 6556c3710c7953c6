package driven

import (
	"context"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// ProposalStore is the persistence collaborator for projects, proposals,
// and votes. The AI pipeline itself never reads or writes storage; only the
// caller-side services (submission, stored-project summaries) go through
// this port.
type ProposalStore interface {
	// SaveProject stores or updates a project.
	SaveProject(ctx context.Context, p domain.Project) error

	// GetProject retrieves a project by ID.
	// Returns domain.ErrNotFound when it does not exist.
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProposals returns all proposals for a project, oldest first.
	ListProposals(ctx context.Context, projectID string) ([]domain.Proposal, error)

	// InsertProposal persists a new proposal. When p.ID is empty the store
	// assigns one and writes it back.
	InsertProposal(ctx context.Context, p *domain.Proposal) error

	// UpdateProjectSummary stores a generated summary on the project.
	UpdateProjectSummary(ctx context.Context, projectID, summary string) error

	// UpdateProposalSummary stores a generated summary on the proposal.
	UpdateProposalSummary(ctx context.Context, proposalID, summary string) error

	// UpsertVote records a user's vote, replacing any previous vote by the
	// same user on the same proposal.
	UpsertVote(ctx context.Context, v domain.Vote) error

	// Close releases resources.
	Close() error
}
