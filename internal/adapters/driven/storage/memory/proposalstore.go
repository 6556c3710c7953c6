// Package memory provides in-memory driven-port implementations for tests
// and ephemeral runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
)

// Ensure ProposalStore implements the interface.
var _ driven.ProposalStore = (*ProposalStore)(nil)

// ProposalStore is an in-memory implementation of driven.ProposalStore.
type ProposalStore struct {
	mu        sync.RWMutex
	projects  map[string]domain.Project
	proposals map[string]domain.Proposal
	votes     map[string]domain.Vote // keyed by proposalID+"\x00"+userID
	order     []string               // proposal insertion order
}

// NewProposalStore creates an empty in-memory proposal store.
func NewProposalStore() *ProposalStore {
	return &ProposalStore{
		projects:  make(map[string]domain.Project),
		proposals: make(map[string]domain.Proposal),
		votes:     make(map[string]domain.Vote),
	}
}

// SeedProject inserts a project directly, for test setup.
func (s *ProposalStore) SeedProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p
}

// SaveProject stores or updates a project.
func (s *ProposalStore) SaveProject(_ context.Context, p domain.Project) error {
	if p.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.projects[p.ID] = p
	return nil
}

// GetProject retrieves a project by ID.
func (s *ProposalStore) GetProject(_ context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// ListProposals returns all proposals for a project in insertion order.
func (s *ProposalStore) ListProposals(_ context.Context, projectID string) ([]domain.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Proposal
	for _, id := range s.order {
		if p := s.proposals[id]; p.ProjectID == projectID {
			result = append(result, p)
		}
	}
	return result, nil
}

// InsertProposal persists a new proposal, assigning an ID when absent.
func (s *ProposalStore) InsertProposal(_ context.Context, p *domain.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, exists := s.proposals[p.ID]; exists {
		return domain.ErrAlreadyExists
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	s.proposals[p.ID] = *p
	s.order = append(s.order, p.ID)
	return nil
}

// UpdateProjectSummary stores a generated summary on the project.
func (s *ProposalStore) UpdateProjectSummary(_ context.Context, projectID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Summary = summary
	s.projects[projectID] = p
	return nil
}

// UpdateProposalSummary stores a generated summary on the proposal.
func (s *ProposalStore) UpdateProposalSummary(_ context.Context, proposalID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[proposalID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Summary = summary
	s.proposals[proposalID] = p
	return nil
}

// UpsertVote records a vote, replacing any previous vote by the same user
// on the same proposal.
func (s *ProposalStore) UpsertVote(_ context.Context, v domain.Vote) error {
	if !v.Valid() {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proposals[v.ProposalID]; !ok {
		return domain.ErrNotFound
	}
	s.votes[v.ProposalID+"\x00"+v.UserID] = v
	return nil
}

// Votes returns all recorded votes for a proposal, for test assertions.
func (s *ProposalStore) Votes(proposalID string) []domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Vote
	for _, v := range s.votes {
		if v.ProposalID == proposalID {
			result = append(result, v)
		}
	}
	return result
}

// Close releases resources (no-op for the memory store).
func (s *ProposalStore) Close() error {
	return nil
}
