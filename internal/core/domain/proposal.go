package domain

import (
	"strings"
	"time"
)

// NewProposalID is the sentinel ID of a proposal that has not been saved yet.
// Drafts arriving from the submission form carry it until the store assigns
// a real identifier.
const NewProposalID = "new"

// Project is a stored project: a container with a title, description, and
// deadline under which proposals are collected.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Context returns the slice of project data the AI pipeline needs to
// interpret proposal intent.
func (p Project) Context() ProjectContext {
	return ProjectContext{Title: p.Title, Description: p.Description}
}

// ProjectContext is the read-only project data used to disambiguate what a
// proposal is actually about.
type ProjectContext struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Proposal is a saved proposal belonging to a project.
type Proposal struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	AuthorID    string    `json:"authorId,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// ProposalDraft is a candidate proposal being checked before submission.
// It is transient and never persisted by the core.
type ProposalDraft struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Normalize fills in the sentinel ID for unsaved drafts.
func (d ProposalDraft) Normalize() ProposalDraft {
	if strings.TrimSpace(d.ID) == "" {
		d.ID = NewProposalID
	}
	return d
}

// Text returns the draft's title and description joined for lexical scoring.
func (d ProposalDraft) Text() string {
	return strings.TrimSpace(d.Title + " " + d.Description)
}

// Text returns the proposal's title and description joined for lexical scoring.
func (p Proposal) Text() string {
	return strings.TrimSpace(p.Title + " " + p.Description)
}

// Vote is a single user's up or down vote on a proposal.
// Value is +1 for an upvote, -1 for a downvote.
type Vote struct {
	ProposalID string `json:"proposalId"`
	UserID     string `json:"userId"`
	Value      int    `json:"value"`
}

// Valid reports whether the vote carries an acceptable value.
func (v Vote) Valid() bool {
	return v.Value == 1 || v.Value == -1
}
