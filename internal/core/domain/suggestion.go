package domain

import "strings"

// MaxSuggestions caps how many AI-generated proposal candidates are returned
// per request.
const MaxSuggestions = 3

// SuggestedProposal is an AI-generated proposal candidate. Details holds the
// long-form body (structured Markdown); Summary is a short card preview.
type SuggestedProposal struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Summary string `json:"summary"`
}

// Complete reports whether all fields are populated. Partial suggestions
// (e.g. from a truncated model response) are dropped, never repaired.
func (s SuggestedProposal) Complete() bool {
	return s.Title != "" && s.Details != "" && s.Summary != ""
}

// SuggestedSubmission is a suggested proposal the user accepted, together
// with their initial vote.
type SuggestedSubmission struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Summary string `json:"summary"`
	Vote    int    `json:"vote"`
}

// Trimmed returns a copy with surrounding whitespace removed from all
// text fields.
func (s SuggestedSubmission) Trimmed() SuggestedSubmission {
	s.Title = strings.TrimSpace(s.Title)
	s.Details = strings.TrimSpace(s.Details)
	s.Summary = strings.TrimSpace(s.Summary)
	return s
}

// Submittable reports whether the entry can be persisted: it needs a title,
// a body, and a valid up/down vote.
func (s SuggestedSubmission) Submittable() bool {
	return s.Title != "" && s.Details != "" && (s.Vote == 1 || s.Vote == -1)
}
