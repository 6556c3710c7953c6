package mcp

import (
	"github.com/ideaflux/ideaflux/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Similarity grades draft proposals against existing ones.
	Similarity driving.SimilarityService

	// Summary condenses titles and descriptions into card previews.
	Summary driving.SummaryService

	// Suggestion generates new proposal candidates.
	Suggestion driving.SuggestionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Similarity == nil {
		return ErrMissingSimilarityService
	}
	if p.Summary == nil {
		return ErrMissingSummaryService
	}
	if p.Suggestion == nil {
		return ErrMissingSuggestionService
	}
	return nil
}
