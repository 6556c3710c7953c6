package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
	"github.com/ideaflux/ideaflux/internal/core/ports/driving"
	"github.com/ideaflux/ideaflux/internal/logger"
)

// Ensure SuggestionService implements the interface.
var _ driving.SuggestionService = (*SuggestionService)(nil)

// Suggestions are the one creative task in the pipeline, so they run warm
// with a larger token budget.
const (
	suggestMaxTokens   = 600
	suggestTemperature = 0.65

	// suggestionSummaryMaxChars is the per-suggestion summary cap stated
	// in the prompt.
	suggestionSummaryMaxChars = 240
)

// SuggestionService generates new proposal candidates from project context.
// There is no fallback generation: an unavailable model or unusable output
// yields an empty list, never invented content.
type SuggestionService struct {
	completer driven.Completer
	locale    domain.Locale
}

// NewSuggestionService creates a suggestion service.
func NewSuggestionService(completer driven.Completer, locale domain.Locale) *SuggestionService {
	return &SuggestionService{
		completer: completer,
		locale:    locale.OrDefault(),
	}
}

// Suggest returns up to domain.MaxSuggestions fully-populated candidates.
func (s *SuggestionService) Suggest(ctx context.Context, project domain.ProjectContext, existing []domain.Proposal) []domain.SuggestedProposal {
	prompt := buildSuggestionPrompt(project, existing, s.locale)
	result := s.completer.Complete(ctx, prompt, driven.CompletionOptions{
		MaxTokens:   suggestMaxTokens,
		Temperature: suggestTemperature,
	})

	if result.Empty() {
		return nil
	}

	suggestions := parseSuggestions(result.Text)
	logger.Debug("suggestions: project=%q model=%q kept=%d", project.Title, result.ModelUsed, len(suggestions))
	return suggestions
}

// parseSuggestions parses the first JSON array in the text, coerces fields
// to strings, and keeps only complete entries, capped at
// domain.MaxSuggestions.
func parseSuggestions(text string) []domain.SuggestedProposal {
	candidate := firstArraySegment(text)

	var items []any
	if err := json.Unmarshal([]byte(candidate), &items); err != nil {
		return nil
	}

	var suggestions []domain.SuggestedProposal
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		suggestion := domain.SuggestedProposal{
			Title:   coerceString(item["title"]),
			Details: coerceString(item["details"]),
			Summary: coerceString(item["summary"]),
		}
		if suggestion.Details == "" {
			// Some models answer with "description" despite the contract.
			suggestion.Details = coerceString(item["description"])
		}
		if !suggestion.Complete() {
			continue
		}
		suggestions = append(suggestions, suggestion)
		if len(suggestions) == domain.MaxSuggestions {
			break
		}
	}
	return suggestions
}

// coerceString trims string values and stringifies scalars; nil becomes "".
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// buildSuggestionPrompt asks for a JSON array of up to three candidates,
// avoiding near-duplicates of the existing proposals.
func buildSuggestionPrompt(project domain.ProjectContext, existing []domain.Proposal, locale domain.Locale) string {
	var listed []string
	for i, p := range existing {
		desc := p.Description
		if desc == "" {
			desc = p.Summary
		}
		listed = append(listed, fmt.Sprintf("%d. %s — %s", i+1, p.Title, desc))
	}
	existingBlock := strings.Join(listed, "\n")
	if existingBlock == "" {
		existingBlock = "none"
	}

	description := project.Description
	if description == "" {
		description = "(none)"
	}

	return strings.Join([]string{
		"You are helping a team brainstorm NEW proposals for a project.",
		fmt.Sprintf(`Respond ONLY in %q with a JSON array of up to %d objects, each having "title", "details", and "summary".`, locale, domain.MaxSuggestions),
		`Write "details" in structured Markdown with clear sections (use ## headings) and concise bullet lists for implementation notes; provide enough context to act on the idea.`,
		fmt.Sprintf("Each summary must be at most %d characters. Do not number or bullet inside values.", suggestionSummaryMaxChars),
		"Avoid duplicating or rephrasing existing proposals; skip anything that is too close.",
		fmt.Sprintf("Project title: %s", project.Title),
		fmt.Sprintf("Project description: %s", description),
		"Existing proposals (avoid similar):",
		existingBlock,
		`Return JSON like: [{"title":"...","details":"...","summary":"..."}]`,
	}, "\n\n")
}
