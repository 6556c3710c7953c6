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

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

const (
	summaryMaxTokens   = 180
	summaryTemperature = 0.4

	// defaultSummaryMaxChars caps AI output when the budget leaves
	// MaxChars unset.
	defaultSummaryMaxChars = 480

	// defaultFallbackMaxChars caps the truncation fallback when the budget
	// leaves MaxChars unset.
	defaultFallbackMaxChars = 240
)

// SummaryService reduces a title/description pair to a short, bounded
// summary. A provider failure degrades to truncated raw text, so a summary
// is always produced for non-empty input.
type SummaryService struct {
	completer driven.Completer
	locale    domain.Locale
	store     driven.ProposalStore
}

// NewSummaryService creates a summary service. store may be nil; it is only
// required by SummarizeProject.
func NewSummaryService(completer driven.Completer, locale domain.Locale, store driven.ProposalStore) *SummaryService {
	return &SummaryService{
		completer: completer,
		locale:    locale.OrDefault(),
		store:     store,
	}
}

// Summarize produces a summary within the budget, or "" when both inputs
// are blank.
func (s *SummaryService) Summarize(ctx context.Context, title, description string, budget domain.SummaryBudget) string {
	return s.summarize(ctx, nil, title, description, budget)
}

// ProposalSummary summarizes a proposal for card previews.
func (s *SummaryService) ProposalSummary(ctx context.Context, title, description string) string {
	framing := []string{
		"Provide a concise explanation of what this proposal aims to do and why it matters.",
		"Assume the title is shown separately; do not restate or paraphrase it.",
	}
	return s.summarize(ctx, framing, title, description, domain.ProposalSummaryBudget)
}

// SummarizeProject generates and persists a summary for a stored project.
// An already-summarized project is left untouched.
func (s *SummaryService) SummarizeProject(ctx context.Context, projectID string) (string, error) {
	if s.store == nil {
		return "", domain.ErrStoreUnavailable
	}

	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading project: %w", err)
	}
	if project.Summary != "" {
		return project.Summary, nil
	}

	framing := []string{
		"Summarize as a concise explanation of the project's purpose and intended impact.",
		"Assume the title is shown separately; do not repeat or paraphrase the title or its keywords.",
		"Format the summary as a request for action from the reader, as if you were explaining it to them in a conversation.",
	}
	summary := s.summarize(ctx, framing, project.Title, project.Description, domain.ProjectSummaryBudget)
	if summary == "" {
		return "", fmt.Errorf("project %s: %w", projectID, domain.ErrInvalidInput)
	}

	if err := s.store.UpdateProjectSummary(ctx, projectID, summary); err != nil {
		return "", fmt.Errorf("storing summary: %w", err)
	}
	return summary, nil
}

// summarize runs the gateway with optional extra framing lines, falling
// back to truncated raw text when no provider responds.
func (s *SummaryService) summarize(ctx context.Context, framing []string, title, description string, budget domain.SummaryBudget) string {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" && description == "" {
		return ""
	}

	prompt := buildSummaryPrompt(framing, title, description, budget, s.locale)
	result := s.completer.Complete(ctx, prompt, driven.CompletionOptions{
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemperature,
	})

	if !result.Empty() {
		maxChars := budget.MaxChars
		if maxChars <= 0 {
			maxChars = defaultSummaryMaxChars
		}
		logger.Debug("summary generated by %s (%d chars)", result.ModelUsed, len(result.Text))
		return hardCut(result.Text, maxChars)
	}

	source := description
	if source == "" {
		source = title
	}
	return FallbackSummary(source, budget.MaxChars)
}

// FallbackSummary deterministically truncates raw text: verbatim when it
// fits, otherwise cut to maxChars-1, trailing whitespace trimmed, with a
// single ellipsis appended. Empty source yields "". A non-positive maxChars
// uses the default fallback cap.
func FallbackSummary(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = defaultFallbackMaxChars
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	runes := []rune(trimmed)
	if len(runes) <= maxChars {
		return trimmed
	}

	cut := strings.TrimRight(string(runes[:maxChars-1]), " \t\n")
	return cut + "…"
}

// hardCut truncates to maxChars characters. No ellipsis is added here.
func hardCut(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

// buildSummaryPrompt instructs the model on register, locale, and length.
func buildSummaryPrompt(framing []string, title, description string, budget domain.SummaryBudget, locale domain.Locale) string {
	lines := []string{
		fmt.Sprintf("Summarize the following project or proposal in at most %d words.", budget.MaxWords),
		fmt.Sprintf(`Keep it concise, neutral, and informative. Avoid markdown headings, emojis, or bullet lists. Return a single paragraph of plain text in the locale %q.`, locale),
	}
	if budget.MaxChars > 0 {
		lines = append(lines, fmt.Sprintf("Stay under %d characters.", budget.MaxChars))
	}
	lines = append(lines, framing...)
	lines = append(lines,
		fmt.Sprintf("Title: %s", title),
		fmt.Sprintf("Description:\n%s", description),
	)
	return strings.Join(lines, "\n\n")
}
