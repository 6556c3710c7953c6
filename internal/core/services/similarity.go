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

// Ensure SimilarityService implements the interface.
var _ driving.SimilarityService = (*SimilarityService)(nil)

// Similarity grading runs cool: this is a judgement task, not creative
// generation.
const (
	similarityMaxTokens   = 320
	similarityTemperature = 0.2
	similarityTopP        = 0.8
)

// SimilarityService compares a draft proposal against the existing
// proposals of a project, preferring AI judgements and degrading to the
// deterministic lexical heuristic.
type SimilarityService struct {
	completer driven.Completer
	locale    domain.Locale
}

// NewSimilarityService creates a similarity service. locale selects the
// language of AI explanations and fallback strings.
func NewSimilarityService(completer driven.Completer, locale domain.Locale) *SimilarityService {
	return &SimilarityService{
		completer: completer,
		locale:    locale.OrDefault(),
	}
}

// Assess produces exactly one match per existing proposal, in input order.
// Model output is recovered leniently, clamped, and reconciled; when the
// model yields nothing usable the lexical fallback scores every pair.
func (s *SimilarityService) Assess(ctx context.Context, project domain.ProjectContext, draft domain.ProposalDraft, existing []domain.Proposal) []domain.SimilarityMatch {
	if len(existing) == 0 {
		return []domain.SimilarityMatch{}
	}
	draft = draft.Normalize()

	prompt := buildSimilarityPrompt(project, draft, existing, s.locale)
	result := s.completer.Complete(ctx, prompt, driven.CompletionOptions{
		MaxTokens:   similarityMaxTokens,
		Temperature: similarityTemperature,
		TopP:        similarityTopP,
	})

	logger.Debug("similarity request: project=%q draft=%q existing=%d model=%q",
		project.Title, draft.Title, len(existing), result.ModelUsed)

	if result.Empty() {
		return lexicalMatches(draft, existing, s.locale)
	}

	parsed := extractSimilarityEntries(result.Text)
	matches := reconcileMatches(parsed, existing, s.locale)
	if len(matches) == 0 {
		// Unreachable with non-empty input today, kept as a last-resort
		// non-empty guarantee.
		return lexicalMatches(draft, existing, s.locale)
	}
	return matches
}

// reconcileMatches guarantees the output contract: one entry per existing
// proposal, in input order, similarity clamped into [0,100], explanation a
// string. Entries for unknown ids (model hallucinations) are dropped;
// proposals the model skipped get a zero-similarity default.
func reconcileMatches(parsed []domain.SimilarityMatch, existing []domain.Proposal, locale domain.Locale) []domain.SimilarityMatch {
	byID := make(map[string]domain.SimilarityMatch, len(parsed))
	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p.ID] = struct{}{}
	}
	for _, m := range parsed {
		if _, ok := known[m.ID]; !ok {
			continue
		}
		if _, seen := byID[m.ID]; seen {
			continue
		}
		m.Similarity = domain.ClampSimilarity(m.Similarity)
		byID[m.ID] = m
	}

	matches := make([]domain.SimilarityMatch, 0, len(existing))
	for _, p := range existing {
		if m, ok := byID[p.ID]; ok {
			matches = append(matches, m)
			continue
		}
		matches = append(matches, domain.SimilarityMatch{
			ID:          p.ID,
			Similarity:  0,
			Explanation: locale.NoOverlapExplanation(),
		})
	}
	return matches
}

// buildSimilarityPrompt states the task, pins the exact output contract,
// and embeds the serialized project, existing proposals, and draft.
func buildSimilarityPrompt(project domain.ProjectContext, draft domain.ProposalDraft, existing []domain.Proposal, locale domain.Locale) string {
	type promptProposal struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Summary     string `json:"summary"`
	}

	payload := make([]promptProposal, len(existing))
	for i, p := range existing {
		payload[i] = promptProposal{ID: p.ID, Title: p.Title, Description: p.Description, Summary: p.Summary}
	}

	instructions := strings.Join([]string{
		"We have a project and a list of existing proposals for it.",
		fmt.Sprintf(`Return a JSON object where each key is an existing proposal ID and value is { "similarity": 0-100, "explanation": "<human, concise reason in %s>" }.`, locale),
		"Compare each existing proposal one-to-one against the NEW proposal provided.",
		"Use the project context to understand intent and avoid keyword-only reasoning.",
		"Be specific (e.g., overlapping KPIs, duplicate features, same outcomes).",
		"Respond ONLY with valid JSON, no prose, no code fences.",
	}, " ")

	projectJSON, _ := json.Marshal(project)
	existingJSON, _ := json.MarshalIndent(payload, "", "  ")
	draftJSON, _ := json.MarshalIndent(draft, "", "  ")

	return fmt.Sprintf("%s\n\nProject:\n%s\n\nExisting proposals (JSON map by id):\n%s\n\nNew proposal:\n%s",
		instructions, projectJSON, existingJSON, draftJSON)
}
