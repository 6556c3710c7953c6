package services

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// Pre-compiled patterns for the looser recovery stages.
var (
	// Greedy segment extraction mirrors the prompt contract: the model is
	// told to reply with a single JSON value, so the outermost brackets
	// are the ones we want.
	arraySegmentRegex  = regexp.MustCompile(`(?s)\[.*\]`)
	objectSegmentRegex = regexp.MustCompile(`(?s)\{.*\}`)

	// entryScavengeRegex recovers complete id→{similarity, explanation}
	// fragments from truncated JSON where strict parsing is hopeless.
	entryScavengeRegex = regexp.MustCompile(`"([^"]+)"\s*:\s*\{\s*"similarity"\s*:\s*(-?\d+(?:\.\d+)?)[^}]*?"explanation"\s*:\s*"([^"]*)"`)
)

// extractSimilarityEntries parses model output into similarity matches,
// applying progressively looser recovery strategies. First success wins:
//
//  1. strict parse of the whole response (array or id-keyed object)
//  2. strict parse of the first [...] segment
//  3. strict parse of the first {...} segment
//  4. regex scavenge of individually complete entries
//
// A nil result means nothing could be recovered; reconciliation then
// synthesizes defaults for every proposal.
func extractSimilarityEntries(text string) []domain.SimilarityMatch {
	if entries := parseStrict(text); entries != nil {
		return entries
	}
	if seg := arraySegmentRegex.FindString(text); seg != "" && seg != text {
		if entries := parseStrict(seg); entries != nil {
			return entries
		}
	}
	if seg := objectSegmentRegex.FindString(text); seg != "" && seg != text {
		if entries := parseStrict(seg); entries != nil {
			return entries
		}
	}
	return scavengeEntries(text)
}

// parseStrict accepts either a JSON array of result-shaped objects or a
// JSON object mapping id → {similarity, explanation}. Field values are
// coerced, not validated: a missing similarity is 0, a non-string
// explanation becomes "".
func parseStrict(text string) []domain.SimilarityMatch {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil
	}

	switch v := value.(type) {
	case []any:
		entries := make([]domain.SimilarityMatch, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			id, ok := obj["id"].(string)
			if !ok || id == "" {
				continue
			}
			entries = append(entries, entryFromObject(id, obj))
		}
		return entries
	case map[string]any:
		entries := make([]domain.SimilarityMatch, 0, len(v))
		for id, item := range v {
			obj, _ := item.(map[string]any)
			entries = append(entries, entryFromObject(id, obj))
		}
		return entries
	default:
		return nil
	}
}

// entryFromObject coerces one parsed JSON object into a match.
func entryFromObject(id string, obj map[string]any) domain.SimilarityMatch {
	m := domain.SimilarityMatch{ID: id}
	if obj == nil {
		return m
	}
	m.Similarity = coerceNumber(obj["similarity"])
	if explanation, ok := obj["explanation"].(string); ok {
		m.Explanation = explanation
	}
	return m
}

// coerceNumber converts JSON numbers and numeric strings, defaulting to 0.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

// scavengeEntries collects every complete entry fragment found in the text.
// This handles truncated responses where only some entries survived the
// token budget.
func scavengeEntries(text string) []domain.SimilarityMatch {
	var entries []domain.SimilarityMatch
	for _, m := range entryScavengeRegex.FindAllStringSubmatch(text, -1) {
		similarity, _ := strconv.ParseFloat(m[2], 64)
		entries = append(entries, domain.SimilarityMatch{
			ID:          m[1],
			Similarity:  similarity,
			Explanation: m[3],
		})
	}
	return entries
}

// firstArraySegment returns the first [...] segment of the text, or the
// whole text when none is found. Used by the suggestion parser, which has a
// single-stage recovery.
func firstArraySegment(text string) string {
	if seg := arraySegmentRegex.FindString(text); seg != "" {
		return seg
	}
	return text
}
