package services

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// minTokenLength filters out short stopword-like tokens ("a", "of", "la").
const minTokenLength = 2

// diacriticStripper decomposes characters and drops combining marks, so
// "conținut" and "continut" tokenize identically.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalizeText lowercases, strips diacritics, and replaces everything
// outside [a-z0-9] with spaces.
func normalizeText(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// tokenSet splits normalized text on whitespace, keeping tokens longer than
// minTokenLength characters.
func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(normalizeText(s)) {
		if len(tok) > minTokenLength {
			tokens[tok] = struct{}{}
		}
	}
	return tokens
}

// jaccardScore computes the Jaccard index over the token sets of two texts,
// scaled to [0,100] and rounded. Either side empty scores 0.
func jaccardScore(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range tokensA {
		if _, ok := tokensB[tok]; ok {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection

	return math.Round(float64(intersection) / float64(union) * 100)
}

// lexicalMatches scores every existing proposal against the draft with the
// deterministic keyword heuristic. Explanations are a fixed localized
// string, not per-pair text.
func lexicalMatches(draft domain.ProposalDraft, existing []domain.Proposal, locale domain.Locale) []domain.SimilarityMatch {
	explanation := locale.KeywordMatchExplanation()
	base := draft.Text()

	matches := make([]domain.SimilarityMatch, len(existing))
	for i, p := range existing {
		matches[i] = domain.SimilarityMatch{
			ID:          p.ID,
			Similarity:  jaccardScore(base, p.Text()),
			Explanation: explanation,
		}
	}
	return matches
}
