package domain

// Similarity scores range over [0,100]: 100 means identical intent,
// 0 means no detected overlap.
const (
	MinSimilarity = 0
	MaxSimilarity = 100
)

// SimilarityMatch scores one existing proposal against a draft.
// Exactly one match is produced per existing proposal; Explanation is
// always present, even when the judgement came from the lexical fallback.
type SimilarityMatch struct {
	ID          string  `json:"id"`
	Similarity  float64 `json:"similarity"`
	Explanation string  `json:"explanation"`
}

// ClampSimilarity bounds a model-reported score into [0,100].
// Out-of-range values are clamped rather than rejected.
func ClampSimilarity(v float64) float64 {
	if v < MinSimilarity {
		return MinSimilarity
	}
	if v > MaxSimilarity {
		return MaxSimilarity
	}
	return v
}

// CompletionResult is the outcome of a gateway completion attempt.
// Text is empty when every provider failed or was throttled; a non-empty
// Text always carries the ID of the provider that produced it.
type CompletionResult struct {
	Text      string
	ModelUsed string
}

// Empty reports whether no provider produced a usable completion.
func (r CompletionResult) Empty() bool {
	return r.Text == ""
}
