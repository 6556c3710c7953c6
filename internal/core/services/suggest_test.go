package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

func TestSuggestFiltersIncompleteEntries(t *testing.T) {
	completer := &fakeCompleter{result: domain.CompletionResult{
		Text: `[
			{"title": "Weekly demo day", "details": "## Plan\n- book a room", "summary": "Show work every Friday."},
			{"title": "Missing details", "summary": "incomplete"}
		]`,
		ModelUsed: "gemini",
	}}
	svc := NewSuggestionService(completer, domain.LocaleEnglish)

	suggestions := svc.Suggest(context.Background(), domain.ProjectContext{Title: "P"}, nil)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Weekly demo day", suggestions[0].Title)
}

func TestSuggestCapsAtThree(t *testing.T) {
	completer := &fakeCompleter{result: domain.CompletionResult{
		Text: `[
			{"title": "a", "details": "d", "summary": "s"},
			{"title": "b", "details": "d", "summary": "s"},
			{"title": "c", "details": "d", "summary": "s"},
			{"title": "e", "details": "d", "summary": "s"}
		]`,
		ModelUsed: "openai",
	}}
	svc := NewSuggestionService(completer, domain.LocaleEnglish)

	suggestions := svc.Suggest(context.Background(), domain.ProjectContext{Title: "P"}, nil)

	assert.Len(t, suggestions, domain.MaxSuggestions)
}

func TestSuggestAcceptsDescriptionAlias(t *testing.T) {
	completer := &fakeCompleter{result: domain.CompletionResult{
		Text:      `[{"title": "a", "description": "long body", "summary": "s"}]`,
		ModelUsed: "gemini",
	}}
	svc := NewSuggestionService(completer, domain.LocaleEnglish)

	suggestions := svc.Suggest(context.Background(), domain.ProjectContext{Title: "P"}, nil)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "long body", suggestions[0].Details)
}

func TestSuggestParsesArrayOutOfProse(t *testing.T) {
	completer := &fakeCompleter{result: domain.CompletionResult{
		Text:      "Here you go:\n[{\"title\": \"a\", \"details\": \"d\", \"summary\": \"s\"}]\nEnjoy!",
		ModelUsed: "gemini",
	}}
	svc := NewSuggestionService(completer, domain.LocaleEnglish)

	assert.Len(t, svc.Suggest(context.Background(), domain.ProjectContext{Title: "P"}, nil), 1)
}

func TestSuggestNoFallbackGeneration(t *testing.T) {
	// No provider available: the list is empty, nothing is invented.
	svc := NewSuggestionService(&fakeCompleter{}, domain.LocaleEnglish)
	assert.Empty(t, svc.Suggest(context.Background(), domain.ProjectContext{Title: "P"}, nil))

	// Unusable output: same.
	svc = NewSuggestionService(&fakeCompleter{result: domain.CompletionResult{Text: "not json", ModelUsed: "gemini"}}, domain.LocaleEnglish)
	assert.Empty(t, svc.Suggest(context.Background(), domain.ProjectContext{Title: "P"}, nil))
}

func TestSuggestPromptContents(t *testing.T) {
	completer := &fakeCompleter{result: domain.CompletionResult{Text: "[]", ModelUsed: "gemini"}}
	svc := NewSuggestionService(completer, domain.LocaleRomanian)

	existing := []domain.Proposal{{Title: "Dark mode", Summary: "Theme the app"}}
	svc.Suggest(context.Background(), domain.ProjectContext{Title: "Mobile polish"}, existing)

	assert.Equal(t, suggestMaxTokens, completer.lastOpts.MaxTokens)
	assert.InDelta(t, suggestTemperature, completer.lastOpts.Temperature, 1e-9)
	assert.Contains(t, completer.lastPrompt, `Respond ONLY in "ro"`)
	assert.Contains(t, completer.lastPrompt, "1. Dark mode — Theme the app")
	assert.Contains(t, completer.lastPrompt, "Project title: Mobile polish")
}
