// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// CompletionOptions configures a single completion request.
// Zero values mean "use the gateway defaults".
type CompletionOptions struct {
	// MaxTokens bounds the generated output length.
	MaxTokens int

	// Temperature controls randomness in [0,1]. Judgement tasks
	// (similarity grading) run cooler than creative ones (suggestions).
	Temperature float64

	// TopP is the nucleus sampling cutoff in [0,1].
	TopP float64
}

// CompletionProvider is one remote text-completion backend.
//
// Implementations include:
//   - Gemini (Google Generative Language API)
//   - OpenAI (chat completions)
//
// Providers signal rate limiting by returning an error wrapping
// domain.ErrRateLimited; the gateway then places them in a cool-down
// window. Every other failure is treated as "no text from this provider".
type CompletionProvider interface {
	// ID returns the stable provider identifier ("gemini", "openai").
	ID() string

	// Available reports whether the provider has credentials configured.
	// Unavailable providers are skipped without a network call.
	Available() bool

	// Complete sends the prompt and returns the extracted completion text.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// ProviderHealth tracks advisory throttle state per provider. It is
// best-effort: concurrent requests may race on the cool-down map, which can
// cause a provider to be tried slightly more or fewer times than optimal.
type ProviderHealth interface {
	// Available reports whether the provider may be contacted now.
	Available(providerID string) bool

	// MarkThrottled places the provider in a cool-down window.
	MarkThrottled(providerID string)
}

// Completer produces a completion from a prioritized provider chain.
// An empty result is the "no completion available" signal, not an error;
// callers apply their own deterministic fallback.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) domain.CompletionResult
}
