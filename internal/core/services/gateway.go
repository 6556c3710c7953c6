package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
	"github.com/ideaflux/ideaflux/internal/logger"
)

// Ensure CompletionGateway implements the interface.
var _ driven.Completer = (*CompletionGateway)(nil)

// Gateway defaults applied when the caller leaves options zero.
const (
	DefaultMaxTokens   = 320
	DefaultTemperature = 0.4
	DefaultTopP        = 0.9
)

// CompletionGateway tries a prioritized list of completion providers and
// returns the first usable result. Providers without credentials are
// skipped; providers in a cool-down window are skipped without a network
// call; rate-limit failures start a cool-down window; every other failure
// moves on to the next provider.
type CompletionGateway struct {
	providers []driven.CompletionProvider
	health    driven.ProviderHealth
}

// NewCompletionGateway creates a gateway over the given providers, in
// priority order. health may be nil, disabling throttle tracking.
func NewCompletionGateway(health driven.ProviderHealth, providers ...driven.CompletionProvider) *CompletionGateway {
	return &CompletionGateway{
		providers: providers,
		health:    health,
	}
}

// Complete runs the fallback chain. An exhausted chain yields a zero
// CompletionResult, not an error; callers treat it as "no completion
// available" and apply their own fallback.
func (g *CompletionGateway) Complete(ctx context.Context, prompt string, opts driven.CompletionOptions) domain.CompletionResult {
	opts = withDefaults(opts)

	for _, p := range g.providers {
		if !p.Available() {
			continue
		}
		if g.health != nil && !g.health.Available(p.ID()) {
			logger.Debug("provider %s cooling down, skipped", p.ID())
			continue
		}

		text, err := p.Complete(ctx, prompt, opts)
		if err != nil {
			if errors.Is(err, domain.ErrRateLimited) && g.health != nil {
				g.health.MarkThrottled(p.ID())
			}
			logger.Warn("provider %s failed: %v", p.ID(), err)
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			logger.Debug("provider %s returned empty text", p.ID())
			continue
		}

		return domain.CompletionResult{Text: text, ModelUsed: p.ID()}
	}

	return domain.CompletionResult{}
}

// withDefaults fills in the documented option defaults.
func withDefaults(opts driven.CompletionOptions) driven.CompletionOptions {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.TopP <= 0 {
		opts.TopP = DefaultTopP
	}
	return opts
}
