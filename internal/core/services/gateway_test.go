package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
)

// fakeProvider implements driven.CompletionProvider for testing.
type fakeProvider struct {
	id        string
	available bool
	text      string
	err       error
	calls     int
	lastOpts  driven.CompletionOptions
}

func (p *fakeProvider) ID() string      { return p.id }
func (p *fakeProvider) Available() bool { return p.available }

func (p *fakeProvider) Complete(_ context.Context, _ string, opts driven.CompletionOptions) (string, error) {
	p.calls++
	p.lastOpts = opts
	return p.text, p.err
}

// fakeClock drives the health tracker deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(clock *fakeClock) *HealthTracker {
	return NewHealthTracker(HealthTrackerConfig{Now: clock.Now})
}

func TestGatewayFirstProviderWins(t *testing.T) {
	primary := &fakeProvider{id: "gemini", available: true, text: "answer"}
	secondary := &fakeProvider{id: "openai", available: true, text: "unused"}
	gw := NewCompletionGateway(newTestTracker(&fakeClock{now: time.Now()}), primary, secondary)

	result := gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})

	assert.Equal(t, "answer", result.Text)
	assert.Equal(t, "gemini", result.ModelUsed)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "no further providers tried after success")
}

func TestGatewaySkipsUnconfiguredProvider(t *testing.T) {
	unconfigured := &fakeProvider{id: "gemini", available: false, text: "never"}
	configured := &fakeProvider{id: "openai", available: true, text: "hello"}
	gw := NewCompletionGateway(nil, unconfigured, configured)

	result := gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})

	assert.Equal(t, "openai", result.ModelUsed)
	assert.Equal(t, 0, unconfigured.calls)
}

func TestGatewayRateLimitFallsThroughAndThrottles(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tracker := newTestTracker(clock)

	limited := &fakeProvider{id: "gemini", available: true, err: fmt.Errorf("status 429: %w", domain.ErrRateLimited)}
	backup := &fakeProvider{id: "openai", available: true, text: "from backup"}
	gw := NewCompletionGateway(tracker, limited, backup)

	result := gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})
	require.Equal(t, "openai", result.ModelUsed)
	assert.Equal(t, 1, limited.calls)

	// Within the cool-down window the limited provider is not contacted.
	clock.Advance(5 * time.Minute)
	result = gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})
	assert.Equal(t, "openai", result.ModelUsed)
	assert.Equal(t, 1, limited.calls, "throttled provider must be skipped without a network call")

	// After the window expires it is tried again.
	clock.Advance(11 * time.Minute)
	limited.err = nil
	limited.text = "recovered"
	result = gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})
	assert.Equal(t, "gemini", result.ModelUsed)
	assert.Equal(t, 2, limited.calls)
}

func TestGatewayTransportFailureDoesNotThrottle(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tracker := newTestTracker(clock)

	flaky := &fakeProvider{id: "gemini", available: true, err: errors.New("connection reset")}
	backup := &fakeProvider{id: "openai", available: true, text: "ok"}
	gw := NewCompletionGateway(tracker, flaky, backup)

	gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})
	gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})

	assert.Equal(t, 2, flaky.calls, "transport failures must not start a cool-down")
}

func TestGatewayEmptyTextFallsThrough(t *testing.T) {
	empty := &fakeProvider{id: "gemini", available: true, text: "   "}
	backup := &fakeProvider{id: "openai", available: true, text: "real"}
	gw := NewCompletionGateway(nil, empty, backup)

	result := gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})

	assert.Equal(t, "real", result.Text)
	assert.Equal(t, "openai", result.ModelUsed)
}

func TestGatewayAllProvidersDown(t *testing.T) {
	gw := NewCompletionGateway(nil,
		&fakeProvider{id: "gemini", available: false},
		&fakeProvider{id: "openai", available: false},
	)

	result := gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})

	assert.True(t, result.Empty())
	assert.Empty(t, result.ModelUsed)
}

func TestGatewayAppliesDefaults(t *testing.T) {
	p := &fakeProvider{id: "gemini", available: true, text: "x"}
	gw := NewCompletionGateway(nil, p)

	gw.Complete(context.Background(), "prompt", driven.CompletionOptions{})

	assert.Equal(t, DefaultMaxTokens, p.lastOpts.MaxTokens)
	assert.InDelta(t, DefaultTemperature, p.lastOpts.Temperature, 1e-9)
	assert.InDelta(t, DefaultTopP, p.lastOpts.TopP, 1e-9)
}

func TestGatewayKeepsExplicitOptions(t *testing.T) {
	p := &fakeProvider{id: "gemini", available: true, text: "x"}
	gw := NewCompletionGateway(nil, p)

	gw.Complete(context.Background(), "prompt", driven.CompletionOptions{
		MaxTokens:   600,
		Temperature: 0.65,
		TopP:        0.8,
	})

	assert.Equal(t, 600, p.lastOpts.MaxTokens)
	assert.InDelta(t, 0.65, p.lastOpts.Temperature, 1e-9)
	assert.InDelta(t, 0.8, p.lastOpts.TopP, 1e-9)
}
