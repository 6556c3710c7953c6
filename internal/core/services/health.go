package services

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
)

// Ensure HealthTracker implements the interface.
var _ driven.ProviderHealth = (*HealthTracker)(nil)

// Default health tracker configuration.
const (
	// DefaultCooldown is how long a provider is skipped after a
	// rate-limit response.
	DefaultCooldown = 15 * time.Minute

	// DefaultPace is the proactive per-provider request rate.
	DefaultPace = rate.Limit(5)

	// DefaultBurst is the proactive limiter burst size.
	DefaultBurst = 10
)

// HealthTrackerConfig configures a HealthTracker.
type HealthTrackerConfig struct {
	// Cooldown is the throttle window (default: 15m).
	Cooldown time.Duration

	// Pace is the proactive request rate per provider (default: 5/s).
	// Zero disables proactive pacing.
	Pace rate.Limit

	// Burst is the proactive limiter burst (default: 10).
	Burst int

	// Now returns the current time. Injectable for tests (default: time.Now).
	Now func() time.Time
}

// HealthTracker records per-provider cool-down state in memory. It is
// advisory throttling, not a circuit breaker: state is per-process, and in a
// horizontally scaled deployment instances do not coordinate.
type HealthTracker struct {
	mu       sync.Mutex
	cooldown time.Duration
	until    map[string]time.Time
	limiters map[string]*rate.Limiter
	pace     rate.Limit
	burst    int
	now      func() time.Time
}

// NewHealthTracker creates a tracker with the given configuration.
func NewHealthTracker(cfg HealthTrackerConfig) *HealthTracker {
	if cfg.Cooldown == 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.Burst == 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &HealthTracker{
		cooldown: cfg.Cooldown,
		until:    make(map[string]time.Time),
		limiters: make(map[string]*rate.Limiter),
		pace:     cfg.Pace,
		burst:    cfg.Burst,
		now:      cfg.Now,
	}
}

// Available reports whether the provider may be contacted: it must be
// outside its cool-down window and, when pacing is enabled, within its
// request budget.
func (t *HealthTracker) Available(providerID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if until, ok := t.until[providerID]; ok && t.now().Before(until) {
		return false
	}

	if t.pace > 0 {
		return t.limiter(providerID).Allow()
	}
	return true
}

// MarkThrottled places the provider in a cool-down window starting now.
func (t *HealthTracker) MarkThrottled(providerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.until[providerID] = t.now().Add(t.cooldown)
}

// ThrottledUntil returns the cool-down expiry for a provider, if any.
func (t *HealthTracker) ThrottledUntil(providerID string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	until, ok := t.until[providerID]
	if !ok || !t.now().Before(until) {
		return time.Time{}, false
	}
	return until, true
}

// limiter returns the provider's pacing limiter, creating it on first use.
// Caller must hold t.mu.
func (t *HealthTracker) limiter(providerID string) *rate.Limiter {
	l, ok := t.limiters[providerID]
	if !ok {
		l = rate.NewLimiter(t.pace, t.burst)
		t.limiters[providerID] = l
	}
	return l
}
