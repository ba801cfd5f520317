package cj

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Tier is the account's subscription level with the partner. It is
// immutable per configured account and determines the steady-state pacing
// interval and the backoff applied after a rate-limit rejection.
type Tier string

// Tier constants, most conservative first.
const (
	TierFree     Tier = "free"
	TierPlus     Tier = "plus"
	TierPrime    Tier = "prime"
	TierAdvanced Tier = "advanced"
)

// ParseTier validates a configured tier string.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierFree, TierPlus, TierPrime, TierAdvanced:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("unknown account tier %q", s)
	}
}

// tierParams holds the two derived numeric parameters per tier.
type tierParams struct {
	minInterval time.Duration
	backoff     time.Duration
}

// The partner enforces a hard per-account requests-per-second ceiling.
// Pre-emptive pacing is cheaper than reactive backoff, so the intervals
// below stay safely under the ceiling for each tier.
var tierTable = map[Tier]tierParams{
	TierFree:     {minInterval: 1500 * time.Millisecond, backoff: 15 * time.Second},
	TierPlus:     {minInterval: 1000 * time.Millisecond, backoff: 12 * time.Second},
	TierPrime:    {minInterval: 600 * time.Millisecond, backoff: 8 * time.Second},
	TierAdvanced: {minInterval: 300 * time.Millisecond, backoff: 5 * time.Second},
}

// MinInterval returns the steady-state delay between consecutive requests
// for the tier. Unknown tiers fall back to the free tier's interval.
func (t Tier) MinInterval() time.Duration {
	p, ok := tierTable[t]
	if !ok {
		return tierTable[TierFree].minInterval
	}
	return p.minInterval
}

// BackoffDelay returns the delay applied after a rate-limit rejection,
// before the single retry allowed by policy. It is never accumulated
// across retries.
func (t Tier) BackoffDelay() time.Duration {
	p, ok := tierTable[t]
	if !ok {
		return tierTable[TierFree].backoff
	}
	return p.backoff
}

// RateLimiter paces outbound partner calls for one account. A token
// bucket with burst 1 realizes the per-tier minimum inter-request
// interval: the first call passes immediately, each subsequent call waits
// out the remainder of the interval.
type RateLimiter struct {
	tier        Tier
	minInterval time.Duration
	backoff     time.Duration
	limiter     *rate.Limiter
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithMinInterval overrides the tier's pacing interval. Used by tests to
// keep wall-clock waits short.
func WithMinInterval(d time.Duration) RateLimiterOption {
	return func(r *RateLimiter) {
		r.minInterval = d
	}
}

// WithBackoffDelay overrides the tier's backoff delay.
func WithBackoffDelay(d time.Duration) RateLimiterOption {
	return func(r *RateLimiter) {
		r.backoff = d
	}
}

// NewRateLimiter creates a pacing limiter for the given tier.
func NewRateLimiter(tier Tier, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		tier:        tier,
		minInterval: tier.MinInterval(),
		backoff:     tier.BackoffDelay(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.limiter = rate.NewLimiter(rate.Every(r.minInterval), 1)
	return r
}

// Wait blocks until pacing allows the next request, or the context is
// canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("pacing wait: %w", err)
	}
	return nil
}

// Tier returns the account tier this limiter paces for.
func (r *RateLimiter) Tier() Tier {
	return r.tier
}

// MinInterval returns the effective steady-state pacing interval.
func (r *RateLimiter) MinInterval() time.Duration {
	return r.minInterval
}

// BackoffDelay returns the effective post-rejection backoff delay.
func (r *RateLimiter) BackoffDelay() time.Duration {
	return r.backoff
}
