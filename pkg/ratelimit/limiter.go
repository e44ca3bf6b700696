package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Limiter applies per-tag fixed-window quotas on top of a Store.
type Limiter struct {
	store Store
	clock func() time.Time
	tiers map[string]Tier
}

// New creates a Limiter. A nil clock means time.Now.
func New(store Store, tiers map[string]Tier, clock func() time.Time) *Limiter {
	if store == nil {
		panic("ratelimit: store is required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &Limiter{store: store, clock: clock, tiers: tiers}
}

// Allow records one hit for key under tag and reports whether it fits the quota.
func (l *Limiter) Allow(ctx context.Context, tag, key string) (Decision, error) {
	tier, ok := l.tiers[tag]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %q", ErrUnknownTier, tag)
	}

	now := l.clock()
	count, resetAt, err := l.store.Hit(ctx, tag+":"+key, tier.Window, now)
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: hit %s: %w", tag, err)
	}

	d := Decision{Limit: tier.Limit}
	if count <= tier.Limit {
		d.Allowed = true
		d.Remaining = tier.Limit - count
		return d, nil
	}
	d.RetryAfter = resetAt.Sub(now)
	if d.RetryAfter < time.Second {
		d.RetryAfter = time.Second
	}
	return d, nil
}

// RetryAfterSeconds rounds the wait up to whole seconds for the Retry-After header.
func (d Decision) RetryAfterSeconds() int {
	return int((d.RetryAfter + time.Second - 1) / time.Second)
}
