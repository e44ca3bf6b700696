package ratelimit

import (
	"context"
	"errors"
	"time"
)

// Tags used by the HTTP layer.
const (
	TagAuth  = "auth"
	TagEmail = "email"
	TagAPI   = "api"
)

var ErrUnknownTier = errors.New("ratelimit: unknown tier")

// Tier is a fixed-window quota: at most Limit hits per Window.
type Tier struct {
	Limit  int
	Window time.Duration
}

// Decision is the outcome of one hit.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Store counts hits per key. Hit increments the counter for key, starting a
// new window ending at now+window when none is active, and returns the count
// and the end of the current window.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration, now time.Time) (count int, resetAt time.Time, err error)
}
