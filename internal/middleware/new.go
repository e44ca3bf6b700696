package middleware

import (
	"context"
	"time"

	"honorly/pkg/log"
	"honorly/pkg/ratelimit"
	"honorly/pkg/supabase"
)

// IdentityProvider resolves an access token to a platform user.
type IdentityProvider interface {
	GetUser(ctx context.Context, accessToken string) (supabase.User, error)
}

// Config holds the middleware settings.
type Config struct {
	SessionMaxAge time.Duration
}

type Middleware struct {
	l             log.Logger
	identity      IdentityProvider
	limiter       *ratelimit.Limiter
	sessionMaxAge time.Duration
	now           func() time.Time
}

func New(l log.Logger, identity IdentityProvider, limiter *ratelimit.Limiter, cfg Config) Middleware {
	maxAge := cfg.SessionMaxAge
	if maxAge <= 0 {
		maxAge = 60 * time.Minute
	}
	return Middleware{
		l:             l,
		identity:      identity,
		limiter:       limiter,
		sessionMaxAge: maxAge,
		now:           time.Now,
	}
}
