package main

import (
	"database/sql"
	"time"

	"honorly/config"
	"honorly/pkg/ratelimit"
)

func rateLimitTiers(cfg *config.Config) map[string]ratelimit.Tier {
	tiers := make(map[string]ratelimit.Tier, len(cfg.RateLimit.Tiers))
	for name, t := range cfg.RateLimit.Tiers {
		tiers[name] = ratelimit.Tier{Limit: t.Limit, Window: t.Window}
	}
	return tiers
}

// newRateLimitStore picks the counter backend. The sql store survives
// restarts and is shared by every process on the same database file.
func newRateLimitStore(cfg *config.Config, db *sql.DB) ratelimit.Store {
	if cfg.RateLimit.Store == "sql" {
		return ratelimit.NewSQLStore(db)
	}

	var longest time.Duration
	for _, t := range cfg.RateLimit.Tiers {
		if t.Window > longest {
			longest = t.Window
		}
	}
	return ratelimit.NewMemoryStore(cfg.RateLimit.MemorySize, longest)
}
