package middleware

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/model"
	"honorly/pkg/response"
)

// RateLimit applies the tier named tag. Authenticated callers are keyed by
// user id, everyone else by client IP. The IP comes from gin, which only
// honors forwarding headers sent by the engine's trusted proxies. A failing
// store lets the request through.
func (m Middleware) RateLimit(tag string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := "ip:" + c.ClientIP()
		if sc, ok := model.GetScopeFromContext(ctx); ok {
			key = "user:" + sc.UserID
		}

		d, err := m.limiter.Allow(ctx, tag, key)
		if err != nil {
			m.l.Errorf(ctx, "middleware.RateLimit %s: %v", tag, err)
			c.Next()
			return
		}
		if !d.Allowed {
			m.l.Warnf(ctx, "security: rate limit %s exceeded by %s on %s %s", tag, key, c.Request.Method, c.FullPath())
			response.RateLimited(c, d.RetryAfterSeconds())
			return
		}
		c.Next()
	}
}
