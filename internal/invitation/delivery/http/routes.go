package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/middleware"
	"honorly/pkg/ratelimit"
)

// RegisterRoutes maps the invitation endpoints on the API root group.
// Sending is throttled with the email tier, accepting with the auth tier.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/cases/:id/invitations", mw.Auth(), mw.RateLimit(ratelimit.TagAPI), h.List)
	rg.POST("/cases/:id/invitations", mw.Auth(), mw.RateLimit(ratelimit.TagEmail), h.Send)
	rg.POST("/invitations/:token/accept", mw.Auth(), mw.RateLimit(ratelimit.TagAuth), h.Accept)
}
