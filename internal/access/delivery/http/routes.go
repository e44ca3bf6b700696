package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/middleware"
	"honorly/pkg/ratelimit"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/access/verify", mw.RateLimit(ratelimit.TagAuth), h.Verify)
}
