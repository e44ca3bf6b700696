package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/middleware"
	"honorly/pkg/ratelimit"
)

// RegisterRoutes maps /cases to the handler. Every route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	api := mw.RateLimit(ratelimit.TagAPI)

	rg.POST("", mw.Auth(), api, h.Create)
	rg.GET("", mw.Auth(), api, h.List)
	rg.GET("/:id", mw.Auth(), api, h.Detail)
}
