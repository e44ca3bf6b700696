package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/middleware"
	"honorly/pkg/ratelimit"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	api := mw.RateLimit(ratelimit.TagAPI)

	rg.GET("/profile", mw.Auth(), api, h.Get)
	rg.PUT("/profile", mw.Auth(), api, h.Update)
	rg.DELETE("/account", mw.Auth(), mw.RateLimit(ratelimit.TagAuth), h.DeleteAccount)
}
