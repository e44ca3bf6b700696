package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/middleware"
	"honorly/pkg/ratelimit"
)

// RegisterRoutes maps the task endpoints on the API root group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	api := mw.RateLimit(ratelimit.TagAPI)

	rg.GET("/cases/:id/tasks", mw.Auth(), api, h.Dashboard)
	rg.POST("/cases/:id/tasks", mw.Auth(), api, h.Create)
	rg.PATCH("/tasks/:id", mw.Auth(), api, h.Update)
	rg.PATCH("/tasks/:id/status", mw.Auth(), api, h.UpdateStatus)
}
