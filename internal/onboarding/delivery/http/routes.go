package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/middleware"
	"honorly/pkg/ratelimit"
)

// RegisterRoutes maps the onboarding endpoints on the API root group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	api := mw.RateLimit(ratelimit.TagAPI)

	rg.GET("/onboarding/questions", api, h.Questions)
	rg.GET("/cases/:id/answers", mw.Auth(), api, h.GetAnswers)
	rg.PUT("/cases/:id/answers", mw.Auth(), api, h.SaveAnswers)
	rg.POST("/cases/:id/onboarding/complete", mw.Auth(), api, h.Complete)
}
