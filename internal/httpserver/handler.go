package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"honorly/internal/model"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	srv.registerMiddlewares(ctx)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(ctx context.Context) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context) error {
	api := srv.gin.Group(apiPrefix)

	casesUC := srv.setupCasesDomain(ctx, api)
	srv.setupPlanningDomains(ctx, api, casesUC)
	srv.setupInvitationDomain(ctx, api, casesUC)
	srv.setupProfileDomain(ctx, api, casesUC)
	srv.setupWaitlistDomain(ctx, api)
	srv.setupAccessDomain(ctx, api)

	return nil
}
