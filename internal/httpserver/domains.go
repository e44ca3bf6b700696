package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accessHTTP "honorly/internal/access/delivery/http"
	accessUC "honorly/internal/access/usecase"
	"honorly/internal/cases"
	casesHTTP "honorly/internal/cases/delivery/http"
	casesRepo "honorly/internal/cases/repository/sqlite"
	casesUC "honorly/internal/cases/usecase"
	invitationHTTP "honorly/internal/invitation/delivery/http"
	invitationRepo "honorly/internal/invitation/repository/sqlite"
	invitationUC "honorly/internal/invitation/usecase"
	onboardingHTTP "honorly/internal/onboarding/delivery/http"
	onboardingRepo "honorly/internal/onboarding/repository/sqlite"
	onboardingUC "honorly/internal/onboarding/usecase"
	profileHTTP "honorly/internal/profile/delivery/http"
	profileRepo "honorly/internal/profile/repository/sqlite"
	profileUC "honorly/internal/profile/usecase"
	taskHTTP "honorly/internal/task/delivery/http"
	taskRepo "honorly/internal/task/repository/sqlite"
	taskUC "honorly/internal/task/usecase"
	waitlistHTTP "honorly/internal/waitlist/delivery/http"
	waitlistRepo "honorly/internal/waitlist/repository/sqlite"
	waitlistUC "honorly/internal/waitlist/usecase"
)

// Every domain follows the same four steps:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, ..., srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)

// setupCasesDomain registers /api/v1/cases and returns the use case other
// domains authorize against.
func (srv HTTPServer) setupCasesDomain(ctx context.Context, api *gin.RouterGroup) cases.UseCase {
	repo := casesRepo.New(srv.db, srv.l)
	uc := casesUC.New(repo, srv.l)
	h := casesHTTP.New(srv.l, uc)
	casesHTTP.RegisterRoutes(api.Group("/cases"), h, srv.mw)

	srv.l.Infof(ctx, "Cases domain registered")
	return uc
}

// setupPlanningDomains wires onboarding and tasks together. Completing
// onboarding seeds the task plan, and the dashboard reads onboarding state,
// so the seeder is attached after both use cases exist.
func (srv HTTPServer) setupPlanningDomains(ctx context.Context, api *gin.RouterGroup, cs cases.UseCase) {
	oRepo := onboardingRepo.New(srv.db, srv.l)
	oUC := onboardingUC.New(oRepo, cs, srv.catalog, srv.l)

	tRepo := taskRepo.New(srv.db, srv.l)
	tUC := taskUC.New(tRepo, cs, oUC, srv.generator, srv.calendar, srv.appURL, srv.l)
	oUC.SetPlanSeeder(tUC)

	onboardingHTTP.RegisterRoutes(api, onboardingHTTP.New(srv.l, oUC), srv.mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC), srv.mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Onboarding and task domains registered (calendar reminders disabled)")
		return
	}
	srv.l.Infof(ctx, "Onboarding and task domains registered")
}

func (srv HTTPServer) setupInvitationDomain(ctx context.Context, api *gin.RouterGroup, cs cases.UseCase) {
	repo := invitationRepo.New(srv.db, srv.l)
	uc := invitationUC.New(repo, cs, srv.sender, srv.appURL, srv.l)
	invitationHTTP.RegisterRoutes(api, invitationHTTP.New(srv.l, uc), srv.mw)

	srv.l.Infof(ctx, "Invitation domain registered")
}

func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup, cs cases.UseCase) {
	repo := profileRepo.New(srv.db, srv.l)
	uc := profileUC.New(repo, cs, srv.storage, srv.identity, srv.photoBucket, srv.l)
	profileHTTP.RegisterRoutes(api, profileHTTP.New(srv.l, uc), srv.mw)

	srv.l.Infof(ctx, "Profile domain registered")
}

func (srv HTTPServer) setupWaitlistDomain(ctx context.Context, api *gin.RouterGroup) {
	repo := waitlistRepo.New(srv.db, srv.l)
	uc := waitlistUC.New(repo, srv.sender, srv.l)
	waitlistHTTP.RegisterRoutes(api, waitlistHTTP.New(srv.l, uc), srv.mw)

	srv.l.Infof(ctx, "Waitlist domain registered")
}

// setupAccessDomain has no repository: attempt counters live in memory.
func (srv HTTPServer) setupAccessDomain(ctx context.Context, api *gin.RouterGroup) {
	uc := accessUC.New(srv.l, srv.access)
	accessHTTP.RegisterRoutes(api, accessHTTP.New(srv.l, uc), srv.mw)

	srv.l.Infof(ctx, "Access domain registered")
}
