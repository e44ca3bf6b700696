package usecase

import (
	"time"

	"github.com/google/uuid"

	"honorly/internal/cases"
	"honorly/internal/onboarding"
	"honorly/internal/plan"
	"honorly/internal/task"
	"honorly/internal/task/repository"
	"honorly/pkg/log"
)

type implUseCase struct {
	repo       repository.Repository
	cases      cases.UseCase
	onboarding onboarding.UseCase
	generator  *plan.Generator
	calendar   task.Calendar
	appURL     string
	l          log.Logger
	now        func() time.Time
	newID      func() string
}

var (
	_ task.UseCase          = (*implUseCase)(nil)
	_ onboarding.PlanSeeder = (*implUseCase)(nil)
)

// New creates the task UseCase. calendar may be nil, in which case due dates
// are stored without reminders.
func New(
	repo repository.Repository,
	casesUC cases.UseCase,
	onboardingUC onboarding.UseCase,
	generator *plan.Generator,
	calendar task.Calendar,
	appURL string,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:       repo,
		cases:      casesUC,
		onboarding: onboardingUC,
		generator:  generator,
		calendar:   calendar,
		appURL:     appURL,
		l:          l,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}
