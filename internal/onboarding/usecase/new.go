package usecase

import (
	"time"

	"honorly/internal/cases"
	"honorly/internal/onboarding"
	"honorly/internal/onboarding/repository"
	"honorly/internal/question"
	"honorly/pkg/log"
)

type implUseCase struct {
	repo    repository.Repository
	cases   cases.UseCase
	catalog *question.Catalog
	seeder  onboarding.PlanSeeder
	l       log.Logger
	now     func() time.Time
}

var _ onboarding.UseCase = (*implUseCase)(nil)

// New creates the onboarding UseCase. The plan seeder is attached later with
// SetPlanSeeder because the task domain reads onboarding state.
func New(repo repository.Repository, casesUC cases.UseCase, catalog *question.Catalog, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		cases:   casesUC,
		catalog: catalog,
		l:       l,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetPlanSeeder attaches the component that generates the default plan.
func (uc *implUseCase) SetPlanSeeder(s onboarding.PlanSeeder) {
	uc.seeder = s
}
