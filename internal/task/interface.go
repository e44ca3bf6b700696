package task

import (
	"context"

	"honorly/internal/model"
	"honorly/pkg/gcalendar"
)

// UseCase defines the business logic of the task checklist.
type UseCase interface {
	// Dashboard returns the tasks of a case grouped by category. It seeds
	// the default plan when onboarding is complete and no task exists yet.
	Dashboard(ctx context.Context, sc model.Scope, caseID string) (DashboardOutput, error)

	// SeedPlan derives the default plan from the onboarding answers and
	// stores it. It runs at most once per case and returns
	// plan.ErrAlreadySeeded afterwards.
	SeedPlan(ctx context.Context, sc model.Scope, caseID string) (int, error)

	CreateCustom(ctx context.Context, sc model.Scope, input CreateCustomInput) (model.Task, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
}

// Calendar schedules due-date reminders. It is optional.
type Calendar interface {
	CreateReminder(ctx context.Context, r gcalendar.Reminder) (string, error)
}
