package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"honorly/internal/model"
	"honorly/internal/onboarding"
	"honorly/internal/plan"
	"honorly/internal/task"
	repo "honorly/internal/task/repository"
)

func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope, caseID string) (task.DashboardOutput, error) {
	access, err := uc.cases.Authorize(ctx, sc, caseID, false)
	if err != nil {
		return task.DashboardOutput{}, err
	}

	var (
		state onboarding.State
		tasks []model.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		state, err = uc.onboarding.State(gctx, access.Case)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = uc.repo.ListTasks(gctx, repo.ListTasksOptions{CaseID: caseID})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard load: %v", err)
		return task.DashboardOutput{}, err
	}

	if state.CompletionPct == 100 && len(tasks) == 0 {
		tasks = uc.lazySeed(ctx, sc, caseID, tasks)
	}

	groups, stats := task.Summarize(tasks)
	return task.DashboardOutput{
		CaseID:        caseID,
		LovedOne:      access.LovedOne,
		Role:          access.Role,
		CompletionPct: state.CompletionPct,
		Groups:        groups,
		Stats:         stats,
	}, nil
}

// lazySeed generates the plan for a finished questionnaire whose seed never
// landed. Failures leave the dashboard empty until the next load.
func (uc *implUseCase) lazySeed(ctx context.Context, sc model.Scope, caseID string, tasks []model.Task) []model.Task {
	n, err := uc.SeedPlan(ctx, sc, caseID)
	switch {
	case errors.Is(err, plan.ErrAlreadySeeded):
		return tasks
	case err != nil:
		uc.l.Warnf(ctx, "uc.Dashboard lazy seed for case %s: %v", caseID, err)
		return tasks
	}

	uc.l.Infof(ctx, "uc.Dashboard seeded %d tasks for case %s", n, caseID)
	seeded, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{CaseID: caseID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard reload: %v", err)
		return tasks
	}
	return seeded
}
