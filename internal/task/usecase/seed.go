package usecase

import (
	"context"
	"errors"

	"honorly/internal/model"
	"honorly/internal/plan"
	repo "honorly/internal/task/repository"
)

func (uc *implUseCase) SeedPlan(ctx context.Context, sc model.Scope, caseID string) (int, error) {
	access, err := uc.cases.Authorize(ctx, sc, caseID, false)
	if err != nil {
		return 0, err
	}

	state, err := uc.onboarding.State(ctx, access.Case)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SeedPlan State: %v", err)
		return 0, err
	}

	now := uc.now()
	drafts := uc.generator.Derive(state.Answers)
	records := plan.Records(drafts, caseID, access.LovedOne.ID, sc.UserID, now, uc.newID)

	n, err := uc.repo.SeedTasks(ctx, repo.SeedTasksOptions{
		CaseID:   caseID,
		SeededBy: sc.UserID,
		Tasks:    records,
		At:       now,
	})
	if errors.Is(err, repo.ErrAlreadySeeded) {
		return 0, plan.ErrAlreadySeeded
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.SeedPlan SeedTasks case=%s drafts=%d: %v", caseID, len(drafts), err)
		return 0, err
	}
	return n, nil
}
