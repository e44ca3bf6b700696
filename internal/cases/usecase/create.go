package usecase

import (
	"context"
	"strings"

	"honorly/internal/cases"
	repo "honorly/internal/cases/repository"
	"honorly/internal/model"
)

// Create opens a new case owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input cases.CreateInput) (cases.CaseDetail, error) {
	path, ok := cases.PathFor(input.Type)
	if !ok {
		return cases.CaseDetail{}, cases.ErrInvalidCaseType
	}

	now := uc.now()
	c := model.Case{
		ID:          uc.newID(),
		Type:        input.Type,
		Path:        string(path),
		OwnerUserID: sc.UserID,
		LovedOneID:  uc.newID(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	lo := model.LovedOne{
		ID:        c.LovedOneID,
		CaseID:    c.ID,
		FirstName: strings.TrimSpace(input.LovedOneFirstName),
		LastName:  strings.TrimSpace(input.LovedOneLastName),
	}

	err := uc.repo.CreateCase(ctx, repo.CreateCaseOptions{
		Case:     c,
		LovedOne: lo,
		Owner:    model.Member{CaseID: c.ID, UserID: sc.UserID, Role: model.RoleAdmin, CreatedAt: now},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCase: %v", err)
		return cases.CaseDetail{}, err
	}

	return cases.CaseDetail{Case: c, LovedOne: lo, Role: model.RoleAdmin}, nil
}
