package usecase

import (
	"context"

	"honorly/internal/cases"
	"honorly/internal/model"
)

// List returns every case the caller can see.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (cases.ListOutput, error) {
	rows, err := uc.repo.ListCasesForUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCasesForUser: %v", err)
		return cases.ListOutput{}, err
	}

	out := cases.ListOutput{Cases: make([]cases.CaseDetail, 0, len(rows))}
	for _, r := range rows {
		out.Cases = append(out.Cases, cases.CaseDetail{Case: r.Case, LovedOne: r.LovedOne, Role: r.Role})
	}
	return out, nil
}

// Detail returns one case after checking the caller may see it.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, caseID string) (cases.CaseDetail, error) {
	acc, err := uc.Authorize(ctx, sc, caseID, false)
	if err != nil {
		return cases.CaseDetail{}, err
	}
	return cases.CaseDetail{Case: acc.Case, LovedOne: acc.LovedOne, Role: acc.Role}, nil
}
