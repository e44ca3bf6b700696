package usecase

import (
	"context"

	"honorly/internal/cases"
	repo "honorly/internal/cases/repository"
	"honorly/internal/model"
)

func (uc *implUseCase) Authorize(ctx context.Context, sc model.Scope, caseID string, needOwner bool) (cases.Access, error) {
	c, err := uc.repo.GetCase(ctx, caseID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Authorize GetCase: %v", err)
		return cases.Access{}, err
	}
	if c.ID == "" {
		return cases.Access{}, cases.ErrCaseNotFound
	}

	role := model.RoleAdmin
	if c.OwnerUserID != sc.UserID {
		if needOwner {
			uc.l.Warnf(ctx, "security: user %s denied owner action on case %s", sc.UserID, caseID)
			return cases.Access{}, cases.ErrForbidden
		}
		m, err := uc.repo.GetMember(ctx, caseID, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Authorize GetMember: %v", err)
			return cases.Access{}, err
		}
		if m.UserID == "" {
			uc.l.Warnf(ctx, "security: user %s is not a member of case %s", sc.UserID, caseID)
			return cases.Access{}, cases.ErrForbidden
		}
		role = m.Role
	}

	lo, err := uc.repo.GetLovedOne(ctx, caseID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Authorize GetLovedOne: %v", err)
		return cases.Access{}, err
	}
	return cases.Access{Case: c, LovedOne: lo, Role: role}, nil
}

func (uc *implUseCase) AddMember(ctx context.Context, caseID, userID string, role model.MemberRole) error {
	if err := uc.repo.AddMember(ctx, model.Member{CaseID: caseID, UserID: userID, Role: role, CreatedAt: uc.now()}); err != nil {
		uc.l.Errorf(ctx, "uc.AddMember: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) UpdateLovedOne(ctx context.Context, input cases.UpdateLovedOneInput) error {
	err := uc.repo.UpdateLovedOne(ctx, repo.UpdateLovedOneOptions{
		CaseID:    input.CaseID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		PhotoRef:  input.PhotoRef,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateLovedOne: %v", err)
		return err
	}
	return nil
}
