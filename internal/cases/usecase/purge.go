package usecase

import (
	"context"

	"honorly/internal/cases"
)

func (uc *implUseCase) PurgeUser(ctx context.Context, userID string) (cases.PurgeOutput, error) {
	deleted, err := uc.repo.DeleteCasesByOwner(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeUser DeleteCasesByOwner: %v", err)
		return cases.PurgeOutput{}, err
	}
	if err := uc.repo.DeleteMembershipsByUser(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "uc.PurgeUser DeleteMembershipsByUser: %v", err)
		return cases.PurgeOutput{}, err
	}
	return cases.PurgeOutput{CasesDeleted: deleted.Count, PhotoRefs: deleted.PhotoRefs}, nil
}
