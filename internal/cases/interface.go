package cases

import (
	"context"

	"honorly/internal/model"
)

// UseCase manages cases, their loved one and who may see them.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CaseDetail, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, caseID string) (CaseDetail, error)

	// Authorize resolves the caller's role on a case. With needOwner only
	// the admin passes.
	Authorize(ctx context.Context, sc model.Scope, caseID string, needOwner bool) (Access, error)
	AddMember(ctx context.Context, caseID, userID string, role model.MemberRole) error
	UpdateLovedOne(ctx context.Context, input UpdateLovedOneInput) error

	// PurgeUser deletes the cases userID owns and every membership it holds.
	PurgeUser(ctx context.Context, userID string) (PurgeOutput, error)
}
