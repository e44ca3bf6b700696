package invitation

import (
	"context"

	"honorly/internal/model"
)

// UseCase manages invitations of support members to a case.
type UseCase interface {
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
	List(ctx context.Context, sc model.Scope, caseID string) ([]model.Invitation, error)
	Accept(ctx context.Context, sc model.Scope, token string) (AcceptOutput, error)
}
