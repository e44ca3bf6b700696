package repository

import "context"

// Repository stores onboarding answers per case.
type Repository interface {
	GetState(ctx context.Context, caseID string) (StateRow, error)
	SaveState(ctx context.Context, opt SaveStateOptions) (StateRow, error)
	MarkCompleted(ctx context.Context, opt MarkCompletedOptions) error
}
