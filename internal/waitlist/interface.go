package waitlist

import "context"

// UseCase handles sign-ups while access is invite-only.
type UseCase interface {
	Join(ctx context.Context, input JoinInput) (JoinOutput, error)
}
