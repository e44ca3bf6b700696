package access

import "context"

// UseCase is the passcode gate in front of sign-up.
type UseCase interface {
	Verify(ctx context.Context, input VerifyInput) (VerifyOutput, error)
}
