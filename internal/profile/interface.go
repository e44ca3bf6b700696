package profile

import (
	"context"

	"honorly/internal/model"
	"honorly/pkg/supabase"
)

// UseCase manages the caller's own account.
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (model.Profile, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Profile, error)
	DeleteAccount(ctx context.Context, sc model.Scope, input DeleteAccountInput) (DeleteAccountOutput, error)
}

// Storage is the file store holding uploaded photos.
type Storage interface {
	ListObjects(ctx context.Context, bucket, prefix string) ([]supabase.Object, error)
	RemoveObjects(ctx context.Context, bucket string, paths []string) error
}

// IdentityAdmin removes users from the auth platform.
type IdentityAdmin interface {
	DeleteUser(ctx context.Context, userID string) error
}
