package repository

import (
	"context"

	"honorly/internal/model"
)

type Repository interface {
	// GetProfile returns a zero Profile when none is stored.
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	UpsertProfile(ctx context.Context, p model.Profile) (model.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
}
