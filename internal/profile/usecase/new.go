package usecase

import (
	"time"

	"honorly/internal/cases"
	"honorly/internal/profile"
	"honorly/internal/profile/repository"
	"honorly/pkg/log"
)

type implUseCase struct {
	repo        repository.Repository
	cases       cases.UseCase
	storage     profile.Storage
	identity    profile.IdentityAdmin
	photoBucket string
	l           log.Logger
	now         func() time.Time
}

var _ profile.UseCase = (*implUseCase)(nil)

// New creates the profile UseCase. photoBucket is the storage bucket whose
// objects are keyed by user id.
func New(
	repo repository.Repository,
	casesUC cases.UseCase,
	storage profile.Storage,
	identity profile.IdentityAdmin,
	photoBucket string,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:        repo,
		cases:       casesUC,
		storage:     storage,
		identity:    identity,
		photoBucket: photoBucket,
		l:           l,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
