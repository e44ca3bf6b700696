package usecase

import (
	"time"

	"github.com/google/uuid"

	"honorly/internal/cases"
	"honorly/internal/cases/repository"
	"honorly/pkg/log"
)

// implUseCase is the private implementation of cases.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	now   func() time.Time
	newID func() string
}

var _ cases.UseCase = (*implUseCase)(nil)

// New creates a new cases UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}
