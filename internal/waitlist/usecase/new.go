package usecase

import (
	"time"

	"github.com/google/uuid"

	"honorly/internal/waitlist"
	"honorly/internal/waitlist/repository"
	"honorly/pkg/email"
	"honorly/pkg/log"
)

type implUseCase struct {
	repo   repository.Repository
	sender email.Sender
	l      log.Logger
	now    func() time.Time
	newID  func() string
}

var _ waitlist.UseCase = (*implUseCase)(nil)

func New(repo repository.Repository, sender email.Sender, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		sender: sender,
		l:      l,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}
