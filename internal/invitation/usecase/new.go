package usecase

import (
	"time"

	"github.com/google/uuid"

	"honorly/internal/cases"
	"honorly/internal/invitation"
	"honorly/internal/invitation/repository"
	"honorly/pkg/email"
	"honorly/pkg/log"
)

type implUseCase struct {
	repo     repository.Repository
	cases    cases.UseCase
	sender   email.Sender
	appURL   string
	l        log.Logger
	now      func() time.Time
	newID    func() string
	newToken func() string
}

var _ invitation.UseCase = (*implUseCase)(nil)

// New creates the invitation UseCase. appURL is the base of accept links.
func New(repo repository.Repository, casesUC cases.UseCase, sender email.Sender, appURL string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		cases:    casesUC,
		sender:   sender,
		appURL:   appURL,
		l:        l,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		newToken: uuid.NewString,
	}
}
