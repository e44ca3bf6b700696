package repository

import (
	"context"
	"time"

	"honorly/internal/model"
)

type Repository interface {
	CreateInvitation(ctx context.Context, inv model.Invitation) error
	ListInvitations(ctx context.Context, caseID string) ([]model.Invitation, error)
	// GetByToken returns a zero Invitation when the token is unknown.
	GetByToken(ctx context.Context, token string) (model.Invitation, error)
	HasPending(ctx context.Context, caseID, email string, now time.Time) (bool, error)
	// MarkAccepted flips a pending invitation. It reports false when the
	// invitation was not pending anymore.
	MarkAccepted(ctx context.Context, opt MarkAcceptedOptions) (bool, error)
	// ReleaseAccepted returns an invitation claimed by opt.UserID to pending.
	ReleaseAccepted(ctx context.Context, opt MarkAcceptedOptions) error
}

type MarkAcceptedOptions struct {
	ID     string
	UserID string
	At     time.Time
}
