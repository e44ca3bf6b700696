package model

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// Invitation asks someone by email to join a case as a support member.
type Invitation struct {
	ID               string
	CaseID           string
	Email            string
	FirstName        string
	Message          string
	Token            string
	Status           InvitationStatus
	InvitedByUserID  string
	AcceptedByUserID string
	CreatedAt        time.Time
	ExpiresAt        time.Time
	AcceptedAt       *time.Time
}

// Expired reports whether a pending invitation can no longer be accepted.
func (i Invitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
