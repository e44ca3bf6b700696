package invitation

import (
	"time"

	"honorly/internal/model"
)

const (
	TTL              = 7 * 24 * time.Hour
	MaxMessageLength = 1000
	MaxNameLength    = 100
)

type SendInput struct {
	CaseID    string
	Email     string
	FirstName string
	Message   string
}

type SendOutput struct {
	Invitation model.Invitation
	// EmailFailed is set when the record was stored but the email was not
	// delivered.
	EmailFailed bool
}

type AcceptOutput struct {
	CaseID string
	Role   model.MemberRole
}
