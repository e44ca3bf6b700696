package invitation

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidInput       = errors.New("invitation fields too long")
	ErrAlreadyInvited     = errors.New("a pending invitation already exists for this email")
	ErrSelfInvite         = errors.New("you cannot invite yourself")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation expired")
	ErrInvitationUsed     = errors.New("invitation already accepted")
	ErrEmailMismatch      = errors.New("invitation was sent to a different email")
)
