package profile

import "errors"

var (
	ErrInvalidName          = errors.New("first and last name must be between 1 and 100 characters")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrConfirmationRequired = errors.New(`type DELETE to confirm`)
	ErrIdentityDelete       = errors.New("failed to delete auth user")
)
