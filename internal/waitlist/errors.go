package waitlist

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidInput = errors.New("name or source too long")
)
