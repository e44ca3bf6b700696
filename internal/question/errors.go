package question

import "errors"

var (
	ErrUnknownPath     = errors.New("unknown onboarding path")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidAnswer   = errors.New("invalid answer")
)
