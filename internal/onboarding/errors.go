package onboarding

import (
	"errors"
	"strings"
)

var (
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrInvalidAnswer    = errors.New("invalid answer")
	ErrNoAnswers        = errors.New("no answers submitted")
	ErrAlreadyCompleted = errors.New("onboarding already completed")
)

// MissingAnswersError lists required questions still unanswered.
type MissingAnswersError struct {
	IDs []string
}

func (e *MissingAnswersError) Error() string {
	return "missing required answers: " + strings.Join(e.IDs, ", ")
}
