package http

import (
	"errors"

	"honorly/internal/cases"
	"honorly/internal/onboarding"
	"honorly/internal/question"
	pkgErrors "honorly/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var missing *onboarding.MissingAnswersError
	switch {
	case errors.As(err, &missing):
		return pkgErrors.NewValidationError("Please answer every required question").WithField("missing", missing.IDs)
	case errors.Is(err, onboarding.ErrUnknownQuestion),
		errors.Is(err, onboarding.ErrInvalidAnswer):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, onboarding.ErrNoAnswers):
		return pkgErrors.NewValidationError("No answers submitted")
	case errors.Is(err, onboarding.ErrAlreadyCompleted):
		return pkgErrors.NewValidationError("Onboarding is already complete; answers can no longer change")
	case errors.Is(err, question.ErrUnknownPath):
		return pkgErrors.NewValidationError("Unknown onboarding path")
	case errors.Is(err, cases.ErrCaseNotFound):
		return pkgErrors.NewNotFoundError("Case not found")
	case errors.Is(err, cases.ErrForbidden):
		return pkgErrors.NewAuthorizationError("Only the case owner can change onboarding answers")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
