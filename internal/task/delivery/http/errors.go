package http

import (
	"errors"

	"honorly/internal/cases"
	"honorly/internal/task"
	pkgErrors "honorly/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrInvalidCategory),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidTransition),
		errors.Is(err, task.ErrNothingToUpdate):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewNotFoundError("Task not found")
	case errors.Is(err, cases.ErrCaseNotFound):
		return pkgErrors.NewNotFoundError("Case not found")
	case errors.Is(err, cases.ErrForbidden):
		return pkgErrors.NewAuthorizationError("You do not have access to this case")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
