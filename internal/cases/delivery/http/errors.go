package http

import (
	"honorly/internal/cases"
	pkgErrors "honorly/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case cases.ErrCaseNotFound:
		return pkgErrors.NewNotFoundError("Case not found")
	case cases.ErrForbidden:
		return pkgErrors.NewAuthorizationError("You do not have access to this case")
	case cases.ErrInvalidCaseType:
		return pkgErrors.NewValidationError("type must be LOSS or PREPLAN")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
