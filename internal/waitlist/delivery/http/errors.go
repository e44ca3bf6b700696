package http

import (
	"errors"

	"honorly/internal/waitlist"
	pkgErrors "honorly/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, waitlist.ErrInvalidEmail):
		return pkgErrors.NewValidationError("Please enter a valid email address").WithField("field", "email")
	case errors.Is(err, waitlist.ErrInvalidInput):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
