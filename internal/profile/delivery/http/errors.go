package http

import (
	"errors"

	"honorly/internal/profile"
	pkgErrors "honorly/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrInvalidName),
		errors.Is(err, profile.ErrInvalidPhone),
		errors.Is(err, profile.ErrConfirmationRequired):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, profile.ErrIdentityDelete):
		return pkgErrors.NewDependencyError("We could not finish deleting your account. Please try again.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
