package http

import (
	"errors"

	"honorly/internal/cases"
	"honorly/internal/invitation"
	pkgErrors "honorly/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, invitation.ErrInvalidEmail):
		return pkgErrors.NewValidationError("Please enter a valid email address").WithField("field", "email")
	case errors.Is(err, invitation.ErrInvalidInput),
		errors.Is(err, invitation.ErrAlreadyInvited),
		errors.Is(err, invitation.ErrSelfInvite),
		errors.Is(err, invitation.ErrInvitationExpired),
		errors.Is(err, invitation.ErrInvitationUsed):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, invitation.ErrInvitationNotFound):
		return pkgErrors.NewNotFoundError("Invitation not found")
	case errors.Is(err, invitation.ErrEmailMismatch):
		return pkgErrors.NewAuthorizationError("This invitation was sent to a different email address")
	case errors.Is(err, cases.ErrCaseNotFound):
		return pkgErrors.NewNotFoundError("Case not found")
	case errors.Is(err, cases.ErrForbidden):
		return pkgErrors.NewAuthorizationError("Only the case owner can invite people")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
