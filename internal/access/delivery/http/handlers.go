package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"honorly/internal/access"
	pkgErrors "honorly/pkg/errors"
	"honorly/pkg/response"
)

// Verify godoc
// @Summary     Check the early-access passcode
// @Description After three failed attempts the response asks the client to offer the waitlist.
// @Tags        Access
// @Accept      json
// @Produce     json
// @Param       body body verifyReq true "Passcode"
// @Success     200 {object} verifyResp
// @Failure     400 {object} response.ErrResp
// @Failure     401 {object} deniedResp
// @Failure     429 {object} response.ErrResp
// @Router      /api/v1/access/verify [POST]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError("Passcode is required"))
		return
	}

	out, err := h.uc.Verify(ctx, access.VerifyInput{
		ClientKey: c.ClientIP(),
		Passcode:  req.Passcode,
	})
	if err != nil {
		var denied *access.InvalidPasscodeError
		switch {
		case errors.As(err, &denied):
			c.JSON(http.StatusUnauthorized, deniedResp{
				Error:        "Invalid passcode",
				Attempts:     denied.Attempts,
				ShowWaitlist: denied.ShowWaitlist,
			})
		case errors.Is(err, access.ErrEmptyPasscode):
			response.Error(c, pkgErrors.NewValidationError("Passcode is required"))
		default:
			h.l.Errorf(ctx, "uc.Verify: %v", err)
			response.Error(c, pkgErrors.ErrInternalServerError)
		}
		return
	}

	response.OK(c, verifyResp{Access: out.Access, StorageKey: out.StorageKey})
}
