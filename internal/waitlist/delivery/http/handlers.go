package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "honorly/pkg/errors"
	"honorly/pkg/response"
)

// Join godoc
// @Summary     Join the waitlist
// @Description Signing up twice with the same email succeeds with alreadyJoined set.
// @Tags        Waitlist
// @Accept      json
// @Produce     json
// @Param       body body joinReq true "Sign-up"
// @Success     200 {object} joinResp
// @Failure     400 {object} response.ErrResp
// @Failure     429 {object} response.ErrResp
// @Router      /api/v1/waitlist [POST]
func (h *handler) Join(c *gin.Context) {
	ctx := c.Request.Context()

	var req joinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError("Email is required").WithField("field", "email"))
		return
	}

	out, err := h.uc.Join(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Join: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := joinResp{Email: out.Entry.Email, AlreadyJoined: out.AlreadyJoined}
	if out.EmailFailed {
		response.OKWithWarning(c, resp, "You are on the list, but we could not send the confirmation email.")
		return
	}
	response.OK(c, resp)
}
