package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "honorly/pkg/errors"
	"honorly/pkg/response"
)

// Get godoc
// @Summary     Current profile
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} profileResp
// @Failure     401 {object} response.ErrResp
// @Router      /api/v1/profile [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Get(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newProfileResp(p))
}

// Update godoc
// @Summary     Update profile
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateReq true "Profile"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.ErrResp
// @Router      /api/v1/profile [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError("First and last name are required (max 100 characters)"))
		return
	}

	p, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newProfileResp(p))
}

// DeleteAccount godoc
// @Summary     Delete account
// @Description Permanently removes the account, owned cases and uploaded files. The body must be {"confirm":"DELETE"}.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body deleteReq true "Confirmation"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/account [DELETE]
func (h *handler) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError("type DELETE to confirm"))
		return
	}

	out, err := h.uc.DeleteAccount(ctx, sc, deleteInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteAccount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, deleteResp{Deleted: true, CasesDeleted: out.CasesDeleted})
}
