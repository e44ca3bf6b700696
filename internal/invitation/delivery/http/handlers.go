package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"honorly/pkg/response"
)

// Send godoc
// @Summary     Invite a support member
// @Description Stores the invitation and emails an accept link. An email failure is reported as a warning.
// @Tags        Invitations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string  true "Case ID"
// @Param       body body sendReq true "Invitee"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Failure     429 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/invitations [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Send(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := sendResp{Invitation: newInvitationResp(out.Invitation, time.Now())}
	if out.EmailFailed {
		response.OKWithWarning(c, resp, "The invitation was saved but the email could not be sent.")
		return
	}
	response.OK(c, resp)
}

// List godoc
// @Summary     Invitations of a case
// @Tags        Invitations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Case ID"
// @Success     200 {object} listResp
// @Failure     403 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/invitations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	invs, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	now := time.Now()
	items := make([]invitationResp, len(invs))
	for i, inv := range invs {
		items[i] = newInvitationResp(inv, now)
	}
	response.OK(c, listResp{Invitations: items})
}

// Accept godoc
// @Summary     Accept an invitation
// @Tags        Invitations
// @Produce     json
// @Security    BearerAuth
// @Param       token path string true "Invitation token"
// @Success     200 {object} acceptResp
// @Failure     400 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/invitations/{token}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Accept(ctx, sc, c.Param("token"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, acceptResp{CaseID: out.CaseID, Role: string(out.Role)})
}
