package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/invitation"
	"honorly/internal/model"
	pkgErrors "honorly/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, pkgErrors.NewAuthError("Unauthorized")
	}
	return sc, nil
}

func (h *handler) processSendReq(c *gin.Context) (model.Scope, invitation.SendInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, invitation.SendInput{}, err
	}

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, invitation.SendInput{}, pkgErrors.NewValidationError("A valid email is required")
	}
	return sc, req.toInput(c.Param("id")), nil
}
