package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/model"
	pkgErrors "honorly/pkg/errors"
)

var errUnauthenticated = pkgErrors.NewAuthError("Unauthorized")

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauthenticated
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewValidationError("type must be LOSS or PREPLAN")
	}
	return sc, req, nil
}

func (h *handler) processCaseIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, "", err
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", pkgErrors.NewValidationError("id is required")
	}
	return sc, id, nil
}
