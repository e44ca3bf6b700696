package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/model"
	pkgErrors "honorly/pkg/errors"
)

func (h *handler) processCaseReq(c *gin.Context) (model.Scope, string, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, "", pkgErrors.NewAuthError("Unauthorized")
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", pkgErrors.NewValidationError("case id is required")
	}
	return sc, id, nil
}

func (h *handler) processSaveAnswersReq(c *gin.Context) (model.Scope, string, saveAnswersReq, error) {
	var req saveAnswersReq
	sc, id, err := h.processCaseReq(c)
	if err != nil {
		return sc, id, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, id, req, pkgErrors.NewValidationError("answers must be an object keyed by question id")
	}
	return sc, id, req, nil
}
