package http

import (
	"github.com/gin-gonic/gin"

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
