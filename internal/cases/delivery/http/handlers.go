package http

import (
	"github.com/gin-gonic/gin"

	"honorly/pkg/response"
)

// Create godoc
// @Summary     Create a case
// @Description Opens a new case owned by the caller, with its loved one.
// @Tags        Cases
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Case type and loved one"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.ErrResp
// @Failure     401  {object} response.ErrResp
// @Failure     500  {object} response.ErrResp
// @Router      /api/v1/cases [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Case: newCaseResp(out)})
}

// List godoc
// @Summary     List cases
// @Description Returns the cases the caller owns or supports.
// @Tags        Cases
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.ErrResp
// @Failure     500 {object} response.ErrResp
// @Router      /api/v1/cases [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(out))
}

// Detail godoc
// @Summary     Get a case
// @Tags        Cases
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Case ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/cases/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processCaseIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Case: newCaseResp(out)})
}
