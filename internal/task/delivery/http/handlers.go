package http

import (
	"github.com/gin-gonic/gin"

	"honorly/pkg/response"
)

// Dashboard godoc
// @Summary     Task dashboard
// @Description Tasks of a case grouped by category with completion stats.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Case ID"
// @Success     200 {object} dashboardResp
// @Failure     401 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/tasks [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Dashboard(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDashboardResp(out))
}

// Create godoc
// @Summary     Add a custom task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Case ID"
// @Param       body body createReq true "Task"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.CreateCustom(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateCustom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Task: newTaskResp(t)})
}

// UpdateStatus godoc
// @Summary     Change task status
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Task ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.UpdateStatus(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Task: newTaskResp(t)})
}

// Update godoc
// @Summary     Edit task details
// @Description Sets due date, assignee or description. A due date adds a calendar reminder when configured.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Task: newTaskResp(t)})
}
