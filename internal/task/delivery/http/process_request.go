package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"honorly/internal/model"
	"honorly/internal/task"
	pkgErrors "honorly/pkg/errors"
	"honorly/pkg/response"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, pkgErrors.NewAuthError("Unauthorized")
	}
	return sc, nil
}

func parseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return time.Time{}, pkgErrors.NewValidationError("dueDate must be YYYY-MM-DD")
	}
	return d, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, task.CreateCustomInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.CreateCustomInput{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.CreateCustomInput{}, pkgErrors.NewValidationError("title and category are required")
	}

	var due *time.Time
	if req.DueDate != "" {
		d, err := parseDueDate(req.DueDate)
		if err != nil {
			return sc, task.CreateCustomInput{}, err
		}
		due = &d
	}
	return sc, req.toInput(c.Param("id"), due), nil
}

func (h *handler) processUpdateStatusReq(c *gin.Context) (model.Scope, task.UpdateStatusInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.UpdateStatusInput{}, err
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.UpdateStatusInput{}, pkgErrors.NewValidationError("status is required")
	}
	return sc, task.UpdateStatusInput{TaskID: c.Param("id"), Status: model.TaskStatus(req.Status)}, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, task.UpdateInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.UpdateInput{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.UpdateInput{}, pkgErrors.NewValidationError("invalid task update")
	}

	in := task.UpdateInput{TaskID: c.Param("id"), AssignedTo: req.AssignedTo, Description: req.Description}
	if req.DueDate != nil {
		var d time.Time
		if *req.DueDate != "" {
			if d, err = parseDueDate(*req.DueDate); err != nil {
				return sc, task.UpdateInput{}, err
			}
		}
		in.DueDate = &d
	}
	return sc, in, nil
}
