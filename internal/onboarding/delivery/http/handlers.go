package http

import (
	"github.com/gin-gonic/gin"

	"honorly/internal/question"
	pkgErrors "honorly/pkg/errors"
	"honorly/pkg/response"
)

// Questions godoc
// @Summary     Onboarding questions
// @Description Returns the ordered questions of an onboarding path.
// @Tags        Onboarding
// @Produce     json
// @Param       path query string true "recent-loss or planning-ahead"
// @Success     200 {object} questionsResp
// @Failure     400 {object} response.ErrResp
// @Router      /api/v1/onboarding/questions [GET]
func (h *handler) Questions(c *gin.Context) {
	ctx := c.Request.Context()

	var req questionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.NewValidationError("path is required"))
		return
	}

	qs, err := h.uc.Questions(ctx, question.Path(req.Path))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, questionsResp{Path: req.Path, Questions: qs})
}

// GetAnswers godoc
// @Summary     Onboarding answers of a case
// @Tags        Onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Case ID"
// @Success     200 {object} answersResp
// @Failure     401 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/answers [GET]
func (h *handler) GetAnswers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, caseID, err := h.processCaseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.GetAnswers(ctx, sc, caseID)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetAnswers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnswersResp(out))
}

// SaveAnswers godoc
// @Summary     Save onboarding answers
// @Description Merges answers into the case. A null value clears an answer.
// @Tags        Onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "Case ID"
// @Param       body body saveAnswersReq true "Answers keyed by question id"
// @Success     200 {object} answersResp
// @Failure     400 {object} response.ErrResp
// @Failure     403 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/answers [PUT]
func (h *handler) SaveAnswers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, caseID, req, err := h.processSaveAnswersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SaveAnswers(ctx, sc, req.toInput(caseID))
	if err != nil {
		h.l.Warnf(ctx, "uc.SaveAnswers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnswersResp(out))
}

// Complete godoc
// @Summary     Complete onboarding
// @Description Marks the questionnaire done and generates the task plan once.
// @Tags        Onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Case ID"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.ErrResp "Required answers missing"
// @Failure     403 {object} response.ErrResp
// @Router      /api/v1/cases/{id}/onboarding/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, caseID, err := h.processCaseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Complete(ctx, sc, caseID)
	if err != nil {
		h.l.Warnf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := completeResp{answersResp: newAnswersResp(out.AnswersOutput), TasksSeeded: out.TasksSeeded}
	if out.SeedFailed {
		response.OKWithWarning(c, resp, "Your plan could not be created yet. It will be created when you open the dashboard.")
		return
	}
	response.OK(c, resp)
}
