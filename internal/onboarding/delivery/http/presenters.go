package http

import (
	"encoding/json"

	"honorly/internal/onboarding"
	"honorly/internal/question"
)

// --- Request DTOs ---

type questionsReq struct {
	Path string `form:"path" binding:"required"`
}

type saveAnswersReq struct {
	Answers map[string]json.RawMessage `json:"answers" binding:"required"`
}

func (r saveAnswersReq) toInput(caseID string) onboarding.SaveAnswersInput {
	return onboarding.SaveAnswersInput{CaseID: caseID, Answers: r.Answers}
}

// --- Response DTOs ---

type questionsResp struct {
	Path      string              `json:"path"`
	Questions []question.Question `json:"questions"`
}

type answersResp struct {
	CaseID             string             `json:"caseId"`
	Path               string             `json:"path"`
	Answers            question.AnswerSet `json:"answers"`
	CompletionPct      int                `json:"completionPct"`
	Completed          bool               `json:"completed"`
	VisibleQuestionIDs []string           `json:"visibleQuestionIds"`
	Missing            []string           `json:"missing"`
}

func newAnswersResp(out onboarding.AnswersOutput) answersResp {
	visible := make([]string, len(out.Visible))
	for i, q := range out.Visible {
		visible[i] = q.ID
	}
	missing := out.Missing
	if missing == nil {
		missing = []string{}
	}
	return answersResp{
		CaseID:             out.CaseID,
		Path:               string(out.State.Path),
		Answers:            out.State.Answers,
		CompletionPct:      out.State.CompletionPct,
		Completed:          out.State.Completed(),
		VisibleQuestionIDs: visible,
		Missing:            missing,
	}
}

type completeResp struct {
	answersResp
	TasksSeeded int `json:"tasksSeeded"`
}
