package onboarding

import (
	"encoding/json"
	"time"

	"honorly/internal/question"
)

// State is the stored questionnaire progress of one case.
type State struct {
	Path          question.Path
	Questions     []question.Question
	Answers       question.AnswerSet
	CompletionPct int
	CompletedAt   *time.Time
}

// Completed reports whether the owner finished the questionnaire.
func (s State) Completed() bool { return s.CompletedAt != nil }

type SaveAnswersInput struct {
	CaseID  string
	Answers map[string]json.RawMessage
}

type AnswersOutput struct {
	CaseID  string
	State   State
	Visible []question.Question
	Missing []string
}

type CompleteOutput struct {
	AnswersOutput
	TasksSeeded int
	// SeedFailed is set when the plan could not be stored; the dashboard
	// retries on its next load.
	SeedFailed bool
}
