package onboarding

import (
	"context"

	"honorly/internal/model"
	"honorly/internal/question"
)

// UseCase drives the onboarding questionnaire of a case.
type UseCase interface {
	Questions(ctx context.Context, path question.Path) ([]question.Question, error)
	GetAnswers(ctx context.Context, sc model.Scope, caseID string) (AnswersOutput, error)
	SaveAnswers(ctx context.Context, sc model.Scope, input SaveAnswersInput) (AnswersOutput, error)
	Complete(ctx context.Context, sc model.Scope, caseID string) (CompleteOutput, error)

	// State reads the stored answers without an access check. Callers must
	// have authorized the case already.
	State(ctx context.Context, c model.Case) (State, error)
}

// PlanSeeder generates the default task plan once onboarding is done.
type PlanSeeder interface {
	SeedPlan(ctx context.Context, sc model.Scope, caseID string) (int, error)
}
