package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"honorly/internal/cases"
	"honorly/internal/model"
	"honorly/internal/onboarding"
	repo "honorly/internal/onboarding/repository"
	"honorly/internal/plan"
	"honorly/internal/question"
)

func (uc *implUseCase) State(ctx context.Context, c model.Case) (onboarding.State, error) {
	questions, err := uc.catalog.ByPath(question.Path(c.Path))
	if err != nil {
		uc.l.Errorf(ctx, "uc.State ByPath %q: %v", c.Path, err)
		return onboarding.State{}, err
	}

	row, err := uc.repo.GetState(ctx, c.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.State GetState: %v", err)
		return onboarding.State{}, err
	}
	return uc.toState(ctx, question.Path(c.Path), questions, row), nil
}

func (uc *implUseCase) toState(ctx context.Context, path question.Path, questions []question.Question, row repo.StateRow) onboarding.State {
	answers, err := question.DecodeAnswerSet(questions, row.Answers)
	if err != nil {
		// Answers that no longer match the catalog are dropped.
		uc.l.Warnf(ctx, "uc.toState DecodeAnswerSet case %s: %v", row.CaseID, err)
		answers = question.AnswerSet{}
	}
	return onboarding.State{
		Path:          path,
		Questions:     questions,
		Answers:       answers,
		CompletionPct: row.CompletionPct,
		CompletedAt:   row.CompletedAt,
	}
}

func newAnswersOutput(caseID string, st onboarding.State) onboarding.AnswersOutput {
	return onboarding.AnswersOutput{
		CaseID:  caseID,
		State:   st,
		Visible: question.Visible(st.Questions, st.Answers),
		Missing: question.Missing(st.Questions, st.Answers),
	}
}

// GetAnswers returns the stored answers and progress of a case.
func (uc *implUseCase) GetAnswers(ctx context.Context, sc model.Scope, caseID string) (onboarding.AnswersOutput, error) {
	acc, err := uc.cases.Authorize(ctx, sc, caseID, false)
	if err != nil {
		return onboarding.AnswersOutput{}, err
	}
	st, err := uc.State(ctx, acc.Case)
	if err != nil {
		return onboarding.AnswersOutput{}, err
	}
	return newAnswersOutput(caseID, st), nil
}

// SaveAnswers validates and merges submitted answers. A null value clears an
// answer. The completion percentage never goes down. Answers are frozen once
// onboarding is completed.
func (uc *implUseCase) SaveAnswers(ctx context.Context, sc model.Scope, input onboarding.SaveAnswersInput) (onboarding.AnswersOutput, error) {
	if len(input.Answers) == 0 {
		return onboarding.AnswersOutput{}, onboarding.ErrNoAnswers
	}

	acc, err := uc.cases.Authorize(ctx, sc, input.CaseID, true)
	if err != nil {
		return onboarding.AnswersOutput{}, err
	}
	current, err := uc.State(ctx, acc.Case)
	if err != nil {
		return onboarding.AnswersOutput{}, err
	}
	if current.Completed() {
		return onboarding.AnswersOutput{}, onboarding.ErrAlreadyCompleted
	}

	byID := make(map[string]question.Question, len(current.Questions))
	for _, q := range current.Questions {
		byID[q.ID] = q
	}

	submitted := make(question.AnswerSet, len(input.Answers))
	for id, raw := range input.Answers {
		q, ok := byID[id]
		if !ok {
			return onboarding.AnswersOutput{}, fmt.Errorf("%w: %s", onboarding.ErrUnknownQuestion, id)
		}
		a, err := question.ParseAnswer(q, raw)
		if err != nil {
			return onboarding.AnswersOutput{}, fmt.Errorf("%w: %s: %v", onboarding.ErrInvalidAnswer, id, err)
		}
		submitted[id] = a
	}

	merged := current.Answers.Merge(submitted)
	for id, a := range merged {
		if a == nil {
			delete(merged, id)
		}
	}
	encoded, err := json.Marshal(merged)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveAnswers Marshal: %v", err)
		return onboarding.AnswersOutput{}, err
	}

	pct := question.CompletionPct(current.Questions, merged)
	row, err := uc.repo.SaveState(ctx, repo.SaveStateOptions{
		CaseID:        input.CaseID,
		Answers:       encoded,
		CompletionPct: max(pct, current.CompletionPct),
		UpdatedAt:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveAnswers SaveState: %v", err)
		return onboarding.AnswersOutput{}, err
	}

	if err := uc.syncLovedOne(ctx, input.CaseID, submitted, input.Answers); err != nil {
		return onboarding.AnswersOutput{}, err
	}

	return newAnswersOutput(input.CaseID, uc.toState(ctx, current.Path, current.Questions, row)), nil
}

// syncLovedOne copies the name and photo answers onto the loved one record.
func (uc *implUseCase) syncLovedOne(ctx context.Context, caseID string, submitted question.AnswerSet, raw map[string]json.RawMessage) error {
	in := cases.UpdateLovedOneInput{CaseID: caseID}
	if _, ok := raw[question.IDLovedOneName]; ok {
		var first, last string
		if n, ok := submitted[question.IDLovedOneName].(question.NameAnswer); ok {
			first, last = strings.TrimSpace(n.FirstName), strings.TrimSpace(n.LastName)
		}
		in.FirstName, in.LastName = &first, &last
	}
	if _, ok := raw[question.IDPhoto]; ok {
		var ref string
		if f, ok := submitted[question.IDPhoto].(question.FileAnswer); ok {
			ref = f.Ref
		}
		in.PhotoRef = &ref
	}
	if in.FirstName == nil && in.PhotoRef == nil {
		return nil
	}
	if err := uc.cases.UpdateLovedOne(ctx, in); err != nil {
		uc.l.Errorf(ctx, "uc.SaveAnswers UpdateLovedOne: %v", err)
		return err
	}
	return nil
}

// Complete closes the questionnaire and seeds the default plan once.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, caseID string) (onboarding.CompleteOutput, error) {
	acc, err := uc.cases.Authorize(ctx, sc, caseID, true)
	if err != nil {
		return onboarding.CompleteOutput{}, err
	}
	st, err := uc.State(ctx, acc.Case)
	if err != nil {
		return onboarding.CompleteOutput{}, err
	}
	if missing := question.Missing(st.Questions, st.Answers); len(missing) > 0 {
		return onboarding.CompleteOutput{}, &onboarding.MissingAnswersError{IDs: missing}
	}

	if err := uc.repo.MarkCompleted(ctx, repo.MarkCompletedOptions{CaseID: caseID, CompletedAt: uc.now()}); err != nil {
		uc.l.Errorf(ctx, "uc.Complete MarkCompleted: %v", err)
		return onboarding.CompleteOutput{}, err
	}
	if st, err = uc.State(ctx, acc.Case); err != nil {
		return onboarding.CompleteOutput{}, err
	}

	out := onboarding.CompleteOutput{AnswersOutput: newAnswersOutput(caseID, st)}
	if uc.seeder == nil {
		return out, nil
	}
	n, err := uc.seeder.SeedPlan(ctx, sc, caseID)
	switch {
	case err == nil:
		out.TasksSeeded = n
	case errors.Is(err, plan.ErrAlreadySeeded):
	default:
		uc.l.Errorf(ctx, "uc.Complete SeedPlan case %s: %v", caseID, err)
		out.SeedFailed = true
	}
	return out, nil
}
