package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"honorly/internal/model"
	"honorly/internal/task"
)

func (uc *implUseCase) CreateCustom(ctx context.Context, sc model.Scope, input task.CreateCustomInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > task.MaxTitleLength {
		return model.Task{}, task.ErrInvalidTitle
	}
	if !input.Category.Valid() {
		return model.Task{}, task.ErrInvalidCategory
	}

	access, err := uc.cases.Authorize(ctx, sc, input.CaseID, false)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.now()
	t := model.Task{
		ID:               uc.newID(),
		CaseID:           input.CaseID,
		LovedOneID:       access.LovedOne.ID,
		Title:            title,
		Category:         input.Category,
		Status:           model.TaskStatusPending,
		AssignedToUserID: strings.TrimSpace(input.AssignedTo),
		DueDate:          input.DueDate,
		Description:      strings.TrimSpace(input.Description),
		IsCustom:         true,
		CreatedByUserID:  sc.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.CreateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.CreateCustom: %v", err)
		return model.Task{}, err
	}

	if t.DueDate != nil {
		uc.scheduleReminder(ctx, t)
	}
	return t, nil
}
