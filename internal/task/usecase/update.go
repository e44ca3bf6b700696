package usecase

import (
	"context"
	"strings"

	"honorly/internal/model"
	"honorly/internal/task"
	repo "honorly/internal/task/repository"
	"honorly/pkg/gcalendar"
)

// loadTask fetches a task and checks the caller can access its case.
func (uc *implUseCase) loadTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if _, err := uc.cases.Authorize(ctx, sc, t.CaseID, false); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	if !input.Status.Valid() {
		return model.Task{}, task.ErrInvalidStatus
	}

	t, err := uc.loadTask(ctx, sc, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}
	if t.Status == input.Status {
		return t, nil
	}
	if !task.CanTransition(t.Status, input.Status) {
		return model.Task{}, task.ErrInvalidTransition
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        t.ID,
		Status:    &input.Status,
		UpdatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return updated, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.DueDate == nil && input.AssignedTo == nil && input.Description == nil {
		return model.Task{}, task.ErrNothingToUpdate
	}

	t, err := uc.loadTask(ctx, sc, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	opt := repo.UpdateTaskOptions{ID: t.ID, UpdatedAt: uc.now()}
	if input.DueDate != nil {
		if input.DueDate.IsZero() {
			opt.ClearDueDate = true
		} else {
			opt.DueDate = input.DueDate
		}
	}
	if input.AssignedTo != nil {
		v := strings.TrimSpace(*input.AssignedTo)
		opt.AssignedTo = &v
	}
	if input.Description != nil {
		v := strings.TrimSpace(*input.Description)
		opt.Description = &v
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update: %v", err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	if opt.DueDate != nil && (t.DueDate == nil || !t.DueDate.Equal(*opt.DueDate)) {
		uc.scheduleReminder(ctx, updated)
	}
	return updated, nil
}

// scheduleReminder puts the due date on the shared calendar. Failures are
// logged and never reach the caller.
func (uc *implUseCase) scheduleReminder(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	link := ""
	if uc.appURL != "" {
		link = strings.TrimRight(uc.appURL, "/") + "/dashboard?case=" + t.CaseID
	}
	eventID, err := uc.calendar.CreateReminder(ctx, gcalendar.Reminder{
		Title:       t.Title,
		Description: t.Description,
		Due:         *t.DueDate,
		Link:        link,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.scheduleReminder task=%s: %v", t.ID, err)
		return
	}

	if _, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              t.ID,
		CalendarEventID: &eventID,
		UpdatedAt:       t.UpdatedAt,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.scheduleReminder store event id task=%s: %v", t.ID, err)
	}
}
