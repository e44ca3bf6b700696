package repository

import (
	"time"

	"honorly/internal/model"
)

// ListTasksOptions selects the tasks of one case, oldest first.
type ListTasksOptions struct {
	CaseID string
}

// UpdateTaskOptions updates only the non-nil fields.
type UpdateTaskOptions struct {
	ID              string
	Status          *model.TaskStatus
	DueDate         *time.Time
	ClearDueDate    bool
	AssignedTo      *string
	Description     *string
	CalendarEventID *string
	UpdatedAt       time.Time
}

type SeedTasksOptions struct {
	CaseID   string
	SeededBy string
	Tasks    []model.Task
	At       time.Time
}
