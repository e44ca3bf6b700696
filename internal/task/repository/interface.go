package repository

import (
	"context"

	"honorly/internal/model"
)

// Repository is the data access interface of the task domain.
type Repository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	CreateTask(ctx context.Context, t model.Task) error
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// SeedTasks claims the plan marker of a case and inserts the batch in one
	// transaction. It returns ErrAlreadySeeded when the marker exists.
	SeedTasks(ctx context.Context, opt SeedTasksOptions) (int, error)
}
