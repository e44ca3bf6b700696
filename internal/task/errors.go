package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTitle      = errors.New("title must be between 1 and 200 characters")
	ErrInvalidCategory   = errors.New("unknown task category")
	ErrInvalidStatus     = errors.New("unknown task status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrNothingToUpdate   = errors.New("no fields to update")
)
