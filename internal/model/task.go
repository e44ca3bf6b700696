package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusArchived   TaskStatus = "archived"
	TaskStatusHidden     TaskStatus = "hidden"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusArchived, TaskStatusHidden:
		return true
	}
	return false
}

// Category groups tasks on the dashboard. The set is closed.
type Category string

const (
	CategoryUrgent   Category = "Urgent Needs"
	CategoryMemorial Category = "Memorial Planning"
	CategoryLegal    Category = "Legal & Financial"
	CategoryHome     Category = "Home/Property & Accounts"
	CategoryOther    Category = "Other"
)

// Categories lists every category in dashboard order.
var Categories = []Category{
	CategoryUrgent,
	CategoryMemorial,
	CategoryLegal,
	CategoryHome,
	CategoryOther,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Task is a single checklist item attached to a case.
type Task struct {
	ID               string
	CaseID           string
	LovedOneID       string
	Title            string
	Category         Category
	Status           TaskStatus
	AssignedToUserID string
	DueDate          *time.Time
	Description      string
	IsCustom         bool
	CreatedByUserID  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
