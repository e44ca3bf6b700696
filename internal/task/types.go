package task

import (
	"time"

	"honorly/internal/model"
)

const MaxTitleLength = 200

// Group holds the tasks of one category in dashboard order.
type Group struct {
	Category model.Category
	Tasks    []model.Task
}

// Stats counts non-hidden tasks.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	NotStarted int
}

type DashboardOutput struct {
	CaseID        string
	LovedOne      model.LovedOne
	Role          model.MemberRole
	CompletionPct int
	Groups        []Group
	Stats         Stats
}

type CreateCustomInput struct {
	CaseID      string
	Title       string
	Category    model.Category
	Description string
	DueDate     *time.Time
	AssignedTo  string
}

type UpdateStatusInput struct {
	TaskID string
	Status model.TaskStatus
}

// UpdateInput changes only the non-nil fields. A zero DueDate clears it.
type UpdateInput struct {
	TaskID      string
	DueDate     *time.Time
	AssignedTo  *string
	Description *string
}

var transitions = map[model.TaskStatus][]model.TaskStatus{
	model.TaskStatusPending:    {model.TaskStatusInProgress, model.TaskStatusCompleted, model.TaskStatusArchived, model.TaskStatusHidden},
	model.TaskStatusInProgress: {model.TaskStatusCompleted, model.TaskStatusPending, model.TaskStatusArchived, model.TaskStatusHidden},
	model.TaskStatusCompleted:  {model.TaskStatusInProgress, model.TaskStatusArchived, model.TaskStatusHidden},
	model.TaskStatusArchived:   {model.TaskStatusPending},
	model.TaskStatusHidden:     {model.TaskStatusPending},
}

// CanTransition reports whether a task may move from one status to another.
func CanTransition(from, to model.TaskStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Summarize groups tasks by category and counts them. Every category is
// present in the result. Hidden tasks are left out of both.
func Summarize(tasks []model.Task) ([]Group, Stats) {
	byCat := make(map[model.Category][]model.Task, len(model.Categories))
	var st Stats
	for _, t := range tasks {
		if t.Status == model.TaskStatusHidden {
			continue
		}
		st.Total++
		switch t.Status {
		case model.TaskStatusCompleted:
			st.Completed++
		case model.TaskStatusInProgress:
			st.InProgress++
		case model.TaskStatusPending:
			st.NotStarted++
		}
		cat := t.Category
		if !cat.Valid() {
			cat = model.CategoryOther
		}
		byCat[cat] = append(byCat[cat], t)
	}

	groups := make([]Group, 0, len(model.Categories))
	for _, c := range model.Categories {
		ts := byCat[c]
		if ts == nil {
			ts = []model.Task{}
		}
		groups = append(groups, Group{Category: c, Tasks: ts})
	}
	return groups, st
}
