package task

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honorly/internal/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to model.TaskStatus
		want     bool
	}{
		{model.TaskStatusPending, model.TaskStatusInProgress, true},
		{model.TaskStatusPending, model.TaskStatusCompleted, true},
		{model.TaskStatusInProgress, model.TaskStatusPending, true},
		{model.TaskStatusCompleted, model.TaskStatusInProgress, true},
		{model.TaskStatusCompleted, model.TaskStatusPending, false},
		{model.TaskStatusArchived, model.TaskStatusPending, true},
		{model.TaskStatusArchived, model.TaskStatusCompleted, false},
		{model.TaskStatusHidden, model.TaskStatusInProgress, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Category: model.CategoryUrgent, Status: model.TaskStatusPending},
		{ID: "2", Category: model.CategoryUrgent, Status: model.TaskStatusCompleted},
		{ID: "3", Category: model.CategoryLegal, Status: model.TaskStatusInProgress},
		{ID: "4", Category: model.CategoryLegal, Status: model.TaskStatusHidden},
		{ID: "5", Category: model.CategoryHome, Status: model.TaskStatusArchived},
		{ID: "6", Category: "Legacy", Status: model.TaskStatusPending},
	}

	groups, stats := Summarize(tasks)

	if diff := cmp.Diff(Stats{Total: 5, Completed: 1, InProgress: 1, NotStarted: 2}, stats); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}

	ids := make(map[model.Category][]string)
	var order []model.Category
	for _, g := range groups {
		order = append(order, g.Category)
		for _, tk := range g.Tasks {
			ids[g.Category] = append(ids[g.Category], tk.ID)
		}
		if g.Tasks == nil {
			t.Errorf("%s tasks is nil, want empty", g.Category)
		}
	}
	if diff := cmp.Diff(model.Categories, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	want := map[model.Category][]string{
		model.CategoryUrgent: {"1", "2"},
		model.CategoryLegal:  {"3"},
		model.CategoryHome:   {"5"},
		model.CategoryOther:  {"6"},
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}
}
