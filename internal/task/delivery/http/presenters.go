package http

import (
	"time"

	"honorly/internal/model"
	"honorly/internal/task"
	"honorly/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title" binding:"required,max=200"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"max=2000"`
	DueDate     string `json:"dueDate"`
	AssignedTo  string `json:"assignedTo"`
}

func (r createReq) toInput(caseID string, due *time.Time) task.CreateCustomInput {
	return task.CreateCustomInput{
		CaseID:      caseID,
		Title:       r.Title,
		Category:    model.Category(r.Category),
		Description: r.Description,
		DueDate:     due,
		AssignedTo:  r.AssignedTo,
	}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// updateReq fields left out of the body are unchanged. An empty dueDate
// clears it.
type updateReq struct {
	DueDate     *string `json:"dueDate"`
	AssignedTo  *string `json:"assignedTo"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// --- Response DTOs ---

type taskResp struct {
	ID               string         `json:"id"`
	CaseID           string         `json:"caseId"`
	LovedOneID       string         `json:"lovedOneId"`
	Title            string         `json:"title"`
	Category         string         `json:"category"`
	Status           string         `json:"status"`
	AssignedToUserID string         `json:"assignedToUserId,omitempty"`
	DueDate          *response.Date `json:"dueDate,omitempty"`
	Description      string         `json:"description,omitempty"`
	IsCustom         bool           `json:"isCustom"`
	CreatedByUserID  string         `json:"createdByUserId"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:               t.ID,
		CaseID:           t.CaseID,
		LovedOneID:       t.LovedOneID,
		Title:            t.Title,
		Category:         string(t.Category),
		Status:           string(t.Status),
		AssignedToUserID: t.AssignedToUserID,
		Description:      t.Description,
		IsCustom:         t.IsCustom,
		CreatedByUserID:  t.CreatedByUserID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	return resp
}

type groupResp struct {
	Category string     `json:"category"`
	Tasks    []taskResp `json:"tasks"`
}

type statsResp struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

type dashboardResp struct {
	CaseID        string      `json:"caseId"`
	LovedOneName  string      `json:"lovedOneName"`
	Role          string      `json:"role"`
	CompletionPct int         `json:"completionPct"`
	Groups        []groupResp `json:"groups"`
	Stats         statsResp   `json:"stats"`
}

func newDashboardResp(out task.DashboardOutput) dashboardResp {
	groups := make([]groupResp, len(out.Groups))
	for i, g := range out.Groups {
		items := make([]taskResp, len(g.Tasks))
		for j, t := range g.Tasks {
			items[j] = newTaskResp(t)
		}
		groups[i] = groupResp{Category: string(g.Category), Tasks: items}
	}
	return dashboardResp{
		CaseID:        out.CaseID,
		LovedOneName:  out.LovedOne.FullName(),
		Role:          string(out.Role),
		CompletionPct: out.CompletionPct,
		Groups:        groups,
		Stats: statsResp{
			Total:      out.Stats.Total,
			Completed:  out.Stats.Completed,
			InProgress: out.Stats.InProgress,
			NotStarted: out.Stats.NotStarted,
		},
	}
}

type itemResp struct {
	Task taskResp `json:"task"`
}
