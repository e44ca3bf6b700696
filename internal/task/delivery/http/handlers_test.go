package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"honorly/internal/cases"
	"honorly/internal/model"
	"honorly/internal/task"
	"honorly/pkg/log"
)

type mockUseCase struct {
	task.UseCase
	createIn task.CreateCustomInput
	updateIn task.UpdateInput
	err      error
}

func (m *mockUseCase) Dashboard(_ context.Context, _ model.Scope, caseID string) (task.DashboardOutput, error) {
	groups, stats := task.Summarize([]model.Task{
		{ID: "t1", Title: "Notify family", Category: model.CategoryUrgent, Status: model.TaskStatusCompleted},
		{ID: "t2", Title: "Choose readings", Category: model.CategoryMemorial, Status: model.TaskStatusPending},
	})
	return task.DashboardOutput{CaseID: caseID, LovedOne: model.LovedOne{FirstName: "Jane"}, Role: model.RoleAdmin, CompletionPct: 100, Groups: groups, Stats: stats}, m.err
}

func (m *mockUseCase) CreateCustom(_ context.Context, sc model.Scope, in task.CreateCustomInput) (model.Task, error) {
	m.createIn = in
	if m.err != nil {
		return model.Task{}, m.err
	}
	return model.Task{ID: "t9", CaseID: in.CaseID, Title: in.Title, Category: in.Category, DueDate: in.DueDate, IsCustom: true, CreatedByUserID: sc.UserID}, nil
}

func (m *mockUseCase) Update(_ context.Context, _ model.Scope, in task.UpdateInput) (model.Task, error) {
	m.updateIn = in
	return model.Task{ID: in.TaskID}, m.err
}

func (m *mockUseCase) UpdateStatus(_ context.Context, _ model.Scope, in task.UpdateStatusInput) (model.Task, error) {
	return model.Task{ID: in.TaskID, Status: in.Status}, m.err
}

func serve(h gin.HandlerFunc, method, pattern, target, body string, sc *model.Scope) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sc != nil {
		req = req.WithContext(model.SetScopeToContext(req.Context(), *sc))
	}
	c.Request = req
	r.Handle(method, pattern, h)
	r.HandleContext(c)
	return w
}

var owner = &model.Scope{UserID: "u1"}

func TestDashboardHandler(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{})

	w := serve(h.Dashboard, http.MethodGet, "/cases/:id/tasks", "/cases/c1/tasks", "", owner)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var body struct {
		Data dashboardResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.Groups) != len(model.Categories) {
		t.Errorf("groups = %d, want %d", len(body.Data.Groups), len(model.Categories))
	}
	if body.Data.Stats != (statsResp{Total: 2, Completed: 1, NotStarted: 1}) {
		t.Errorf("stats = %+v", body.Data.Stats)
	}
	if body.Data.LovedOneName != "Jane" || body.Data.CaseID != "c1" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"tasks":[]`) {
		t.Errorf("empty categories should render as []: %s", w.Body.String())
	}
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc)

	w := serve(h.Create, http.MethodPost, "/cases/:id/tasks", "/cases/c1/tasks",
		`{"title":"Order flowers","category":"Memorial Planning","dueDate":"2026-03-01"}`, owner)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if uc.createIn.CaseID != "c1" || uc.createIn.DueDate == nil || !uc.createIn.DueDate.Equal(want) {
		t.Errorf("use case got %+v", uc.createIn)
	}
	if !strings.Contains(w.Body.String(), `"dueDate":"2026-03-01"`) || !strings.Contains(w.Body.String(), `"isCustom":true`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	bad := []string{
		`{"category":"Other"}`,
		`{"title":"x","category":"Other","dueDate":"next week"}`,
	}
	for _, b := range bad {
		if w := serve(h.Create, http.MethodPost, "/cases/:id/tasks", "/cases/c1/tasks", b, owner); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", b, w.Code)
		}
	}
}

func TestUpdateHandlerClearsDueDate(t *testing.T) {
	uc := &mockUseCase{}
	h := New(log.NewNop(), uc)

	w := serve(h.Update, http.MethodPatch, "/tasks/:id", "/tasks/t1", `{"dueDate":"","assignedTo":"u2"}`, owner)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if uc.updateIn.DueDate == nil || !uc.updateIn.DueDate.IsZero() {
		t.Errorf("due date = %v, want zero (clear)", uc.updateIn.DueDate)
	}
	if uc.updateIn.AssignedTo == nil || *uc.updateIn.AssignedTo != "u2" || uc.updateIn.Description != nil {
		t.Errorf("use case got %+v", uc.updateIn)
	}
}

func TestHandlersMapErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{task.ErrInvalidTransition, http.StatusBadRequest},
		{task.ErrTaskNotFound, http.StatusNotFound},
		{cases.ErrForbidden, http.StatusForbidden},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		h := New(log.NewNop(), &mockUseCase{err: tt.err})
		w := serve(h.UpdateStatus, http.MethodPatch, "/tasks/:id/status", "/tasks/t1/status", `{"status":"completed"}`, owner)
		if w.Code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.want)
		}
	}

	h := New(log.NewNop(), &mockUseCase{})
	if w := serve(h.Dashboard, http.MethodGet, "/cases/:id/tasks", "/cases/c1/tasks", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no scope status = %d, want 401", w.Code)
	}
}
