package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	dbsqlite "honorly/config/sqlite"
	"honorly/internal/cases"
	caseRepo "honorly/internal/cases/repository/sqlite"
	caseUC "honorly/internal/cases/usecase"
	"honorly/internal/model"
	"honorly/internal/onboarding"
	onbRepo "honorly/internal/onboarding/repository/sqlite"
	onbUC "honorly/internal/onboarding/usecase"
	"honorly/internal/plan"
	"honorly/internal/question"
	"honorly/internal/task"
	taskRepo "honorly/internal/task/repository/sqlite"
	"honorly/pkg/gcalendar"
	"honorly/pkg/log"
)

type fakeCalendar struct {
	reminders []gcalendar.Reminder
	err       error
}

func (f *fakeCalendar) CreateReminder(_ context.Context, r gcalendar.Reminder) (string, error) {
	f.reminders = append(f.reminders, r)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("evt-%d", len(f.reminders)), nil
}

type failingSeeder struct{}

func (failingSeeder) SeedPlan(context.Context, model.Scope, string) (int, error) {
	return 0, errors.New("database is locked")
}

type fixture struct {
	uc         *implUseCase
	onboarding interface {
		onboarding.UseCase
		SetPlanSeeder(onboarding.PlanSeeder)
	}
	generator *plan.Generator
	calendar  *fakeCalendar
	caseID    string
}

var (
	owner   = model.Scope{UserID: "owner"}
	helper  = model.Scope{UserID: "helper"}
	outside = model.Scope{UserID: "outside"}
)

var fullAnswers = map[string]json.RawMessage{
	"loved_one_name":    json.RawMessage(`{"first_name":"Jane","last_name":"Doe"}`),
	"relationship":      json.RawMessage(`"Parent"`),
	"date_of_death":     json.RawMessage(`"2026-01-10"`),
	"location":          json.RawMessage(`{"state":"NY","county":"Kings"}`),
	"dependents_status": json.RawMessage(`"No"`),
	"will_status":       json.RawMessage(`"Yes"`),
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db, err := dbsqlite.OpenMemory(ctx)
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := log.NewNop()
	catalog := question.MustLoadCatalog()
	gen, err := plan.New(catalog)
	if err != nil {
		t.Fatalf("plan.New: %v", err)
	}

	casesUC := caseUC.New(caseRepo.New(db, l), l)
	onb := onbUC.New(onbRepo.New(db, l), casesUC, catalog, l)
	cal := &fakeCalendar{}
	uc := New(taskRepo.New(db, l), casesUC, onb, gen, cal, "https://app.example.com/", l)
	n := 0
	uc.newID = func() string { n++; return fmt.Sprintf("task-%03d", n) }
	uc.now = func() time.Time { return time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC) }
	onb.SetPlanSeeder(uc)

	c, err := casesUC.Create(ctx, owner, cases.CreateInput{Type: model.CaseTypeLoss})
	if err != nil {
		t.Fatalf("Create case: %v", err)
	}
	if err := casesUC.AddMember(ctx, c.Case.ID, helper.UserID, model.RoleSupport); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	return fixture{uc: uc, onboarding: onb, generator: gen, calendar: cal, caseID: c.Case.ID}
}

func (f fixture) finishOnboarding(t *testing.T) onboarding.CompleteOutput {
	t.Helper()
	ctx := context.Background()
	if _, err := f.onboarding.SaveAnswers(ctx, owner, onboarding.SaveAnswersInput{CaseID: f.caseID, Answers: fullAnswers}); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
	out, err := f.onboarding.Complete(ctx, owner, f.caseID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	return out
}

func (f fixture) expectedTitles(t *testing.T) []string {
	t.Helper()
	st, err := f.onboarding.GetAnswers(context.Background(), owner, f.caseID)
	if err != nil {
		t.Fatalf("GetAnswers: %v", err)
	}
	var titles []string
	for _, d := range f.generator.Derive(st.State.Answers) {
		titles = append(titles, d.Title)
	}
	return titles
}

func dashboardTitles(out task.DashboardOutput) map[string]bool {
	got := make(map[string]bool)
	for _, g := range out.Groups {
		for _, t := range g.Tasks {
			got[t.Title] = true
		}
	}
	return got
}

func TestCompleteSeedsPlanOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out := f.finishOnboarding(t)
	want := f.expectedTitles(t)
	if out.TasksSeeded != len(want) || out.SeedFailed {
		t.Fatalf("seeded = %d failed = %v, want %d", out.TasksSeeded, out.SeedFailed, len(want))
	}

	if _, err := f.uc.SeedPlan(ctx, owner, f.caseID); !errors.Is(err, plan.ErrAlreadySeeded) {
		t.Errorf("second SeedPlan err = %v, want ErrAlreadySeeded", err)
	}

	dash, err := f.uc.Dashboard(ctx, owner, f.caseID)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Stats.Total != len(want) || dash.Stats.NotStarted != len(want) {
		t.Errorf("stats = %+v, want %d pending", dash.Stats, len(want))
	}
	got := dashboardTitles(dash)
	for _, title := range want {
		if !got[title] {
			t.Errorf("dashboard missing %q", title)
		}
	}
	if !got["Review probate requirements for Kings County, NY"] {
		t.Error("location task was not personalised")
	}

	for _, g := range dash.Groups {
		for _, tk := range g.Tasks {
			if tk.IsCustom || tk.CreatedByUserID != owner.UserID || tk.Status != model.TaskStatusPending || tk.Category != g.Category {
				t.Errorf("unexpected seeded task %+v in %s", tk, g.Category)
			}
		}
	}
}

func TestSeedPlanConcurrentCallsSeedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.onboarding.SaveAnswers(ctx, owner, onboarding.SaveAnswersInput{CaseID: f.caseID, Answers: fullAnswers}); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
	var ids atomic.Int64
	f.uc.newID = func() string { return fmt.Sprintf("task-%03d", ids.Add(1)) }

	const callers = 2
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		ns    [callers]int
		errs  [callers]error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			ns[i], errs[i] = f.uc.SeedPlan(ctx, owner, f.caseID)
		}(i)
	}
	close(start)
	wg.Wait()

	want := len(f.expectedTitles(t))
	seeded, rejected := 0, 0
	for i := range errs {
		switch {
		case errs[i] == nil:
			seeded++
			if ns[i] != want {
				t.Errorf("winner seeded %d tasks, want %d", ns[i], want)
			}
		case errors.Is(errs[i], plan.ErrAlreadySeeded):
			rejected++
		default:
			t.Errorf("SeedPlan err = %v", errs[i])
		}
	}
	if seeded != 1 || rejected != 1 {
		t.Fatalf("seeded = %d rejected = %d, want 1 and 1", seeded, rejected)
	}

	dash, err := f.uc.Dashboard(ctx, owner, f.caseID)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Stats.Total != want {
		t.Errorf("total tasks = %d, want %d", dash.Stats.Total, want)
	}
}

func TestDashboardSeedsLazily(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboarding.SetPlanSeeder(failingSeeder{})

	out := f.finishOnboarding(t)
	if !out.SeedFailed {
		t.Fatal("expected the first seed to fail")
	}

	dash, err := f.uc.Dashboard(ctx, helper, f.caseID)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	want := f.expectedTitles(t)
	if dash.Stats.Total != len(want) {
		t.Errorf("lazy seed stored %d tasks, want %d", dash.Stats.Total, len(want))
	}
	if dash.CompletionPct != 100 || dash.Role != model.RoleSupport {
		t.Errorf("dashboard header = pct %d role %s", dash.CompletionPct, dash.Role)
	}

	again, err := f.uc.Dashboard(ctx, owner, f.caseID)
	if err != nil {
		t.Fatalf("Dashboard again: %v", err)
	}
	if again.Stats.Total != dash.Stats.Total {
		t.Errorf("second load changed task count: %d -> %d", dash.Stats.Total, again.Stats.Total)
	}
}

func TestDashboardBeforeOnboarding(t *testing.T) {
	f := newFixture(t)

	dash, err := f.uc.Dashboard(context.Background(), owner, f.caseID)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	var cats []model.Category
	for _, g := range dash.Groups {
		cats = append(cats, g.Category)
		if len(g.Tasks) != 0 {
			t.Errorf("%s has tasks before onboarding", g.Category)
		}
	}
	if diff := cmp.Diff(model.Categories, cats); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}
	if dash.Stats != (task.Stats{}) {
		t.Errorf("stats = %+v, want zero", dash.Stats)
	}

	if _, err := f.uc.Dashboard(context.Background(), outside, f.caseID); !errors.Is(err, cases.ErrForbidden) {
		t.Errorf("outsider err = %v, want ErrForbidden", err)
	}
}

func TestCreateCustom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tk, err := f.uc.CreateCustom(ctx, helper, task.CreateCustomInput{
		CaseID:   f.caseID,
		Title:    "  Call the florist ",
		Category: model.CategoryMemorial,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("CreateCustom: %v", err)
	}
	if tk.Title != "Call the florist" || !tk.IsCustom || tk.CreatedByUserID != helper.UserID || tk.Status != model.TaskStatusPending {
		t.Errorf("unexpected task %+v", tk)
	}
	if len(f.calendar.reminders) != 1 || f.calendar.reminders[0].Link != "https://app.example.com/dashboard?case="+f.caseID {
		t.Errorf("reminders = %+v", f.calendar.reminders)
	}

	dash, _ := f.uc.Dashboard(ctx, owner, f.caseID)
	if dash.Groups[1].Category != model.CategoryMemorial || len(dash.Groups[1].Tasks) != 1 {
		t.Fatalf("custom task not grouped under Memorial Planning: %+v", dash.Groups)
	}
	if got := dash.Groups[1].Tasks[0].DueDate; got == nil || !got.Equal(due) {
		t.Errorf("due date = %v, want %v", got, due)
	}

	long := make([]byte, task.MaxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}
	tests := []struct {
		name string
		sc   model.Scope
		in   task.CreateCustomInput
		want error
	}{
		{"empty title", owner, task.CreateCustomInput{CaseID: f.caseID, Title: "  ", Category: model.CategoryOther}, task.ErrInvalidTitle},
		{"long title", owner, task.CreateCustomInput{CaseID: f.caseID, Title: string(long), Category: model.CategoryOther}, task.ErrInvalidTitle},
		{"bad category", owner, task.CreateCustomInput{CaseID: f.caseID, Title: "x", Category: "Errands"}, task.ErrInvalidCategory},
		{"outsider", outside, task.CreateCustomInput{CaseID: f.caseID, Title: "x", Category: model.CategoryOther}, cases.ErrForbidden},
		{"unknown case", owner, task.CreateCustomInput{CaseID: "nope", Title: "x", Category: model.CategoryOther}, cases.ErrCaseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.CreateCustom(ctx, tt.sc, tt.in); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk, err := f.uc.CreateCustom(ctx, owner, task.CreateCustomInput{CaseID: f.caseID, Title: "Cancel phone plan", Category: model.CategoryHome})
	if err != nil {
		t.Fatalf("CreateCustom: %v", err)
	}

	steps := []struct {
		to   model.TaskStatus
		want error
	}{
		{model.TaskStatusInProgress, nil},
		{model.TaskStatusCompleted, nil},
		{model.TaskStatusPending, task.ErrInvalidTransition},
		{model.TaskStatusHidden, nil},
		{model.TaskStatusCompleted, task.ErrInvalidTransition},
		{"done", task.ErrInvalidStatus},
	}
	for _, s := range steps {
		_, err := f.uc.UpdateStatus(ctx, helper, task.UpdateStatusInput{TaskID: tk.ID, Status: s.to})
		if !errors.Is(err, s.want) {
			t.Errorf("-> %s: err = %v, want %v", s.to, err, s.want)
		}
	}

	dash, _ := f.uc.Dashboard(ctx, owner, f.caseID)
	if dash.Stats.Total != 0 {
		t.Errorf("hidden task counted: %+v", dash.Stats)
	}

	if _, err := f.uc.UpdateStatus(ctx, owner, task.UpdateStatusInput{TaskID: "missing", Status: model.TaskStatusPending}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("missing task err = %v", err)
	}
	if _, err := f.uc.UpdateStatus(ctx, outside, task.UpdateStatusInput{TaskID: tk.ID, Status: model.TaskStatusPending}); !errors.Is(err, cases.ErrForbidden) {
		t.Errorf("outsider err = %v", err)
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tk, err := f.uc.CreateCustom(ctx, owner, task.CreateCustomInput{CaseID: f.caseID, Title: "File the will", Category: model.CategoryLegal})
	if err != nil {
		t.Fatalf("CreateCustom: %v", err)
	}
	if len(f.calendar.reminders) != 0 {
		t.Fatal("no reminder expected without a due date")
	}

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	assignee := "helper"
	desc := " Bring two copies "
	got, err := f.uc.Update(ctx, owner, task.UpdateInput{TaskID: tk.ID, DueDate: &due, AssignedTo: &assignee, Description: &desc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) || got.AssignedToUserID != "helper" || got.Description != "Bring two copies" {
		t.Errorf("unexpected task %+v", got)
	}
	if len(f.calendar.reminders) != 1 || f.calendar.reminders[0].Title != "File the will" {
		t.Errorf("reminders = %+v", f.calendar.reminders)
	}

	// Same due date again does not duplicate the reminder.
	if _, err := f.uc.Update(ctx, owner, task.UpdateInput{TaskID: tk.ID, DueDate: &due}); err != nil {
		t.Fatalf("Update same date: %v", err)
	}
	if len(f.calendar.reminders) != 1 {
		t.Errorf("reminders = %d, want 1", len(f.calendar.reminders))
	}

	f.calendar.err = errors.New("calendar quota exceeded")
	later := due.AddDate(0, 0, 7)
	if _, err := f.uc.Update(ctx, owner, task.UpdateInput{TaskID: tk.ID, DueDate: &later}); err != nil {
		t.Errorf("calendar failure must not fail the update: %v", err)
	}

	cleared, err := f.uc.Update(ctx, owner, task.UpdateInput{TaskID: tk.ID, DueDate: &time.Time{}})
	if err != nil {
		t.Fatalf("Update clear: %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("due date = %v, want cleared", cleared.DueDate)
	}

	if _, err := f.uc.Update(ctx, owner, task.UpdateInput{TaskID: tk.ID}); !errors.Is(err, task.ErrNothingToUpdate) {
		t.Errorf("empty update err = %v", err)
	}
}
