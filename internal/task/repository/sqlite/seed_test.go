package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	dbsqlite "honorly/config/sqlite"
	"honorly/internal/model"
	repo "honorly/internal/task/repository"
	"honorly/pkg/log"
)

var seededAt = time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

func newSeedRepo(t *testing.T) (*implRepository, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := dbsqlite.OpenMemory(ctx)
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.ExecContext(ctx, `
		INSERT INTO cases (id, type, path, owner_user_id, loved_one_id, created_at, updated_at)
		VALUES ('case-1', 'loss', 'recent-loss', 'owner', 'lo-1', ?, ?)`, seededAt, seededAt); err != nil {
		t.Fatalf("insert case: %v", err)
	}
	return New(db, log.NewNop()).(*implRepository), db
}

func seedTask(id, title string) model.Task {
	return model.Task{
		ID:              id,
		CaseID:          "case-1",
		LovedOneID:      "lo-1",
		Title:           title,
		Category:        model.CategoryUrgent,
		Status:          model.TaskStatusPending,
		CreatedByUserID: "owner",
		CreatedAt:       seededAt,
		UpdatedAt:       seededAt,
	}
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table + ` WHERE case_id = 'case-1'`).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestSeedTasksRollsBackOnFailedInsert(t *testing.T) {
	r, db := newSeedRepo(t)
	ctx := context.Background()

	// The second row collides on the primary key after the marker and the
	// first row are already written inside the transaction.
	_, err := r.SeedTasks(ctx, repo.SeedTasksOptions{
		CaseID:   "case-1",
		SeededBy: "owner",
		Tasks:    []model.Task{seedTask("t-1", "Notify family"), seedTask("t-1", "Order flowers")},
		At:       seededAt,
	})
	if !errors.Is(err, repo.ErrFailedToInsert) {
		t.Fatalf("SeedTasks err = %v, want ErrFailedToInsert", err)
	}
	if n := countRows(t, db, "tasks"); n != 0 {
		t.Errorf("tasks after failed seed = %d, want 0", n)
	}
	if n := countRows(t, db, "plan_seeds"); n != 0 {
		t.Errorf("plan_seeds after failed seed = %d, want 0", n)
	}

	// The marker was not left behind, so a retry can claim it.
	n, err := r.SeedTasks(ctx, repo.SeedTasksOptions{
		CaseID:   "case-1",
		SeededBy: "owner",
		Tasks:    []model.Task{seedTask("t-1", "Notify family"), seedTask("t-2", "Order flowers")},
		At:       seededAt,
	})
	if err != nil || n != 2 {
		t.Fatalf("retry = %d, %v; want 2, nil", n, err)
	}
	if n := countRows(t, db, "tasks"); n != 2 {
		t.Errorf("tasks after retry = %d, want 2", n)
	}

	_, err = r.SeedTasks(ctx, repo.SeedTasksOptions{
		CaseID:   "case-1",
		SeededBy: "owner",
		Tasks:    []model.Task{seedTask("t-3", "Cancel subscriptions")},
		At:       seededAt,
	})
	if !errors.Is(err, repo.ErrAlreadySeeded) {
		t.Fatalf("third SeedTasks err = %v, want ErrAlreadySeeded", err)
	}
	if n := countRows(t, db, "tasks"); n != 2 {
		t.Errorf("tasks after rejected seed = %d, want 2", n)
	}
}
