package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"honorly/internal/model"
	repo "honorly/internal/task/repository"
)

const taskColumns = `id, case_id, loved_one_id, title, category, status, assigned_to_user_id,
	due_date, description, is_custom, created_by_user_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t   model.Task
		due sql.NullTime
	)
	err := s.Scan(
		&t.ID, &t.CaseID, &t.LovedOneID, &t.Title, &t.Category, &t.Status, &t.AssignedToUserID,
		&due, &t.Description, &t.IsCustom, &t.CreatedByUserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if due.Valid {
		d := due.Time.UTC()
		t.DueDate = &d
	}
	return t, nil
}

func dueValue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.UTC()
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE case_id = ? ORDER BY created_at, rowid`

	rows, err := r.db.QueryContext(ctx, query, opt.CaseID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// GetTask returns a zero Task when id does not exist.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) CreateTask(ctx context.Context, t model.Task) error {
	if err := insertTask(ctx, r.db, t); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertTask(ctx context.Context, db execer, t model.Task) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.CaseID, t.LovedOneID, t.Title, t.Category, t.Status, t.AssignedToUserID,
		dueValue(t.DueDate), t.Description, t.IsCustom, t.CreatedByUserID, t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	return err
}

// UpdateTask applies the set fields and returns the stored task. A zero Task
// means id does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []any{opt.UpdatedAt.UTC()}
	if opt.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *opt.Status)
	}
	switch {
	case opt.ClearDueDate:
		sets = append(sets, "due_date = NULL")
	case opt.DueDate != nil:
		sets = append(sets, "due_date = ?")
		args = append(args, opt.DueDate.UTC())
	}
	if opt.AssignedTo != nil {
		sets = append(sets, "assigned_to_user_id = ?")
		args = append(args, *opt.AssignedTo)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.CalendarEventID != nil {
		sets = append(sets, "calendar_event_id = ?")
		args = append(args, *opt.CalendarEventID)
	}
	args = append(args, opt.ID)

	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetTask(ctx, opt.ID)
}
