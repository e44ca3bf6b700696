package sqlite

import (
	"context"

	repo "honorly/internal/task/repository"
)

func (r *implRepository) SeedTasks(ctx context.Context, opt repo.SeedTasksOptions) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SeedTasks"), err)
		return 0, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO plan_seeds (case_id, seeded_by, task_count, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (case_id) DO NOTHING`,
		opt.CaseID, opt.SeededBy, len(opt.Tasks), opt.At.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s marker: %v", r.dsn("SeedTasks"), err)
		return 0, repo.ErrFailedToInsert
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, repo.ErrAlreadySeeded
	}

	for _, t := range opt.Tasks {
		if err := insertTask(ctx, tx, t); err != nil {
			r.l.Errorf(ctx, "%s task %q: %v", r.dsn("SeedTasks"), t.Title, err)
			return 0, repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SeedTasks"), err)
		return 0, repo.ErrFailedToInsert
	}
	return len(opt.Tasks), nil
}
