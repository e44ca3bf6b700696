package sqlite

import (
	"context"
	"database/sql"

	repo "honorly/internal/onboarding/repository"
)

const selectState = `
	SELECT case_id, answers, completion_pct, completed_at, updated_at
	FROM onboarding_answers WHERE case_id = ?`

func (r *implRepository) GetState(ctx context.Context, caseID string) (repo.StateRow, error) {
	row, err := r.scanState(r.db.QueryRowContext(ctx, selectState, caseID))
	if err == sql.ErrNoRows {
		return repo.StateRow{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetState"), err)
		return repo.StateRow{}, repo.ErrFailedToGet
	}
	return row, nil
}

// SaveState upserts the answers and keeps the higher completion percentage.
func (r *implRepository) SaveState(ctx context.Context, opt repo.SaveStateOptions) (repo.StateRow, error) {
	const query = `
		INSERT INTO onboarding_answers (case_id, answers, completion_pct, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (case_id) DO UPDATE SET
			answers        = excluded.answers,
			completion_pct = MAX(completion_pct, excluded.completion_pct),
			updated_at     = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, opt.CaseID, string(opt.Answers), opt.CompletionPct, opt.UpdatedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveState"), err)
		return repo.StateRow{}, repo.ErrFailedToUpsert
	}
	return r.GetState(ctx, opt.CaseID)
}

// MarkCompleted records completion and pins the percentage at 100. The first
// completion time is kept.
func (r *implRepository) MarkCompleted(ctx context.Context, opt repo.MarkCompletedOptions) error {
	const query = `
		INSERT INTO onboarding_answers (case_id, answers, completion_pct, completed_at, updated_at)
		VALUES (?, '{}', 100, ?, ?)
		ON CONFLICT (case_id) DO UPDATE SET
			completion_pct = 100,
			completed_at   = COALESCE(completed_at, excluded.completed_at),
			updated_at     = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, opt.CaseID, opt.CompletedAt, opt.CompletedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkCompleted"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) scanState(row *sql.Row) (repo.StateRow, error) {
	var out repo.StateRow
	var answers string
	var completed sql.NullTime
	if err := row.Scan(&out.CaseID, &answers, &out.CompletionPct, &completed, &out.UpdatedAt); err != nil {
		return repo.StateRow{}, err
	}
	out.Answers = []byte(answers)
	if completed.Valid {
		t := completed.Time
		out.CompletedAt = &t
	}
	return out, nil
}
