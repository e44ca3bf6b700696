package sqlite

import (
	"context"

	"honorly/internal/waitlist"
	repo "honorly/internal/waitlist/repository"
)

func (r *implRepository) Insert(ctx context.Context, e waitlist.Entry) (waitlist.Entry, bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO waitlist (id, email, name, source, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING`,
		e.ID, e.Email, e.Name, e.Source, e.CreatedAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return waitlist.Entry{}, false, repo.ErrFailedToInsert
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return e, true, nil
	}

	var stored waitlist.Entry
	err = r.db.QueryRowContext(ctx,
		`SELECT id, email, name, source, created_at FROM waitlist WHERE email = ?`, e.Email,
	).Scan(&stored.ID, &stored.Email, &stored.Name, &stored.Source, &stored.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s existing: %v", r.dsn("Insert"), err)
		return waitlist.Entry{}, false, repo.ErrFailedToGet
	}
	return stored, false, nil
}
