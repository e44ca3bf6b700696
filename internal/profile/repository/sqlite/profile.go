package sqlite

import (
	"context"
	"database/sql"

	"honorly/internal/model"
	repo "honorly/internal/profile/repository"
)

func (r *implRepository) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, email, first_name, last_name, phone, created_at, updated_at
		FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.UserID, &p.Email, &p.FirstName, &p.LastName, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpsertProfile keeps the original created_at of an existing row.
func (r *implRepository) UpsertProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, email, first_name, last_name, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			phone = excluded.phone,
			updated_at = excluded.updated_at`,
		p.UserID, p.Email, p.FirstName, p.LastName, p.Phone, p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProfile"), err)
		return model.Profile{}, repo.ErrFailedToUpsert
	}
	return r.GetProfile(ctx, p.UserID)
}

func (r *implRepository) DeleteProfile(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProfile"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
