package sqlite

import (
	"context"
	"database/sql"
	"time"

	repo "honorly/internal/invitation/repository"
	"honorly/internal/model"
)

const invitationColumns = `id, case_id, email, first_name, message, token, status,
	invited_by_user_id, accepted_by_user_id, created_at, expires_at, accepted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(s rowScanner) (model.Invitation, error) {
	var (
		inv      model.Invitation
		accepted sql.NullTime
	)
	err := s.Scan(
		&inv.ID, &inv.CaseID, &inv.Email, &inv.FirstName, &inv.Message, &inv.Token, &inv.Status,
		&inv.InvitedByUserID, &inv.AcceptedByUserID, &inv.CreatedAt, &inv.ExpiresAt, &accepted,
	)
	if err != nil {
		return model.Invitation{}, err
	}
	if accepted.Valid {
		at := accepted.Time.UTC()
		inv.AcceptedAt = &at
	}
	return inv, nil
}

func (r *implRepository) CreateInvitation(ctx context.Context, inv model.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		inv.ID, inv.CaseID, inv.Email, inv.FirstName, inv.Message, inv.Token, inv.Status,
		inv.InvitedByUserID, inv.AcceptedByUserID, inv.CreatedAt.UTC(), inv.ExpiresAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInvitation"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) ListInvitations(ctx context.Context, caseID string) ([]model.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE case_id = ? ORDER BY created_at DESC, rowid DESC`, caseID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInvitations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make([]model.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInvitations"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListInvitations"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) GetByToken(ctx context.Context, token string) (model.Invitation, error) {
	inv, err := scanInvitation(r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token = ?`, token))
	if err == sql.ErrNoRows {
		return model.Invitation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByToken"), err)
		return model.Invitation{}, repo.ErrFailedToGet
	}
	return inv, nil
}

func (r *implRepository) HasPending(ctx context.Context, caseID, email string, now time.Time) (bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT expires_at FROM invitations
		WHERE case_id = ? AND email = ? AND status = ?`,
		caseID, email, model.InvitationPending,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasPending"), err)
		return false, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var expires time.Time
		if err := rows.Scan(&expires); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("HasPending"), err)
			return false, repo.ErrFailedToGet
		}
		if now.Before(expires) {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("HasPending"), err)
		return false, repo.ErrFailedToGet
	}
	return false, nil
}

func (r *implRepository) MarkAccepted(ctx context.Context, opt repo.MarkAcceptedOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = ?, accepted_by_user_id = ?, accepted_at = ?
		WHERE id = ? AND status = ?`,
		model.InvitationAccepted, opt.UserID, opt.At.UTC(), opt.ID, model.InvitationPending,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkAccepted"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

func (r *implRepository) ReleaseAccepted(ctx context.Context, opt repo.MarkAcceptedOptions) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = ?, accepted_by_user_id = '', accepted_at = NULL
		WHERE id = ? AND status = ? AND accepted_by_user_id = ?`,
		model.InvitationPending, opt.ID, model.InvitationAccepted, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReleaseAccepted"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
