package sqlite

import (
	"context"
	"database/sql"

	repo "honorly/internal/cases/repository"
	"honorly/internal/model"
)

// GetMember returns a zero Member when userID is not on the case.
func (r *implRepository) GetMember(ctx context.Context, caseID, userID string) (model.Member, error) {
	const query = `SELECT case_id, user_id, role, created_at FROM case_members WHERE case_id = ? AND user_id = ?`

	var m model.Member
	err := r.db.QueryRowContext(ctx, query, caseID, userID).Scan(&m.CaseID, &m.UserID, &m.Role, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMember"), err)
		return model.Member{}, repo.ErrFailedToGet
	}
	return m, nil
}

// AddMember is a no-op when the user is already on the case.
func (r *implRepository) AddMember(ctx context.Context, m model.Member) error {
	const query = `
		INSERT INTO case_members (case_id, user_id, role, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (case_id, user_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, m.CaseID, m.UserID, m.Role, m.CreatedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddMember"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) DeleteMembershipsByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM case_members WHERE user_id = ?`, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMembershipsByUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
