package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	repo "honorly/internal/cases/repository"
	"honorly/internal/model"
)

// CreateCase inserts the case, its loved one and the owner membership in one
// transaction.
func (r *implRepository) CreateCase(ctx context.Context, opt repo.CreateCaseOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateCase"), err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	c, lo, m := opt.Case, opt.LovedOne, opt.Owner
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO cases (id, type, path, owner_user_id, loved_one_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Type, c.Path, c.OwnerUserID, c.LovedOneID, c.CreatedAt, c.UpdatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s case: %v", r.dsn("CreateCase"), err)
		return repo.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO loved_ones (id, case_id, first_name, last_name, photo_ref)
		VALUES (?, ?, ?, ?, ?)`,
		lo.ID, c.ID, lo.FirstName, lo.LastName, lo.PhotoRef,
	); err != nil {
		r.l.Errorf(ctx, "%s loved one: %v", r.dsn("CreateCase"), err)
		return repo.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO case_members (case_id, user_id, role, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, m.UserID, m.Role, m.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s member: %v", r.dsn("CreateCase"), err)
		return repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateCase"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetCase returns a zero Case when id does not exist.
func (r *implRepository) GetCase(ctx context.Context, id string) (model.Case, error) {
	const query = `
		SELECT id, type, path, owner_user_id, loved_one_id, created_at, updated_at
		FROM cases WHERE id = ?`

	var c model.Case
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Type, &c.Path, &c.OwnerUserID, &c.LovedOneID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Case{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCase"), err)
		return model.Case{}, repo.ErrFailedToGet
	}
	return c, nil
}

// GetLovedOne returns a zero LovedOne when the case has none.
func (r *implRepository) GetLovedOne(ctx context.Context, caseID string) (model.LovedOne, error) {
	const query = `SELECT id, case_id, first_name, last_name, photo_ref FROM loved_ones WHERE case_id = ?`

	var lo model.LovedOne
	err := r.db.QueryRowContext(ctx, query, caseID).Scan(&lo.ID, &lo.CaseID, &lo.FirstName, &lo.LastName, &lo.PhotoRef)
	if err == sql.ErrNoRows {
		return model.LovedOne{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLovedOne"), err)
		return model.LovedOne{}, repo.ErrFailedToGet
	}
	return lo, nil
}

func (r *implRepository) UpdateLovedOne(ctx context.Context, opt repo.UpdateLovedOneOptions) error {
	sets, args := buildLovedOneUpdate(opt)
	if len(sets) == 0 {
		return nil
	}
	args = append(args, opt.CaseID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateLovedOne"), err)
		return repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	query := "UPDATE loved_ones SET " + strings.Join(sets, ", ") + " WHERE case_id = ?"
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLovedOne"), err)
		return repo.ErrFailedToUpdate
	}
	if _, err := tx.ExecContext(ctx, `UPDATE cases SET updated_at = ? WHERE id = ?`, time.Now().UTC(), opt.CaseID); err != nil {
		r.l.Errorf(ctx, "%s touch case: %v", r.dsn("UpdateLovedOne"), err)
		return repo.ErrFailedToUpdate
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateLovedOne"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListCasesForUser returns the cases userID owns or belongs to, newest first.
func (r *implRepository) ListCasesForUser(ctx context.Context, userID string) ([]repo.CaseRow, error) {
	const query = `
		SELECT c.id, c.type, c.path, c.owner_user_id, c.loved_one_id, c.created_at, c.updated_at,
		       COALESCE(l.id, ''), COALESCE(l.first_name, ''), COALESCE(l.last_name, ''), COALESCE(l.photo_ref, ''),
		       m.role
		FROM case_members m
		JOIN cases c ON c.id = m.case_id
		LEFT JOIN loved_ones l ON l.case_id = c.id
		WHERE m.user_id = ?
		ORDER BY c.created_at DESC, c.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCasesForUser"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []repo.CaseRow
	for rows.Next() {
		var row repo.CaseRow
		c, lo := &row.Case, &row.LovedOne
		if err := rows.Scan(
			&c.ID, &c.Type, &c.Path, &c.OwnerUserID, &c.LovedOneID, &c.CreatedAt, &c.UpdatedAt,
			&lo.ID, &lo.FirstName, &lo.LastName, &lo.PhotoRef, &row.Role,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCasesForUser"), err)
			return nil, repo.ErrFailedToList
		}
		lo.CaseID = c.ID
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCasesForUser"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// DeleteCasesByOwner removes every case the user owns. Loved ones, members,
// answers, tasks, plan seeds and invitations go with them by cascade.
func (r *implRepository) DeleteCasesByOwner(ctx context.Context, ownerUserID string) (repo.DeletedCases, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteCasesByOwner"), err)
		return repo.DeletedCases{}, repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT l.photo_ref FROM loved_ones l JOIN cases c ON c.id = l.case_id
		WHERE c.owner_user_id = ? AND l.photo_ref <> ''`, ownerUserID)
	if err != nil {
		r.l.Errorf(ctx, "%s photos: %v", r.dsn("DeleteCasesByOwner"), err)
		return repo.DeletedCases{}, repo.ErrFailedToDelete
	}
	var out repo.DeletedCases
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			rows.Close()
			return repo.DeletedCases{}, repo.ErrFailedToDelete
		}
		out.PhotoRefs = append(out.PhotoRefs, ref)
	}
	rows.Close()

	res, err := tx.ExecContext(ctx, `DELETE FROM cases WHERE owner_user_id = ?`, ownerUserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCasesByOwner"), err)
		return repo.DeletedCases{}, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	out.Count = int(n)

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteCasesByOwner"), err)
		return repo.DeletedCases{}, repo.ErrFailedToDelete
	}
	return out, nil
}
