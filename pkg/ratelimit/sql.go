package ratelimit

import (
	"context"
	"database/sql"
	"time"
)

// Schema creates the table used by SQLStore.
const Schema = `
CREATE TABLE IF NOT EXISTS rate_limits (
    bucket   TEXT PRIMARY KEY,
    hits     INTEGER NOT NULL,
    reset_at INTEGER NOT NULL
);`

// SQLStore keeps counters in a shared database so every instance sees the
// same windows.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	if db == nil {
		panic("ratelimit: db is required")
	}
	return &SQLStore{db: db}
}

func (s *SQLStore) Hit(ctx context.Context, key string, w time.Duration, now time.Time) (int, time.Time, error) {
	const query = `
		INSERT INTO rate_limits (bucket, hits, reset_at) VALUES (?, 1, ?)
		ON CONFLICT(bucket) DO UPDATE SET
			hits     = CASE WHEN reset_at <= ? THEN 1 ELSE hits + 1 END,
			reset_at = CASE WHEN reset_at <= ? THEN excluded.reset_at ELSE reset_at END
		RETURNING hits, reset_at`

	nowMs := now.UnixMilli()
	var count int
	var resetMs int64
	err := s.db.QueryRowContext(ctx, query, key, now.Add(w).UnixMilli(), nowMs, nowMs).Scan(&count, &resetMs)
	if err != nil {
		return 0, time.Time{}, err
	}
	return count, time.UnixMilli(resetMs), nil
}
