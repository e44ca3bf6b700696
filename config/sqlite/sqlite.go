package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"honorly/config"
	"honorly/pkg/ratelimit"
)

// Connect opens the database file and verifies the connection.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		cfg.Path, busy.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// OpenMemory opens a private in-memory database with the schema applied.
// The pool is pinned to one connection so every query sees the same data.
func OpenMemory(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates every table the service uses. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range []string{schema, ratelimit.Schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    user_id    TEXT PRIMARY KEY,
    email      TEXT NOT NULL,
    first_name TEXT NOT NULL DEFAULT '',
    last_name  TEXT NOT NULL DEFAULT '',
    phone      TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS cases (
    id            TEXT PRIMARY KEY,
    type          TEXT NOT NULL,
    path          TEXT NOT NULL,
    owner_user_id TEXT NOT NULL,
    loved_one_id  TEXT NOT NULL,
    created_at    DATETIME NOT NULL,
    updated_at    DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cases_owner ON cases (owner_user_id);

CREATE TABLE IF NOT EXISTS loved_ones (
    id         TEXT PRIMARY KEY,
    case_id    TEXT NOT NULL UNIQUE REFERENCES cases (id) ON DELETE CASCADE,
    first_name TEXT NOT NULL DEFAULT '',
    last_name  TEXT NOT NULL DEFAULT '',
    photo_ref  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS case_members (
    case_id    TEXT NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
    user_id    TEXT NOT NULL,
    role       TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    PRIMARY KEY (case_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_case_members_user ON case_members (user_id);

CREATE TABLE IF NOT EXISTS onboarding_answers (
    case_id        TEXT PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
    answers        TEXT NOT NULL DEFAULT '{}',
    completion_pct INTEGER NOT NULL DEFAULT 0,
    completed_at   DATETIME,
    updated_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id                  TEXT PRIMARY KEY,
    case_id             TEXT NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
    loved_one_id        TEXT NOT NULL,
    title               TEXT NOT NULL,
    category            TEXT NOT NULL,
    status              TEXT NOT NULL,
    assigned_to_user_id TEXT NOT NULL DEFAULT '',
    due_date            DATETIME,
    description         TEXT NOT NULL DEFAULT '',
    is_custom           INTEGER NOT NULL DEFAULT 0,
    created_by_user_id  TEXT NOT NULL,
    calendar_event_id   TEXT NOT NULL DEFAULT '',
    created_at          DATETIME NOT NULL,
    updated_at          DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_case ON tasks (case_id);

CREATE TABLE IF NOT EXISTS plan_seeds (
    case_id    TEXT PRIMARY KEY REFERENCES cases (id) ON DELETE CASCADE,
    seeded_by  TEXT NOT NULL,
    task_count INTEGER NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS invitations (
    id                  TEXT PRIMARY KEY,
    case_id             TEXT NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
    email               TEXT NOT NULL,
    first_name          TEXT NOT NULL DEFAULT '',
    message             TEXT NOT NULL DEFAULT '',
    token               TEXT NOT NULL UNIQUE,
    status              TEXT NOT NULL,
    invited_by_user_id  TEXT NOT NULL,
    accepted_by_user_id TEXT NOT NULL DEFAULT '',
    created_at          DATETIME NOT NULL,
    expires_at          DATETIME NOT NULL,
    accepted_at         DATETIME
);
CREATE INDEX IF NOT EXISTS idx_invitations_case ON invitations (case_id);

CREATE TABLE IF NOT EXISTS waitlist (
    id         TEXT PRIMARY KEY,
    email      TEXT NOT NULL UNIQUE,
    name       TEXT NOT NULL DEFAULT '',
    source     TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
);
`
