package sqlite

import (
	"database/sql"
	"fmt"

	"honorly/internal/onboarding/repository"
	"honorly/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for onboarding answers.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("onboarding/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("onboarding/repository/sqlite.%s", method)
}
