package sqlite

import (
	"database/sql"
	"fmt"

	"honorly/internal/waitlist/repository"
	"honorly/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed waitlist Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("waitlist/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("waitlist/repository/sqlite.%s", method)
}
