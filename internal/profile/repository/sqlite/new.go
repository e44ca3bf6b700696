package sqlite

import (
	"database/sql"
	"fmt"

	"honorly/internal/profile/repository"
	"honorly/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed profile Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("profile/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/sqlite.%s", method)
}
