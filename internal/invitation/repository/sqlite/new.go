package sqlite

import (
	"database/sql"
	"fmt"

	"honorly/internal/invitation/repository"
	"honorly/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed invitation Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("invitation/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("invitation/repository/sqlite.%s", method)
}
