package repository

import (
	"context"

	"honorly/internal/waitlist"
)

type Repository interface {
	// Insert stores e unless the email is already present. It reports
	// whether a row was created and returns the stored entry either way.
	Insert(ctx context.Context, e waitlist.Entry) (waitlist.Entry, bool, error)
}
