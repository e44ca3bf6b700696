package repository

import "time"

// StateRow is the raw stored state. A zero CaseID means nothing is stored.
type StateRow struct {
	CaseID        string
	Answers       []byte
	CompletionPct int
	CompletedAt   *time.Time
	UpdatedAt     time.Time
}

// SaveStateOptions replaces the answers. The stored completion percentage
// never decreases.
type SaveStateOptions struct {
	CaseID        string
	Answers       []byte
	CompletionPct int
	UpdatedAt     time.Time
}

type MarkCompletedOptions struct {
	CaseID      string
	CompletedAt time.Time
}
