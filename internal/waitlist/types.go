package waitlist

import "time"

const (
	MaxNameLength   = 100
	MaxSourceLength = 50
)

// Entry is one waitlist sign-up. Email is unique and lowercase.
type Entry struct {
	ID        string
	Email     string
	Name      string
	Source    string
	CreatedAt time.Time
}

type JoinInput struct {
	Email  string
	Name   string
	Source string
}

type JoinOutput struct {
	Entry         Entry
	AlreadyJoined bool
	EmailFailed   bool
}
