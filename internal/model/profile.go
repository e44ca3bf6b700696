package model

import "time"

// Profile is the account data kept next to the platform auth user.
type Profile struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
