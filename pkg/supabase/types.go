package supabase

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken is returned when the platform rejects an access token.
	ErrInvalidToken = errors.New("supabase: invalid or expired access token")
	// ErrUserNotFound is returned by DeleteUser for an unknown user.
	ErrUserNotFound = errors.New("supabase: user not found")
)

// User is the subset of the auth user object the service relies on.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	LastSignIn  *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Role        string     `json:"role"`
	AppMetadata struct {
		Provider string `json:"provider"`
	} `json:"app_metadata"`
}

// Object is a storage object returned by ListObjects.
type Object struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listObjectsRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type removeObjectsRequest struct {
	Prefixes []string `json:"prefixes"`
}
