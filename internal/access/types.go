package access

import "time"

const (
	Granted    = "granted"
	StorageKey = "honorly_access"
)

// Config lists the accepted passcodes and the failed-attempt policy.
type Config struct {
	Passcodes   []string
	MaxAttempts int
	AttemptTTL  time.Duration
	// Size bounds the number of clients tracked at once.
	Size int
}

type VerifyInput struct {
	// ClientKey identifies the caller, usually the client IP.
	ClientKey string
	Passcode  string
}

type VerifyOutput struct {
	Access     string
	StorageKey string
}
