package response

import (
	"encoding/json"
	"time"
)

const (
	DefaultErrorMessage = "Something went wrong. Please try again later."
	DateFormat          = "2006-01-02"
	DateTimeFormat      = time.RFC3339
)

// Resp is the standard JSON success body.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Warning string `json:"warning,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrResp is the standard JSON error body.
type ErrResp struct {
	Error       string `json:"error"`
	RateLimited bool   `json:"rateLimited,omitempty"`
	RetryAfter  int    `json:"retryAfter,omitempty"`
	Details     any    `json:"details,omitempty"`
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
