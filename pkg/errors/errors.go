package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies a failure for the HTTP boundary.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuth          Kind = "auth"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindRateLimit     Kind = "rate_limit"
	KindDependency    Kind = "dependency"
	KindInternal      Kind = "internal"
)

var kindStatus = map[Kind]int{
	KindValidation:    http.StatusBadRequest,
	KindAuth:          http.StatusUnauthorized,
	KindAuthorization: http.StatusForbidden,
	KindNotFound:      http.StatusNotFound,
	KindRateLimit:     http.StatusTooManyRequests,
	KindDependency:    http.StatusInternalServerError,
	KindInternal:      http.StatusInternalServerError,
}

// HTTPError is an error that already knows its response status and message.
type HTTPError struct {
	Code    int
	Kind    Kind
	Message string
	Fields  map[string]any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError, deriving the kind from the status code.
func NewHTTPError(code int, msg string) *HTTPError {
	kind := KindInternal
	for k, c := range kindStatus {
		if c == code && k != KindDependency {
			kind = k
			break
		}
	}
	return &HTTPError{Code: code, Kind: kind, Message: msg}
}

func newKind(kind Kind, msg string) *HTTPError {
	return &HTTPError{Code: kindStatus[kind], Kind: kind, Message: msg}
}

func NewValidationError(msg string) *HTTPError    { return newKind(KindValidation, msg) }
func NewAuthError(msg string) *HTTPError          { return newKind(KindAuth, msg) }
func NewAuthorizationError(msg string) *HTTPError { return newKind(KindAuthorization, msg) }
func NewNotFoundError(msg string) *HTTPError      { return newKind(KindNotFound, msg) }
func NewRateLimitError(msg string) *HTTPError     { return newKind(KindRateLimit, msg) }
func NewDependencyError(msg string) *HTTPError    { return newKind(KindDependency, msg) }

// WithField returns a copy of e carrying an extra response field.
func (e *HTTPError) WithField(key string, value any) *HTTPError {
	cp := *e
	cp.Fields = make(map[string]any, len(e.Fields)+1)
	for k, v := range e.Fields {
		cp.Fields[k] = v
	}
	cp.Fields[key] = value
	return &cp
}

// ErrInternalServerError is the catch-all returned for unmapped failures.
var ErrInternalServerError = newKind(KindInternal, "Something went wrong. Please try again later.")

// As extracts an *HTTPError from err's chain.
func As(err error) (*HTTPError, bool) {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he, true
	}
	return nil, false
}
