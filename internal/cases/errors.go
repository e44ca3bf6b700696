package cases

import "errors"

var (
	ErrCaseNotFound    = errors.New("case not found")
	ErrForbidden       = errors.New("not allowed on this case")
	ErrInvalidCaseType = errors.New("invalid case type")
)
