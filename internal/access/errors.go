package access

import (
	"errors"
	"fmt"
)

var ErrEmptyPasscode = errors.New("passcode is required")

// InvalidPasscodeError is returned for a wrong passcode.
type InvalidPasscodeError struct {
	Attempts     int
	ShowWaitlist bool
}

func (e *InvalidPasscodeError) Error() string {
	return fmt.Sprintf("invalid passcode (attempt %d)", e.Attempts)
}
