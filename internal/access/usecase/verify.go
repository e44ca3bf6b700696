package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"honorly/internal/access"
)

// Verify compares the submitted code byte for byte. Surrounding whitespace
// is a wrong code, not a typo to forgive.
func (uc *implUseCase) Verify(ctx context.Context, input access.VerifyInput) (access.VerifyOutput, error) {
	if strings.TrimSpace(input.Passcode) == "" {
		return access.VerifyOutput{}, access.ErrEmptyPasscode
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.matches(input.Passcode) {
		uc.attempts.Remove(input.ClientKey)
		return access.VerifyOutput{Access: access.Granted, StorageKey: access.StorageKey}, nil
	}

	n, _ := uc.attempts.Get(input.ClientKey)
	n++
	uc.attempts.Add(input.ClientKey, n)
	uc.l.Warnf(ctx, "security: failed passcode attempt %d from %s", n, input.ClientKey)

	return access.VerifyOutput{}, &access.InvalidPasscodeError{
		Attempts:     n,
		ShowWaitlist: n >= uc.maxAttempts,
	}
}

func (uc *implUseCase) matches(code string) bool {
	ok := false
	for _, p := range uc.passcodes {
		if subtle.ConstantTimeCompare([]byte(p), []byte(code)) == 1 {
			ok = true
		}
	}
	return ok
}
