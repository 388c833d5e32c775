package usermanagement

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountUnverified = errors.New("account email not verified")

	// ErrInvalidOrExpiredToken covers bad, expired and already consumed
	// tokens without revealing which reason applied.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	ErrDuplicateAccount = errors.New("account with this email already exists")
)

// AccountLockedError carries how long the lock still holds so handlers can
// report a remaining time without exposing internal state.
type AccountLockedError struct {
	LockedUntil time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.LockedUntil.UTC().Format(time.RFC3339))
}

func (e *AccountLockedError) Remaining(now time.Time) time.Duration {
	if now.After(e.LockedUntil) {
		return 0
	}
	return e.LockedUntil.Sub(now)
}

// RemainingHours reports the lock time left rounded up to full hours.
func (e *AccountLockedError) RemainingHours(now time.Time) int {
	remaining := e.Remaining(now)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Hour - 1) / time.Hour)
}
