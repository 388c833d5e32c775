package usermanagement

import (
	"fmt"
	"time"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

// Lockout policy. These are design constants, not configuration - changing
// them changes the security posture of every account.
const (
	LOGIN_ATTEMPT_LIMIT  = 5
	LOGIN_BLOCK_DURATION = 24 * time.Hour
)

// RecordLoginFailure counts one failed credential check against the account.
// The store applies the transition atomically; the returned user reflects the
// post-update state, so callers can read the fresh counter and lock.
func RecordLoginFailure(userID string) (userTypes.User, error) {
	lockUntil := time.Now().Add(LOGIN_BLOCK_DURATION).Unix()
	user, err := userDBService.SaveFailedLoginAttempt(userID, LOGIN_ATTEMPT_LIMIT, lockUntil)
	if err != nil {
		return userTypes.User{}, fmt.Errorf("failed to record login failure: %w", err)
	}
	return user, nil
}

// RecordLoginSuccess clears the failure counter and any lock. The unset is
// idempotent, so it is safe to call even when no failure was ever recorded.
func RecordLoginSuccess(userID string) error {
	if err := userDBService.ResetLoginAttempts(userID); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

// AttemptsLeft returns how many failed attempts remain before the account
// locks. Zero means the next check of the lock state reports locked.
func AttemptsLeft(account userTypes.Account) int64 {
	left := int64(LOGIN_ATTEMPT_LIMIT) - account.LoginAttempts
	if left < 0 {
		return 0
	}
	return left
}

// CheckLoginAllowed returns an AccountLockedError when the account holds an
// active lock.
func CheckLoginAllowed(account userTypes.Account, now time.Time) error {
	if account.IsLocked(now) {
		return &AccountLockedError{LockedUntil: time.Unix(account.BlockUntil, 0)}
	}
	return nil
}
