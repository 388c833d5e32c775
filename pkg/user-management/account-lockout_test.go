package usermanagement

import (
	"testing"
	"time"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

func TestAttemptsLeft(t *testing.T) {
	t.Run("with no recorded failures", func(t *testing.T) {
		if got := AttemptsLeft(userTypes.Account{}); got != 5 {
			t.Errorf("unexpected attempts left: %d", got)
		}
	})
	t.Run("counts down per failure", func(t *testing.T) {
		for attempts, want := range map[int64]int64{1: 4, 2: 3, 3: 2, 4: 1, 5: 0} {
			got := AttemptsLeft(userTypes.Account{LoginAttempts: attempts})
			if got != want {
				t.Errorf("attempts %d: got %d, want %d", attempts, got, want)
			}
		}
	})
	t.Run("never goes negative", func(t *testing.T) {
		if got := AttemptsLeft(userTypes.Account{LoginAttempts: 9}); got != 0 {
			t.Errorf("unexpected attempts left: %d", got)
		}
	})
}

func TestCheckLoginAllowed(t *testing.T) {
	now := time.Now()

	t.Run("without lock", func(t *testing.T) {
		if err := CheckLoginAllowed(userTypes.Account{}, now); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with active lock", func(t *testing.T) {
		account := userTypes.Account{
			LoginAttempts: 5,
			BlockUntil:    now.Add(LOGIN_BLOCK_DURATION).Unix(),
		}
		err := CheckLoginAllowed(account, now)
		lockedErr, ok := err.(*AccountLockedError)
		if !ok {
			t.Fatalf("expected AccountLockedError, got %v", err)
		}
		if lockedErr.RemainingHours(now) != 24 {
			t.Errorf("unexpected remaining hours: %d", lockedErr.RemainingHours(now))
		}
	})

	t.Run("with expired lock", func(t *testing.T) {
		account := userTypes.Account{
			LoginAttempts: 5,
			BlockUntil:    now.Add(-time.Minute).Unix(),
		}
		if err := CheckLoginAllowed(account, now); err != nil {
			t.Errorf("expired lock should not block: %v", err)
		}
	})
}

func TestAccountLockedErrorRemaining(t *testing.T) {
	now := time.Now()
	err := &AccountLockedError{LockedUntil: now.Add(90 * time.Minute)}

	if err.RemainingHours(now) != 2 {
		t.Errorf("should round up to full hours, got %d", err.RemainingHours(now))
	}
	if err.Remaining(now.Add(2*time.Hour)) != 0 {
		t.Error("remaining should be zero after expiry")
	}
}
