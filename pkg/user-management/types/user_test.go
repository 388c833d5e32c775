package types

import (
	"testing"
	"time"
)

func TestAccountIsLocked(t *testing.T) {
	now := time.Now()

	t.Run("never locked", func(t *testing.T) {
		if (Account{}).IsLocked(now) {
			t.Error("should not be locked")
		}
	})

	t.Run("active lock", func(t *testing.T) {
		a := Account{BlockUntil: now.Add(time.Hour).Unix()}
		if !a.IsLocked(now) {
			t.Error("should be locked")
		}
	})

	t.Run("lock boundary is strict", func(t *testing.T) {
		boundary := now.Truncate(time.Second)
		a := Account{BlockUntil: boundary.Unix()}
		if a.IsLocked(boundary) {
			t.Error("lock that expires now should not count as active")
		}
		if !a.IsLocked(boundary.Add(-time.Second)) {
			t.Error("lock should still hold just before expiry")
		}
	})

	t.Run("expired lock distinguishable from never locked", func(t *testing.T) {
		expired := Account{LoginAttempts: 5, BlockUntil: now.Add(-time.Hour).Unix()}
		if expired.IsLocked(now) {
			t.Error("expired lock should not be active")
		}
		// the field stays set until the next failure resets the window
		if expired.BlockUntil == 0 {
			t.Error("expired lock should keep its timestamp")
		}
	})
}

func TestAccountLockRemaining(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	a := Account{BlockUntil: now.Add(30 * time.Minute).Unix()}
	if got := a.LockRemaining(now); got != 30*time.Minute {
		t.Errorf("unexpected remaining: %v", got)
	}
	if got := (Account{}).LockRemaining(now); got != 0 {
		t.Errorf("unexpected remaining: %v", got)
	}
}

func TestTokenPurposeFields(t *testing.T) {
	t.Run("purposes map to disjoint fields", func(t *testing.T) {
		vToken, vExpires := TOKEN_PURPOSE_EMAIL_VERIFICATION.TokenFields()
		rToken, rExpires := TOKEN_PURPOSE_PASSWORD_RESET.TokenFields()
		if vToken == rToken || vExpires == rExpires {
			t.Error("verification and reset tokens must not share fields")
		}
	})

	t.Run("validity", func(t *testing.T) {
		if !TOKEN_PURPOSE_EMAIL_VERIFICATION.IsValid() || !TOKEN_PURPOSE_PASSWORD_RESET.IsValid() {
			t.Error("known purposes should be valid")
		}
		if TokenPurpose("sessionRefresh").IsValid() {
			t.Error("unknown purpose should be invalid")
		}
	})
}
