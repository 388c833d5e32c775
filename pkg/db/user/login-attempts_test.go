//go:build integration

package user

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSaveFailedLoginAttempt(t *testing.T) {
	dbService := setupTestDBService(t)

	const attemptLimit = 5

	t.Run("counts failures up to the lock threshold", func(t *testing.T) {
		userID := addTestUser(t, dbService, "counting@example.com")
		lockUntil := time.Now().Add(24 * time.Hour).Unix()

		for i := int64(1); i <= attemptLimit-1; i++ {
			user, err := dbService.SaveFailedLoginAttempt(userID, attemptLimit, lockUntil)
			if err != nil {
				t.Fatalf("attempt %d: unexpected error: %v", i, err)
			}
			if user.Account.LoginAttempts != i {
				t.Errorf("attempt %d: unexpected counter: %d", i, user.Account.LoginAttempts)
			}
			if user.Account.BlockUntil != 0 {
				t.Errorf("attempt %d: should not lock yet, blockUntil: %d", i, user.Account.BlockUntil)
			}
		}

		user, err := dbService.SaveFailedLoginAttempt(userID, attemptLimit, lockUntil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Account.LoginAttempts != attemptLimit {
			t.Errorf("unexpected counter after threshold: %d", user.Account.LoginAttempts)
		}
		if user.Account.BlockUntil != lockUntil {
			t.Errorf("threshold failure should lock until %d, got %d", lockUntil, user.Account.BlockUntil)
		}
		if !user.Account.IsLocked(time.Now()) {
			t.Error("account should report locked")
		}
	})

	t.Run("keeps the original lock on failures during an active lock", func(t *testing.T) {
		userID := addTestUser(t, dbService, "locked@example.com")
		lockUntil := time.Now().Add(24 * time.Hour).Unix()

		for i := 0; i < attemptLimit; i++ {
			if _, err := dbService.SaveFailedLoginAttempt(userID, attemptLimit, lockUntil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		laterLockUntil := time.Now().Add(48 * time.Hour).Unix()
		user, err := dbService.SaveFailedLoginAttempt(userID, attemptLimit, laterLockUntil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Account.BlockUntil != lockUntil {
			t.Errorf("active lock must not be extended, got %d", user.Account.BlockUntil)
		}
		if user.Account.LoginAttempts != attemptLimit+1 {
			t.Errorf("unexpected counter: %d", user.Account.LoginAttempts)
		}
	})

	t.Run("starts a fresh window after the lock expires", func(t *testing.T) {
		userID := addTestUser(t, dbService, "expired-lock@example.com")
		lockUntil := time.Now().Add(24 * time.Hour).Unix()

		for i := 0; i < attemptLimit; i++ {
			if _, err := dbService.SaveFailedLoginAttempt(userID, attemptLimit, lockUntil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		// age the lock artificially
		err := dbService.UpdateUser(userID, bson.M{
			"$set": bson.M{"account.blockUntil": time.Now().Add(-time.Minute).Unix()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user, err := dbService.SaveFailedLoginAttempt(userID, attemptLimit, time.Now().Add(24*time.Hour).Unix())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Account.LoginAttempts != 1 {
			t.Errorf("expired lock should reset the counter to 1, got %d", user.Account.LoginAttempts)
		}
		if user.Account.BlockUntil != 0 {
			t.Errorf("expired lock should be cleared, got %d", user.Account.BlockUntil)
		}
	})
}

func TestResetLoginAttempts(t *testing.T) {
	dbService := setupTestDBService(t)

	userID := addTestUser(t, dbService, "reset@example.com")
	lockUntil := time.Now().Add(24 * time.Hour).Unix()

	for i := 0; i < 5; i++ {
		if _, err := dbService.SaveFailedLoginAttempt(userID, 5, lockUntil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := dbService.ResetLoginAttempts(userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := dbService.GetUser(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Account.LoginAttempts != 0 || user.Account.BlockUntil != 0 {
		t.Errorf("counter and lock should be absent, got %d / %d", user.Account.LoginAttempts, user.Account.BlockUntil)
	}

	// resetting a clean account is a no-op, not an error
	if err := dbService.ResetLoginAttempts(userID); err != nil {
		t.Errorf("unexpected error on repeated reset: %v", err)
	}
}
