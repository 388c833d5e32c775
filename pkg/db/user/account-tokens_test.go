//go:build integration

package user

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

func TestRedeemVerificationToken(t *testing.T) {
	dbService := setupTestDBService(t)

	t.Run("consumes the token on first use", func(t *testing.T) {
		userID := addTestUser(t, dbService, "verify@example.com")
		token := "verificationtokenvalue"
		expiresAt := time.Now().Add(time.Hour).Unix()

		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_EMAIL_VERIFICATION, token, expiresAt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user, err := dbService.RedeemVerificationToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.Account.IsVerified {
			t.Error("account should be verified")
		}
		if user.Account.EmailVerificationToken != "" || user.Account.EmailVerificationExpires != 0 {
			t.Error("token fields should be cleared after redemption")
		}

		_, err = dbService.RedeemVerificationToken(token)
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("second redemption should find no document, got %v", err)
		}
	})

	t.Run("with an expired token", func(t *testing.T) {
		userID := addTestUser(t, dbService, "verify-expired@example.com")
		token := "expiredverificationtoken"

		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_EMAIL_VERIFICATION, token, time.Now().Add(-time.Minute).Unix()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := dbService.RedeemVerificationToken(token)
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("expired token should find no document, got %v", err)
		}

		user, err := dbService.GetUser(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Account.IsVerified {
			t.Error("account must stay unverified")
		}
	})

	t.Run("cannot redeem a password reset token", func(t *testing.T) {
		userID := addTestUser(t, dbService, "cross-purpose@example.com")
		token := "resettokenvalue"

		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token, time.Now().Add(time.Hour).Unix()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := dbService.RedeemVerificationToken(token)
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("cross-purpose redemption should find no document, got %v", err)
		}
	})
}

func TestRedeemPasswordResetToken(t *testing.T) {
	dbService := setupTestDBService(t)

	t.Run("replaces the password and consumes the token", func(t *testing.T) {
		userID := addTestUser(t, dbService, "reset-pw@example.com")
		token := "passwordresettoken"

		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token, time.Now().Add(time.Hour).Unix()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user, err := dbService.RedeemPasswordResetToken(token, "newhash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Account.Password != "newhash" {
			t.Error("password hash should be replaced")
		}
		if user.Account.ResetToken != "" || user.Account.ResetTokenExpires != 0 {
			t.Error("token fields should be cleared after redemption")
		}
		if user.Timestamps.LastPasswordChange == 0 {
			t.Error("lastPasswordChange should be set")
		}

		_, err = dbService.RedeemPasswordResetToken(token, "anotherhash")
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("second redemption should find no document, got %v", err)
		}
	})

	t.Run("a reissued token invalidates the earlier one", func(t *testing.T) {
		userID := addTestUser(t, dbService, "reissue@example.com")
		expiresAt := time.Now().Add(time.Hour).Unix()

		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_PASSWORD_RESET, "firsttoken", expiresAt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_PASSWORD_RESET, "secondtoken", expiresAt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := dbService.RedeemPasswordResetToken("firsttoken", "hash"); !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("overwritten token should find no document, got %v", err)
		}
		if _, err := dbService.RedeemPasswordResetToken("secondtoken", "hash"); err != nil {
			t.Errorf("fresh token should redeem, got %v", err)
		}
	})
}

func TestGetUserByToken(t *testing.T) {
	dbService := setupTestDBService(t)

	userID := addTestUser(t, dbService, "lookup@example.com")
	token := "lookuptoken"

	if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token, time.Now().Add(time.Hour).Unix()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("finds the pending token without consuming it", func(t *testing.T) {
		user, err := dbService.GetUserByToken(userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID.Hex() != userID {
			t.Errorf("unexpected user: %s", user.ID.Hex())
		}
		if _, err := dbService.GetUserByToken(userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token); err != nil {
			t.Errorf("lookup must not consume the token: %v", err)
		}
	})

	t.Run("with the wrong purpose", func(t *testing.T) {
		_, err := dbService.GetUserByToken(userTypes.TOKEN_PURPOSE_EMAIL_VERIFICATION, token)
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("wrong purpose should find no document, got %v", err)
		}
	})

	t.Run("after expiry", func(t *testing.T) {
		if err := dbService.SetAccountToken(userID, userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token, time.Now().Add(-time.Second).Unix()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := dbService.GetUserByToken(userTypes.TOKEN_PURPOSE_PASSWORD_RESET, token)
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("expired token should find no document, got %v", err)
		}
	})
}
