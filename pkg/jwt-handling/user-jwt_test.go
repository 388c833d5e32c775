package jwthandling

import (
	"testing"
	"time"
)

func TestUserTokenRoundtrip(t *testing.T) {
	token, err := GenerateNewUserToken(time.Minute, "user-id-1", "user", true, "test-key", "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("with correct key", func(t *testing.T) {
		claims, valid, err := ValidateUserToken(token, "test-key")
		if err != nil || !valid {
			t.Fatalf("token should validate: %v", err)
		}
		if claims.Subject != "user-id-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.Role != "user" {
			t.Errorf("unexpected role: %s", claims.Role)
		}
		if !claims.AccountVerified {
			t.Error("accountVerified should be true")
		}
		if claims.SessionID != "session-1" {
			t.Errorf("unexpected session id: %s", claims.SessionID)
		}
	})

	t.Run("with wrong key", func(t *testing.T) {
		_, valid, err := ValidateUserToken(token, "wrong-key")
		if valid || err == nil {
			t.Error("token should not validate with wrong key")
		}
	})
}

func TestUserTokenExpiry(t *testing.T) {
	token, err := GenerateNewUserToken(-time.Minute, "user-id-1", "user", false, "test-key", "session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, valid, err := ValidateUserToken(token, "test-key")
	if valid || err == nil {
		t.Error("expired token should not validate")
	}
}
