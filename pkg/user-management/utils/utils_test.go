package utils

import (
	"testing"
	"time"
)

func TestSanitizeEmail(t *testing.T) {
	t.Run("with different formats", func(t *testing.T) {
		email := SanitizeEmail("\nAlice@Example.COM")
		if email != "alice@example.com" {
			t.Errorf("unexpected email: %s", email)
		}

		email = SanitizeEmail("  \n alice@example.com \n\r")
		if email != "alice@example.com" {
			t.Errorf("unexpected email: %s", email)
		}

		email = SanitizeEmail("alice@example.com")
		if email != "alice@example.com" {
			t.Errorf("unexpected email: %s", email)
		}
	})
}

func TestCheckEmailFormat(t *testing.T) {
	t.Run("with missing @", func(t *testing.T) {
		if CheckEmailFormat("t.t.com") {
			t.Error("should be false")
		}
	})
	t.Run("with missing domain", func(t *testing.T) {
		if CheckEmailFormat("t@") {
			t.Error("should be false")
		}
	})
	t.Run("with valid addresses", func(t *testing.T) {
		if !CheckEmailFormat("alice@example.com") {
			t.Error("should be true")
		}
		if !CheckEmailFormat("alice.bob+tag@example.co.uk") {
			t.Error("should be true")
		}
	})
}

func TestBlurEmailAddress(t *testing.T) {
	t.Run("with different formats", func(t *testing.T) {
		email := BlurEmailAddress("a@test.de")
		if email != "a****@test.de" {
			t.Errorf("unexpected email: %s", email)
		}

		email = BlurEmailAddress("alice1234@test.de")
		if email != "a****@test.de" {
			t.Errorf("unexpected email: %s", email)
		}
	})
}

func TestCheckPasswordFormat(t *testing.T) {
	t.Run("with a too short password", func(t *testing.T) {
		if CheckPasswordFormat("1n34T6@") {
			t.Error("should be false")
		}
	})
	t.Run("with a too weak password", func(t *testing.T) {
		if CheckPasswordFormat("13342678") {
			t.Error("should be false")
		}
		if CheckPasswordFormat("11111aaaa") {
			t.Error("should be false")
		}
	})
	t.Run("with good passwords", func(t *testing.T) {
		if !CheckPasswordFormat("Str0ng!Pass") {
			t.Error("should be true")
		}
		if !CheckPasswordFormat("nnnnnnT@@") {
			t.Error("should be true")
		}
		if !CheckPasswordFormat("TTTTTTTT77.") {
			t.Error("should be true")
		}
	})
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("unexpected token length: %d", len(token))
	}

	other, err := GenerateSecureToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == other {
		t.Error("tokens should not repeat")
	}
}

func TestExpirationHelpers(t *testing.T) {
	exp := GetExpirationTime(time.Hour)
	if ReachedExpirationTime(exp) {
		t.Error("should not be expired yet")
	}
	if !ReachedExpirationTime(time.Now().Add(-time.Second)) {
		t.Error("should be expired")
	}
}
