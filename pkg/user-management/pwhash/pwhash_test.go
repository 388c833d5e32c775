package pwhash

import (
	"strings"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!Passw0rd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("unexpected hash format: %s", hash)
	}

	t.Run("with correct password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "Str0ng!Passw0rd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !match {
			t.Error("should match")
		}
	})

	t.Run("with wrong password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "Wr0ng!Passw0rd")
		if err != nil {
			t.Fatalf("mismatch should not be an error: %v", err)
		}
		if match {
			t.Error("should not match")
		}
	})

	t.Run("with broken hash", func(t *testing.T) {
		_, err := ComparePasswordWithHash("not-a-hash", "Str0ng!Passw0rd")
		if err == nil {
			t.Error("should return an error")
		}
	})
}

func TestInitBcryptCostClamping(t *testing.T) {
	defer InitBcryptCost(12)

	InitBcryptCost(4)
	if bcryptCost < minBcryptCost {
		t.Errorf("cost should be clamped, got %d", bcryptCost)
	}
}
