package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const secureTokenBytes = 32

// GenerateSecureToken returns a hex encoded random token for email
// verification and password reset links.
func GenerateSecureToken() (string, error) {
	token := make([]byte, secureTokenBytes)
	if _, err := rand.Read(token); err != nil {
		return "", err
	}
	return hex.EncodeToString(token), nil
}

func GetExpirationTime(validityPeriod time.Duration) time.Time {
	return time.Now().Add(validityPeriod)
}

func ReachedExpirationTime(t time.Time) bool {
	return time.Now().After(t)
}
