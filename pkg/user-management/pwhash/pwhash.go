package pwhash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost below this would weaken the stored hashes, init clamps to it.
const minBcryptCost = 10

var bcryptCost = 12

func InitBcryptCost(cost int) {
	if cost < minBcryptCost {
		cost = minBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	bcryptCost = cost
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePasswordWithHash checks the submitted password against the stored
// hash. A mismatch returns (false, nil); a non-nil error means the comparison
// itself could not be performed and must not be treated as "wrong password".
func ComparePasswordWithHash(hash string, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
