package usermanagement

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
	umUtils "github.com/im-hotel/booking-backend/pkg/user-management/utils"
)

const (
	EMAIL_VERIFICATION_TOKEN_TTL = time.Hour
	PASSWORD_RESET_TOKEN_TTL     = time.Hour
)

// IssueToken generates a fresh single-use token for the purpose and stores it
// on the account, invalidating any earlier pending token of the same purpose.
func IssueToken(purpose userTypes.TokenPurpose, userID string, ttl time.Duration) (string, error) {
	if !purpose.IsValid() {
		return "", fmt.Errorf("unknown token purpose: %s", purpose)
	}

	token, err := umUtils.GenerateSecureToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := umUtils.GetExpirationTime(ttl).Unix()
	if err := userDBService.SetAccountToken(userID, purpose, token, expiresAt); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

// RedeemVerificationToken marks the account verified and consumes the token.
// Wrong, expired and already consumed tokens all fail the same way.
func RedeemVerificationToken(token string) (userTypes.User, error) {
	if token == "" {
		return userTypes.User{}, ErrInvalidOrExpiredToken
	}

	user, err := userDBService.RedeemVerificationToken(token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return userTypes.User{}, ErrInvalidOrExpiredToken
		}
		return userTypes.User{}, fmt.Errorf("failed to redeem verification token: %w", err)
	}
	return user, nil
}

// ResetPasswordWithToken consumes a pending reset token and replaces the
// password hash in the same store update.
func ResetPasswordWithToken(token string, newPasswordHash string) (userTypes.User, error) {
	if token == "" {
		return userTypes.User{}, ErrInvalidOrExpiredToken
	}

	user, err := userDBService.RedeemPasswordResetToken(token, newPasswordHash)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return userTypes.User{}, ErrInvalidOrExpiredToken
		}
		return userTypes.User{}, fmt.Errorf("failed to redeem reset token: %w", err)
	}
	return user, nil
}

// GetUserForToken finds the account holding an unexpired pending token of the
// purpose without consuming it.
func GetUserForToken(purpose userTypes.TokenPurpose, token string) (userTypes.User, error) {
	if token == "" || !purpose.IsValid() {
		return userTypes.User{}, ErrInvalidOrExpiredToken
	}

	user, err := userDBService.GetUserByToken(purpose, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return userTypes.User{}, ErrInvalidOrExpiredToken
		}
		return userTypes.User{}, fmt.Errorf("failed to look up token: %w", err)
	}
	return user, nil
}
