package apihandlers

import (
	"log/slog"
	"math/rand"
	"time"

	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
	emailsending "github.com/im-hotel/booking-backend/pkg/messaging/email-sending"
	"github.com/im-hotel/booking-backend/pkg/messaging/templates"
	usermanagement "github.com/im-hotel/booking-backend/pkg/user-management"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"

	"github.com/google/uuid"
)

// randomWait keeps response timing for auth failures from leaking
// whether the account exists.
func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}

func generateSessionID() string {
	return uuid.NewString()
}

func generateUserToken(expiresIn time.Duration, user userTypes.User, signKey string) (string, error) {
	return jwthandling.GenerateNewUserToken(
		expiresIn,
		user.ID.Hex(),
		user.Account.Role,
		user.Account.IsVerified,
		signKey,
		generateSessionID(),
	)
}

func (h *HttpEndpoints) prepTokenAndSendVerificationEmail(userID string, email string, username string) {
	token, err := usermanagement.IssueToken(
		userTypes.TOKEN_PURPOSE_EMAIL_VERIFICATION,
		userID,
		usermanagement.EMAIL_VERIFICATION_TOKEN_TTL,
	)
	if err != nil {
		slog.Error("failed to issue email verification token", slog.String("userID", userID), slog.String("error", err.Error()))
		return
	}

	err = emailsending.SendInstantEmailByTemplate(
		[]string{email},
		templates.EMAIL_TYPE_REGISTRATION,
		map[string]string{
			"username":        username,
			"verificationURL": emailsending.TokenLinkURL(h.websiteBaseURL, "/verify-email", token),
		},
	)
	if err != nil {
		slog.Warn("failed to send verification email", slog.String("userID", userID), slog.String("error", err.Error()))
		return
	}
	slog.Debug("verification email sent", slog.String("userID", userID))
}

func (h *HttpEndpoints) prepTokenAndSendPasswordResetEmail(userID string, email string, username string) {
	token, err := usermanagement.IssueToken(
		userTypes.TOKEN_PURPOSE_PASSWORD_RESET,
		userID,
		usermanagement.PASSWORD_RESET_TOKEN_TTL,
	)
	if err != nil {
		slog.Error("failed to issue password reset token", slog.String("userID", userID), slog.String("error", err.Error()))
		return
	}

	err = emailsending.SendInstantEmailByTemplate(
		[]string{email},
		templates.EMAIL_TYPE_PASSWORD_RESET,
		map[string]string{
			"username": username,
			"resetURL": emailsending.TokenLinkURL(h.websiteBaseURL, "/reset-password", token),
		},
	)
	if err != nil {
		slog.Warn("failed to send password reset email", slog.String("userID", userID), slog.String("error", err.Error()))
		return
	}
	slog.Debug("password reset email sent", slog.String("userID", userID))
}

func (h *HttpEndpoints) sendPasswordChangedEmail(email string, username string) {
	err := emailsending.SendInstantEmailByTemplate(
		[]string{email},
		templates.EMAIL_TYPE_PASSWORD_CHANGED,
		map[string]string{
			"username": username,
		},
	)
	if err != nil {
		slog.Warn("failed to send password changed email", slog.String("error", err.Error()))
	}
}
