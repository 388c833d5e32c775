package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	usermanagement "github.com/im-hotel/booking-backend/pkg/user-management"
	"github.com/im-hotel/booking-backend/pkg/user-management/pwhash"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
	umUtils "github.com/im-hotel/booking-backend/pkg/user-management/utils"
)

func (h *HttpEndpoints) AddPasswordResetAPI(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/forgot-password", mw.RequirePayload(), h.forgotPasswordHandl)
	auth.POST("/reset-password", mw.RequirePayload(), h.resetPasswordHandl)
	auth.POST("/reset-password/get-infos", mw.RequirePayload(), h.getResetInfosHandl)
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

// forgotPasswordHandl answers the same way whether or not the email exists,
// the lookup result only decides if a reset mail goes out.
func (h *HttpEndpoints) forgotPasswordHandl(c *gin.Context) {
	var req ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	req.Email = umUtils.SanitizeEmail(req.Email)

	user, err := h.userDBConn.GetUserByEmail(req.Email)
	if err != nil {
		slog.Warn("password reset request for unknown email", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(2, 5)
	} else {
		go h.prepTokenAndSendPasswordResetEmail(user.ID.Hex(), user.Account.Email, user.Account.Username)
	}

	c.JSON(http.StatusOK, gin.H{"message": "if the email exists, a password reset link was sent"})
}

type ResetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *HttpEndpoints) resetPasswordHandl(c *gin.Context) {
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}
	if !umUtils.CheckPasswordFormat(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too weak"})
		return
	}

	password, err := pwhash.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	user, err := usermanagement.ResetPasswordWithToken(req.Token, password)
	if err != nil {
		if err == usermanagement.ErrInvalidOrExpiredToken {
			slog.Warn("password reset with invalid token")
			randomWait(1, 3)
			c.JSON(http.StatusBadRequest, gin.H{"error": usermanagement.ErrInvalidOrExpiredToken.Error()})
			return
		}
		slog.Error("failed to reset password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("password reset", slog.String("userID", user.ID.Hex()))
	go h.sendPasswordChangedEmail(user.Account.Email, user.Account.Username)

	c.JSON(http.StatusOK, gin.H{"message": "password updated, you can log in now"})
}

type ResetInfosReq struct {
	Token string `json:"token"`
}

// getResetInfosHandl lets the reset form show which account the token belongs
// to without consuming the token. The email is blurred on purpose.
func (h *HttpEndpoints) getResetInfosHandl(c *gin.Context) {
	var req ResetInfosReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := usermanagement.GetUserForToken(userTypes.TOKEN_PURPOSE_PASSWORD_RESET, req.Token)
	if err != nil {
		if err == usermanagement.ErrInvalidOrExpiredToken {
			slog.Warn("reset infos requested with invalid token")
			c.JSON(http.StatusBadRequest, gin.H{"error": usermanagement.ErrInvalidOrExpiredToken.Error()})
			return
		}
		slog.Error("failed to look up reset token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accountId": umUtils.BlurEmailAddress(user.Account.Email),
	})
}
