package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	usermanagement "github.com/im-hotel/booking-backend/pkg/user-management"
	"github.com/im-hotel/booking-backend/pkg/user-management/pwhash"
	umUtils "github.com/im-hotel/booking-backend/pkg/user-management/utils"
)

func (h *HttpEndpoints) AddUserAuthAPI(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", mw.RequirePayload(), h.registerHandl)
	auth.POST("/login", mw.RequirePayload(), h.loginHandl)
	auth.GET("/verify-email", h.verifyEmailWithQueryHandl)
	auth.POST("/verify-email", mw.RequirePayload(), h.verifyEmailHandl)
}

type RegisterReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *HttpEndpoints) registerHandl(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, email and password are required"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)
	if !umUtils.CheckEmailFormat(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	if !umUtils.CheckPasswordFormat(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too weak"})
		return
	}

	if h.maxNewUsersPer5Minutes > 0 {
		newUserCount, err := h.userDBConn.CountRecentlyCreatedUsers(5 * 60)
		if err != nil {
			slog.Error("failed to count recently created users", slog.String("error", err.Error()))
		} else if newUserCount >= int64(h.maxNewUsersPer5Minutes) {
			slog.Warn("user creation rate limit reached", slog.Int64("count", newUserCount))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "please try again later"})
			return
		}
	}

	password, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	username := req.FirstName
	if req.LastName != "" {
		username = req.FirstName + " " + req.LastName
	}
	newUser := usermanagement.InitNewEmailUser(username, req.Email, password)
	id, err := h.userDBConn.AddUser(newUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			slog.Warn("registration for existing email", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
			c.JSON(http.StatusConflict, gin.H{"error": usermanagement.ErrDuplicateAccount.Error()})
			return
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	slog.Info("new user created", slog.String("userID", id))

	go h.prepTokenAndSendVerificationEmail(id, req.Email, username)

	c.JSON(http.StatusCreated, gin.H{"message": "user created, please check your email to verify the account"})
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) loginHandl(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	req.Email = umUtils.SanitizeEmail(req.Email)

	user, err := h.userDBConn.GetUserByEmail(req.Email)
	if err != nil {
		slog.Warn("login attempt for unknown email", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(2, 5)
		c.JSON(http.StatusUnauthorized, gin.H{"error": usermanagement.ErrInvalidCredentials.Error()})
		return
	}
	userID := user.ID.Hex()

	if lockErr, ok := usermanagement.CheckLoginAllowed(user.Account, time.Now()).(*usermanagement.AccountLockedError); ok {
		slog.Warn("login attempt on locked account", slog.String("userID", userID))
		c.JSON(http.StatusLocked, gin.H{
			"error":         "account is locked due to too many failed login attempts",
			"isLocked":      true,
			"remainingTime": lockErr.RemainingHours(time.Now()),
		})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(user.Account.Password, req.Password)
	if err != nil {
		slog.Error("password comparison failed", slog.String("userID", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	if !match {
		updatedUser, err := usermanagement.RecordLoginFailure(userID)
		if err != nil {
			slog.Error("failed to record login failure", slog.String("userID", userID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
			return
		}
		slog.Warn("login with wrong password", slog.String("userID", userID), slog.Int64("attempts", updatedUser.Account.LoginAttempts))
		randomWait(2, 5)

		if updatedUser.Account.IsLocked(time.Now()) {
			c.JSON(http.StatusLocked, gin.H{
				"error":         "account locked due to too many failed login attempts",
				"isLocked":      true,
				"remainingTime": int(usermanagement.LOGIN_BLOCK_DURATION / time.Hour),
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":        usermanagement.ErrInvalidCredentials.Error(),
			"attemptsLeft": usermanagement.AttemptsLeft(updatedUser.Account),
		})
		return
	}

	if !user.Account.IsVerified {
		slog.Warn("login attempt on unverified account", slog.String("userID", userID))
		c.JSON(http.StatusForbidden, gin.H{"error": usermanagement.ErrAccountUnverified.Error()})
		return
	}

	if user.Account.LoginAttempts > 0 || user.Account.BlockUntil > 0 {
		if err := usermanagement.RecordLoginSuccess(userID); err != nil {
			slog.Error("failed to reset login attempts", slog.String("userID", userID), slog.String("error", err.Error()))
		}
	}
	if err := h.userDBConn.UpdateLastLogin(userID); err != nil {
		slog.Error("failed to update last login", slog.String("userID", userID), slog.String("error", err.Error()))
	}

	token, err := generateUserToken(h.ttls.AccessToken, user, h.tokenSignKey)
	if err != nil {
		slog.Error("failed to generate token", slog.String("userID", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("user logged in", slog.String("userID", userID))
	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken": token,
			"expiresIn":   h.ttls.AccessToken.Seconds(),
		},
		"user": user,
	})
}

type VerifyEmailReq struct {
	Token string `json:"token"`
}

func (h *HttpEndpoints) verifyEmailHandl(c *gin.Context) {
	var req VerifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.redeemVerificationToken(c, req.Token)
}

func (h *HttpEndpoints) verifyEmailWithQueryHandl(c *gin.Context) {
	h.redeemVerificationToken(c, c.Query("token"))
}

func (h *HttpEndpoints) redeemVerificationToken(c *gin.Context, token string) {
	user, err := usermanagement.RedeemVerificationToken(token)
	if err != nil {
		if err == usermanagement.ErrInvalidOrExpiredToken {
			slog.Warn("email verification with invalid token")
			randomWait(1, 3)
			c.JSON(http.StatusBadRequest, gin.H{"error": usermanagement.ErrInvalidOrExpiredToken.Error()})
			return
		}
		slog.Error("failed to verify email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("email verified", slog.String("userID", user.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{
		"message": "email verified, you can log in now",
		"user":    user,
	})
}
