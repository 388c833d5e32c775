package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddUserManagementAPI(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	user.GET("", h.getUserHandl)
	user.POST("/store-recent-search", mw.RequirePayload(), h.storeRecentSearchHandl)
}

func (h *HttpEndpoints) getUserHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	user, err := h.userDBConn.GetUser(token.Subject)
	if err != nil {
		slog.Error("failed to fetch user", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":                 user.Account.Role,
		"recentSearchedCities": user.RecentSearchedCities,
		"user":                 user,
	})
}

type StoreRecentSearchReq struct {
	City string `json:"city"`
}

func (h *HttpEndpoints) storeRecentSearchHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req StoreRecentSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.City = strings.TrimSpace(req.City)
	if req.City == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	if err := h.userDBConn.AddRecentSearchedCity(token.Subject, req.City); err != nil {
		slog.Error("failed to store recent search", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "city added to recent searches"})
}
