package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

func (h *HttpEndpoints) AddHotelsAPI(rg *gin.RouterGroup) {
	hotels := rg.Group("/hotels")
	hotels.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	hotels.POST("", mw.RequirePayload(), h.registerHotelHandl)
	hotels.GET("/owned", mw.RequireRole(userTypes.ROLE_HOTEL_OWNER), h.getOwnedHotelHandl)
}

type RegisterHotelReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

// registerHotelHandl creates the caller's hotel and promotes the account to
// hotel owner. One hotel per owner.
func (h *HttpEndpoints) registerHotelHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req RegisterHotelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	if req.Name == "" || req.Address == "" || req.City == "" || req.Contact == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, address, city and contact are required"})
		return
	}

	if _, err := h.bookingDBConn.GetHotelByOwner(token.Subject); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "hotel already registered for this account"})
		return
	} else if err != mongo.ErrNoDocuments {
		slog.Error("failed to check for existing hotel", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(token.Subject)
	if err != nil {
		slog.Error("invalid user id in token", slog.String("userID", token.Subject))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	hotel := bookingTypes.Hotel{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Contact:   req.Contact,
		OwnerID:   ownerID,
		CreatedAt: time.Now().Unix(),
	}
	id, err := h.bookingDBConn.AddHotel(hotel)
	if err != nil {
		slog.Error("failed to create hotel", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	if err := h.userDBConn.SetUserRole(token.Subject, userTypes.ROLE_HOTEL_OWNER); err != nil {
		slog.Error("failed to promote user to hotel owner", slog.String("userID", token.Subject), slog.String("error", err.Error()))
	}

	slog.Info("hotel registered", slog.String("hotelID", id), slog.String("ownerID", token.Subject))
	c.JSON(http.StatusCreated, gin.H{
		"message": "hotel registered",
		"hotelID": id,
	})
}

func (h *HttpEndpoints) getOwnedHotelHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	hotel, err := h.bookingDBConn.GetHotelByOwner(token.Subject)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "no hotel registered for this account"})
			return
		}
		slog.Error("failed to fetch hotel", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}
