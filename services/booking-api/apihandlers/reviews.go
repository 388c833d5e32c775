package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddReviewsAPI(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	reviews.GET("/hotel/:hotelID", h.getHotelReviewsHandl)
	reviews.POST("", mw.GetAndValidateUserJWT(h.tokenSignKey), mw.RequirePayload(), h.addReviewHandl)
}

type AddReviewReq struct {
	HotelID string `json:"hotelID"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *HttpEndpoints) addReviewHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req AddReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	req.Comment = strings.TrimSpace(req.Comment)

	if _, err := h.bookingDBConn.GetHotel(req.HotelID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(token.Subject)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	hotelID, err := primitive.ObjectIDFromHex(req.HotelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	review := bookingTypes.Review{
		UserID:    userID,
		HotelID:   hotelID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().Unix(),
	}
	id, err := h.bookingDBConn.AddReview(review)
	if err != nil {
		slog.Error("failed to create review", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("review created", slog.String("reviewID", id), slog.String("hotelID", req.HotelID))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "review created",
		"reviewID": id,
	})
}

func (h *HttpEndpoints) getHotelReviewsHandl(c *gin.Context) {
	reviews, err := h.bookingDBConn.GetReviewsForHotel(c.Param("hotelID"))
	if err != nil {
		slog.Error("failed to fetch reviews", slog.String("hotelID", c.Param("hotelID")), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
