package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

func (h *HttpEndpoints) AddRoomsAPI(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	rooms.GET("", h.getAvailableRoomsHandl)
	rooms.GET("/:roomID", h.getRoomHandl)

	owned := rooms.Group("")
	owned.Use(mw.GetAndValidateUserJWT(h.tokenSignKey), mw.RequireRole(userTypes.ROLE_HOTEL_OWNER))
	owned.POST("", mw.RequirePayload(), h.addRoomHandl)
	owned.GET("/owner", h.getOwnerRoomsHandl)
	owned.POST("/toggle-availability", mw.RequirePayload(), h.toggleRoomAvailabilityHandl)
}

func (h *HttpEndpoints) getAvailableRoomsHandl(c *gin.Context) {
	rooms, err := h.bookingDBConn.GetAvailableRooms()
	if err != nil {
		slog.Error("failed to fetch rooms", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *HttpEndpoints) getRoomHandl(c *gin.Context) {
	room, err := h.bookingDBConn.GetRoom(c.Param("roomID"))
	if err != nil {
		slog.Warn("room not found", slog.String("roomID", c.Param("roomID")))
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

type AddRoomReq struct {
	RoomType      string   `json:"roomType"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

func (h *HttpEndpoints) addRoomHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req AddRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.RoomType == "" || req.PricePerNight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomType and a positive pricePerNight are required"})
		return
	}

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

	room := bookingTypes.Room{
		HotelID:       hotel.ID,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Images:        req.Images,
		IsAvailable:   true,
		CreatedAt:     time.Now().Unix(),
	}
	id, err := h.bookingDBConn.AddRoom(room)
	if err != nil {
		slog.Error("failed to create room", slog.String("hotelID", hotel.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("room created", slog.String("roomID", id), slog.String("hotelID", hotel.ID.Hex()))
	c.JSON(http.StatusCreated, gin.H{
		"message": "room created",
		"roomID":  id,
	})
}

func (h *HttpEndpoints) getOwnerRoomsHandl(c *gin.Context) {
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

	rooms, err := h.bookingDBConn.GetRoomsForHotel(hotel.ID.Hex())
	if err != nil {
		slog.Error("failed to fetch rooms", slog.String("hotelID", hotel.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

type ToggleRoomAvailabilityReq struct {
	RoomID string `json:"roomID"`
}

func (h *HttpEndpoints) toggleRoomAvailabilityHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req ToggleRoomAvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.RoomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomID is required"})
		return
	}

	hotel, err := h.bookingDBConn.GetHotelByOwner(token.Subject)
	if err != nil {
		slog.Warn("availability toggle without owned hotel", slog.String("userID", token.Subject))
		c.JSON(http.StatusNotFound, gin.H{"error": "no hotel registered for this account"})
		return
	}

	room, err := h.bookingDBConn.GetRoom(req.RoomID)
	if err != nil || room.HotelID != hotel.ID {
		slog.Warn("availability toggle for foreign room", slog.String("userID", token.Subject), slog.String("roomID", req.RoomID))
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	updated, err := h.bookingDBConn.ToggleRoomAvailability(req.RoomID)
	if err != nil {
		slog.Error("failed to toggle room availability", slog.String("roomID", req.RoomID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "room availability updated",
		"isAvailable": updated.IsAvailable,
	})
}
