package apihandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mw "github.com/im-hotel/booking-backend/pkg/apihelpers/middlewares"
	"github.com/im-hotel/booking-backend/pkg/booking"
	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
	emailsending "github.com/im-hotel/booking-backend/pkg/messaging/email-sending"
	"github.com/im-hotel/booking-backend/pkg/messaging/templates"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

func (h *HttpEndpoints) AddBookingsAPI(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.POST("/check-availability", mw.RequirePayload(), h.checkAvailabilityHandl)

	authed := bookings.Group("")
	authed.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	authed.POST("", mw.RequirePayload(), h.createBookingHandl)
	authed.GET("/user", h.getUserBookingsHandl)
	authed.GET("/hotel", mw.RequireRole(userTypes.ROLE_HOTEL_OWNER), h.getHotelBookingsHandl)
}

type StayReq struct {
	RoomID       string `json:"roomID"`
	CheckInDate  int64  `json:"checkInDate"`
	CheckOutDate int64  `json:"checkOutDate"`
}

func (h *HttpEndpoints) checkRoomAvailable(roomID string, checkIn int64, checkOut int64) (bookingTypes.Room, bool, error) {
	room, err := h.bookingDBConn.GetRoom(roomID)
	if err != nil {
		return bookingTypes.Room{}, false, err
	}
	if !room.IsAvailable {
		return room, false, nil
	}
	overlapping, err := h.bookingDBConn.CountOverlappingBookings(roomID, checkIn, checkOut)
	if err != nil {
		return room, false, err
	}
	return room, overlapping == 0, nil
}

func (h *HttpEndpoints) checkAvailabilityHandl(c *gin.Context) {
	var req StayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.RoomID == "" || req.CheckOutDate <= req.CheckInDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomID and a valid date range are required"})
		return
	}

	_, available, err := h.checkRoomAvailable(req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		slog.Warn("availability check failed", slog.String("roomID", req.RoomID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAvailable": available})
}

type CreateBookingReq struct {
	RoomID       string `json:"roomID"`
	CheckInDate  int64  `json:"checkInDate"`
	CheckOutDate int64  `json:"checkOutDate"`
	Guests       int    `json:"guests"`
}

func (h *HttpEndpoints) createBookingHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.RoomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomID is required"})
		return
	}
	if req.CheckOutDate <= req.CheckInDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check-out must be after check-in"})
		return
	}
	if booking.IsPastDate(req.CheckInDate, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check-in date is in the past"})
		return
	}
	if req.Guests < 1 {
		req.Guests = 1
	}

	room, available, err := h.checkRoomAvailable(req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		slog.Warn("booking for unknown room", slog.String("roomID", req.RoomID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if !available {
		c.JSON(http.StatusConflict, gin.H{"error": "room is not available for the selected dates"})
		return
	}

	totalPrice, err := booking.TotalPrice(room.PricePerNight, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(token.Subject)
	if err != nil {
		slog.Error("invalid user id in token", slog.String("userID", token.Subject))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	roomID, err := primitive.ObjectIDFromHex(req.RoomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	newBooking := bookingTypes.Booking{
		Reference:     uuid.NewString(),
		UserID:        userID,
		RoomID:        roomID,
		HotelID:       room.HotelID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		Guests:        req.Guests,
		TotalPrice:    totalPrice,
		Status:        bookingTypes.BOOKING_STATUS_CONFIRMED,
		PaymentMethod: bookingTypes.PAYMENT_METHOD_PAY_AT_HOTEL,
		IsPaid:        false,
		CreatedAt:     time.Now().Unix(),
	}
	id, err := h.bookingDBConn.AddBooking(newBooking)
	if err != nil {
		slog.Error("failed to create booking", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	slog.Info("booking created", slog.String("bookingID", id), slog.String("userID", token.Subject))
	go h.sendBookingConfirmationEmail(token.Subject, newBooking, room)

	c.JSON(http.StatusCreated, gin.H{
		"message": "booking confirmed",
		"booking": gin.H{
			"id":         id,
			"reference":  newBooking.Reference,
			"totalPrice": newBooking.TotalPrice,
			"status":     newBooking.Status,
		},
	})
}

func (h *HttpEndpoints) sendBookingConfirmationEmail(userID string, newBooking bookingTypes.Booking, room bookingTypes.Room) {
	user, err := h.userDBConn.GetUser(userID)
	if err != nil {
		slog.Warn("failed to fetch user for booking confirmation", slog.String("userID", userID), slog.String("error", err.Error()))
		return
	}
	hotel, err := h.bookingDBConn.GetHotel(room.HotelID.Hex())
	if err != nil {
		slog.Warn("failed to fetch hotel for booking confirmation", slog.String("hotelID", room.HotelID.Hex()), slog.String("error", err.Error()))
		return
	}

	err = emailsending.SendInstantEmailByTemplate(
		[]string{user.Account.Email},
		templates.EMAIL_TYPE_BOOKING_CONFIRMATION,
		map[string]string{
			"username":     user.Account.Username,
			"reference":    newBooking.Reference,
			"hotelName":    hotel.Name,
			"hotelAddress": hotel.Address,
			"checkInDate":  time.Unix(newBooking.CheckInDate, 0).UTC().Format("02 Jan 2006"),
			"totalPrice":   fmt.Sprintf("%.2f", newBooking.TotalPrice),
		},
	)
	if err != nil {
		slog.Warn("failed to send booking confirmation email", slog.String("userID", userID), slog.String("error", err.Error()))
	}
}

func (h *HttpEndpoints) getUserBookingsHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	bookings, err := h.bookingDBConn.GetBookingsForUser(token.Subject)
	if err != nil {
		slog.Error("failed to fetch bookings", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *HttpEndpoints) getHotelBookingsHandl(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	hotel, err := h.bookingDBConn.GetHotelByOwner(token.Subject)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hotel registered for this account"})
		return
	}

	bookings, err := h.bookingDBConn.GetBookingsForHotel(hotel.ID.Hex())
	if err != nil {
		slog.Error("failed to fetch hotel bookings", slog.String("hotelID", hotel.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
		return
	}

	var totalRevenue float64
	for _, b := range bookings {
		if b.Status != bookingTypes.BOOKING_STATUS_CANCELLED {
			totalRevenue += b.TotalPrice
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":      bookings,
		"totalBookings": len(bookings),
		"totalRevenue":  totalRevenue,
	})
}
