package main

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/im-hotel/booking-backend/pkg/apihelpers"
	"github.com/im-hotel/booking-backend/services/booking-api/apihandlers"
)

var conf BookingApiConfig

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.UserManagementConfig.UserJWTConfig.SignKey,
		apihandlers.TTLs{
			AccessToken: conf.UserManagementConfig.UserJWTConfig.ExpiresIn,
		},
		userDBService,
		bookingDBService,
		conf.WebsiteConfigs.BaseURL,
		conf.UserManagementConfig.MaxNewUsersPer5Minutes,
	)
	v1APIHandlers.AddUserAuthAPI(v1Root)
	v1APIHandlers.AddPasswordResetAPI(v1Root)
	v1APIHandlers.AddUserManagementAPI(v1Root)
	v1APIHandlers.AddHotelsAPI(v1Root)
	v1APIHandlers.AddRoomsAPI(v1Root)
	v1APIHandlers.AddBookingsAPI(v1Root)
	v1APIHandlers.AddReviewsAPI(v1Root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "booking-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Booking API on port " + conf.GinConfig.Port)
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited Booking API", slog.String("error", err.Error()))
		return
	}
}
