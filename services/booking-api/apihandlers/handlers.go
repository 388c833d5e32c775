package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bookingDB "github.com/im-hotel/booking-backend/pkg/db/booking"
	userDB "github.com/im-hotel/booking-backend/pkg/db/user"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type TTLs struct {
	AccessToken time.Duration
}

type HttpEndpoints struct {
	userDBConn             *userDB.UserDBService
	bookingDBConn          *bookingDB.BookingDBService
	tokenSignKey           string
	ttls                   TTLs
	websiteBaseURL         string
	maxNewUsersPer5Minutes int
}

func NewHTTPHandler(
	tokenSignKey string,
	ttls TTLs,
	userDBConn *userDB.UserDBService,
	bookingDBConn *bookingDB.BookingDBService,
	websiteBaseURL string,
	maxNewUsersPer5Minutes int,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:           tokenSignKey,
		ttls:                   ttls,
		userDBConn:             userDBConn,
		bookingDBConn:          bookingDBConn,
		websiteBaseURL:         websiteBaseURL,
		maxNewUsersPer5Minutes: maxNewUsersPer5Minutes,
	}
}
