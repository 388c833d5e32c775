package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/im-hotel/booking-backend/pkg/jwt-handling"
)

// RequireRole blocks requests whose validated token does not carry one of the
// allowed roles. Must run after GetAndValidateUserJWT.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue, ok := c.Get("validatedToken")
		if !ok {
			slog.Warn("RequireRole: validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "validatedToken not found in context"})
			return
		}
		parsedToken := tokenValue.(*jwthandling.UserClaims)

		for _, role := range roles {
			if parsedToken.Role == role {
				return
			}
		}

		slog.Warn("RequireRole Middleware: access with insufficient role", slog.String("userID", parsedToken.Subject), slog.String("role", parsedToken.Role))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access forbidden"})
	}
}
