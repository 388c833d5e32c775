package usermanagement

import (
	"time"

	userDB "github.com/im-hotel/booking-backend/pkg/db/user"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

var (
	userDBService *userDB.UserDBService
)

func Init(
	uDBService *userDB.UserDBService,
) {
	userDBService = uDBService
}

// InitNewEmailUser prepares an unverified user record before insertion. The
// email must already be sanitized.
func InitNewEmailUser(
	username string,
	email string,
	passwordHash string,
) userTypes.User {
	now := time.Now().Unix()
	return userTypes.User{
		Account: userTypes.Account{
			Email:      email,
			Username:   username,
			Password:   passwordHash,
			Role:       userTypes.ROLE_USER,
			IsVerified: false,
		},
		Timestamps: userTypes.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
		RecentSearchedCities: []string{},
	}
}
