package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

// SetAccountToken stores a pending token for the purpose on the account,
// replacing any earlier pending token of the same purpose.
func (dbService *UserDBService) SetAccountToken(userID string, purpose userTypes.TokenPurpose, token string, expiresAt int64) error {
	tokenField, expiresField := purpose.TokenFields()
	return dbService.UpdateUser(userID, bson.M{
		"$set": bson.M{
			tokenField:             token,
			expiresField:           expiresAt,
			"timestamps.updatedAt": time.Now().Unix(),
		},
	})
}

// RedeemVerificationToken marks the matching account verified and clears the
// token fields in the same update. The filter matches only an exact token
// with an unexpired expiry, so a consumed or stale token finds no document.
func (dbService *UserDBService) RedeemVerificationToken(token string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	tokenField, expiresField := userTypes.TOKEN_PURPOSE_EMAIL_VERIFICATION.TokenFields()
	filter := bson.M{
		tokenField:   token,
		expiresField: bson.M{"$gt": time.Now().Unix()},
	}
	update := bson.M{
		"$set": bson.M{
			"account.isVerified":   true,
			"timestamps.updatedAt": time.Now().Unix(),
		},
		"$unset": bson.M{
			tokenField:   "",
			expiresField: "",
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user userTypes.User
	err := dbService.collectionUsers().FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	return user, err
}

// RedeemPasswordResetToken replaces the password hash of the matching account
// and clears the reset token fields in the same update.
func (dbService *UserDBService) RedeemPasswordResetToken(token string, newPasswordHash string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	tokenField, expiresField := userTypes.TOKEN_PURPOSE_PASSWORD_RESET.TokenFields()
	filter := bson.M{
		tokenField:   token,
		expiresField: bson.M{"$gt": time.Now().Unix()},
	}
	update := bson.M{
		"$set": bson.M{
			"account.password":              newPasswordHash,
			"timestamps.lastPasswordChange": time.Now().Unix(),
			"timestamps.updatedAt":          time.Now().Unix(),
		},
		"$unset": bson.M{
			tokenField:   "",
			expiresField: "",
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user userTypes.User
	err := dbService.collectionUsers().FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	return user, err
}
