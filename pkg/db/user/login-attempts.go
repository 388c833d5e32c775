package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

// SaveFailedLoginAttempt records one failed login in a single atomic
// aggregation pipeline update, so concurrent failures for the same account
// cannot lose increments:
//   - an expired lock starts a fresh counting window (counter back to 1,
//     lock cleared)
//   - otherwise the counter is incremented, and when it reaches attemptLimit
//     without an active lock the account is locked until lockUntil
//
// Returns the post-update user document.
func (dbService *UserDBService) SaveFailedLoginAttempt(userID string, attemptLimit int64, lockUntil int64) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return userTypes.User{}, err
	}

	now := time.Now().Unix()

	lockExpired := bson.M{"$and": bson.A{
		bson.M{"$gt": bson.A{bson.M{"$ifNull": bson.A{"$account.blockUntil", 0}}, 0}},
		bson.M{"$lte": bson.A{"$account.blockUntil", now}},
	}}
	lockActive := bson.M{"$gt": bson.A{bson.M{"$ifNull": bson.A{"$account.blockUntil", 0}}, now}}

	update := bson.A{
		bson.M{"$set": bson.M{
			"account.loginAttempts": bson.M{"$cond": bson.A{
				lockExpired,
				1,
				bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$account.loginAttempts", 0}}, 1}},
			}},
			"timestamps.updatedAt": now,
		}},
		// loginAttempts below is the post-increment value from the stage above
		bson.M{"$set": bson.M{
			"account.blockUntil": bson.M{"$cond": bson.A{
				bson.M{"$gte": bson.A{"$account.loginAttempts", attemptLimit}},
				bson.M{"$cond": bson.A{lockActive, "$account.blockUntil", lockUntil}},
				"$$REMOVE",
			}},
		}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user userTypes.User
	err = dbService.collectionUsers().FindOneAndUpdate(ctx, bson.M{"_id": _id}, update, opts).Decode(&user)
	return user, err
}

// ResetLoginAttempts removes the failure counter and any lock. Absence is the
// canonical "never failed" state, so the fields are unset rather than zeroed.
func (dbService *UserDBService) ResetLoginAttempts(userID string) error {
	return dbService.UpdateUser(userID, bson.M{
		"$unset": bson.M{
			"account.loginAttempts": "",
			"account.blockUntil":    "",
		},
		"$set": bson.M{
			"timestamps.updatedAt": time.Now().Unix(),
		},
	})
}
