package user

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

func (dbService *UserDBService) CreateIndexesForUsers() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers().Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "account.email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "account.emailVerificationToken", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "account.resetToken", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "timestamps.createdAt", Value: 1}},
			},
		},
	)
	return err
}

func (dbService *UserDBService) AddUser(user userTypes.User) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	user.ID = primitive.NilObjectID
	res, err := dbService.collectionUsers().InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

func (dbService *UserDBService) GetUser(userID string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return userTypes.User{}, err
	}

	var user userTypes.User
	err = dbService.collectionUsers().FindOne(ctx, bson.M{"_id": _id}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUserByEmail(email string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	err := dbService.collectionUsers().FindOne(ctx, bson.M{"account.email": email}).Decode(&user)
	return user, err
}

// GetUserByToken looks up the account holding an unexpired token of the given
// purpose. Expiry is filtered server-side so a stale token never matches.
func (dbService *UserDBService) GetUserByToken(purpose userTypes.TokenPurpose, token string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	tokenField, expiresField := purpose.TokenFields()
	filter := bson.M{
		tokenField:   token,
		expiresField: bson.M{"$gt": time.Now().Unix()},
	}

	var user userTypes.User
	err := dbService.collectionUsers().FindOne(ctx, filter).Decode(&user)
	return user, err
}

func (dbService *UserDBService) UpdateUser(userID string, update bson.M) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionUsers().UpdateOne(ctx, bson.M{"_id": _id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (dbService *UserDBService) UpdateLastLogin(userID string) error {
	return dbService.UpdateUser(userID, bson.M{
		"$set": bson.M{
			"timestamps.lastLogin": time.Now().Unix(),
		},
	})
}

func (dbService *UserDBService) CountRecentlyCreatedUsers(withinSeconds int64) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"timestamps.createdAt": bson.M{"$gt": time.Now().Unix() - withinSeconds},
	}
	return dbService.collectionUsers().CountDocuments(ctx, filter)
}

// AddRecentSearchedCity appends the city and keeps only the three most recent
// entries, in one atomic update.
func (dbService *UserDBService) AddRecentSearchedCity(userID string, city string) error {
	return dbService.UpdateUser(userID, bson.M{
		"$push": bson.M{
			"recentSearchedCities": bson.M{
				"$each":  bson.A{city},
				"$slice": -3,
			},
		},
		"$set": bson.M{
			"timestamps.updatedAt": time.Now().Unix(),
		},
	})
}

func (dbService *UserDBService) SetUserRole(userID string, role string) error {
	return dbService.UpdateUser(userID, bson.M{
		"$set": bson.M{
			"account.role":         role,
			"timestamps.updatedAt": time.Now().Unix(),
		},
	})
}

func (dbService *UserDBService) DeleteUser(userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}
	res, err := dbService.collectionUsers().DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
