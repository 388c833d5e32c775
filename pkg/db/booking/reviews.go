package booking

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
)

func (dbService *BookingDBService) AddReview(review bookingTypes.Review) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	review.ID = primitive.NilObjectID
	res, err := dbService.collectionReviews().InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

func (dbService *BookingDBService) GetReviewsForHotel(hotelID string) ([]bookingTypes.Review, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_hotelID, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := dbService.collectionReviews().Find(ctx, bson.M{"hotelID": _hotelID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []bookingTypes.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
