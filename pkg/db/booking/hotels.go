package booking

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
)

func (dbService *BookingDBService) AddHotel(hotel bookingTypes.Hotel) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	hotel.ID = primitive.NilObjectID
	res, err := dbService.collectionHotels().InsertOne(ctx, hotel)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

func (dbService *BookingDBService) GetHotel(hotelID string) (bookingTypes.Hotel, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return bookingTypes.Hotel{}, err
	}

	var hotel bookingTypes.Hotel
	err = dbService.collectionHotels().FindOne(ctx, bson.M{"_id": _id}).Decode(&hotel)
	return hotel, err
}

func (dbService *BookingDBService) GetHotelByOwner(ownerID string) (bookingTypes.Hotel, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_ownerID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return bookingTypes.Hotel{}, err
	}

	var hotel bookingTypes.Hotel
	err = dbService.collectionHotels().FindOne(ctx, bson.M{"ownerID": _ownerID}).Decode(&hotel)
	return hotel, err
}
