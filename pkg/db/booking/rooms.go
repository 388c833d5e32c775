package booking

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
)

func (dbService *BookingDBService) AddRoom(room bookingTypes.Room) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	room.ID = primitive.NilObjectID
	res, err := dbService.collectionRooms().InsertOne(ctx, room)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

func (dbService *BookingDBService) GetRoom(roomID string) (bookingTypes.Room, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return bookingTypes.Room{}, err
	}

	var room bookingTypes.Room
	err = dbService.collectionRooms().FindOne(ctx, bson.M{"_id": _id}).Decode(&room)
	return room, err
}

func (dbService *BookingDBService) GetAvailableRooms() ([]bookingTypes.Room, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := dbService.collectionRooms().Find(ctx, bson.M{"isAvailable": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []bookingTypes.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (dbService *BookingDBService) GetRoomsForHotel(hotelID string) ([]bookingTypes.Room, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_hotelID, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return nil, err
	}

	cursor, err := dbService.collectionRooms().Find(ctx, bson.M{"hotelID": _hotelID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []bookingTypes.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ToggleRoomAvailability flips the availability flag atomically, so two
// concurrent toggles cannot read the same starting value.
func (dbService *BookingDBService) ToggleRoomAvailability(roomID string) (bookingTypes.Room, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return bookingTypes.Room{}, err
	}

	update := bson.A{
		bson.M{"$set": bson.M{"isAvailable": bson.M{"$not": "$isAvailable"}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var room bookingTypes.Room
	err = dbService.collectionRooms().FindOneAndUpdate(ctx, bson.M{"_id": _id}, update, opts).Decode(&room)
	if err != nil {
		return bookingTypes.Room{}, err
	}
	return room, nil
}
