package booking

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingTypes "github.com/im-hotel/booking-backend/pkg/booking/types"
)

func (dbService *BookingDBService) AddBooking(booking bookingTypes.Booking) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	booking.ID = primitive.NilObjectID
	res, err := dbService.collectionBookings().InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// CountOverlappingBookings counts non-cancelled bookings of the room that
// share at least one night with the requested stay. The overlap condition is
// evaluated server-side so the availability check and the later insert work
// off the same predicate.
func (dbService *BookingDBService) CountOverlappingBookings(roomID string, checkIn int64, checkOut int64) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_roomID, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return 0, err
	}

	filter := bson.M{
		"roomID":       _roomID,
		"status":       bson.M{"$ne": bookingTypes.BOOKING_STATUS_CANCELLED},
		"checkInDate":  bson.M{"$lt": checkOut},
		"checkOutDate": bson.M{"$gt": checkIn},
	}
	return dbService.collectionBookings().CountDocuments(ctx, filter)
}

func (dbService *BookingDBService) GetBookingsForUser(userID string) ([]bookingTypes.Booking, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_userID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := dbService.collectionBookings().Find(ctx, bson.M{"userID": _userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []bookingTypes.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (dbService *BookingDBService) GetBookingsForHotel(hotelID string) ([]bookingTypes.Booking, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_hotelID, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := dbService.collectionBookings().Find(ctx, bson.M{"hotelID": _hotelID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []bookingTypes.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
