package booking

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/im-hotel/booking-backend/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_HOTELS   = "hotels"
	COLLECTION_NAME_ROOMS    = "rooms"
	COLLECTION_NAME_BOOKINGS = "bookings"
	COLLECTION_NAME_REVIEWS  = "reviews"
)

type BookingDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
}

func NewBookingDBService(configs db.DBConfig) (*BookingDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	bDBSc := &BookingDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		bDBSc.ensureIndexes()
	}
	return bDBSc, nil
}

func (dbService *BookingDBService) getDBName() string {
	return dbService.DBNamePrefix + "hotel-booking"
}

func (dbService *BookingDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *BookingDBService) collectionHotels() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_HOTELS)
}

func (dbService *BookingDBService) collectionRooms() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_ROOMS)
}

func (dbService *BookingDBService) collectionBookings() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_BOOKINGS)
}

func (dbService *BookingDBService) collectionReviews() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_REVIEWS)
}

func (dbService *BookingDBService) ensureIndexes() {
	slog.Debug("Ensuring indexes for booking DB")

	ctx, cancel := dbService.getContext()
	defer cancel()

	if _, err := dbService.collectionHotels().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerID", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}); err != nil {
		slog.Error("Error creating indexes for hotels", slog.String("error", err.Error()))
	}

	if _, err := dbService.collectionRooms().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotelID", Value: 1}}},
		{Keys: bson.D{{Key: "isAvailable", Value: 1}}},
	}); err != nil {
		slog.Error("Error creating indexes for rooms", slog.String("error", err.Error()))
	}

	if _, err := dbService.collectionBookings().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "roomID", Value: 1},
			{Key: "checkInDate", Value: 1},
			{Key: "checkOutDate", Value: 1},
		}},
		{Keys: bson.D{{Key: "userID", Value: 1}}},
		{Keys: bson.D{{Key: "hotelID", Value: 1}}},
	}); err != nil {
		slog.Error("Error creating indexes for bookings", slog.String("error", err.Error()))
	}

	if _, err := dbService.collectionReviews().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "hotelID", Value: 1}}},
	}); err != nil {
		slog.Error("Error creating indexes for reviews", slog.String("error", err.Error()))
	}
}
