package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Hotel struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address" json:"address"`
	City    string             `bson:"city" json:"city"`
	Contact string             `bson:"contact" json:"contact"`
	OwnerID primitive.ObjectID `bson:"ownerID" json:"ownerID"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}

type Room struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	HotelID       primitive.ObjectID `bson:"hotelID" json:"hotelID"`
	RoomType      string             `bson:"roomType" json:"roomType"`
	PricePerNight float64            `bson:"pricePerNight" json:"pricePerNight"`
	Amenities     []string           `bson:"amenities" json:"amenities"`
	Images        []string           `bson:"images" json:"images"`
	IsAvailable   bool               `bson:"isAvailable" json:"isAvailable"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}
