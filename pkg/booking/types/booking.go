package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BOOKING_STATUS_PENDING   = "pending"
	BOOKING_STATUS_CONFIRMED = "confirmed"
	BOOKING_STATUS_CANCELLED = "cancelled"

	PAYMENT_METHOD_PAY_AT_HOTEL = "Pay At Hotel"
)

type Booking struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Reference is the human facing confirmation code included in emails.
	Reference string `bson:"reference" json:"reference"`

	UserID  primitive.ObjectID `bson:"userID" json:"userID"`
	RoomID  primitive.ObjectID `bson:"roomID" json:"roomID"`
	HotelID primitive.ObjectID `bson:"hotelID" json:"hotelID"`

	CheckInDate  int64 `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate int64 `bson:"checkOutDate" json:"checkOutDate"`
	Guests       int   `bson:"guests" json:"guests"`

	TotalPrice    float64 `bson:"totalPrice" json:"totalPrice"`
	Status        string  `bson:"status" json:"status"`
	PaymentMethod string  `bson:"paymentMethod" json:"paymentMethod"`
	IsPaid        bool    `bson:"isPaid" json:"isPaid"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	UserID  primitive.ObjectID `bson:"userID" json:"userID"`
	HotelID primitive.ObjectID `bson:"hotelID" json:"hotelID"`
	Rating  int                `bson:"rating" json:"rating"`
	Comment string             `bson:"comment" json:"comment"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}
