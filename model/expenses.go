package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is the legacy record kept for clients that predate the
// transactions collection. Categories are restricted to the original
// fixed set.
type Expense struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	Amount        float64            `json:"amount" bson:"amount" validate:"gte=0"`
	Category      string             `json:"category" bson:"category" validate:"required,oneof=Food Rent Shopping Transport Entertainment Healthcare Other"`
	Date          time.Time          `json:"date" bson:"date" validate:"required"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod" validate:"required,oneof='UPI' 'Credit Card' 'Debit Card' 'Cash' 'Net Banking'"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
