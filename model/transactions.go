package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

type Transaction struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	Amount        float64            `json:"amount" bson:"amount" validate:"gte=0"`
	From          string             `json:"from,omitempty" bson:"from,omitempty"`
	To            string             `json:"to,omitempty" bson:"to,omitempty"`
	Date          time.Time          `json:"date" bson:"date" validate:"required"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod" validate:"required,oneof='UPI' 'Credit Card' 'Debit Card' 'Cash' 'Net Banking'"`
	Category      string             `json:"category" bson:"category" validate:"required"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Type          string             `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,oneof=expense income"`
	Tags          []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Recurring     bool               `json:"recurring,omitempty" bson:"recurring,omitempty"`
	Frequency     string             `json:"frequency,omitempty" bson:"frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly yearly"`

	SecondPartyID   primitive.ObjectID `json:"secondpartyId,omitempty" bson:"secondpartyId,omitempty"`
	SecondPartyType string             `json:"secondpartyType,omitempty" bson:"secondpartyType,omitempty" validate:"omitempty,oneof=individual business"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// IsExpense reports whether the transaction counts against spending.
// Records written before the type field existed carry no type and are
// treated as expenses.
func (t *Transaction) IsExpense() bool {
	return t.Type != TypeIncome
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}
