package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget tracks spending against a limit for one (user, category, month).
// Month uses the "2006-01" key format; year is denormalized alongside it.
type Budget struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	Category     string             `json:"category" bson:"category"`
	LimitAmount  float64            `json:"limitAmount" bson:"limitAmount"`
	CurrentSpent float64            `json:"currentSpent" bson:"currentSpent"`
	Month        string             `json:"month" bson:"month"`
	Year         int                `json:"year" bson:"year"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BudgetLimit is the request body for setting a budget limit.
type BudgetLimit struct {
	Category    string  `json:"category" validate:"required,min=1,max=64"`
	LimitAmount float64 `json:"limitAmount" validate:"gte=0"`
}

type BudgetAlert struct {
	Category   string  `json:"category"`
	Percentage int     `json:"percentage"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	Severity   string  `json:"severity"`
}
