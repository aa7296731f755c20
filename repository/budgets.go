package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hpmalinova/Finance-Tracker/model"
)

type BudgetRepoMongo struct {
	col *mongo.Collection
}

func NewBudgetRepoMongo(db *mongo.Database) *BudgetRepoMongo {
	return &BudgetRepoMongo{col: db.Collection("budgets")}
}

// EnsureIndexes declares the unique (userId, category, month) key. The
// store enforces the at-most-one-budget invariant, not the application.
func (b *BudgetRepoMongo) EnsureIndexes(ctx context.Context) error {
	_, err := b.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "category", Value: 1},
			{Key: "month", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (b *BudgetRepoMongo) FindByMonth(ctx context.Context, userID primitive.ObjectID, month string) ([]model.Budget, error) {
	cursor, err := b.col.Find(ctx, bson.M{"userId": userID, "month": month})
	if err != nil {
		return nil, err
	}

	budgets := []model.Budget{}
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SetLimit upserts the limit for (userID, category, month). It is the
// only writer of limitAmount; currentSpent is left untouched.
func (b *BudgetRepoMongo) SetLimit(ctx context.Context, userID primitive.ObjectID, category, month string, year int, limit float64) (*model.Budget, error) {
	filter := bson.M{"userId": userID, "category": category, "month": month}
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"limitAmount": limit,
			"year":        year,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"currentSpent": 0.0,
			"createdAt":    now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var budget model.Budget
	if err := b.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// AddSpent applies a single atomic upsert-and-increment at the store so
// concurrent writers for the same key cannot lose updates. A budget
// created here starts with a zero limit and only tracks spending until
// a limit is set.
func (b *BudgetRepoMongo) AddSpent(ctx context.Context, userID primitive.ObjectID, category, month string, year int, amount float64) error {
	filter := bson.M{"userId": userID, "category": category, "month": month}
	now := time.Now()
	update := bson.M{
		"$inc": bson.M{"currentSpent": amount},
		"$set": bson.M{
			"year":      year,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"limitAmount": 0.0,
			"createdAt":   now,
		},
	}

	_, err := b.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
