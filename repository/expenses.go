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

// ExpenseRepoMongo backs the legacy expenses collection.
type ExpenseRepoMongo struct {
	col *mongo.Collection
}

func NewExpenseRepoMongo(db *mongo.Database) *ExpenseRepoMongo {
	return &ExpenseRepoMongo{col: db.Collection("expenses")}
}

func (e *ExpenseRepoMongo) EnsureIndexes(ctx context.Context) error {
	_, err := e.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "category", Value: 1}}},
	})
	return err
}

func (e *ExpenseRepoMongo) Create(ctx context.Context, expense *model.Expense) (*model.Expense, error) {
	expense.ID = primitive.NewObjectID()
	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if _, err := e.col.InsertOne(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (e *ExpenseRepoMongo) FindRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Expense, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := e.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	expenses := []model.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (e *ExpenseRepoMongo) FindPage(ctx context.Context, userID primitive.ObjectID, start, end *time.Time, page, limit int64) ([]model.Expense, int64, error) {
	filter := bson.M{"userId": userID}
	if start != nil || end != nil {
		date := bson.M{}
		if start != nil {
			date["$gte"] = *start
		}
		if end != nil {
			date["$lte"] = *end
		}
		filter["date"] = date
	}

	total, err := e.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := e.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	expenses := []model.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (e *ExpenseRepoMongo) Update(ctx context.Context, id, userID primitive.ObjectID, expense *model.Expense) (*model.Expense, error) {
	update := bson.M{"$set": bson.M{
		"amount":        expense.Amount,
		"category":      expense.Category,
		"date":          expense.Date,
		"paymentMethod": expense.PaymentMethod,
		"notes":         expense.Notes,
		"updatedAt":     time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Expense
	err := e.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (e *ExpenseRepoMongo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := e.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
